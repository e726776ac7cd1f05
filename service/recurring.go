package service

import (
	"context"

	"github.com/mtaylor482/dps-payments/models"
	"github.com/mtaylor482/dps-payments/repository"
	"github.com/mtaylor482/dps-payments/request"
)

// RecurringPurchase charges the stored billing profile referenced through
// RecurringProfileID, substituting the profile's billing token for card
// data. The profile supplies amount, currency and merchant reference.
func (s *PaymentService) RecurringPurchase(ctx context.Context, txn *models.Transaction) error {
	if txn.RecurringProfileID == nil {
		return &ServiceError{
			Code:    ErrCodeProfileNotFound,
			Message: "recurring purchase requires a recurring profile reference",
		}
	}

	profile, err := s.store.RecurringProfiles().FindByID(ctx, *txn.RecurringProfileID)
	if err != nil {
		return &ServiceError{
			Code:    ErrCodeProfileNotFound,
			Message: "recurring profile not found",
			Err:     err,
		}
	}

	prevStatus := txn.Status

	ok := s.execute(ctx, "recurring_purchase", func(txns repository.TransactionRepository) error {
		txn.TxnType = models.TxnTypePurchase
		if err := persist(ctx, txns, txn); err != nil {
			return err
		}

		result, err := s.gateway.DoPayment(ctx, request.Recurring(txn, profile))
		if err != nil {
			return &ServiceError{
				Code:    ErrCodeGatewayFailure,
				Message: "gateway call failed",
				Err:     err,
			}
		}

		result.Apply(txn)
		return persist(ctx, txns, txn)
	})

	if ok {
		s.notifyOnSuccess(ctx, prevStatus, txn)
	}
	return nil
}
