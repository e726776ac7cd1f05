package service

import (
	"context"
	"errors"

	"github.com/mtaylor482/dps-payments/models"
	"github.com/mtaylor482/dps-payments/repository"
	"github.com/mtaylor482/dps-payments/request"
)

// Complete captures the funds reserved by a prior Auth. The transaction
// must reference the Auth through AuthPaymentID; the check happens before
// any mutation, so a rejected Complete leaves the transaction untouched.
func (s *PaymentService) Complete(ctx context.Context, txn *models.Transaction) error {
	auth, err := s.resolvePrior(ctx, txn.AuthPaymentID)
	if err != nil {
		return &ServiceError{
			Code:    ErrCodeMissingPriorTransaction,
			Message: "complete requires a resolvable auth transaction",
			Err:     err,
		}
	}

	_, err = s.store.Transactions().FindSuccessfulComplete(ctx, auth.ID)
	if err == nil {
		return &ServiceError{
			Code:    ErrCodeDuplicateComplete,
			Message: "auth transaction has already been completed",
		}
	}
	if !errors.Is(err, models.ErrNotFound) {
		return &ServiceError{
			Code:    ErrCodePersistence,
			Message: "failed to check for an existing complete",
			Err:     err,
		}
	}

	prevStatus := txn.Status

	ok := s.execute(ctx, "complete", func(txns repository.TransactionRepository) error {
		txn.TxnType = models.TxnTypeComplete
		txn.MerchantReference = "Complete: " + auth.MerchantReference
		if err := persist(ctx, txns, txn); err != nil {
			return err
		}

		result, err := s.gateway.DoPayment(ctx, request.Completion(txn, auth))
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
