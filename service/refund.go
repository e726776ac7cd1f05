package service

import (
	"context"

	"github.com/mtaylor482/dps-payments/models"
	"github.com/mtaylor482/dps-payments/repository"
	"github.com/mtaylor482/dps-payments/request"
)

// Refund reverses the transaction referenced through RefundedForID. In
// addition to the usual Status-based outcome it returns whether the wrapped
// sequence succeeded, since refunds are typically operator-initiated and
// want an immediate answer.
func (s *PaymentService) Refund(ctx context.Context, txn *models.Transaction) (bool, error) {
	original, err := s.resolvePrior(ctx, txn.RefundedForID)
	if err != nil {
		return false, &ServiceError{
			Code:    ErrCodeMissingPriorTransaction,
			Message: "refund requires a resolvable original transaction",
			Err:     err,
		}
	}

	prevStatus := txn.Status

	ok := s.execute(ctx, "refund", func(txns repository.TransactionRepository) error {
		txn.TxnType = models.TxnTypeRefund
		txn.MerchantReference = "Refund for: " + original.MerchantReference
		if err := persist(ctx, txns, txn); err != nil {
			return err
		}

		result, err := s.gateway.DoPayment(ctx, request.Refund(txn, original))
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
	return ok, nil
}
