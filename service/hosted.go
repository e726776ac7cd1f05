package service

import (
	"context"

	"github.com/mtaylor482/dps-payments/models"
	"github.com/mtaylor482/dps-payments/repository"
	"github.com/mtaylor482/dps-payments/request"
)

// HostedPurchase initiates a purchase on the gateway's hosted page and
// returns the URL to redirect the payer to. No result is applied here: the
// outcome arrives later through the response endpoint both redirect targets
// point at. An empty URL means initiation failed (and was handled).
func (s *PaymentService) HostedPurchase(ctx context.Context, txn *models.Transaction, in request.Input) (string, error) {
	var redirectURL string

	s.execute(ctx, "hosted_purchase", func(txns repository.TransactionRepository) error {
		txn.TxnType = models.TxnTypePurchase
		if err := persist(ctx, txns, txn); err != nil {
			return err
		}

		redirect, err := s.gateway.DoHostedPayment(ctx, request.Hosted(txn, in, s.hostedCallbackURL))
		if err != nil {
			return &ServiceError{
				Code:    ErrCodeGatewayFailure,
				Message: "hosted gateway call failed",
				Err:     err,
			}
		}

		txn.HostedRedirectURL = redirect.URL
		redirectURL = redirect.URL
		return persist(ctx, txns, txn)
	})

	return redirectURL, nil
}
