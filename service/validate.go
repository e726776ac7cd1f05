package service

import (
	"context"

	"github.com/mtaylor482/dps-payments/models"
	"github.com/mtaylor482/dps-payments/request"
)

// ValidateCard runs a Validate transaction against the gateway, checking
// card details without moving funds. Obviously bad input is rejected
// locally before any persist or network call.
func (s *PaymentService) ValidateCard(ctx context.Context, txn *models.Transaction, in request.Input) error {
	if err := request.ValidateCardFragments(in.CardNumber); err != nil {
		return &ServiceError{
			Code:    ErrCodeInvalidCard,
			Message: err.Error(),
			Err:     err,
		}
	}

	if expiry, ok := in.Values["DateExpiry"]; ok {
		if err := request.ValidateDateExpiry(expiry); err != nil {
			return &ServiceError{
				Code:    ErrCodeInvalidCard,
				Message: err.Error(),
				Err:     err,
			}
		}
	}

	if cvc, ok := in.Values["Cvc2"]; ok && cvc != "" {
		if err := request.ValidateCvc(cvc); err != nil {
			return &ServiceError{
				Code:    ErrCodeInvalidCard,
				Message: err.Error(),
				Err:     err,
			}
		}
	}

	s.directCall(ctx, "validate_card", txn, in, models.TxnTypeValidate)
	return nil
}
