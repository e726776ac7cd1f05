package models

import (
	"time"

	"github.com/google/uuid"
)

// RecurringProfile is a stored billing agreement. The gateway holds the card
// against DPSBillingID; subsequent charges reference the token instead of
// card data.
type RecurringProfile struct {
	CreatedAt time.Time

	ID                uuid.UUID
	DPSBillingID      string
	Amount            Money
	MerchantReference string
}
