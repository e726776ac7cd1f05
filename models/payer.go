package models

import "github.com/google/uuid"

// Payer is the party a transaction was paid by, as far as receipts are
// concerned. The host application owns the full account record.
type Payer struct {
	ID    uuid.UUID
	Name  string
	Email string

	// ReceiptMessage is appended to the rendered receipt body when set.
	ReceiptMessage string
}
