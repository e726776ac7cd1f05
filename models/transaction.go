package models

import (
	"time"

	"github.com/google/uuid"
)

// TxnType represents the DPS transaction type
type TxnType string

const (
	TxnTypePurchase TxnType = "Purchase"
	TxnTypeAuth     TxnType = "Auth"
	TxnTypeComplete TxnType = "Complete"
	TxnTypeRefund   TxnType = "Refund"
	TxnTypeValidate TxnType = "Validate"
)

// DefaultTxnType is applied when a transaction is created without a type.
const DefaultTxnType = TxnTypePurchase

// Status represents the outcome state of a payment transaction
type Status string

const (
	StatusIncomplete Status = "Incomplete"
	StatusPending    Status = "Pending"
	StatusSuccess    Status = "Success"
	StatusFailure    Status = "Failure"
)

// Transaction is a single gateway interaction. Every gateway call gets its
// own record: a Complete is a new record pointing at its Auth, a Refund a
// new record pointing at the transaction it reverses. ResponseXML is an
// audit trail and is never rewritten once the gateway has answered.
type Transaction struct {
	CreatedAt time.Time
	UpdatedAt time.Time

	ID      uuid.UUID
	TxnType TxnType
	Status  Status
	Amount  Money

	// TxnRef is the gateway-assigned reference, unique once non-empty.
	TxnRef            string
	AuthCode          string
	MerchantReference string

	// HostedRedirectURL is populated only for the hosted (redirect) flow.
	HostedRedirectURL string

	// SettlementDate is populated only for the server-to-server flow.
	SettlementDate string

	ResponseXML string

	// Masked card details copied from the gateway response for display.
	// The full card number is never retained.
	CardNumberTruncated string
	CardHolderName      string
	DateExpiry          string

	// TimeOutDate, when set, is forwarded to the hosted flow as a gateway
	// option so the hosted page expires.
	TimeOutDate *time.Time

	// Lookup-only relations; a transaction never owns its counterpart.
	AuthPaymentID      *uuid.UUID
	RefundedForID      *uuid.UUID
	RecurringProfileID *uuid.UUID
	PaidByID           *uuid.UUID

	parsedResponse *ParsedResponse
}

// NewTransaction creates an unsaved transaction with the default type.
func NewTransaction(amount Money) *Transaction {
	return &Transaction{
		TxnType: DefaultTxnType,
		Status:  StatusIncomplete,
		Amount:  amount,
	}
}

// SetResponseXML stores the raw gateway payload and drops any cached parse
// of the previous payload.
func (t *Transaction) SetResponseXML(raw string) {
	t.ResponseXML = raw
	t.parsedResponse = nil
}

// Response returns the parsed gateway payload, parsing lazily and caching
// the result on the entity. A malformed or empty payload yields a parse
// tree whose accessors all report "not available"; parsing never fails.
func (t *Transaction) Response() *ParsedResponse {
	if t.parsedResponse == nil {
		t.parsedResponse = ParseResponse(t.ResponseXML)
	}
	return t.parsedResponse
}

// AmountSettlement retrieves the settlement amount from the response.
// Only present for transactions created through the hosted flow.
func (t *Transaction) AmountSettlement() (string, bool) {
	return t.Response().AmountSettlement()
}

// CardName retrieves the card scheme name from the response.
func (t *Transaction) CardName() (string, bool) {
	return t.Response().CardName()
}

// ResponseCardHolderName retrieves the cardholder name from the response.
func (t *Transaction) ResponseCardHolderName() (string, bool) {
	return t.Response().CardHolderName()
}

// ResponseDateExpiry retrieves the card expiry from the response.
func (t *Transaction) ResponseDateExpiry() (string, bool) {
	return t.Response().DateExpiry()
}

// ResponseCardNumber retrieves the masked card number from the response.
func (t *Transaction) ResponseCardNumber() (string, bool) {
	return t.Response().CardNumber()
}
