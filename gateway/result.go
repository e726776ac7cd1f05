package gateway

import "github.com/mtaylor482/dps-payments/models"

// ResultFields is the interpreted outcome of a server-to-server gateway
// call, decoded by the client from the gateway's XML response.
type ResultFields struct {
	// Authorized reports the gateway's accept/decline decision.
	Authorized bool

	TxnRef       string
	AuthCode     string
	ResponseText string

	// SettlementDate is set for server-to-server transactions only.
	SettlementDate string

	// Masked card details. The full card number never appears here.
	CardNumberTruncated string
	CardHolderName      string
	DateExpiry          string

	// RawXML is the verbatim response payload, retained for audit.
	RawXML string
}

// Apply writes the interpreted outcome onto the transaction: status,
// gateway reference, auth code, masked card details, settlement date and
// the raw payload (which resets the transaction's parse cache).
func (r *ResultFields) Apply(txn *models.Transaction) {
	if r.Authorized {
		txn.Status = models.StatusSuccess
	} else {
		txn.Status = models.StatusFailure
	}

	txn.TxnRef = r.TxnRef
	txn.AuthCode = r.AuthCode
	txn.SettlementDate = r.SettlementDate
	txn.CardNumberTruncated = r.CardNumberTruncated
	txn.CardHolderName = r.CardHolderName
	txn.DateExpiry = r.DateExpiry
	txn.SetResponseXML(r.RawXML)
}
