// Package request translates a transaction plus raw caller input into the
// exact field set a gateway call requires. Building is pure: no I/O, no
// mutation of the transaction.
package request

import (
	"strings"

	"github.com/mtaylor482/dps-payments/models"
)

// Fields is the assembled key set sent to the gateway.
type Fields map[string]string

// Input is raw caller-supplied data, typically straight off a payment form.
// Unrecognized keys in Values are dropped silently. The card number arrives
// as fragments (one per form field) and is concatenated during building.
type Input struct {
	Values     map[string]string
	CardNumber []string
}

// Builder assembles a Fields set. Caller input is merged first through an
// allow-list; forced fields derived from the transaction are applied last so
// caller input can never spoof them.
type Builder struct {
	fields Fields
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{fields: Fields{}}
}

// Merge copies the allowed subset of values into the field set.
func (b *Builder) Merge(values map[string]string, allowed map[string]bool) *Builder {
	for key, value := range values {
		if allowed[key] {
			b.fields[key] = value
		}
	}
	return b
}

// Set assigns a single field.
func (b *Builder) Set(key, value string) *Builder {
	b.fields[key] = value
	return b
}

// SetCardNumber concatenates the card-number fragments into the single
// CardNumber field, replacing any fragment slice copied in via Merge.
func (b *Builder) SetCardNumber(parts []string) *Builder {
	if len(parts) > 0 {
		b.fields["CardNumber"] = strings.Join(parts, "")
	}
	return b
}

// Force overwrites the transaction-derived fields. Applied after every merge
// so the transaction record, not the caller, decides identity, type and
// amount.
func (b *Builder) Force(txn *models.Transaction) *Builder {
	b.fields["TxnData1"] = txn.ID.String()
	b.fields["TxnType"] = string(txn.TxnType)
	b.fields["Amount"] = txn.Amount.WireAmount()
	b.fields["InputCurrency"] = txn.Amount.Currency
	return b
}

// Fields returns the assembled field set.
func (b *Builder) Fields() Fields {
	return b.fields
}

// Direct builds the field set for Auth, Purchase and Validate transactions
// on the server-to-server integration.
func Direct(txn *models.Transaction, in Input) Fields {
	return NewBuilder().
		Merge(in.Values, directAllowed).
		SetCardNumber(in.CardNumber).
		Force(txn).
		Fields()
}

// Completion builds the field set finalizing a prior Auth. The Auth's
// gateway reference is carried forward; no caller input is accepted.
func Completion(txn, auth *models.Transaction) Fields {
	return NewBuilder().
		Force(txn).
		Set("DpsTxnRef", auth.TxnRef).
		Fields()
}

// Refund builds the field set reversing a prior transaction, carrying
// forward its gateway reference and the refund's merchant reference.
func Refund(txn, original *models.Transaction) Fields {
	return NewBuilder().
		Force(txn).
		Set("DpsTxnRef", original.TxnRef).
		Set("MerchantReference", txn.MerchantReference).
		Fields()
}

// Recurring builds the field set charging a stored billing profile. The
// profile's billing token substitutes for card data, and the profile (not
// the transaction) supplies amount, currency and merchant reference.
func Recurring(txn *models.Transaction, profile *models.RecurringProfile) Fields {
	return NewBuilder().
		Set("DpsBillingId", profile.DPSBillingID).
		Set("TxnData1", txn.ID.String()).
		Set("TxnType", string(models.TxnTypePurchase)).
		Set("Amount", profile.Amount.WireAmount()).
		Set("InputCurrency", profile.Amount.Currency).
		Set("MerchantReference", profile.MerchantReference).
		Fields()
}

// hostedTimeoutFormat is the gateway's TO= option format (yymmddHHMM).
const hostedTimeoutFormat = "0601021504"

// Hosted builds the field set for the hosted (redirect) flow. Both redirect
// targets point at the same fixed response endpoint; the gateway's own
// result query distinguishes outcomes.
func Hosted(txn *models.Transaction, in Input, callbackURL string) Fields {
	b := NewBuilder().
		Merge(in.Values, hostedAllowed).
		Set("TxnData1", txn.ID.String()).
		Set("TxnType", string(txn.TxnType)).
		Set("AmountInput", txn.Amount.WireAmount()).
		Set("InputCurrency", txn.Amount.Currency).
		Set("MerchantReference", txn.MerchantReference)

	if txn.TimeOutDate != nil {
		b.Set("Opt", "TO="+txn.TimeOutDate.Format(hostedTimeoutFormat))
	}

	b.Set("UrlFail", callbackURL)
	b.Set("UrlSuccess", callbackURL)

	return b.Fields()
}
