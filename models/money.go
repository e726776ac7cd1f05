package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Money is an amount in a single currency. Amounts travel to the gateway as
// plain d.cc strings, so arithmetic stays in decimal form until the wire.
type Money struct {
	Value    decimal.Decimal
	Currency string
}

// NewMoney builds a Money from an amount string and an ISO currency code.
// A leading currency symbol ("$12.50") is tolerated and stripped, since
// amounts frequently arrive from display fields.
func NewMoney(amount, currency string) (Money, error) {
	value, err := decimal.NewFromString(strings.TrimPrefix(strings.TrimSpace(amount), "$"))
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	return Money{Value: value, Currency: currency}, nil
}

// WireAmount renders the amount the way the gateway expects it: two decimal
// places, no symbol.
func (m Money) WireAmount() string {
	return m.Value.StringFixed(2)
}

// IsZero reports whether no amount has been set.
func (m Money) IsZero() bool {
	return m.Value.IsZero() && m.Currency == ""
}
