package request

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtaylor482/dps-payments/models"
)

func testTransaction(t *testing.T) *models.Transaction {
	t.Helper()

	amount, err := models.NewMoney("120.00", "NZD")
	require.NoError(t, err)

	txn := models.NewTransaction(amount)
	txn.ID = uuid.New()
	return txn
}

func TestDirect(t *testing.T) {
	t.Run("concatenates card number fragments", func(t *testing.T) {
		txn := testTransaction(t)
		txn.TxnType = models.TxnTypePurchase

		fields := Direct(txn, Input{
			CardNumber: []string{"4111", "1111", "1111", "1111"},
		})

		assert.Equal(t, "4111111111111111", fields["CardNumber"])
	})

	t.Run("drops keys outside the allow-list", func(t *testing.T) {
		txn := testTransaction(t)

		fields := Direct(txn, Input{
			Values: map[string]string{
				"CardHolderName": "J Smith",
				"Bogus":          "value",
				"AdminOverride":  "true",
			},
		})

		assert.Equal(t, "J Smith", fields["CardHolderName"])
		assert.NotContains(t, fields, "Bogus")
		assert.NotContains(t, fields, "AdminOverride")
	})

	t.Run("forced fields overwrite caller input", func(t *testing.T) {
		txn := testTransaction(t)
		txn.TxnType = models.TxnTypeAuth

		fields := Direct(txn, Input{
			Values: map[string]string{
				"TxnData1":      "spoofed-id",
				"TxnType":       "Refund",
				"Amount":        "0.01",
				"InputCurrency": "USD",
			},
		})

		assert.Equal(t, txn.ID.String(), fields["TxnData1"])
		assert.Equal(t, "Auth", fields["TxnType"])
		assert.Equal(t, "120.00", fields["Amount"])
		assert.Equal(t, "NZD", fields["InputCurrency"])
	})

	t.Run("every emitted key is allow-listed or forced", func(t *testing.T) {
		txn := testTransaction(t)

		fields := Direct(txn, Input{
			Values: map[string]string{
				"CardHolderName":    "J Smith",
				"DateExpiry":        "0528",
				"Cvc2":              "123",
				"MerchantReference": "Order 42",
			},
			CardNumber: []string{"4111", "1111", "1111", "1111"},
		})

		for key := range fields {
			assert.True(t, directAllowed[key], "unexpected key %q", key)
		}
	})
}

func TestCompletion(t *testing.T) {
	txn := testTransaction(t)
	txn.TxnType = models.TxnTypeComplete

	auth := testTransaction(t)
	auth.TxnRef = "0000000103f5dc7e"

	fields := Completion(txn, auth)

	assert.Equal(t, map[string]string(Fields{
		"TxnData1":      txn.ID.String(),
		"TxnType":       "Complete",
		"Amount":        "120.00",
		"InputCurrency": "NZD",
		"DpsTxnRef":     "0000000103f5dc7e",
	}), map[string]string(fields))
}

func TestRefund(t *testing.T) {
	txn := testTransaction(t)
	txn.TxnType = models.TxnTypeRefund
	txn.MerchantReference = "Refund for: Order 42"

	original := testTransaction(t)
	original.TxnRef = "0000000103f5dc7e"

	fields := Refund(txn, original)

	assert.Equal(t, "0000000103f5dc7e", fields["DpsTxnRef"])
	assert.Equal(t, "Refund for: Order 42", fields["MerchantReference"])
	assert.Equal(t, "Refund", fields["TxnType"])
	assert.Equal(t, txn.ID.String(), fields["TxnData1"])
}

func TestRecurring(t *testing.T) {
	txn := testTransaction(t)

	amount, err := models.NewMoney("$25.00", "NZD")
	require.NoError(t, err)

	profile := &models.RecurringProfile{
		ID:                uuid.New(),
		DPSBillingID:      "b-1234",
		Amount:            amount,
		MerchantReference: "Monthly plan",
	}

	fields := Recurring(txn, profile)

	assert.Equal(t, "b-1234", fields["DpsBillingId"])
	assert.Equal(t, "Purchase", fields["TxnType"])
	assert.Equal(t, "25.00", fields["Amount"])
	assert.Equal(t, "NZD", fields["InputCurrency"])
	assert.Equal(t, "Monthly plan", fields["MerchantReference"])
	assert.NotContains(t, fields, "CardNumber")
}

func TestHosted(t *testing.T) {
	const callback = "https://shop.example.com/payments/dps/response"

	t.Run("sets both redirect targets to the callback URL", func(t *testing.T) {
		txn := testTransaction(t)

		fields := Hosted(txn, Input{}, callback)

		assert.Equal(t, callback, fields["UrlSuccess"])
		assert.Equal(t, callback, fields["UrlFail"])
	})

	t.Run("excludes card data even when supplied", func(t *testing.T) {
		txn := testTransaction(t)

		fields := Hosted(txn, Input{
			Values: map[string]string{
				"CardNumber":   "4111111111111111",
				"Cvc2":         "123",
				"EmailAddress": "payer@example.com",
			},
			CardNumber: []string{"4111", "1111", "1111", "1111"},
		}, callback)

		assert.NotContains(t, fields, "CardNumber")
		assert.NotContains(t, fields, "Cvc2")
		assert.Equal(t, "payer@example.com", fields["EmailAddress"])
	})

	t.Run("amount goes out as AmountInput", func(t *testing.T) {
		txn := testTransaction(t)

		fields := Hosted(txn, Input{}, callback)

		assert.Equal(t, "120.00", fields["AmountInput"])
		assert.Equal(t, "NZD", fields["InputCurrency"])
	})

	t.Run("timeout forwarded as gateway option", func(t *testing.T) {
		txn := testTransaction(t)
		timeout := time.Date(2026, 9, 1, 14, 30, 0, 0, time.UTC)
		txn.TimeOutDate = &timeout

		fields := Hosted(txn, Input{}, callback)

		assert.Equal(t, "TO=2609011430", fields["Opt"])
	})

	t.Run("no timeout means no option", func(t *testing.T) {
		txn := testTransaction(t)

		fields := Hosted(txn, Input{}, callback)

		assert.NotContains(t, fields, "Opt")
	})

	t.Run("merchant reference comes from the transaction", func(t *testing.T) {
		txn := testTransaction(t)
		txn.MerchantReference = "Order 42"

		fields := Hosted(txn, Input{
			Values: map[string]string{"MerchantReference": "spoofed"},
		}, callback)

		assert.Equal(t, "Order 42", fields["MerchantReference"])
	})
}
