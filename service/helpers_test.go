package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mtaylor482/dps-payments/config"
	"github.com/mtaylor482/dps-payments/gateway"
	"github.com/mtaylor482/dps-payments/models"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{UseTransactionalWrites: true},
		Hosted: config.HostedConfig{
			CallbackBaseURL: "https://shop.example.com",
		},
	}
}

func testMoney(t *testing.T) models.Money {
	t.Helper()
	m, err := models.NewMoney("120.00", "NZD")
	require.NoError(t, err)
	return m
}

// savedTransaction returns a transaction that has already been through its
// first persist
func savedTransaction(t *testing.T) *models.Transaction {
	t.Helper()
	txn := models.NewTransaction(testMoney(t))
	txn.ID = uuid.New()
	return txn
}

func approvedResult(txnRef string) *gateway.ResultFields {
	return &gateway.ResultFields{
		Authorized:          true,
		TxnRef:              txnRef,
		AuthCode:            "012345",
		CardNumberTruncated: "411111........11",
		CardHolderName:      "J SMITH",
		DateExpiry:          "0528",
		RawXML:              "<Txn><Transaction success=\"1\"/></Txn>",
	}
}

func declinedResult() *gateway.ResultFields {
	return &gateway.ResultFields{
		Authorized: false,
		RawXML:     "<Txn><Transaction success=\"0\"/></Txn>",
	}
}

// mockReceiptNotifier is a testify mock for the ReceiptNotifier interface
type mockReceiptNotifier struct {
	mock.Mock
}

func (m *mockReceiptNotifier) Notify(ctx context.Context, txn *models.Transaction) error {
	ret := m.Called(ctx, txn)
	return ret.Error(0)
}

func newMockReceiptNotifier(t *testing.T) *mockReceiptNotifier {
	m := &mockReceiptNotifier{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
