package repository

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtaylor482/dps-payments/config"
	"github.com/mtaylor482/dps-payments/db"
	"github.com/mtaylor482/dps-payments/models"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testDatabaseConfig parses the key=value connection string in DPS_TEST_DB
// (host=... port=... user=... password=... dbname=...) into a
// DatabaseConfig.
func testDatabaseConfig(t *testing.T, dsn string) *config.DatabaseConfig {
	t.Helper()

	cfg := &config.DatabaseConfig{
		SSLMode:         "disable",
		MaxOpenConns:    5,
		MaxIdleConns:    2,
		ConnMaxLifetime: time.Minute,
	}

	for _, pair := range strings.Fields(dsn) {
		key, value, ok := strings.Cut(pair, "=")
		require.True(t, ok, "malformed DPS_TEST_DB entry %q", pair)
		switch key {
		case "host":
			cfg.Host = value
		case "port":
			cfg.Port = value
		case "user":
			cfg.User = value
		case "password":
			cfg.Password = value
		case "dbname":
			cfg.DBName = value
		case "sslmode":
			cfg.SSLMode = value
		default:
			t.Fatalf("unsupported DPS_TEST_DB key %q", key)
		}
	}

	return cfg
}

// testDB connects to the database described by DPS_TEST_DB, applies the
// schema and empties the tables. Tests are skipped when the variable is
// unset so the suite runs without a database by default.
func testDB(t *testing.T) *db.DB {
	t.Helper()

	dsn := os.Getenv("DPS_TEST_DB")
	if dsn == "" {
		t.Skip("DPS_TEST_DB not set, skipping database tests")
	}

	database, err := db.Connect(context.Background(), testDatabaseConfig(t, dsn), discardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	schema, err := os.ReadFile(filepath.Join("..", "db", "migrations", "000001_init.up.sql"))
	require.NoError(t, err)
	_, err = database.Exec(string(schema))
	require.NoError(t, err)

	_, err = database.Exec(`TRUNCATE payments, recurring_profiles, payers`)
	require.NoError(t, err)

	return database
}

func testAmount(t *testing.T) models.Money {
	t.Helper()
	m, err := models.NewMoney("120.00", "NZD")
	require.NoError(t, err)
	return m
}

func TestTransactionRepository_Postgres(t *testing.T) {
	database := testDB(t)
	repo := NewTransactionRepository(database)
	ctx := context.Background()

	t.Run("create and find roundtrip", func(t *testing.T) {
		timeout := time.Now().Add(30 * time.Minute).Truncate(time.Second).UTC()
		payerID := uuid.New()

		txn := models.NewTransaction(testAmount(t))
		txn.TxnRef = "roundtrip-ref-1"
		txn.AuthCode = "012345"
		txn.MerchantReference = "Order 42"
		txn.SetResponseXML(`<Txn><Transaction success="1"/></Txn>`)
		txn.CardNumberTruncated = "411111........11"
		txn.CardHolderName = "J SMITH"
		txn.DateExpiry = "0528"
		txn.TimeOutDate = &timeout
		txn.PaidByID = &payerID

		require.NoError(t, repo.Create(ctx, txn))
		assert.NotEqual(t, uuid.Nil, txn.ID, "create assigns an identity")

		found, err := repo.FindByID(ctx, txn.ID)
		require.NoError(t, err)

		assert.Equal(t, txn.ID, found.ID)
		assert.Equal(t, models.TxnTypePurchase, found.TxnType)
		assert.Equal(t, models.StatusIncomplete, found.Status)
		assert.True(t, txn.Amount.Value.Equal(found.Amount.Value))
		assert.Equal(t, "NZD", found.Amount.Currency)
		assert.Equal(t, "roundtrip-ref-1", found.TxnRef)
		assert.Equal(t, "012345", found.AuthCode)
		assert.Equal(t, "Order 42", found.MerchantReference)
		assert.Equal(t, `<Txn><Transaction success="1"/></Txn>`, found.ResponseXML)
		assert.Equal(t, "411111........11", found.CardNumberTruncated)
		assert.Equal(t, "J SMITH", found.CardHolderName)
		assert.Equal(t, "0528", found.DateExpiry)
		require.NotNil(t, found.TimeOutDate)
		assert.True(t, timeout.Equal(*found.TimeOutDate))
		require.NotNil(t, found.PaidByID)
		assert.Equal(t, payerID, *found.PaidByID)
		assert.Nil(t, found.AuthPaymentID)
	})

	t.Run("save updates the record", func(t *testing.T) {
		txn := models.NewTransaction(testAmount(t))
		require.NoError(t, repo.Create(ctx, txn))

		txn.Status = models.StatusSuccess
		txn.TxnRef = "save-updates-ref"
		require.NoError(t, repo.Save(ctx, txn))

		found, err := repo.FindByID(ctx, txn.ID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusSuccess, found.Status)
		assert.Equal(t, "save-updates-ref", found.TxnRef)
	})

	t.Run("save of an unknown record", func(t *testing.T) {
		txn := models.NewTransaction(testAmount(t))
		txn.ID = uuid.New()

		err := repo.Save(ctx, txn)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("find of an unknown id", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("duplicate gateway reference is rejected", func(t *testing.T) {
		first := models.NewTransaction(testAmount(t))
		first.TxnRef = "duplicate-ref"
		require.NoError(t, repo.Create(ctx, first))

		second := models.NewTransaction(testAmount(t))
		second.TxnRef = "duplicate-ref"
		err := repo.Create(ctx, second)
		assert.ErrorIs(t, err, models.ErrDuplicateTransaction)
	})

	t.Run("empty gateway references do not collide", func(t *testing.T) {
		first := models.NewTransaction(testAmount(t))
		second := models.NewTransaction(testAmount(t))
		require.NoError(t, repo.Create(ctx, first))
		require.NoError(t, repo.Create(ctx, second))
	})

	t.Run("find successful complete", func(t *testing.T) {
		auth := models.NewTransaction(testAmount(t))
		auth.TxnType = models.TxnTypeAuth
		auth.Status = models.StatusSuccess
		require.NoError(t, repo.Create(ctx, auth))

		_, err := repo.FindSuccessfulComplete(ctx, auth.ID)
		assert.ErrorIs(t, err, models.ErrNotFound)

		failed := models.NewTransaction(testAmount(t))
		failed.TxnType = models.TxnTypeComplete
		failed.Status = models.StatusFailure
		failed.AuthPaymentID = &auth.ID
		require.NoError(t, repo.Create(ctx, failed))

		_, err = repo.FindSuccessfulComplete(ctx, auth.ID)
		assert.ErrorIs(t, err, models.ErrNotFound, "a failed complete does not count")

		complete := models.NewTransaction(testAmount(t))
		complete.TxnType = models.TxnTypeComplete
		complete.Status = models.StatusSuccess
		complete.AuthPaymentID = &auth.ID
		require.NoError(t, repo.Create(ctx, complete))

		found, err := repo.FindSuccessfulComplete(ctx, auth.ID)
		require.NoError(t, err)
		assert.Equal(t, complete.ID, found.ID)
	})
}

func TestPostgresStore_UnitOfWork(t *testing.T) {
	database := testDB(t)
	store := NewPostgresStore(database)
	ctx := context.Background()

	t.Run("commit makes writes visible", func(t *testing.T) {
		uow, err := store.Begin(ctx)
		require.NoError(t, err)

		txn := models.NewTransaction(testAmount(t))
		require.NoError(t, uow.Transactions().Create(ctx, txn))
		require.NoError(t, uow.Commit())

		_, err = store.Transactions().FindByID(ctx, txn.ID)
		assert.NoError(t, err)
	})

	t.Run("rollback discards writes", func(t *testing.T) {
		uow, err := store.Begin(ctx)
		require.NoError(t, err)

		txn := models.NewTransaction(testAmount(t))
		require.NoError(t, uow.Transactions().Create(ctx, txn))
		require.NoError(t, uow.Rollback())

		_, err = store.Transactions().FindByID(ctx, txn.ID)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("rollback after commit is a no-op", func(t *testing.T) {
		uow, err := store.Begin(ctx)
		require.NoError(t, err)
		require.NoError(t, uow.Commit())
		assert.NoError(t, uow.Rollback())
	})
}

func TestRecurringProfileRepository_Postgres(t *testing.T) {
	database := testDB(t)
	repo := NewRecurringProfileRepository(database)
	ctx := context.Background()

	profile := models.RecurringProfile{
		ID:                uuid.New(),
		DPSBillingID:      "billing-token-7",
		Amount:            testAmount(t),
		MerchantReference: "Monthly plan",
	}
	_, err := database.Exec(`
		INSERT INTO recurring_profiles (id, dps_billing_id, amount, currency, merchant_reference)
		VALUES ($1, $2, $3, $4, $5)`,
		profile.ID, profile.DPSBillingID, profile.Amount.Value, profile.Amount.Currency, profile.MerchantReference,
	)
	require.NoError(t, err)

	found, err := repo.FindByID(ctx, profile.ID)
	require.NoError(t, err)
	assert.Equal(t, "billing-token-7", found.DPSBillingID)
	assert.Equal(t, "Monthly plan", found.MerchantReference)
	assert.True(t, profile.Amount.Value.Equal(found.Amount.Value))

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestPayerRepository_Postgres(t *testing.T) {
	database := testDB(t)
	repo := NewPayerRepository(database)
	ctx := context.Background()

	payer := models.Payer{
		ID:             uuid.New(),
		Name:           "Jan Smith",
		Email:          "jan@example.com",
		ReceiptMessage: "Thanks for shopping with us.",
	}
	_, err := database.Exec(`
		INSERT INTO payers (id, name, email, receipt_message)
		VALUES ($1, $2, $3, $4)`,
		payer.ID, payer.Name, payer.Email, payer.ReceiptMessage,
	)
	require.NoError(t, err)

	found, err := repo.FindByID(ctx, payer.ID)
	require.NoError(t, err)
	assert.Equal(t, "jan@example.com", found.Email)
	assert.Equal(t, "Thanks for shopping with us.", found.ReceiptMessage)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, models.ErrNotFound)
}
