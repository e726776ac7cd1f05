package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/mtaylor482/dps-payments/models"
)

// TransactionRepository defines the interface for payment transaction data
// access
type TransactionRepository interface {
	Create(ctx context.Context, txn *models.Transaction) error
	Save(ctx context.Context, txn *models.Transaction) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error)

	// FindSuccessfulComplete returns the successful Complete transaction
	// referencing the given Auth transaction, or models.ErrNotFound.
	FindSuccessfulComplete(ctx context.Context, authID uuid.UUID) (*models.Transaction, error)
}

// transactionRepository implements TransactionRepository
type transactionRepository struct {
	q querier
}

// NewTransactionRepository creates a TransactionRepository over a database
// pool or an open transaction.
func NewTransactionRepository(q querier) TransactionRepository {
	return &transactionRepository{q: q}
}

const transactionColumns = `
	id, txn_type, status, amount, currency, txn_ref, auth_code,
	merchant_reference, hosted_redirect_url, settlement_date, response_xml,
	card_number_truncated, card_holder_name, date_expiry, timeout_date,
	auth_payment_id, refunded_for_id, recurring_profile_id, paid_by_id,
	created_at, updated_at`

// Create inserts a new transaction record, assigning its identity
func (r *transactionRepository) Create(ctx context.Context, txn *models.Transaction) error {
	if txn.ID == uuid.Nil {
		txn.ID = uuid.New()
	}
	now := time.Now()
	txn.CreatedAt = now
	txn.UpdatedAt = now

	query := `
		INSERT INTO payments (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		        $15, $16, $17, $18, $19, $20, $21)
	`

	_, err := r.q.ExecContext(ctx, query,
		txn.ID,
		string(txn.TxnType),
		string(txn.Status),
		txn.Amount.Value,
		txn.Amount.Currency,
		txn.TxnRef,
		txn.AuthCode,
		txn.MerchantReference,
		txn.HostedRedirectURL,
		txn.SettlementDate,
		txn.ResponseXML,
		txn.CardNumberTruncated,
		txn.CardHolderName,
		txn.DateExpiry,
		nullTime(txn.TimeOutDate),
		nullUUID(txn.AuthPaymentID),
		nullUUID(txn.RefundedForID),
		nullUUID(txn.RecurringProfileID),
		nullUUID(txn.PaidByID),
		txn.CreatedAt,
		txn.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return models.ErrDuplicateTransaction
		}
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	return nil
}

// Save updates an existing transaction record
func (r *transactionRepository) Save(ctx context.Context, txn *models.Transaction) error {
	txn.UpdatedAt = time.Now()

	query := `
		UPDATE payments
		SET txn_type = $2, status = $3, amount = $4, currency = $5,
		    txn_ref = $6, auth_code = $7, merchant_reference = $8,
		    hosted_redirect_url = $9, settlement_date = $10,
		    response_xml = $11, card_number_truncated = $12,
		    card_holder_name = $13, date_expiry = $14, timeout_date = $15,
		    auth_payment_id = $16, refunded_for_id = $17,
		    recurring_profile_id = $18, paid_by_id = $19, updated_at = $20
		WHERE id = $1
	`

	result, err := r.q.ExecContext(ctx, query,
		txn.ID,
		string(txn.TxnType),
		string(txn.Status),
		txn.Amount.Value,
		txn.Amount.Currency,
		txn.TxnRef,
		txn.AuthCode,
		txn.MerchantReference,
		txn.HostedRedirectURL,
		txn.SettlementDate,
		txn.ResponseXML,
		txn.CardNumberTruncated,
		txn.CardHolderName,
		txn.DateExpiry,
		nullTime(txn.TimeOutDate),
		nullUUID(txn.AuthPaymentID),
		nullUUID(txn.RefundedForID),
		nullUUID(txn.RecurringProfileID),
		nullUUID(txn.PaidByID),
		txn.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return models.ErrDuplicateTransaction
		}
		return fmt.Errorf("failed to save transaction: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return models.ErrNotFound
	}

	return nil
}

// FindByID retrieves a transaction by its UUID
func (r *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM payments WHERE id = $1`
	return r.scanOne(r.q.QueryRowContext(ctx, query, id))
}

// FindSuccessfulComplete retrieves the successful Complete transaction that
// references the given Auth transaction, if any
func (r *transactionRepository) FindSuccessfulComplete(ctx context.Context, authID uuid.UUID) (*models.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM payments
		WHERE status = $1 AND txn_type = $2 AND auth_payment_id = $3
		ORDER BY created_at DESC
		LIMIT 1
	`
	return r.scanOne(r.q.QueryRowContext(ctx, query,
		string(models.StatusSuccess), string(models.TxnTypeComplete), authID))
}

func (r *transactionRepository) scanOne(row *sql.Row) (*models.Transaction, error) {
	var (
		txn       models.Transaction
		txnType   string
		status    string
		timeout   sql.NullTime
		authID    uuid.NullUUID
		refundID  uuid.NullUUID
		profileID uuid.NullUUID
		payerID   uuid.NullUUID
	)

	err := row.Scan(
		&txn.ID,
		&txnType,
		&status,
		&txn.Amount.Value,
		&txn.Amount.Currency,
		&txn.TxnRef,
		&txn.AuthCode,
		&txn.MerchantReference,
		&txn.HostedRedirectURL,
		&txn.SettlementDate,
		&txn.ResponseXML,
		&txn.CardNumberTruncated,
		&txn.CardHolderName,
		&txn.DateExpiry,
		&timeout,
		&authID,
		&refundID,
		&profileID,
		&payerID,
		&txn.CreatedAt,
		&txn.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan transaction: %w", err)
	}

	txn.TxnType = models.TxnType(txnType)
	txn.Status = models.Status(status)
	if timeout.Valid {
		txn.TimeOutDate = &timeout.Time
	}
	txn.AuthPaymentID = fromNullUUID(authID)
	txn.RefundedForID = fromNullUUID(refundID)
	txn.RecurringProfileID = fromNullUUID(profileID)
	txn.PaidByID = fromNullUUID(payerID)

	return &txn, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func nullUUID(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *id, Valid: true}
}

func fromNullUUID(id uuid.NullUUID) *uuid.UUID {
	if !id.Valid {
		return nil
	}
	u := id.UUID
	return &u
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation"
}
