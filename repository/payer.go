package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mtaylor482/dps-payments/models"
)

// PayerRepository defines the interface for resolving the paying party of a
// transaction
type PayerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Payer, error)
}

type payerRepository struct {
	q querier
}

// NewPayerRepository creates a PayerRepository
func NewPayerRepository(q querier) PayerRepository {
	return &payerRepository{q: q}
}

// FindByID retrieves a payer by its UUID
func (r *payerRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Payer, error) {
	query := `
		SELECT id, name, email, receipt_message
		FROM payers
		WHERE id = $1
	`

	var payer models.Payer
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&payer.ID,
		&payer.Name,
		&payer.Email,
		&payer.ReceiptMessage,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find payer: %w", err)
	}

	return &payer, nil
}
