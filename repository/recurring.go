package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mtaylor482/dps-payments/models"
)

// RecurringProfileRepository defines the interface for stored billing
// profile access
type RecurringProfileRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.RecurringProfile, error)
}

type recurringProfileRepository struct {
	q querier
}

// NewRecurringProfileRepository creates a RecurringProfileRepository
func NewRecurringProfileRepository(q querier) RecurringProfileRepository {
	return &recurringProfileRepository{q: q}
}

// FindByID retrieves a recurring billing profile by its UUID
func (r *recurringProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.RecurringProfile, error) {
	query := `
		SELECT id, dps_billing_id, amount, currency, merchant_reference, created_at
		FROM recurring_profiles
		WHERE id = $1
	`

	var profile models.RecurringProfile
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&profile.ID,
		&profile.DPSBillingID,
		&profile.Amount.Value,
		&profile.Amount.Currency,
		&profile.MerchantReference,
		&profile.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find recurring profile: %w", err)
	}

	return &profile, nil
}
