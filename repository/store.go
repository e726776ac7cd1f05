// Package repository provides the record-store contracts the payment
// lifecycle depends on, plus their PostgreSQL implementations.
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mtaylor482/dps-payments/db"
)

// querier is the subset of database/sql shared by *sql.DB and *sql.Tx, so
// repositories work identically inside and outside a unit of work.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store is the record store the lifecycle manager drives.
type Store interface {
	Transactions() TransactionRepository
	RecurringProfiles() RecurringProfileRepository
	Payers() PayerRepository

	// Transactional reports whether Begin is supported.
	Transactional() bool

	// Begin opens a unit of work. Every persist between Begin and Commit is
	// all-or-nothing.
	Begin(ctx context.Context) (UnitOfWork, error)
}

// UnitOfWork is an open store transaction. Rollback after Commit is a no-op,
// so callers may defer it.
type UnitOfWork interface {
	Transactions() TransactionRepository
	Commit() error
	Rollback() error
}

// postgresStore implements Store over a PostgreSQL pool
type postgresStore struct {
	db *db.DB
}

// NewPostgresStore creates a Store backed by PostgreSQL
func NewPostgresStore(database *db.DB) Store {
	return &postgresStore{db: database}
}

func (s *postgresStore) Transactions() TransactionRepository {
	return NewTransactionRepository(s.db)
}

func (s *postgresStore) RecurringProfiles() RecurringProfileRepository {
	return NewRecurringProfileRepository(s.db)
}

func (s *postgresStore) Payers() PayerRepository {
	return NewPayerRepository(s.db)
}

func (s *postgresStore) Transactional() bool {
	return true
}

func (s *postgresStore) Begin(ctx context.Context) (UnitOfWork, error) {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	return &postgresUnitOfWork{tx: tx}, nil
}

// postgresUnitOfWork implements UnitOfWork over *sql.Tx
type postgresUnitOfWork struct {
	tx *sql.Tx
}

func (u *postgresUnitOfWork) Transactions() TransactionRepository {
	return NewTransactionRepository(u.tx)
}

func (u *postgresUnitOfWork) Commit() error {
	if err := u.tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (u *postgresUnitOfWork) Rollback() error {
	err := u.tx.Rollback()
	if err == sql.ErrTxDone {
		return nil
	}
	return err
}
