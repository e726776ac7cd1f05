// Package mocks provides testify mocks for the repository interfaces,
// maintained by hand in mockery output style.
package mocks

import (
	context "context"

	uuid "github.com/google/uuid"
	mock "github.com/stretchr/testify/mock"

	models "github.com/mtaylor482/dps-payments/models"
)

// MockTransactionRepository is a mock for the TransactionRepository interface
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) Create(ctx context.Context, txn *models.Transaction) error {
	ret := m.Called(ctx, txn)
	return ret.Error(0)
}

func (m *MockTransactionRepository) Save(ctx context.Context, txn *models.Transaction) error {
	ret := m.Called(ctx, txn)
	return ret.Error(0)
}

func (m *MockTransactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	ret := m.Called(ctx, id)

	var r0 *models.Transaction
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Transaction)
	}
	return r0, ret.Error(1)
}

func (m *MockTransactionRepository) FindSuccessfulComplete(ctx context.Context, authID uuid.UUID) (*models.Transaction, error) {
	ret := m.Called(ctx, authID)

	var r0 *models.Transaction
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Transaction)
	}
	return r0, ret.Error(1)
}

// NewMockTransactionRepository creates a new mock instance, registering
// expectation assertion as test cleanup
func NewMockTransactionRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTransactionRepository {
	m := &MockTransactionRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
