package mocks

import (
	context "context"

	uuid "github.com/google/uuid"
	mock "github.com/stretchr/testify/mock"

	models "github.com/mtaylor482/dps-payments/models"
	repository "github.com/mtaylor482/dps-payments/repository"
)

// MockStore is a mock for the Store interface
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Transactions() repository.TransactionRepository {
	ret := m.Called()
	return ret.Get(0).(repository.TransactionRepository)
}

func (m *MockStore) RecurringProfiles() repository.RecurringProfileRepository {
	ret := m.Called()
	return ret.Get(0).(repository.RecurringProfileRepository)
}

func (m *MockStore) Payers() repository.PayerRepository {
	ret := m.Called()
	return ret.Get(0).(repository.PayerRepository)
}

func (m *MockStore) Transactional() bool {
	ret := m.Called()
	return ret.Bool(0)
}

func (m *MockStore) Begin(ctx context.Context) (repository.UnitOfWork, error) {
	ret := m.Called(ctx)

	var r0 repository.UnitOfWork
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(repository.UnitOfWork)
	}
	return r0, ret.Error(1)
}

// NewMockStore creates a new mock instance, registering expectation
// assertion as test cleanup
func NewMockStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockStore {
	m := &MockStore{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockUnitOfWork is a mock for the UnitOfWork interface
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Transactions() repository.TransactionRepository {
	ret := m.Called()
	return ret.Get(0).(repository.TransactionRepository)
}

func (m *MockUnitOfWork) Commit() error {
	ret := m.Called()
	return ret.Error(0)
}

func (m *MockUnitOfWork) Rollback() error {
	ret := m.Called()
	return ret.Error(0)
}

// NewMockUnitOfWork creates a new mock instance, registering expectation
// assertion as test cleanup
func NewMockUnitOfWork(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUnitOfWork {
	m := &MockUnitOfWork{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockRecurringProfileRepository is a mock for the
// RecurringProfileRepository interface
type MockRecurringProfileRepository struct {
	mock.Mock
}

func (m *MockRecurringProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.RecurringProfile, error) {
	ret := m.Called(ctx, id)

	var r0 *models.RecurringProfile
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.RecurringProfile)
	}
	return r0, ret.Error(1)
}

// NewMockRecurringProfileRepository creates a new mock instance, registering
// expectation assertion as test cleanup
func NewMockRecurringProfileRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRecurringProfileRepository {
	m := &MockRecurringProfileRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockPayerRepository is a mock for the PayerRepository interface
type MockPayerRepository struct {
	mock.Mock
}

func (m *MockPayerRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Payer, error) {
	ret := m.Called(ctx, id)

	var r0 *models.Payer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Payer)
	}
	return r0, ret.Error(1)
}

// NewMockPayerRepository creates a new mock instance, registering
// expectation assertion as test cleanup
func NewMockPayerRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPayerRepository {
	m := &MockPayerRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
