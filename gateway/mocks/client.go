// Package mocks provides testify mocks for the gateway interfaces,
// maintained by hand in mockery output style.
package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"

	gateway "github.com/mtaylor482/dps-payments/gateway"
	request "github.com/mtaylor482/dps-payments/request"
)

// MockClient is a mock for the Client interface
type MockClient struct {
	mock.Mock
}

func (m *MockClient) DoPayment(ctx context.Context, fields request.Fields) (*gateway.ResultFields, error) {
	ret := m.Called(ctx, fields)

	var r0 *gateway.ResultFields
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*gateway.ResultFields)
	}
	return r0, ret.Error(1)
}

func (m *MockClient) DoHostedPayment(ctx context.Context, fields request.Fields) (*gateway.HostedRedirect, error) {
	ret := m.Called(ctx, fields)

	var r0 *gateway.HostedRedirect
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*gateway.HostedRedirect)
	}
	return r0, ret.Error(1)
}

// NewMockClient creates a new mock instance, registering expectation
// assertion as test cleanup
func NewMockClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockClient {
	m := &MockClient{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
