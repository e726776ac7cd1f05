package service

import (
	"context"

	"github.com/mtaylor482/dps-payments/models"
	"github.com/mtaylor482/dps-payments/notification"
	"github.com/mtaylor482/dps-payments/request"
)

// Lifecycle drives payment transactions through their state transitions
type Lifecycle interface {
	Authorize(ctx context.Context, txn *models.Transaction, in request.Input) error
	Complete(ctx context.Context, txn *models.Transaction) error
	Purchase(ctx context.Context, txn *models.Transaction, in request.Input) error
	Refund(ctx context.Context, txn *models.Transaction) (bool, error)
	HostedPurchase(ctx context.Context, txn *models.Transaction, in request.Input) (string, error)
	RecurringPurchase(ctx context.Context, txn *models.Transaction) error
	ValidateCard(ctx context.Context, txn *models.Transaction, in request.Input) error
	CanComplete(ctx context.Context, txn *models.Transaction) (bool, error)
}

// ReceiptNotifier dispatches a receipt for a transaction
type ReceiptNotifier interface {
	Notify(ctx context.Context, txn *models.Transaction) error
}

// Ensure concrete types implement interfaces
var (
	_ Lifecycle       = (*PaymentService)(nil)
	_ ReceiptNotifier = (*notification.ReceiptSender)(nil)
)
