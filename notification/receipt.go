// Package notification delivers payment receipts. Rendering and transport
// belong to the host application; this package owns only when a receipt is
// due and what goes into it.
package notification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mtaylor482/dps-payments/models"
	"github.com/mtaylor482/dps-payments/repository"
)

// Renderer renders a named template into a receipt body.
type Renderer interface {
	Render(template string, data any) (string, error)
}

// Mailer dispatches a rendered receipt.
type Mailer interface {
	Send(from, to, subject, body string) error
}

// ReceiptData is the context handed to the renderer.
type ReceiptData struct {
	Transaction *models.Transaction
	Payer       *models.Payer
}

// ReceiptSender resolves the paying party and dispatches a receipt. An
// unconfigured from address disables sending without error.
type ReceiptSender struct {
	payers   repository.PayerRepository
	renderer Renderer
	mailer   Mailer
	from     string
	logger   *slog.Logger
}

// NewReceiptSender creates a ReceiptSender
func NewReceiptSender(
	payers repository.PayerRepository,
	renderer Renderer,
	mailer Mailer,
	from string,
	logger *slog.Logger,
) *ReceiptSender {
	return &ReceiptSender{
		payers:   payers,
		renderer: renderer,
		mailer:   mailer,
		from:     from,
		logger:   logger,
	}
}

// Notify sends a receipt for the given transaction. Sending is skipped
// silently when no from address is configured, the transaction has no payer,
// or the payer has no email address.
func (s *ReceiptSender) Notify(ctx context.Context, txn *models.Transaction) error {
	if s.from == "" || txn.PaidByID == nil {
		return nil
	}

	payer, err := s.payers.FindByID(ctx, *txn.PaidByID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to resolve payer: %w", err)
	}
	if payer.Email == "" {
		return nil
	}

	body, err := s.renderer.Render(receiptTemplate(txn.TxnType), ReceiptData{
		Transaction: txn,
		Payer:       payer,
	})
	if err != nil {
		return fmt.Errorf("failed to render receipt: %w", err)
	}
	body += payer.ReceiptMessage

	subject := fmt.Sprintf("Payment receipt (Ref no. #%s)", txn.ID)
	if err := s.mailer.Send(s.from, payer.Email, subject, body); err != nil {
		return fmt.Errorf("failed to send receipt: %w", err)
	}

	s.logger.Info("receipt sent",
		"transaction_id", txn.ID,
		"txn_type", txn.TxnType,
	)

	return nil
}

// receiptTemplate derives the template name from the transaction type,
// e.g. "purchase_receipt".
func receiptTemplate(txnType models.TxnType) string {
	return strings.ToLower(string(txnType)) + "_receipt"
}
