// Package service implements the transaction lifecycle: each public
// operation drives a transaction through exactly one state transition,
// wrapping the persist and gateway call in an all-or-nothing unit of work.
package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mtaylor482/dps-payments/config"
	"github.com/mtaylor482/dps-payments/gateway"
	"github.com/mtaylor482/dps-payments/models"
	"github.com/mtaylor482/dps-payments/repository"
	"github.com/mtaylor482/dps-payments/request"
)

// PaymentService drives payment transactions through the gateway.
//
// Errors inside the wrapped persist+gateway sequence are not returned:
// the unit of work is rolled back, the error goes to the error hook, and
// the caller observes the failure through the transaction's Status and
// fields (Refund additionally returns false). Operations return an error
// only for precondition failures, which are checked before any mutation.
type PaymentService struct {
	store             repository.Store
	gateway           gateway.Client
	receipts          ReceiptNotifier
	hostedCallbackURL string
	useTransactions   bool
	errorHook         func(error)
	logger            *slog.Logger
}

// NewPaymentService creates a PaymentService. receipts may be nil to
// disable receipt dispatch entirely.
func NewPaymentService(
	store repository.Store,
	client gateway.Client,
	receipts ReceiptNotifier,
	cfg *config.Config,
	logger *slog.Logger,
) *PaymentService {
	return &PaymentService{
		store:             store,
		gateway:           client,
		receipts:          receipts,
		hostedCallbackURL: cfg.HostedCallbackURL(),
		useTransactions:   cfg.App.UseTransactionalWrites && store.Transactional(),
		logger:            logger,
	}
}

// SetErrorHook routes handled errors to the given hook in addition to the
// log. Handled errors are never returned to callers.
func (s *PaymentService) SetErrorHook(hook func(error)) {
	s.errorHook = hook
}

// Authorize reserves funds without capturing them. A later Complete against
// this transaction captures.
func (s *PaymentService) Authorize(ctx context.Context, txn *models.Transaction, in request.Input) error {
	s.directCall(ctx, "authorize", txn, in, models.TxnTypeAuth)
	return nil
}

// Purchase authorizes and captures in a single step.
func (s *PaymentService) Purchase(ctx context.Context, txn *models.Transaction, in request.Input) error {
	s.directCall(ctx, "purchase", txn, in, models.TxnTypePurchase)
	return nil
}

// directCall runs the shared server-to-server sequence: set type, persist,
// build the direct field set, call the gateway, apply the result, persist.
func (s *PaymentService) directCall(
	ctx context.Context,
	op string,
	txn *models.Transaction,
	in request.Input,
	txnType models.TxnType,
) bool {
	prevStatus := txn.Status

	ok := s.execute(ctx, op, func(txns repository.TransactionRepository) error {
		txn.TxnType = txnType
		if err := persist(ctx, txns, txn); err != nil {
			return err
		}

		result, err := s.gateway.DoPayment(ctx, request.Direct(txn, in))
		if err != nil {
			return &ServiceError{
				Code:    ErrCodeGatewayFailure,
				Message: "gateway call failed",
				Err:     err,
			}
		}

		result.Apply(txn)
		return persist(ctx, txns, txn)
	})

	if ok {
		s.notifyOnSuccess(ctx, prevStatus, txn)
	}
	return ok
}

// execute runs fn against the store, inside a unit of work when enabled.
// Any error from fn rolls back, goes to the error hook, and yields false.
func (s *PaymentService) execute(
	ctx context.Context,
	op string,
	fn func(txns repository.TransactionRepository) error,
) bool {
	if !s.useTransactions {
		if err := fn(s.store.Transactions()); err != nil {
			s.handleError(op, err)
			return false
		}
		return true
	}

	uow, err := s.store.Begin(ctx)
	if err != nil {
		s.handleError(op, &ServiceError{
			Code:    ErrCodePersistence,
			Message: "failed to start unit of work",
			Err:     err,
		})
		return false
	}

	if err := fn(uow.Transactions()); err != nil {
		if rbErr := uow.Rollback(); rbErr != nil {
			s.logger.Error("rollback failed", "op", op, "error", rbErr)
		}
		s.handleError(op, err)
		return false
	}

	if err := uow.Commit(); err != nil {
		s.handleError(op, &ServiceError{
			Code:    ErrCodePersistence,
			Message: "failed to commit unit of work",
			Err:     err,
		})
		return false
	}

	return true
}

// persist writes the transaction, creating it on first write
func persist(ctx context.Context, txns repository.TransactionRepository, txn *models.Transaction) error {
	var err error
	if txn.ID == uuid.Nil {
		err = txns.Create(ctx, txn)
	} else {
		err = txns.Save(ctx, txn)
	}
	if err != nil {
		return &ServiceError{
			Code:    ErrCodePersistence,
			Message: "failed to persist transaction",
			Err:     err,
		}
	}
	return nil
}

// notifyOnSuccess dispatches a receipt only on the edge into Success. A
// transaction already in Success, or any non-Success outcome, dispatches
// nothing. Dispatch failures never fail the payment.
func (s *PaymentService) notifyOnSuccess(ctx context.Context, prev models.Status, txn *models.Transaction) {
	if s.receipts == nil {
		return
	}
	if prev == models.StatusSuccess || txn.Status != models.StatusSuccess {
		return
	}
	if err := s.receipts.Notify(ctx, txn); err != nil {
		s.logger.Error("receipt dispatch failed",
			"transaction_id", txn.ID,
			"error", err,
		)
	}
}

// resolvePrior loads the transaction a Complete or Refund references.
func (s *PaymentService) resolvePrior(ctx context.Context, id *uuid.UUID) (*models.Transaction, error) {
	if id == nil {
		return nil, models.ErrNotFound
	}
	return s.store.Transactions().FindByID(ctx, *id)
}

func (s *PaymentService) handleError(op string, err error) {
	s.logger.Error("payment operation failed", "op", op, "error", err)
	if s.errorHook != nil {
		s.errorHook(err)
	}
}

// CanComplete reports whether a Complete may be issued against this
// transaction: it must be a successful Auth with no successful Complete
// already referencing it.
func (s *PaymentService) CanComplete(ctx context.Context, txn *models.Transaction) (bool, error) {
	if txn.TxnType != models.TxnTypeAuth || txn.Status != models.StatusSuccess {
		return false, nil
	}

	_, err := s.store.Transactions().FindSuccessfulComplete(ctx, txn.ID)
	if err == nil {
		return false, nil
	}
	if errors.Is(err, models.ErrNotFound) {
		return true, nil
	}
	return false, err
}
