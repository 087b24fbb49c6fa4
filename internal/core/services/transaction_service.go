package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/awesomegic/bank_account_system/internal/apperrors"
	"github.com/awesomegic/bank_account_system/internal/core/domain"
	portsrepo "github.com/awesomegic/bank_account_system/internal/core/ports/repositories"
	portssvc "github.com/awesomegic/bank_account_system/internal/core/ports/services"
	"github.com/awesomegic/bank_account_system/internal/dto"
	"github.com/shopspring/decimal"
)

// TopicTransactionRecorded keys TransactionRecorded events on the event stream.
const TopicTransactionRecorded = "transaction.recorded"

// transactionService implements the TransactionSvc interface.
type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepository
	accountRepo     portsrepo.AccountRepository
	validator       portssvc.TransactionValidator
	publisher       portssvc.EventPublisher
}

// NewTransactionService creates a new transaction service with the given
// validation policy and event publisher.
func NewTransactionService(
	transactionRepo portsrepo.TransactionRepository,
	accountRepo portsrepo.AccountRepository,
	validator portssvc.TransactionValidator,
	publisher portssvc.EventPublisher,
) portssvc.TransactionSvc {
	return &transactionService{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		validator:       validator,
		publisher:       publisher,
	}
}

var _ portssvc.TransactionSvc = (*transactionService)(nil)

func (s *transactionService) RecordTransaction(ctx context.Context, req dto.RecordTransactionRequest) (*domain.Transaction, error) {
	// Reject before any mutation; a failed validation must leave both the
	// ledger and the account untouched.
	if err := s.validator.ValidateTransaction(req); err != nil {
		return nil, err
	}

	txnID, err := s.nextTransactionID(ctx, req.Date, req.AccountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to derive transaction id", slog.String("account_id", req.AccountID))
		return nil, err
	}

	txn := domain.Transaction{
		TransactionID: txnID,
		AccountID:     req.AccountID,
		Date:          req.Date,
		Kind:          domain.TransactionKind(req.Kind),
		Amount:        req.Amount,
		CreatedAt:     time.Now(),
	}

	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to append transaction", slog.String("transaction_id", txn.TransactionID))
		return nil, err
	}

	newBalance := decimal.Zero
	account, err := s.accountRepo.FindAccountByID(ctx, req.AccountID)
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		// The ledger append is unconditional; the balance update is skipped
		// when no account matches the transaction.
		s.LogWarn(ctx, "Transaction recorded for unregistered account, balance not updated",
			slog.String("transaction_id", txn.TransactionID),
			slog.String("account_id", req.AccountID))
	case err != nil:
		s.LogError(ctx, err, "Failed to load account for balance update", slog.String("account_id", req.AccountID))
		return nil, err
	default:
		account.Balance = account.Balance.Add(txn.SignedAmount())
		if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
			s.LogError(ctx, err, "Failed to update account balance", slog.String("account_id", account.AccountID))
			return nil, err
		}
		newBalance = account.Balance
	}

	event := domain.TransactionRecorded{
		TransactionID: txn.TransactionID,
		AccountID:     txn.AccountID,
		Date:          txn.Date,
		Kind:          txn.Kind,
		Amount:        txn.Amount,
		NewBalance:    newBalance,
	}
	if err := s.publisher.Publish(ctx, TopicTransactionRecorded, event); err != nil {
		s.LogError(ctx, err, "Failed to publish transaction event", slog.String("transaction_id", txn.TransactionID))
	}

	s.LogInfo(ctx, "Transaction recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("account_id", txn.AccountID),
		slog.String("kind", string(txn.Kind)))
	return &txn, nil
}

func (s *transactionService) ListTransactionsForAccount(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	return s.transactionRepo.FindTransactionsByAccount(ctx, accountID)
}

// nextTransactionID derives a deterministic id from a monotonic per-account
// sequence: <date>-<accountID>-<NN>.
func (s *transactionService) nextTransactionID(ctx context.Context, date, accountID string) (string, error) {
	count, err := s.transactionRepo.CountByAccount(ctx, accountID)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%s-%02d", date, accountID, count+1), nil
}
