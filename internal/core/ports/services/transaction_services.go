package services

import (
	"context"

	"github.com/awesomegic/bank_account_system/internal/core/domain"
	"github.com/awesomegic/bank_account_system/internal/dto"
)

// TransactionSvc defines the business operations on the transaction ledger.
type TransactionSvc interface {
	// RecordTransaction validates the request, appends it to the ledger and
	// applies the signed amount to the account balance. Rejected requests
	// leave every store untouched.
	RecordTransaction(ctx context.Context, req dto.RecordTransactionRequest) (*domain.Transaction, error)

	// ListTransactionsForAccount returns one account's transactions in the
	// order they were recorded.
	ListTransactionsForAccount(ctx context.Context, accountID string) ([]domain.Transaction, error)
}
