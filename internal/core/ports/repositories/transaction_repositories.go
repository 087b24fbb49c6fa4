package repositories

import (
	"context"

	"github.com/awesomegic/bank_account_system/internal/core/domain"
)

// TransactionRepository defines operations on the append-only transaction ledger.
type TransactionRepository interface {
	// SaveTransaction appends a transaction to the ledger. The ledger performs
	// no validation; callers must validate before appending.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// FindTransactionsByAccount returns the transactions for one account in
	// the order they were appended. The ledger never sorts by date.
	FindTransactionsByAccount(ctx context.Context, accountID string) ([]domain.Transaction, error)

	// CountByAccount returns how many transactions exist for an account.
	// Drives the per-account transaction id sequence.
	CountByAccount(ctx context.Context, accountID string) (int, error)
}
