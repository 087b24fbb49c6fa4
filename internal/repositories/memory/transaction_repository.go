package memory

import (
	"context"
	"sync"

	"github.com/awesomegic/bank_account_system/internal/core/domain"
	portsrepo "github.com/awesomegic/bank_account_system/internal/core/ports/repositories"
)

// TransactionRepository is an in-memory, append-only transaction ledger.
// Entries are kept in the order they were appended; the ledger never sorts
// by date.
type TransactionRepository struct {
	mu   sync.RWMutex
	txns []domain.Transaction
}

// NewTransactionRepository creates an empty in-memory ledger.
func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{
		txns: make([]domain.Transaction, 0),
	}
}

// SaveTransaction appends a transaction unconditionally. Validation is the
// caller's responsibility.
func (r *TransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.txns = append(r.txns, txn)
	return nil
}

// FindTransactionsByAccount returns a copy of one account's transactions in
// append order.
func (r *TransactionRepository) FindTransactionsByAccount(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Transaction, 0)
	for _, txn := range r.txns {
		if txn.AccountID == accountID {
			result = append(result, txn)
		}
	}
	return result, nil
}

// CountByAccount returns the number of transactions recorded for an account.
func (r *TransactionRepository) CountByAccount(ctx context.Context, accountID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, txn := range r.txns {
		if txn.AccountID == accountID {
			count++
		}
	}
	return count, nil
}

var _ portsrepo.TransactionRepository = (*TransactionRepository)(nil)
