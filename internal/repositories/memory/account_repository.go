package memory

import (
	"context"
	"sync"

	"github.com/awesomegic/bank_account_system/internal/apperrors"
	"github.com/awesomegic/bank_account_system/internal/core/domain"
	portsrepo "github.com/awesomegic/bank_account_system/internal/core/ports/repositories"
)

// AccountRepository is an in-memory implementation of the account registry.
// A mutex guards the maps so the repository stays safe if a multi-client
// host ever drives it concurrently; reads return copies so callers cannot
// mutate internal state.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]domain.Account
	order    []string // registration order for ListAccounts
}

// NewAccountRepository creates an empty in-memory account repository.
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		accounts: make(map[string]domain.Account),
	}
}

// SaveAccount stores a new account. The first writer wins: a duplicate id is
// rejected with apperrors.ErrDuplicate and the stored account is untouched.
func (r *AccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.accounts[account.AccountID]; exists {
		return apperrors.ErrDuplicate
	}
	r.accounts[account.AccountID] = account
	r.order = append(r.order, account.AccountID)
	return nil
}

// FindAccountByID returns a copy of the account with the given id.
func (r *AccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, exists := r.accounts[accountID]
	if !exists {
		return nil, apperrors.ErrNotFound
	}
	return &account, nil
}

// ListAccounts returns all accounts in registration order.
func (r *AccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	accounts := make([]domain.Account, 0, len(r.order))
	for _, id := range r.order {
		accounts = append(accounts, r.accounts[id])
	}
	return accounts, nil
}

// UpdateAccount replaces the stored state of an existing account.
func (r *AccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.accounts[account.AccountID]; !exists {
		return apperrors.ErrNotFound
	}
	r.accounts[account.AccountID] = account
	return nil
}

var _ portsrepo.AccountRepository = (*AccountRepository)(nil)
