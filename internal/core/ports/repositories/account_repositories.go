package repositories

import (
	"context"

	"github.com/awesomegic/bank_account_system/internal/core/domain"
)

// AccountReader defines read operations for account data.
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	// Returns apperrors.ErrNotFound when no account matches.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts retrieves every registered account in registration order.
	// Used by batch accrual runs.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data.
type AccountWriter interface {
	// SaveAccount persists a new account. Returns apperrors.ErrDuplicate when
	// the id is already registered; the existing account is left unchanged.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount replaces the stored state of an existing account.
	// Returns apperrors.ErrNotFound when the id is unknown.
	UpdateAccount(ctx context.Context, account domain.Account) error
}

// AccountRepository combines all account-related repository interfaces.
type AccountRepository interface {
	AccountReader
	AccountWriter
}
