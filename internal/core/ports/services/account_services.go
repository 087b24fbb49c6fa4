package services

import (
	"context"

	"github.com/awesomegic/bank_account_system/internal/core/domain"
	"github.com/awesomegic/bank_account_system/internal/dto"
)

// AccountSvc defines the business operations on the account registry.
type AccountSvc interface {
	// RegisterAccount creates a new account. The opening balance must not be
	// negative and the id must be unused.
	RegisterAccount(ctx context.Context, req dto.RegisterAccountRequest) (*domain.Account, error)

	// GetAccountByID retrieves a single account.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts returns every registered account in registration order.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}
