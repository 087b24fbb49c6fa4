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

// accountService implements the AccountSvc interface.
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepository
}

// NewAccountService creates a new account service.
func NewAccountService(repo portsrepo.AccountRepository) portssvc.AccountSvc {
	return &accountService{
		accountRepo: repo,
	}
}

var _ portssvc.AccountSvc = (*accountService)(nil)

func (s *accountService) RegisterAccount(ctx context.Context, req dto.RegisterAccountRequest) (*domain.Account, error) {
	if req.AccountID == "" {
		return nil, fmt.Errorf("account id must not be empty: %w", apperrors.ErrValidation)
	}
	if req.Balance.IsNegative() {
		return nil, fmt.Errorf("opening balance %s must not be negative: %w", req.Balance, apperrors.ErrValidation)
	}

	account := domain.Account{
		AccountID:       req.AccountID,
		Balance:         req.Balance,
		AccruedInterest: decimal.Zero,
		CreatedAt:       time.Now(),
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			s.LogWarn(ctx, "Account id already registered", slog.String("account_id", req.AccountID))
			return nil, fmt.Errorf("account %q already exists: %w", req.AccountID, err)
		}
		s.LogError(ctx, err, "Failed to save account", slog.String("account_id", req.AccountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account registered", slog.String("account_id", account.AccountID))
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by id", slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	return s.accountRepo.ListAccounts(ctx)
}
