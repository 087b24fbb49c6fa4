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
)

// TopicInterestAccrued keys InterestAccrued events on the event stream.
const TopicInterestAccrued = "interest.accrued"

// interestService implements the InterestSvc interface: rule store
// operations plus the batch accrual run.
type interestService struct {
	BaseService
	ruleRepo        portsrepo.InterestRuleRepository
	accountRepo     portsrepo.AccountRepository
	transactionRepo portsrepo.TransactionRepository
	validator       portssvc.InterestRuleValidator
	publisher       portssvc.EventPublisher
}

// NewInterestService creates a new interest service with the given
// validation policy and event publisher.
func NewInterestService(
	ruleRepo portsrepo.InterestRuleRepository,
	accountRepo portsrepo.AccountRepository,
	transactionRepo portsrepo.TransactionRepository,
	validator portssvc.InterestRuleValidator,
	publisher portssvc.EventPublisher,
) portssvc.InterestSvc {
	return &interestService{
		ruleRepo:        ruleRepo,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		validator:       validator,
		publisher:       publisher,
	}
}

var _ portssvc.InterestSvc = (*interestService)(nil)

func (s *interestService) DefineRule(ctx context.Context, req dto.DefineInterestRuleRequest) (*domain.InterestRule, error) {
	if err := s.validator.ValidateInterestRule(req); err != nil {
		return nil, err
	}

	rule := domain.InterestRule{
		RuleID:            req.RuleID,
		EffectiveDate:     req.EffectiveDate,
		AnnualRatePercent: req.AnnualRatePercent,
		CreatedAt:         time.Now(),
	}

	if err := s.ruleRepo.SaveRule(ctx, rule); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			s.LogWarn(ctx, "Interest rule id already defined", slog.String("rule_id", req.RuleID))
			return nil, fmt.Errorf("interest rule %q already exists: %w", req.RuleID, err)
		}
		s.LogError(ctx, err, "Failed to save interest rule", slog.String("rule_id", req.RuleID))
		return nil, err
	}

	s.LogInfo(ctx, "Interest rule defined",
		slog.String("rule_id", rule.RuleID),
		slog.String("effective_date", rule.EffectiveDate))
	return &rule, nil
}

func (s *interestService) GetRuleByID(ctx context.Context, ruleID string) (*domain.InterestRule, error) {
	return s.ruleRepo.FindRuleByID(ctx, ruleID)
}

func (s *interestService) ListRules(ctx context.Context) ([]domain.InterestRule, error) {
	return s.ruleRepo.ListRules(ctx)
}

// RunAccrual computes interest for every registered account and adds it onto
// the account's accrued interest. Accrual is cumulative: running it twice
// accrues twice.
func (s *interestService) RunAccrual(ctx context.Context) (int, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts for accrual run")
		return 0, err
	}
	rules, err := s.ruleRepo.ListRules(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list interest rules for accrual run")
		return 0, err
	}

	for _, account := range accounts {
		txns, err := s.transactionRepo.FindTransactionsByAccount(ctx, account.AccountID)
		if err != nil {
			s.LogError(ctx, err, "Failed to load transactions for accrual", slog.String("account_id", account.AccountID))
			return 0, err
		}

		interest := ComputeInterest(account, txns, rules)
		account.AccruedInterest = account.AccruedInterest.Add(interest)
		if err := s.accountRepo.UpdateAccount(ctx, account); err != nil {
			s.LogError(ctx, err, "Failed to update accrued interest", slog.String("account_id", account.AccountID))
			return 0, err
		}

		event := domain.InterestAccrued{
			AccountID:       account.AccountID,
			Interest:        interest,
			AccruedInterest: account.AccruedInterest,
		}
		if err := s.publisher.Publish(ctx, TopicInterestAccrued, event); err != nil {
			s.LogError(ctx, err, "Failed to publish accrual event", slog.String("account_id", account.AccountID))
		}
	}

	s.LogInfo(ctx, "Accrual run completed", slog.Int("accounts_processed", len(accounts)))
	return len(accounts), nil
}
