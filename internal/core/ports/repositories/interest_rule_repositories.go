package repositories

import (
	"context"

	"github.com/awesomegic/bank_account_system/internal/core/domain"
)

// InterestRuleRepository defines operations on the interest rule store.
type InterestRuleRepository interface {
	// SaveRule persists a new interest rule. Returns apperrors.ErrDuplicate
	// when the rule id already exists; the stored rule is left unchanged.
	SaveRule(ctx context.Context, rule domain.InterestRule) error

	// FindRuleByID retrieves a rule by its unique identifier.
	// Returns apperrors.ErrNotFound when no rule matches.
	FindRuleByID(ctx context.Context, ruleID string) (*domain.InterestRule, error)

	// ListRules returns every rule in insertion order. Temporal ordering is
	// the accrual engine's concern, not the store's.
	ListRules(ctx context.Context) ([]domain.InterestRule, error)
}
