package memory

import (
	"context"
	"sync"

	"github.com/awesomegic/bank_account_system/internal/apperrors"
	"github.com/awesomegic/bank_account_system/internal/core/domain"
	portsrepo "github.com/awesomegic/bank_account_system/internal/core/ports/repositories"
)

// InterestRuleRepository is an in-memory interest rule store. Rules are kept
// in insertion order, not sorted by effective date.
type InterestRuleRepository struct {
	mu    sync.RWMutex
	rules []domain.InterestRule
	byID  map[string]int // rule id -> index into rules
}

// NewInterestRuleRepository creates an empty in-memory rule store.
func NewInterestRuleRepository() *InterestRuleRepository {
	return &InterestRuleRepository{
		rules: make([]domain.InterestRule, 0),
		byID:  make(map[string]int),
	}
}

// SaveRule appends a new rule. A duplicate rule id is rejected with
// apperrors.ErrDuplicate and the stored rule is left unchanged.
func (r *InterestRuleRepository) SaveRule(ctx context.Context, rule domain.InterestRule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[rule.RuleID]; exists {
		return apperrors.ErrDuplicate
	}
	r.byID[rule.RuleID] = len(r.rules)
	r.rules = append(r.rules, rule)
	return nil
}

// FindRuleByID returns a copy of the rule with the given id.
func (r *InterestRuleRepository) FindRuleByID(ctx context.Context, ruleID string) (*domain.InterestRule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, exists := r.byID[ruleID]
	if !exists {
		return nil, apperrors.ErrNotFound
	}
	rule := r.rules[idx]
	return &rule, nil
}

// ListRules returns a copy of all rules in insertion order.
func (r *InterestRuleRepository) ListRules(ctx context.Context) ([]domain.InterestRule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rules := make([]domain.InterestRule, len(r.rules))
	copy(rules, r.rules)
	return rules, nil
}

var _ portsrepo.InterestRuleRepository = (*InterestRuleRepository)(nil)
