package services

import (
	"context"

	"github.com/awesomegic/bank_account_system/internal/core/domain"
	"github.com/awesomegic/bank_account_system/internal/dto"
)

// InterestSvc defines the business operations on the interest rule store and
// the batch accrual run.
type InterestSvc interface {
	// DefineRule validates and stores a new interest rule.
	DefineRule(ctx context.Context, req dto.DefineInterestRuleRequest) (*domain.InterestRule, error)

	// GetRuleByID retrieves a rule by id.
	GetRuleByID(ctx context.Context, ruleID string) (*domain.InterestRule, error)

	// ListRules returns every rule in the order it was defined.
	ListRules(ctx context.Context) ([]domain.InterestRule, error)

	// RunAccrual computes interest for every registered account over its full
	// transaction history and the full rule set, and adds the result onto the
	// account's accrued interest. Repeated runs accrue repeatedly. Returns
	// the number of accounts processed.
	RunAccrual(ctx context.Context) (int, error)
}
