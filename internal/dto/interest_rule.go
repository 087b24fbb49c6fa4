package dto

import (
	"time"

	"github.com/awesomegic/bank_account_system/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DefineInterestRuleRequest defines the data needed to define an interest rule.
type DefineInterestRuleRequest struct {
	EffectiveDate     string          `json:"effectiveDate" binding:"required"` // YYYYMMDD
	RuleID            string          `json:"ruleID" binding:"required"`
	AnnualRatePercent decimal.Decimal `json:"annualRatePercent" binding:"required"` // 0 < rate < 100
}

// InterestRuleResponse defines the data returned for an interest rule.
type InterestRuleResponse struct {
	RuleID            string          `json:"ruleID"`
	EffectiveDate     string          `json:"effectiveDate"`
	AnnualRatePercent decimal.Decimal `json:"annualRatePercent"`
	CreatedAt         time.Time       `json:"createdAt"`
}

// InterestRunResponse reports the outcome of a batch accrual run.
type InterestRunResponse struct {
	AccountsProcessed int `json:"accountsProcessed"`
}

// ToInterestRuleResponse converts a domain.InterestRule to a response DTO.
func ToInterestRuleResponse(rule *domain.InterestRule) InterestRuleResponse {
	return InterestRuleResponse{
		RuleID:            rule.RuleID,
		EffectiveDate:     rule.EffectiveDate,
		AnnualRatePercent: rule.AnnualRatePercent,
		CreatedAt:         rule.CreatedAt,
	}
}

// ToListInterestRuleResponse converts a slice of domain.InterestRule to DTOs.
func ToListInterestRuleResponse(rules []domain.InterestRule) []InterestRuleResponse {
	res := make([]InterestRuleResponse, len(rules))
	for i, rule := range rules {
		res[i] = ToInterestRuleResponse(&rule)
	}
	return res
}
