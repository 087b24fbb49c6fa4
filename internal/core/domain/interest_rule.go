package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InterestRule defines an annual interest rate that applies to balance
// changes occurring on or after its effective date. Rules are immutable once
// defined; several rules may share an effective date and all of them remain
// applicable.
type InterestRule struct {
	RuleID            string          `json:"ruleID"`            // Unique across the rule store
	EffectiveDate     string          `json:"effectiveDate"`     // YYYYMMDD
	AnnualRatePercent decimal.Decimal `json:"annualRatePercent"` // 0 < rate < 100
	CreatedAt         time.Time       `json:"createdAt"`
}
