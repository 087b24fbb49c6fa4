// Package validation provides the default validation policies applied at the
// boundary, before a transaction or interest rule reaches any store.
package validation

import (
	"fmt"
	"time"

	"github.com/awesomegic/bank_account_system/internal/apperrors"
	portssvc "github.com/awesomegic/bank_account_system/internal/core/ports/services"
	"github.com/awesomegic/bank_account_system/internal/dto"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// validate is shared across validator instances; validator.Validate is
// safe for concurrent use.
var validate = validator.New()

const dateLayout = "20060102"

// IsValidDate reports whether s is a well-formed calendar date in YYYYMMDD form.
func IsValidDate(s string) bool {
	if err := validate.Var(s, "required,len=8,numeric"); err != nil {
		return false
	}
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

// IsValidAmount reports whether d is positive with at most 2 decimal places.
func IsValidAmount(d decimal.Decimal) bool {
	return d.IsPositive() && d.Exponent() >= -2
}

// IsValidKind reports whether s is a known transaction kind (D or W).
func IsValidKind(s string) bool {
	return validate.Var(s, "oneof=D W") == nil
}

// IsValidInterestRate reports whether d satisfies 0 < rate < 100.
func IsValidInterestRate(d decimal.Decimal) bool {
	return d.IsPositive() && d.LessThan(decimal.NewFromInt(100))
}

// ValidateMonth checks that month is a statement month selector within 1..12.
func ValidateMonth(month int) error {
	if err := validate.Var(month, "gte=1,lte=12"); err != nil {
		return fmt.Errorf("invalid month %d, month should be between 1 and 12: %w", month, apperrors.ErrValidation)
	}
	return nil
}

// DefaultTransactionValidator is the default TransactionValidator policy.
type DefaultTransactionValidator struct{}

// NewDefaultTransactionValidator creates the default transaction validator.
func NewDefaultTransactionValidator() *DefaultTransactionValidator {
	return &DefaultTransactionValidator{}
}

// ValidateTransaction checks the date, kind and amount of a transaction
// request. It returns an error wrapping apperrors.ErrValidation with a
// stable, descriptive message for the first failing field.
func (v *DefaultTransactionValidator) ValidateTransaction(req dto.RecordTransactionRequest) error {
	if !IsValidDate(req.Date) {
		return fmt.Errorf("invalid transaction date %q, expected a calendar date in YYYYMMDD form: %w", req.Date, apperrors.ErrValidation)
	}
	if req.AccountID == "" {
		return fmt.Errorf("transaction account id must not be empty: %w", apperrors.ErrValidation)
	}
	if !IsValidKind(req.Kind) {
		return fmt.Errorf("invalid transaction kind %q, expected D or W: %w", req.Kind, apperrors.ErrValidation)
	}
	if !IsValidAmount(req.Amount) {
		return fmt.Errorf("invalid transaction amount %s, expected a positive number with at most 2 decimal places: %w", req.Amount, apperrors.ErrValidation)
	}
	return nil
}

// DefaultInterestRuleValidator is the default InterestRuleValidator policy.
type DefaultInterestRuleValidator struct{}

// NewDefaultInterestRuleValidator creates the default interest rule validator.
func NewDefaultInterestRuleValidator() *DefaultInterestRuleValidator {
	return &DefaultInterestRuleValidator{}
}

// ValidateInterestRule checks the effective date, rule id and rate bounds of
// an interest rule request.
func (v *DefaultInterestRuleValidator) ValidateInterestRule(req dto.DefineInterestRuleRequest) error {
	if !IsValidDate(req.EffectiveDate) {
		return fmt.Errorf("invalid effective date %q, expected a calendar date in YYYYMMDD form: %w", req.EffectiveDate, apperrors.ErrValidation)
	}
	if req.RuleID == "" {
		return fmt.Errorf("rule id must not be empty: %w", apperrors.ErrValidation)
	}
	if !IsValidInterestRate(req.AnnualRatePercent) {
		return fmt.Errorf("invalid interest rate %s, expected 0 < rate < 100: %w", req.AnnualRatePercent, apperrors.ErrValidation)
	}
	return nil
}

var (
	_ portssvc.TransactionValidator  = (*DefaultTransactionValidator)(nil)
	_ portssvc.InterestRuleValidator = (*DefaultInterestRuleValidator)(nil)
)
