package services

import (
	"github.com/awesomegic/bank_account_system/internal/core/domain"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// ComputeInterest calculates the interest owed for an account by replaying
// its transaction history over the current balance.
//
// The running balance seeds from account.Balance. Each transaction of this
// account, taken in the order given, applies its signed amount; then every
// rule whose effective date is on or before the transaction date contributes
// runningBalance * annualRatePercent / 100 to the total.
//
// Accrual model properties, all deliberate:
//   - every applicable rule contributes independently; a newer rule never
//     supersedes an older one, so overlapping rules compound the total
//   - interest accrues once per transaction event, not per calendar day,
//     and the annual rate is not divided down to a daily rate
//   - transactions for other accounts are skipped, not an error
//
// The function is pure: no I/O, no clock reads, no mutation of its inputs.
func ComputeInterest(account domain.Account, txns []domain.Transaction, rules []domain.InterestRule) decimal.Decimal {
	interest := decimal.Zero
	runningBalance := account.Balance

	for _, txn := range txns {
		if txn.AccountID != account.AccountID {
			continue
		}
		runningBalance = runningBalance.Add(txn.SignedAmount())

		for _, rule := range rules {
			// Dates are validated YYYYMMDD digit strings, so string
			// comparison is calendar comparison.
			if rule.EffectiveDate <= txn.Date {
				interest = interest.Add(runningBalance.Mul(rule.AnnualRatePercent).Div(oneHundred))
			}
		}
	}

	return interest
}
