package services_test

import (
	"testing"

	"github.com/awesomegic/bank_account_system/internal/core/domain"
	"github.com/awesomegic/bank_account_system/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func account(id string, balance int64) domain.Account {
	return domain.Account{
		AccountID: id,
		Balance:   decimal.NewFromInt(balance),
	}
}

func deposit(accountID, date string, amount int64) domain.Transaction {
	return domain.Transaction{
		AccountID: accountID,
		Date:      date,
		Kind:      domain.Deposit,
		Amount:    decimal.NewFromInt(amount),
	}
}

func withdrawal(accountID, date string, amount int64) domain.Transaction {
	return domain.Transaction{
		AccountID: accountID,
		Date:      date,
		Kind:      domain.Withdrawal,
		Amount:    decimal.NewFromInt(amount),
	}
}

func rule(id, effectiveDate, rate string) domain.InterestRule {
	return domain.InterestRule{
		RuleID:            id,
		EffectiveDate:     effectiveDate,
		AnnualRatePercent: decimal.RequireFromString(rate),
	}
}

func TestComputeInterest(t *testing.T) {
	tests := []struct {
		name    string
		account domain.Account
		txns    []domain.Transaction
		rules   []domain.InterestRule
		want    string
	}{
		{
			name:    "no transactions yields zero",
			account: account("AC001", 1000),
			rules:   []domain.InterestRule{rule("RULE01", "20230615", "2.00")},
			want:    "0",
		},
		{
			name:    "rule effective after transaction date does not apply",
			account: account("AC001", 1000),
			txns:    []domain.Transaction{deposit("AC001", "20230601", 500)},
			rules:   []domain.InterestRule{rule("RULE01", "20230615", "2.00")},
			want:    "0",
		},
		{
			name:    "rule effective before transaction date applies to running balance",
			account: account("AC001", 1000),
			txns:    []domain.Transaction{deposit("AC001", "20230620", 500)},
			rules:   []domain.InterestRule{rule("RULE01", "20230615", "2.00")},
			want:    "30", // 1500 * 2.00 / 100
		},
		{
			name:    "rule effective on the transaction date applies",
			account: account("AC001", 1000),
			txns:    []domain.Transaction{deposit("AC001", "20230615", 500)},
			rules:   []domain.InterestRule{rule("RULE01", "20230615", "2.00")},
			want:    "30",
		},
		{
			name:    "withdrawal reduces the running balance before accrual",
			account: account("AC001", 1000),
			txns:    []domain.Transaction{withdrawal("AC001", "20230620", 500)},
			rules:   []domain.InterestRule{rule("RULE01", "20230615", "2.00")},
			want:    "10", // 500 * 2.00 / 100
		},
		{
			name:    "every applicable rule contributes independently",
			account: account("AC001", 1000),
			txns:    []domain.Transaction{deposit("AC001", "20230620", 500)},
			rules: []domain.InterestRule{
				rule("RULE01", "20230101", "1.00"),
				rule("RULE02", "20230615", "2.00"),
			},
			want: "45", // 1500 * 1.00/100 + 1500 * 2.00/100
		},
		{
			name:    "rules sharing an effective date both apply",
			account: account("AC001", 1000),
			txns:    []domain.Transaction{deposit("AC001", "20230620", 500)},
			rules: []domain.InterestRule{
				rule("RULE01", "20230615", "2.00"),
				rule("RULE02", "20230615", "2.00"),
			},
			want: "60",
		},
		{
			name:    "transactions for other accounts are skipped",
			account: account("AC001", 1000),
			txns: []domain.Transaction{
				deposit("AC002", "20230620", 500),
			},
			rules: []domain.InterestRule{rule("RULE01", "20230615", "2.00")},
			want:  "0",
		},
		{
			name:    "running balance accumulates across transactions",
			account: account("AC001", 0),
			txns: []domain.Transaction{
				deposit("AC001", "20230620", 100),
				withdrawal("AC001", "20230621", 50),
			},
			rules: []domain.InterestRule{rule("RULE01", "20230615", "2.00")},
			want:  "3", // 100*0.02 + 50*0.02
		},
		{
			name:    "negative running balance accrues negative interest",
			account: account("AC001", 0),
			txns:    []domain.Transaction{withdrawal("AC001", "20230620", 100)},
			rules:   []domain.InterestRule{rule("RULE01", "20230615", "2.00")},
			want:    "-2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := services.ComputeInterest(tt.account, tt.txns, tt.rules)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got),
				"want %s, got %s", tt.want, got)
		})
	}
}

func TestComputeInterestIsDeterministic(t *testing.T) {
	acc := account("AC001", 1000)
	txns := []domain.Transaction{
		deposit("AC001", "20230620", 500),
		withdrawal("AC001", "20230625", 250),
	}
	rules := []domain.InterestRule{
		rule("RULE01", "20230101", "1.50"),
		rule("RULE02", "20230615", "2.00"),
	}

	first := services.ComputeInterest(acc, txns, rules)
	for i := 0; i < 10; i++ {
		assert.True(t, first.Equal(services.ComputeInterest(acc, txns, rules)))
	}
}

func TestComputeInterestDoesNotMutateInputs(t *testing.T) {
	acc := account("AC001", 1000)
	txns := []domain.Transaction{deposit("AC001", "20230620", 500)}
	rules := []domain.InterestRule{rule("RULE01", "20230615", "2.00")}

	services.ComputeInterest(acc, txns, rules)

	assert.True(t, decimal.NewFromInt(1000).Equal(acc.Balance))
	assert.True(t, decimal.NewFromInt(500).Equal(txns[0].Amount))
	assert.Equal(t, "20230615", rules[0].EffectiveDate)
}
