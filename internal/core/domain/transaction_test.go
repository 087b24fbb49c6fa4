package domain_test

import (
	"testing"

	"github.com/awesomegic/bank_account_system/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransaction_SignedAmount(t *testing.T) {
	tests := []struct {
		name string
		txn  domain.Transaction
		want string
	}{
		{
			name: "deposit keeps its sign",
			txn:  domain.Transaction{Kind: domain.Deposit, Amount: decimal.RequireFromString("100.50")},
			want: "100.50",
		},
		{
			name: "withdrawal is negated",
			txn:  domain.Transaction{Kind: domain.Withdrawal, Amount: decimal.RequireFromString("49.99")},
			want: "-49.99",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.txn.SignedAmount()
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got),
				"want %s, got %s", tt.want, got)
		})
	}
}
