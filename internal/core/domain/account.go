package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account represents a bank account within the core domain.
// This is the primary representation used by services.
type Account struct {
	AccountID       string          `json:"accountID"`       // Unique, immutable after registration
	Balance         decimal.Decimal `json:"balance"`         // Mutated only by applying validated transactions
	AccruedInterest decimal.Decimal `json:"accruedInterest"` // Mutated only by accrual runs; cumulative
	CreatedAt       time.Time       `json:"createdAt"`
}
