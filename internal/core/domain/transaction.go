package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind indicates whether a transaction is a deposit or a withdrawal.
type TransactionKind string

const (
	Deposit    TransactionKind = "D"
	Withdrawal TransactionKind = "W"
)

// Transaction represents a single deposit or withdrawal against one account.
// Transactions are immutable once created; the ledger is append-only.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Derived: <date>-<accountID>-<NN>
	AccountID     string          `json:"accountID"`
	Date          string          `json:"date"` // YYYYMMDD; digit strings compare in calendar order
	Kind          TransactionKind `json:"kind"` // D or W
	Amount        decimal.Decimal `json:"amount"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// SignedAmount returns the amount with the sign implied by the kind:
// positive for deposits, negative for withdrawals.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.Kind == Withdrawal {
		return t.Amount.Neg()
	}
	return t.Amount
}
