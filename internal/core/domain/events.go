package domain

import "github.com/shopspring/decimal"

// TransactionRecorded is published after a transaction has been appended to
// the ledger and the account balance updated.
type TransactionRecorded struct {
	TransactionID string          `json:"transactionID"`
	AccountID     string          `json:"accountID"`
	Date          string          `json:"date"`
	Kind          TransactionKind `json:"kind"`
	Amount        decimal.Decimal `json:"amount"`
	NewBalance    decimal.Decimal `json:"newBalance"`
}

// InterestAccrued is published for each account processed by a batch
// accrual run.
type InterestAccrued struct {
	AccountID       string          `json:"accountID"`
	Interest        decimal.Decimal `json:"interest"`
	AccruedInterest decimal.Decimal `json:"accruedInterest"`
}
