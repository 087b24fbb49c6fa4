package dto

import (
	"time"

	"github.com/awesomegic/bank_account_system/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordTransactionRequest defines the data needed to record a deposit or
// withdrawal. The domain checks (calendar date, two decimal places, known
// kind) are owned by the injected TransactionValidator, not by binding tags.
type RecordTransactionRequest struct {
	Date      string          `json:"date" binding:"required"` // YYYYMMDD
	AccountID string          `json:"accountID" binding:"required"`
	Kind      string          `json:"kind" binding:"required"` // D or W
	Amount    decimal.Decimal `json:"amount" binding:"required"`
}

// TransactionResponse defines the data returned for a recorded transaction.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	AccountID     string          `json:"accountID"`
	Date          string          `json:"date"`
	Kind          string          `json:"kind"`
	Amount        decimal.Decimal `json:"amount"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ToTransactionResponse converts a domain.Transaction to a response DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		AccountID:     txn.AccountID,
		Date:          txn.Date,
		Kind:          string(txn.Kind),
		Amount:        txn.Amount,
		CreatedAt:     txn.CreatedAt,
	}
}

// ToListTransactionResponse converts a slice of domain.Transaction to DTOs.
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		res[i] = ToTransactionResponse(&txn)
	}
	return res
}
