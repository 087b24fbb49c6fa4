package dto

import (
	"time"

	"github.com/awesomegic/bank_account_system/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RegisterAccountRequest defines the data needed to register a new account.
type RegisterAccountRequest struct {
	AccountID string          `json:"accountID" binding:"required"`
	Balance   decimal.Decimal `json:"balance"` // Opening balance; must not be negative
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID       string          `json:"accountID"`
	Balance         decimal.Decimal `json:"balance"`
	AccruedInterest decimal.Decimal `json:"accruedInterest"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// ToAccountResponse converts a domain.Account to an AccountResponse DTO.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:       acc.AccountID,
		Balance:         acc.Balance,
		AccruedInterest: acc.AccruedInterest,
		CreatedAt:       acc.CreatedAt,
	}
}

// ToListAccountResponse converts a slice of domain.Account to response DTOs.
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}
