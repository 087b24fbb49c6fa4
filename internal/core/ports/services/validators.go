package services

import "github.com/awesomegic/bank_account_system/internal/dto"

// TransactionValidator is the swappable validation policy for incoming
// transactions. The default implementation lives in internal/validation;
// alternates can be injected without touching the ledger or the accrual
// engine.
type TransactionValidator interface {
	ValidateTransaction(req dto.RecordTransactionRequest) error
}

// InterestRuleValidator is the swappable validation policy for incoming
// interest rules.
type InterestRuleValidator interface {
	ValidateInterestRule(req dto.DefineInterestRuleRequest) error
}
