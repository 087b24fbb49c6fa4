package memory

import (
	portsrepo "github.com/awesomegic/bank_account_system/internal/core/ports/repositories"
)

// NewRepositoryProvider creates the full set of in-memory repositories for
// one session. Each provider is independent, so tests and multiple sessions
// never share state.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:      NewAccountRepository(),
		TransactionRepo:  NewTransactionRepository(),
		InterestRuleRepo: NewInterestRuleRepository(),
	}
}
