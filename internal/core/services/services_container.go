package services

import (
	portsrepo "github.com/awesomegic/bank_account_system/internal/core/ports/repositories"
	portssvc "github.com/awesomegic/bank_account_system/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies. The validator strategies and the event publisher
// are injected so hosts (and tests) can swap policies without touching the
// services.
func NewServiceContainer(
	repos portsrepo.RepositoryProvider,
	txnValidator portssvc.TransactionValidator,
	ruleValidator portssvc.InterestRuleValidator,
	publisher portssvc.EventPublisher,
) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Account = NewAccountService(repos.AccountRepo)
	container.Transaction = NewTransactionService(repos.TransactionRepo, repos.AccountRepo, txnValidator, publisher)
	container.Interest = NewInterestService(repos.InterestRuleRepo, repos.AccountRepo, repos.TransactionRepo, ruleValidator, publisher)
	container.Statement = NewStatementService(repos.AccountRepo, repos.TransactionRepo, repos.InterestRuleRepo)

	return container
}
