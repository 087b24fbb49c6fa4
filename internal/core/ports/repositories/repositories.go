package repositories

// RepositoryProvider bundles the repository implementations handed to the
// service container, so wiring happens in one place.
type RepositoryProvider struct {
	AccountRepo      AccountRepository
	TransactionRepo  TransactionRepository
	InterestRuleRepo InterestRuleRepository
}
