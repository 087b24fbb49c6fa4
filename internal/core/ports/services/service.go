package services

// ServiceContainer holds the initialized service implementations handed to
// the transport layers (HTTP handlers, console).
type ServiceContainer struct {
	Account     AccountSvc
	Transaction TransactionSvc
	Interest    InterestSvc
	Statement   StatementSvc
}
