package services

import "context"

// StatementSvc renders account statements.
type StatementSvc interface {
	// GenerateStatement renders the ledger plus interest line for an account.
	// The month must be within 1..12; that check runs before the account
	// lookup, so an invalid month fails the same way for unknown accounts.
	GenerateStatement(ctx context.Context, accountID string, month int) (string, error)
}
