package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/awesomegic/bank_account_system/internal/apperrors"
	"github.com/awesomegic/bank_account_system/internal/core/domain"
	portsrepo "github.com/awesomegic/bank_account_system/internal/core/ports/repositories"
	portssvc "github.com/awesomegic/bank_account_system/internal/core/ports/services"
	"github.com/awesomegic/bank_account_system/internal/validation"
	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"
)

// statementService implements the StatementSvc interface. It performs no
// business logic beyond layout; the interest figure comes from the accrual
// calculator.
type statementService struct {
	BaseService
	accountRepo     portsrepo.AccountRepository
	transactionRepo portsrepo.TransactionRepository
	ruleRepo        portsrepo.InterestRuleRepository
}

// NewStatementService creates a new statement service.
func NewStatementService(
	accountRepo portsrepo.AccountRepository,
	transactionRepo portsrepo.TransactionRepository,
	ruleRepo portsrepo.InterestRuleRepository,
) portssvc.StatementSvc {
	return &statementService{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		ruleRepo:        ruleRepo,
	}
}

var _ portssvc.StatementSvc = (*statementService)(nil)

func (s *statementService) GenerateStatement(ctx context.Context, accountID string, month int) (string, error) {
	// The month check runs first so an out-of-range month fails the same way
	// whether or not the account exists.
	if err := validation.ValidateMonth(month); err != nil {
		return "", err
	}

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", fmt.Errorf("account %q not found: %w", accountID, err)
		}
		s.LogError(ctx, err, "Failed to load account for statement", slog.String("account_id", accountID))
		return "", err
	}

	txns, err := s.transactionRepo.FindTransactionsByAccount(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for statement", slog.String("account_id", accountID))
		return "", err
	}
	rules, err := s.ruleRepo.ListRules(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load interest rules for statement", slog.String("account_id", accountID))
		return "", err
	}

	interest := ComputeInterest(*account, txns, rules)
	return renderStatement(*account, txns, interest, month), nil
}

// renderStatement produces the tabular ledger plus the trailing interest row.
// Per-row balances replay the running balance the same way the accrual
// calculator does; the interest row shows the projected balance.
func renderStatement(account domain.Account, txns []domain.Transaction, interest decimal.Decimal, month int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Account: %s\n", account.AccountID)

	table := tablewriter.NewWriter(&sb)
	table.SetHeader([]string{"Date", "Txn Id", "Type", "Amount", "Balance"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	runningBalance := account.Balance
	for _, txn := range txns {
		runningBalance = runningBalance.Add(txn.SignedAmount())
		table.Append([]string{
			txn.Date,
			txn.TransactionID,
			string(txn.Kind),
			txn.Amount.StringFixed(2),
			runningBalance.StringFixed(2),
		})
	}

	table.Append([]string{
		interestRowDate(txns, month),
		"",
		"I",
		interest.StringFixed(2),
		account.Balance.Add(interest).StringFixed(2),
	})

	table.Render()
	return sb.String()
}

// interestRowDate returns the last day of the requested month, in the year
// of the most recent transaction (current year when the history is empty).
func interestRowDate(txns []domain.Transaction, month int) string {
	year := time.Now().Year()
	if len(txns) > 0 {
		if y, err := strconv.Atoi(txns[len(txns)-1].Date[:4]); err == nil {
			year = y
		}
	}
	// Day 0 of the following month is the last day of this one.
	lastDay := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)
	return lastDay.Format("20060102")
}
