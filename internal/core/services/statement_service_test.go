package services_test

import (
	"context"
	"testing"

	"github.com/awesomegic/bank_account_system/internal/apperrors"
	"github.com/awesomegic/bank_account_system/internal/core/domain"
	portsrepo "github.com/awesomegic/bank_account_system/internal/core/ports/repositories"
	portssvc "github.com/awesomegic/bank_account_system/internal/core/ports/services"
	"github.com/awesomegic/bank_account_system/internal/core/services"
	"github.com/awesomegic/bank_account_system/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type StatementServiceTestSuite struct {
	suite.Suite
	repos   portsrepo.RepositoryProvider
	service portssvc.StatementSvc
}

func (suite *StatementServiceTestSuite) SetupTest() {
	suite.repos = memory.NewRepositoryProvider()
	suite.service = services.NewStatementService(
		suite.repos.AccountRepo,
		suite.repos.TransactionRepo,
		suite.repos.InterestRuleRepo,
	)
}

func (suite *StatementServiceTestSuite) seedAccount() {
	ctx := context.Background()
	err := suite.repos.AccountRepo.SaveAccount(ctx, domain.Account{
		AccountID: "AC001",
		Balance:   decimal.NewFromInt(1000),
	})
	suite.Require().NoError(err)
}

func (suite *StatementServiceTestSuite) TestInvalidMonthFailsBeforeAccountLookup() {
	ctx := context.Background()

	// No account registered at all: the month check must still win.
	_, err := suite.service.GenerateStatement(ctx, "UNKNOWN", 13)
	suite.Require().ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.GenerateStatement(ctx, "UNKNOWN", 0)
	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *StatementServiceTestSuite) TestUnknownAccount() {
	ctx := context.Background()

	_, err := suite.service.GenerateStatement(ctx, "UNKNOWN", 6)
	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *StatementServiceTestSuite) TestStatementRendersLedgerAndInterestRow() {
	ctx := context.Background()
	suite.seedAccount()

	err := suite.repos.InterestRuleRepo.SaveRule(ctx, domain.InterestRule{
		RuleID:            "RULE01",
		EffectiveDate:     "20230615",
		AnnualRatePercent: decimal.RequireFromString("2.00"),
	})
	suite.Require().NoError(err)

	err = suite.repos.TransactionRepo.SaveTransaction(ctx, domain.Transaction{
		TransactionID: "20230620-AC001-01",
		AccountID:     "AC001",
		Date:          "20230620",
		Kind:          domain.Deposit,
		Amount:        decimal.NewFromInt(500),
	})
	suite.Require().NoError(err)

	statement, err := suite.service.GenerateStatement(ctx, "AC001", 6)
	suite.Require().NoError(err)

	suite.Contains(statement, "Account: AC001")
	// Transaction row: date, derived id, kind, amount, running balance.
	suite.Contains(statement, "20230620")
	suite.Contains(statement, "20230620-AC001-01")
	suite.Contains(statement, "500.00")
	suite.Contains(statement, "1500.00")
	// Interest row: last day of the requested month, computed interest, and
	// the projected balance (stored balance + interest).
	suite.Contains(statement, "20230630")
	suite.Contains(statement, "30.00")
	suite.Contains(statement, "1030.00")
}

func (suite *StatementServiceTestSuite) TestStatementWithEmptyHistoryShowsZeroInterest() {
	ctx := context.Background()
	suite.seedAccount()

	statement, err := suite.service.GenerateStatement(ctx, "AC001", 6)
	suite.Require().NoError(err)

	suite.Contains(statement, "Account: AC001")
	suite.Contains(statement, "0.00")
	suite.Contains(statement, "1000.00")
}

func TestStatementServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StatementServiceTestSuite))
}
