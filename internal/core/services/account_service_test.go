package services_test

import (
	"context"
	"testing"

	"github.com/awesomegic/bank_account_system/internal/apperrors"
	"github.com/awesomegic/bank_account_system/internal/core/domain"
	portssvc "github.com/awesomegic/bank_account_system/internal/core/ports/services"
	"github.com/awesomegic/bank_account_system/internal/core/services"
	"github.com/awesomegic/bank_account_system/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAccountRepository
	service  portssvc.AccountSvc
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockRepo)
}

func (suite *AccountServiceTestSuite) TestRegisterAccount_Success() {
	ctx := context.Background()
	req := dto.RegisterAccountRequest{
		AccountID: "AC001",
		Balance:   decimal.NewFromInt(1000),
	}

	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	account, err := suite.service.RegisterAccount(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(account)
	suite.Equal("AC001", account.AccountID)
	suite.True(decimal.NewFromInt(1000).Equal(account.Balance))
	suite.True(account.AccruedInterest.IsZero())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestRegisterAccount_EmptyID() {
	ctx := context.Background()
	req := dto.RegisterAccountRequest{Balance: decimal.NewFromInt(100)}

	account, err := suite.service.RegisterAccount(ctx, req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(account)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount")
}

func (suite *AccountServiceTestSuite) TestRegisterAccount_NegativeBalance() {
	ctx := context.Background()
	req := dto.RegisterAccountRequest{
		AccountID: "AC001",
		Balance:   decimal.NewFromInt(-1),
	}

	account, err := suite.service.RegisterAccount(ctx, req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(account)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount")
}

func (suite *AccountServiceTestSuite) TestRegisterAccount_Duplicate() {
	ctx := context.Background()
	req := dto.RegisterAccountRequest{
		AccountID: "AC001",
		Balance:   decimal.NewFromInt(100),
	}

	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(apperrors.ErrDuplicate).Once()

	account, err := suite.service.RegisterAccount(ctx, req)

	suite.Require().ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(account)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindAccountByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	account, err := suite.service.GetAccountByID(ctx, "missing")

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(account)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestListAccounts() {
	ctx := context.Background()
	stored := []domain.Account{
		{AccountID: "AC001", Balance: decimal.NewFromInt(10)},
		{AccountID: "AC002", Balance: decimal.NewFromInt(20)},
	}

	suite.mockRepo.On("ListAccounts", ctx).Return(stored, nil).Once()

	accounts, err := suite.service.ListAccounts(ctx)

	suite.Require().NoError(err)
	suite.Len(accounts, 2)
	suite.Equal("AC001", accounts[0].AccountID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
