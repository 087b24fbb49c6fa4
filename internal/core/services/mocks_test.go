package services_test

import (
	"context"

	"github.com/awesomegic/bank_account_system/internal/core/domain"
	portsrepo "github.com/awesomegic/bank_account_system/internal/core/ports/repositories"
	portssvc "github.com/awesomegic/bank_account_system/internal/core/ports/services"
	"github.com/awesomegic/bank_account_system/internal/dto"
	"github.com/stretchr/testify/mock"
)

// MockAccountRepository is a mock type for the AccountRepository interface.
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

var _ portsrepo.AccountRepository = (*MockAccountRepository)(nil)

// MockTransactionRepository is a mock type for the TransactionRepository interface.
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindTransactionsByAccount(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) CountByAccount(ctx context.Context, accountID string) (int, error) {
	args := m.Called(ctx, accountID)
	return args.Int(0), args.Error(1)
}

var _ portsrepo.TransactionRepository = (*MockTransactionRepository)(nil)

// MockInterestRuleRepository is a mock type for the InterestRuleRepository interface.
type MockInterestRuleRepository struct {
	mock.Mock
}

func (m *MockInterestRuleRepository) SaveRule(ctx context.Context, rule domain.InterestRule) error {
	args := m.Called(ctx, rule)
	return args.Error(0)
}

func (m *MockInterestRuleRepository) FindRuleByID(ctx context.Context, ruleID string) (*domain.InterestRule, error) {
	args := m.Called(ctx, ruleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InterestRule), args.Error(1)
}

func (m *MockInterestRuleRepository) ListRules(ctx context.Context) ([]domain.InterestRule, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InterestRule), args.Error(1)
}

var _ portsrepo.InterestRuleRepository = (*MockInterestRuleRepository)(nil)

// MockEventPublisher is a mock type for the EventPublisher interface.
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, topic string, event any) error {
	args := m.Called(ctx, topic, event)
	return args.Error(0)
}

var _ portssvc.EventPublisher = (*MockEventPublisher)(nil)

// MockTransactionValidator is a mock type for the TransactionValidator interface.
type MockTransactionValidator struct {
	mock.Mock
}

func (m *MockTransactionValidator) ValidateTransaction(req dto.RecordTransactionRequest) error {
	args := m.Called(req)
	return args.Error(0)
}

var _ portssvc.TransactionValidator = (*MockTransactionValidator)(nil)
