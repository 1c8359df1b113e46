package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/segyhp/finance-planner/internal/domain"
)

type MockPlannerService struct {
	mock.Mock
}

func (m *MockPlannerService) PlanDebtPayoff(ctx context.Context, request *domain.DebtPayoffRequest) (*domain.DebtPayoffResponse, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DebtPayoffResponse), args.Error(1)
}

func (m *MockPlannerService) CompareDebtStrategies(ctx context.Context, request *domain.DebtPayoffRequest) (*domain.StrategyComparison, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StrategyComparison), args.Error(1)
}

func (m *MockPlannerService) ProjectInvestment(ctx context.Context, params *domain.InvestmentParams) (*domain.InvestmentResult, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvestmentResult), args.Error(1)
}

func (m *MockPlannerService) PlanSavingsGoal(ctx context.Context, data *domain.SavingsGoalData) (*domain.SavingsGoalResult, error) {
	args := m.Called(ctx, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SavingsGoalResult), args.Error(1)
}

func (m *MockPlannerService) SummarizeNetWorth(ctx context.Context, request *domain.NetWorthRequest) (*domain.NetWorthSummary, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NetWorthSummary), args.Error(1)
}

func (m *MockPlannerService) ReviewBudget(ctx context.Context, review *domain.BudgetReview) (*domain.BudgetSummary, error) {
	args := m.Called(ctx, review)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BudgetSummary), args.Error(1)
}

func (m *MockPlannerService) SaveScenario(ctx context.Context, userID string, request *domain.SaveScenarioRequest) (*domain.Scenario, error) {
	args := m.Called(ctx, userID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Scenario), args.Error(1)
}

func (m *MockPlannerService) GetScenario(ctx context.Context, userID string, id uuid.UUID) (*domain.Scenario, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Scenario), args.Error(1)
}

func (m *MockPlannerService) ListScenarios(ctx context.Context, userID string) ([]*domain.Scenario, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Scenario), args.Error(1)
}

func (m *MockPlannerService) DeleteScenario(ctx context.Context, userID string, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *MockPlannerService) PurgeScenarios(ctx context.Context, olderThan time.Time) (int64, error) {
	args := m.Called(ctx, olderThan)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPlannerService) WarmCache(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// NewMockPlannerService creates a new mock planner service instance
func NewMockPlannerService() *MockPlannerService {
	return &MockPlannerService{}
}
