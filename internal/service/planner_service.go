package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/segyhp/finance-planner/internal/calculator"
	"github.com/segyhp/finance-planner/internal/config"
	"github.com/segyhp/finance-planner/internal/domain"
	"github.com/segyhp/finance-planner/internal/repository"
	customError "github.com/segyhp/finance-planner/pkg/errors"
	"github.com/segyhp/finance-planner/pkg/utils"
)

// Cache key kinds
const (
	cacheKindDebtPayoff  = "debt_payoff"
	cacheKindDebtCompare = "debt_compare"
	cacheKindInvestment  = "investment"
	cacheKindSavingsGoal = "savings_goal"
)

type PlannerService struct {
	ScenarioRepo repository.ScenarioRepository
	cache        repository.CacheRepository
	config       *config.Config
	now          func() time.Time
}

// NewPlannerService wires the planner. A nil cache disables result caching.
func NewPlannerService(
	scenarioRepo repository.ScenarioRepository,
	cache repository.CacheRepository,
	config *config.Config,
) *PlannerService {
	return &PlannerService{
		ScenarioRepo: scenarioRepo,
		cache:        cache,
		config:       config,
		now:          time.Now,
	}
}

// debtPlanInputs is the fully resolved form of a payoff request, used as its cache key
type debtPlanInputs struct {
	Debts        []domain.Debt       `json:"debts"`
	ExtraPayment float64             `json:"extra_payment"`
	Method       domain.PayoffMethod `json:"method"`
	StartDate    time.Time           `json:"start_date"`
	MaxMonths    int                 `json:"max_months"`
}

type savingsGoalInputs struct {
	Goal          *domain.SavingsGoalData `json:"goal"`
	HorizonMonths int                     `json:"horizon_months"`
}

// PlanDebtPayoff simulates a payoff plan and derives per-debt payoff months and interest
func (s *PlannerService) PlanDebtPayoff(ctx context.Context, request *domain.DebtPayoffRequest) (*domain.DebtPayoffResponse, error) {
	inputs, err := s.resolveDebtRequest(request)
	if err != nil {
		return nil, err
	}

	// Without an explicit start date the schedule's dates move every month
	cacheable := request.StartDate != nil
	key := ""
	if cacheable {
		key = s.cacheKey(cacheKindDebtPayoff, inputs)
		var cached domain.DebtPayoffResponse
		if s.lookup(ctx, key, &cached) {
			return &cached, nil
		}
	}

	plan, err := calculator.CalculateDebtPayoff(
		inputs.Debts,
		inputs.ExtraPayment,
		inputs.Method,
		calculator.WithStartDate(inputs.StartDate),
		calculator.WithMaxMonths(inputs.MaxMonths),
	)
	if err != nil {
		return nil, mapCalculatorError(err)
	}

	result := &domain.DebtPayoffResponse{
		Plan:           plan,
		PayoffMonths:   calculator.PayoffMonths(plan),
		InterestByDebt: calculator.TotalInterestByDebt(plan),
	}

	if cacheable {
		s.store(ctx, key, result)
	}

	return result, nil
}

// CompareDebtStrategies runs both payoff methods over the same debts; the request's method is ignored
func (s *PlannerService) CompareDebtStrategies(ctx context.Context, request *domain.DebtPayoffRequest) (*domain.StrategyComparison, error) {
	inputs, err := s.resolveDebtRequest(request)
	if err != nil {
		return nil, err
	}
	inputs.Method = ""

	cacheable := request.StartDate != nil
	key := ""
	if cacheable {
		key = s.cacheKey(cacheKindDebtCompare, inputs)
		var cached domain.StrategyComparison
		if s.lookup(ctx, key, &cached) {
			return &cached, nil
		}
	}

	comparison, err := calculator.CompareDebtStrategies(
		inputs.Debts,
		inputs.ExtraPayment,
		calculator.WithStartDate(inputs.StartDate),
		calculator.WithMaxMonths(inputs.MaxMonths),
	)
	if err != nil {
		return nil, mapCalculatorError(err)
	}

	if cacheable {
		s.store(ctx, key, comparison)
	}

	return comparison, nil
}

// ProjectInvestment compounds an investment year by year
func (s *PlannerService) ProjectInvestment(ctx context.Context, params *domain.InvestmentParams) (*domain.InvestmentResult, error) {
	if params == nil {
		return nil, customError.WrapInvalidParameter(errors.New("investment parameters are required"))
	}

	key := s.cacheKey(cacheKindInvestment, params)
	var cached domain.InvestmentResult
	if s.lookup(ctx, key, &cached) {
		return &cached, nil
	}

	result, err := calculator.CalculateInvestment(params)
	if err != nil {
		return nil, mapCalculatorError(err)
	}

	s.store(ctx, key, result)
	return result, nil
}

// PlanSavingsGoal finds how long a savings plan takes to reach its goal
func (s *PlannerService) PlanSavingsGoal(ctx context.Context, data *domain.SavingsGoalData) (*domain.SavingsGoalResult, error) {
	if data == nil {
		return nil, customError.WrapInvalidParameter(errors.New("savings goal is required"))
	}

	inputs := savingsGoalInputs{Goal: data, HorizonMonths: s.config.Business.SavingsHorizonMonths}
	key := s.cacheKey(cacheKindSavingsGoal, inputs)
	var cached domain.SavingsGoalResult
	if s.lookup(ctx, key, &cached) {
		return &cached, nil
	}

	result, err := calculator.CalculateSavingsGoal(data, calculator.WithHorizonMonths(inputs.HorizonMonths))
	if err != nil {
		return nil, mapCalculatorError(err)
	}

	s.store(ctx, key, result)
	return result, nil
}

// SummarizeNetWorth totals assets and liabilities and the change over the supplied history
func (s *PlannerService) SummarizeNetWorth(_ context.Context, request *domain.NetWorthRequest) (*domain.NetWorthSummary, error) {
	if request == nil {
		return nil, customError.WrapInvalidParameter(errors.New("net worth request is required"))
	}
	return calculator.SummarizeNetWorth(request), nil
}

// ReviewBudget compares a month's budget with its spending. Categories added in
// this review are given ids.
func (s *PlannerService) ReviewBudget(_ context.Context, review *domain.BudgetReview) (*domain.BudgetSummary, error) {
	if review == nil {
		return nil, customError.WrapInvalidParameter(errors.New("budget review is required"))
	}

	summary, err := calculator.SummarizeBudget(review, calculator.WithStartDate(s.now()))
	if err != nil {
		return nil, mapCalculatorError(err)
	}

	for _, category := range summary.Categories {
		if category.ID == "" {
			category.ID = uuid.NewString()
		}
	}

	return summary, nil
}

// SaveScenario recomputes the scenario's result and stores it with its inputs
func (s *PlannerService) SaveScenario(ctx context.Context, userID string, request *domain.SaveScenarioRequest) (*domain.Scenario, error) {
	if userID == "" {
		return nil, customError.WrapInvalidParameter(errors.New("user id is required"))
	}
	if request == nil {
		return nil, customError.WrapInvalidParameter(errors.New("scenario is required"))
	}

	var (
		inputs interface{}
		result interface{}
		err    error
	)

	switch request.Kind {
	case domain.ScenarioKindDebtPayoff:
		if request.DebtPayoff == nil {
			return nil, customError.WrapInvalidParameter(errors.New("debt_payoff inputs are required"))
		}
		inputs = request.DebtPayoff
		result, err = s.PlanDebtPayoff(ctx, request.DebtPayoff)
	case domain.ScenarioKindInvestment:
		if request.Investment == nil {
			return nil, customError.WrapInvalidParameter(errors.New("investment inputs are required"))
		}
		inputs = request.Investment
		result, err = s.ProjectInvestment(ctx, request.Investment)
	case domain.ScenarioKindSavingsGoal:
		if request.SavingsGoal == nil {
			return nil, customError.WrapInvalidParameter(errors.New("savings_goal inputs are required"))
		}
		inputs = request.SavingsGoal
		result, err = s.PlanSavingsGoal(ctx, request.SavingsGoal)
	case domain.ScenarioKindBudgetReview:
		if request.BudgetReview == nil {
			return nil, customError.WrapInvalidParameter(errors.New("budget_review inputs are required"))
		}
		inputs, result, err = s.reviewBudgetForSave(ctx, request.BudgetReview)
	default:
		return nil, customError.WrapUnsupportedScenario(request.Kind)
	}
	if err != nil {
		return nil, err
	}

	rawInputs, err := json.Marshal(inputs)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal scenario inputs: %w", err)
	}
	rawResult, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal scenario result: %w", err)
	}

	scenario := &domain.Scenario{
		ID:     uuid.New(),
		UserID: userID,
		Kind:   request.Kind,
		Name:   request.Name,
		Inputs: rawInputs,
		Result: rawResult,
	}

	if err := s.ScenarioRepo.Create(ctx, scenario); err != nil {
		return nil, mapRepositoryError(err, scenario.ID)
	}

	return scenario, nil
}

// reviewBudgetForSave refuses budgets of past months, which are read-only.
// The returned inputs carry the ids assigned to new categories.
func (s *PlannerService) reviewBudgetForSave(ctx context.Context, review *domain.BudgetReview) (*domain.BudgetReview, *domain.BudgetSummary, error) {
	summary, err := s.ReviewBudget(ctx, review)
	if err != nil {
		return nil, nil, err
	}
	if !summary.Editable {
		return nil, nil, customError.WrapInvalidParameter(fmt.Errorf("budget for %s is closed; only the current month can be saved", review.Month))
	}

	inputs := *review
	inputs.Categories = make([]domain.BudgetCategory, len(review.Categories))
	copy(inputs.Categories, review.Categories)
	for i, line := range summary.Categories {
		inputs.Categories[i].ID = line.ID
	}

	return &inputs, summary, nil
}

func (s *PlannerService) GetScenario(ctx context.Context, userID string, id uuid.UUID) (*domain.Scenario, error) {
	scenario, err := s.ScenarioRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, mapRepositoryError(err, id)
	}
	return scenario, nil
}

func (s *PlannerService) ListScenarios(ctx context.Context, userID string) ([]*domain.Scenario, error) {
	scenarios, err := s.ScenarioRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, mapRepositoryError(err, uuid.Nil)
	}
	return scenarios, nil
}

func (s *PlannerService) DeleteScenario(ctx context.Context, userID string, id uuid.UUID) error {
	if err := s.ScenarioRepo.Delete(ctx, userID, id); err != nil {
		return mapRepositoryError(err, id)
	}
	return nil
}

// PurgeScenarios removes scenarios not updated since olderThan
func (s *PlannerService) PurgeScenarios(ctx context.Context, olderThan time.Time) (int64, error) {
	removed, err := s.ScenarioRepo.DeleteOlderThan(ctx, olderThan)
	if err != nil {
		return 0, customError.WrapDatabaseError(err)
	}
	return removed, nil
}

// WarmCache recomputes the default investment and savings projections and overwrites their cache entries
func (s *PlannerService) WarmCache(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}

	params := domain.DefaultInvestmentParams()
	investment, err := calculator.CalculateInvestment(params)
	if err != nil {
		return mapCalculatorError(err)
	}
	s.store(ctx, s.cacheKey(cacheKindInvestment, params), investment)

	goal := savingsGoalInputs{Goal: domain.DefaultSavingsGoal(), HorizonMonths: s.config.Business.SavingsHorizonMonths}
	savings, err := calculator.CalculateSavingsGoal(goal.Goal, calculator.WithHorizonMonths(goal.HorizonMonths))
	if err != nil {
		return mapCalculatorError(err)
	}
	s.store(ctx, s.cacheKey(cacheKindSavingsGoal, goal), savings)

	return nil
}

func (s *PlannerService) resolveDebtRequest(request *domain.DebtPayoffRequest) (*debtPlanInputs, error) {
	if request == nil {
		return nil, customError.WrapInvalidParameter(errors.New("debt payoff request is required"))
	}

	extra := s.config.GetDefaultExtraPayment().InexactFloat64()
	if request.ExtraPayment != nil {
		extra = *request.ExtraPayment
	}

	method := request.Method
	if method == "" {
		method = domain.PayoffAvalanche
	}

	start := s.now()
	if request.StartDate != nil {
		start = *request.StartDate
	}

	return &debtPlanInputs{
		Debts:        request.Debts,
		ExtraPayment: extra,
		Method:       method,
		StartDate:    start,
		MaxMonths:    s.config.Business.MaxPayoffMonths,
	}, nil
}

// cacheKey returns "" when caching is off or the inputs cannot be keyed
func (s *PlannerService) cacheKey(kind string, inputs interface{}) string {
	if s.cache == nil {
		return ""
	}
	key, err := utils.CacheKey(kind, inputs)
	if err != nil {
		log.Printf("Cache key for %s: %v", kind, err)
		return ""
	}
	return key
}

// lookup decodes a cached result into out. Cache failures are logged and treated as misses.
func (s *PlannerService) lookup(ctx context.Context, key string, out interface{}) bool {
	if key == "" {
		return false
	}

	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, repository.ErrCacheMiss) {
			log.Printf("Cache get %s: %v", key, customError.WrapCacheError(err))
		}
		return false
	}

	if err := json.Unmarshal(raw, out); err != nil {
		log.Printf("Cache decode %s: %v", key, err)
		return false
	}
	return true
}

func (s *PlannerService) store(ctx context.Context, key string, value interface{}) {
	if key == "" {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		log.Printf("Cache encode %s: %v", key, err)
		return
	}

	if err := s.cache.Set(ctx, key, raw, s.config.GetCacheTTL()); err != nil {
		log.Printf("Cache set %s: %v", key, customError.WrapCacheError(err))
	}
}

func mapCalculatorError(err error) error {
	switch {
	case errors.Is(err, calculator.ErrNoDebts):
		return customError.WrapNoDebts(err)
	case errors.Is(err, calculator.ErrMinimumPaymentTooLow):
		return customError.WrapMinimumPaymentTooLow(err)
	case errors.Is(err, calculator.ErrInvalidParameter):
		return customError.WrapInvalidParameter(err)
	default:
		return err
	}
}

func mapRepositoryError(err error, id uuid.UUID) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return customError.WrapScenarioNotFound(id.String())
	case errors.Is(err, repository.ErrSeal):
		return customError.WrapEncryptionError(err)
	default:
		return customError.WrapDatabaseError(err)
	}
}
