package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/segyhp/finance-planner/internal/domain"
	customError "github.com/segyhp/finance-planner/pkg/errors"
	"github.com/segyhp/finance-planner/pkg/response"
)

// UserIDHeader carries the caller's user id; scenarios are scoped to it
const UserIDHeader = "X-User-ID"

// PlannerService is the subset of the planner the HTTP layer needs
type PlannerService interface {
	PlanDebtPayoff(ctx context.Context, request *domain.DebtPayoffRequest) (*domain.DebtPayoffResponse, error)
	CompareDebtStrategies(ctx context.Context, request *domain.DebtPayoffRequest) (*domain.StrategyComparison, error)
	ProjectInvestment(ctx context.Context, params *domain.InvestmentParams) (*domain.InvestmentResult, error)
	PlanSavingsGoal(ctx context.Context, data *domain.SavingsGoalData) (*domain.SavingsGoalResult, error)
	SummarizeNetWorth(ctx context.Context, request *domain.NetWorthRequest) (*domain.NetWorthSummary, error)
	ReviewBudget(ctx context.Context, review *domain.BudgetReview) (*domain.BudgetSummary, error)
	SaveScenario(ctx context.Context, userID string, request *domain.SaveScenarioRequest) (*domain.Scenario, error)
	GetScenario(ctx context.Context, userID string, id uuid.UUID) (*domain.Scenario, error)
	ListScenarios(ctx context.Context, userID string) ([]*domain.Scenario, error)
	DeleteScenario(ctx context.Context, userID string, id uuid.UUID) error
}

type PlannerHandler struct {
	service   PlannerService
	validator *validator.Validate
}

func NewPlannerHandler(service PlannerService) *PlannerHandler {
	return &PlannerHandler{
		service:   service,
		validator: validator.New(),
	}
}

// PlanDebtPayoff handles POST /debts/payoff
func (h *PlannerHandler) PlanDebtPayoff(w http.ResponseWriter, r *http.Request) {
	var request domain.DebtPayoffRequest
	if !h.decode(w, r, &request) {
		return
	}

	result, err := h.service.PlanDebtPayoff(r.Context(), &request)
	if err != nil {
		h.handleError(w, err)
		return
	}

	roundDebtPayoffResponse(result)
	response.Success(w, result)
}

// CompareDebtStrategies handles POST /debts/compare
func (h *PlannerHandler) CompareDebtStrategies(w http.ResponseWriter, r *http.Request) {
	var request domain.DebtPayoffRequest
	if !h.decode(w, r, &request) {
		return
	}

	comparison, err := h.service.CompareDebtStrategies(r.Context(), &request)
	if err != nil {
		h.handleError(w, err)
		return
	}

	roundStrategyComparison(comparison)
	response.Success(w, comparison)
}

// ProjectInvestment handles POST /investments/projection
func (h *PlannerHandler) ProjectInvestment(w http.ResponseWriter, r *http.Request) {
	var params domain.InvestmentParams
	if !h.decode(w, r, &params) {
		return
	}

	result, err := h.service.ProjectInvestment(r.Context(), &params)
	if err != nil {
		h.handleError(w, err)
		return
	}

	roundInvestmentResult(result)
	response.Success(w, result)
}

// PlanSavingsGoal handles POST /savings/goal
func (h *PlannerHandler) PlanSavingsGoal(w http.ResponseWriter, r *http.Request) {
	var data domain.SavingsGoalData
	if !h.decode(w, r, &data) {
		return
	}

	result, err := h.service.PlanSavingsGoal(r.Context(), &data)
	if err != nil {
		h.handleError(w, err)
		return
	}

	roundSavingsGoalResult(result)
	response.Success(w, result)
}

// SummarizeNetWorth handles POST /net-worth
func (h *PlannerHandler) SummarizeNetWorth(w http.ResponseWriter, r *http.Request) {
	var request domain.NetWorthRequest
	if !h.decode(w, r, &request) {
		return
	}

	summary, err := h.service.SummarizeNetWorth(r.Context(), &request)
	if err != nil {
		h.handleError(w, err)
		return
	}

	roundNetWorthSummary(summary)
	response.Success(w, summary)
}

// ReviewBudget handles POST /budgets/review
func (h *PlannerHandler) ReviewBudget(w http.ResponseWriter, r *http.Request) {
	var review domain.BudgetReview
	if !h.decode(w, r, &review) {
		return
	}

	summary, err := h.service.ReviewBudget(r.Context(), &review)
	if err != nil {
		h.handleError(w, err)
		return
	}

	roundBudgetSummary(summary)
	response.Success(w, summary)
}

// SaveScenario handles POST /scenarios
func (h *PlannerHandler) SaveScenario(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var request domain.SaveScenarioRequest
	if !h.decode(w, r, &request) {
		return
	}

	scenario, err := h.service.SaveScenario(r.Context(), userID, &request)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Created(w, scenario)
}

// ListScenarios handles GET /scenarios
func (h *PlannerHandler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	scenarios, err := h.service.ListScenarios(r.Context(), userID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, scenarios)
}

// GetScenario handles GET /scenarios/{scenarioId}
func (h *PlannerHandler) GetScenario(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	id, ok := scenarioID(w, r)
	if !ok {
		return
	}

	scenario, err := h.service.GetScenario(r.Context(), userID, id)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, scenario)
}

// DeleteScenario handles DELETE /scenarios/{scenarioId}
func (h *PlannerHandler) DeleteScenario(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	id, ok := scenarioID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteScenario(r.Context(), userID, id); err != nil {
		h.handleError(w, err)
		return
	}

	response.NoContent(w)
}

// decode reads and validates a JSON body, writing a 400 on failure
func (h *PlannerHandler) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		response.BadRequest(w, "Invalid request body", err)
		return false
	}

	if err := h.validator.Struct(dst); err != nil {
		response.BadRequest(w, "Validation failed", err)
		return false
	}

	return true
}

func (h *PlannerHandler) handleError(w http.ResponseWriter, err error) {
	var be *customError.BusinessError
	if !errors.As(err, &be) {
		log.Printf("Unexpected error: %v", err)
		response.InternalServerError(w, "Internal server error", nil)
		return
	}

	switch be.Code {
	case customError.ErrCodeInvalidParameter,
		customError.ErrCodeNoDebts,
		customError.ErrCodeMinimumPaymentTooLow,
		customError.ErrCodeUnsupportedScenario:
		response.Fail(w, http.StatusBadRequest, be.Code, be.Message, be.Err)
	case customError.ErrCodeScenarioNotFound:
		response.Fail(w, http.StatusNotFound, be.Code, be.Message, nil)
	default:
		log.Printf("Request failed: %v", err)
		response.Fail(w, http.StatusInternalServerError, be.Code, be.Message, nil)
	}
}

func requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := r.Header.Get(UserIDHeader)
	if userID == "" {
		response.Unauthorized(w, UserIDHeader+" header is required")
		return "", false
	}
	return userID, true
}

func scenarioID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["scenarioId"])
	if err != nil {
		response.BadRequest(w, "Invalid scenario id", err)
		return uuid.Nil, false
	}
	return id, true
}
