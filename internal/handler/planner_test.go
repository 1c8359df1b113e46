package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/segyhp/finance-planner/internal/domain"
	"github.com/segyhp/finance-planner/internal/handler"
	"github.com/segyhp/finance-planner/internal/mocks"
	customError "github.com/segyhp/finance-planner/pkg/errors"
)

type envelope struct {
	Success bool            `json:"success"`
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func newRouter(h *handler.PlannerHandler) *mux.Router {
	router := mux.NewRouter()
	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/debts/payoff", h.PlanDebtPayoff).Methods("POST")
	api.HandleFunc("/debts/compare", h.CompareDebtStrategies).Methods("POST")
	api.HandleFunc("/investments/projection", h.ProjectInvestment).Methods("POST")
	api.HandleFunc("/savings/goal", h.PlanSavingsGoal).Methods("POST")
	api.HandleFunc("/net-worth", h.SummarizeNetWorth).Methods("POST")
	api.HandleFunc("/budgets/review", h.ReviewBudget).Methods("POST")
	api.HandleFunc("/scenarios", h.SaveScenario).Methods("POST")
	api.HandleFunc("/scenarios", h.ListScenarios).Methods("GET")
	api.HandleFunc("/scenarios/{scenarioId}", h.GetScenario).Methods("GET")
	api.HandleFunc("/scenarios/{scenarioId}", h.DeleteScenario).Methods("DELETE")
	return router
}

func doRequest(t *testing.T, router http.Handler, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestPlannerHandler_PlanDebtPayoff(t *testing.T) {
	debts := []domain.Debt{
		{ID: "card", Name: "Card", Balance: 1000, InterestRate: 20, MinimumPayment: 50},
	}

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(*mocks.MockPlannerService)
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "rounds money to cents",
			body: domain.DebtPayoffRequest{Debts: debts, Method: domain.PayoffAvalanche},
			setupMock: func(m *mocks.MockPlannerService) {
				m.On("PlanDebtPayoff", mock.Anything, mock.MatchedBy(func(req *domain.DebtPayoffRequest) bool {
					return len(req.Debts) == 1 && req.Method == domain.PayoffAvalanche && req.ExtraPayment == nil
				})).Return(&domain.DebtPayoffResponse{
					Plan: &domain.DebtPayoffPlan{
						Method:            domain.PayoffAvalanche,
						TotalMonths:       24,
						TotalPaid:         1228.456,
						TotalInterestPaid: 228.456,
						PaidOff:           true,
					},
					PayoffMonths:   map[string]int{"card": 24},
					InterestByDebt: map[string]float64{"card": 228.456},
				}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				env := decodeEnvelope(t, w)
				assert.True(t, env.Success)

				var resp domain.DebtPayoffResponse
				require.NoError(t, json.Unmarshal(env.Data, &resp))
				assert.Equal(t, 1228.46, resp.Plan.TotalPaid)
				assert.Equal(t, 228.46, resp.Plan.TotalInterestPaid)
				assert.Equal(t, 228.46, resp.InterestByDebt["card"])
				assert.Equal(t, 24, resp.PayoffMonths["card"])
			},
		},
		{
			name:           "malformed json",
			body:           `{"debts": [`,
			setupMock:      func(m *mocks.MockPlannerService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown field",
			body:           `{"debts": [], "bogus": 1}`,
			setupMock:      func(m *mocks.MockPlannerService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown method fails validation",
			body:           domain.DebtPayoffRequest{Debts: debts, Method: "fastest"},
			setupMock:      func(m *mocks.MockPlannerService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "no debts maps to bad request",
			body: domain.DebtPayoffRequest{},
			setupMock: func(m *mocks.MockPlannerService) {
				m.On("PlanDebtPayoff", mock.Anything, mock.Anything).
					Return(nil, customError.WrapNoDebts(errors.New("no debts"))).Once()
			},
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				env := decodeEnvelope(t, w)
				assert.False(t, env.Success)
				assert.Equal(t, customError.ErrCodeNoDebts, env.Code)
				assert.Equal(t, "At least one debt is required", env.Message)
			},
		},
		{
			name: "minimum payment too low maps to bad request",
			body: domain.DebtPayoffRequest{Debts: debts},
			setupMock: func(m *mocks.MockPlannerService) {
				m.On("PlanDebtPayoff", mock.Anything, mock.Anything).
					Return(nil, customError.WrapMinimumPaymentTooLow(errors.New("card"))).Once()
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unexpected error is a 500",
			body: domain.DebtPayoffRequest{Debts: debts},
			setupMock: func(m *mocks.MockPlannerService) {
				m.On("PlanDebtPayoff", mock.Anything, mock.Anything).
					Return(nil, errors.New("boom")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.NotContains(t, w.Body.String(), "boom")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := mocks.NewMockPlannerService()
			tt.setupMock(mockService)
			router := newRouter(handler.NewPlannerHandler(mockService))

			w := doRequest(t, router, http.MethodPost, "/api/v1/debts/payoff", tt.body, nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestPlannerHandler_CompareDebtStrategies(t *testing.T) {
	mockService := mocks.NewMockPlannerService()
	mockService.On("CompareDebtStrategies", mock.Anything, mock.Anything).Return(&domain.StrategyComparison{
		Avalanche:     &domain.DebtPayoffPlan{Method: domain.PayoffAvalanche, TotalInterestPaid: 100.004},
		Snowball:      &domain.DebtPayoffPlan{Method: domain.PayoffSnowball, TotalInterestPaid: 120.336},
		InterestSaved: 20.332,
		MonthsSaved:   1,
		Recommended:   domain.PayoffAvalanche,
	}, nil).Once()

	router := newRouter(handler.NewPlannerHandler(mockService))
	body := domain.DebtPayoffRequest{Debts: []domain.Debt{
		{ID: "a", Name: "A", Balance: 500, InterestRate: 10, MinimumPayment: 25},
	}}

	w := doRequest(t, router, http.MethodPost, "/api/v1/debts/compare", body, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var comparison domain.StrategyComparison
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &comparison))
	assert.Equal(t, 20.33, comparison.InterestSaved)
	assert.Equal(t, 100.0, comparison.Avalanche.TotalInterestPaid)
	assert.Equal(t, 120.34, comparison.Snowball.TotalInterestPaid)
	assert.Equal(t, domain.PayoffAvalanche, comparison.Recommended)
	mockService.AssertExpectations(t)
}

func TestPlannerHandler_ProjectInvestment(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockService := mocks.NewMockPlannerService()
		mockService.On("ProjectInvestment", mock.Anything, mock.MatchedBy(func(p *domain.InvestmentParams) bool {
			return p.InvestmentLength == 30 && p.CompoundingFrequency == domain.CompoundMonthly
		})).Return(&domain.InvestmentResult{
			StartingAmount: 10000,
			FinalBalance:   689540.1234,
			Schedule: []*domain.YearlyBreakdown{
				{Year: 1, EndBalance: 16939.555},
			},
		}, nil).Once()

		router := newRouter(handler.NewPlannerHandler(mockService))
		w := doRequest(t, router, http.MethodPost, "/api/v1/investments/projection", domain.DefaultInvestmentParams(), nil)
		require.Equal(t, http.StatusOK, w.Code)

		var result domain.InvestmentResult
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &result))
		assert.Equal(t, 689540.12, result.FinalBalance)
		require.Len(t, result.Schedule, 1)
		assert.Equal(t, 16939.56, result.Schedule[0].EndBalance)
		mockService.AssertExpectations(t)
	})

	t.Run("missing enums fail validation", func(t *testing.T) {
		mockService := mocks.NewMockPlannerService()
		router := newRouter(handler.NewPlannerHandler(mockService))

		w := doRequest(t, router, http.MethodPost, "/api/v1/investments/projection",
			domain.InvestmentParams{StartingAmount: 100, InvestmentLength: 5}, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "ProjectInvestment", mock.Anything, mock.Anything)
	})

	t.Run("return rate outside 0 to 100 fails validation", func(t *testing.T) {
		for _, rate := range []float64{-5, 1e7} {
			mockService := mocks.NewMockPlannerService()
			router := newRouter(handler.NewPlannerHandler(mockService))

			params := domain.DefaultInvestmentParams()
			params.StartingAmount = 1e6
			params.InvestmentLength = 100
			params.AnnualReturnRate = rate

			w := doRequest(t, router, http.MethodPost, "/api/v1/investments/projection", params, nil)

			assert.Equal(t, http.StatusBadRequest, w.Code, "rate %v", rate)
			mockService.AssertNotCalled(t, "ProjectInvestment", mock.Anything, mock.Anything)
		}
	})

	t.Run("overflow from the service is a 400", func(t *testing.T) {
		mockService := mocks.NewMockPlannerService()
		mockService.On("ProjectInvestment", mock.Anything, mock.Anything).
			Return(nil, customError.WrapInvalidParameter(errors.New("finalBalance exceeds the representable range"))).Once()
		router := newRouter(handler.NewPlannerHandler(mockService))

		w := doRequest(t, router, http.MethodPost, "/api/v1/investments/projection", domain.DefaultInvestmentParams(), nil)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, customError.ErrCodeInvalidParameter, decodeEnvelope(t, w).Code)
		mockService.AssertExpectations(t)
	})
}

func TestPlannerHandler_PlanSavingsGoal(t *testing.T) {
	mockService := mocks.NewMockPlannerService()
	mockService.On("PlanSavingsGoal", mock.Anything, mock.Anything).Return(&domain.SavingsGoalResult{
		GoalReached:      true,
		TimeToGoalMonths: 45,
		TimeToGoalWeeks:  195.64,
		TimeToGoalDays:   1369.49,
		FinalAmount:      10000.001,
	}, nil).Once()

	router := newRouter(handler.NewPlannerHandler(mockService))
	w := doRequest(t, router, http.MethodPost, "/api/v1/savings/goal", domain.DefaultSavingsGoal(), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var result domain.SavingsGoalResult
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &result))
	assert.True(t, result.GoalReached)
	assert.Equal(t, 195.6, result.TimeToGoalWeeks)
	assert.Equal(t, 1369.0, result.TimeToGoalDays)
	assert.Equal(t, 10000.0, result.FinalAmount)
	mockService.AssertExpectations(t)
}

func TestPlannerHandler_SummarizeNetWorth(t *testing.T) {
	mockService := mocks.NewMockPlannerService()
	mockService.On("SummarizeNetWorth", mock.Anything, mock.Anything).Return(&domain.NetWorthSummary{
		NetWorth:         1500.555,
		TotalAssets:      2000,
		TotalLiabilities: 499.445,
		PeriodChange:     domain.PeriodChange{Amount: 100.111, Percentage: 7.1},
	}, nil).Once()

	router := newRouter(handler.NewPlannerHandler(mockService))
	body := domain.NetWorthRequest{
		Accounts: []domain.Account{{ID: "chk", Name: "Checking", Balance: 2000}},
	}

	w := doRequest(t, router, http.MethodPost, "/api/v1/net-worth", body, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var summary domain.NetWorthSummary
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &summary))
	assert.Equal(t, 1500.56, summary.NetWorth)
	assert.Equal(t, 499.45, summary.TotalLiabilities)
	assert.Equal(t, 100.11, summary.PeriodChange.Amount)
	assert.Equal(t, 7.1, summary.PeriodChange.Percentage)
	mockService.AssertExpectations(t)
}

func TestPlannerHandler_ReviewBudget(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(*mocks.MockPlannerService)
		expectedStatus int
		expectedCode   string
		validate       func(*testing.T, *domain.BudgetSummary)
	}{
		{
			name: "Success",
			body: domain.DefaultBudgetReview("2025-03"),
			setupMock: func(m *mocks.MockPlannerService) {
				m.On("ReviewBudget", mock.Anything, mock.MatchedBy(func(r *domain.BudgetReview) bool {
					return r.Month == "2025-03" && len(r.Categories) == 10
				})).Return(&domain.BudgetSummary{
					Month: "2025-03",
					Categories: []*domain.BudgetCategorySummary{
						{ID: "2", Name: "Groceries", Budgeted: 600, Actual: 720.499, Difference: -120.499, OverBudget: true},
					},
					TotalBudgeted:   4000,
					TotalActual:     4160.005,
					TotalDifference: -160.005,
					OverBudgetCount: 1,
					Editable:        true,
				}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, summary *domain.BudgetSummary) {
				assert.Equal(t, 4160.01, summary.TotalActual)
				assert.Equal(t, -160.01, summary.TotalDifference)
				require.Len(t, summary.Categories, 1)
				assert.Equal(t, -120.5, summary.Categories[0].Difference)
				assert.True(t, summary.Categories[0].OverBudget)
				assert.True(t, summary.Editable)
			},
		},
		{
			name: "Validation - malformed month",
			body: map[string]interface{}{
				"month":          "03/2025",
				"monthly_income": 5000,
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Validation - category without a name",
			body: map[string]interface{}{
				"month":      "2025-03",
				"categories": []map[string]interface{}{{"id": "1", "budgeted": 100}},
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Validation - negative actual",
			body: map[string]interface{}{
				"month":      "2025-03",
				"categories": []map[string]interface{}{{"id": "1", "name": "Rent", "budgeted": 100, "actual": -1}},
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Service rejects future month",
			body: domain.DefaultBudgetReview("2099-01"),
			setupMock: func(m *mocks.MockPlannerService) {
				m.On("ReviewBudget", mock.Anything, mock.Anything).
					Return(nil, customError.WrapInvalidParameter(errors.New("month must not be in the future"))).Once()
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   customError.ErrCodeInvalidParameter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := mocks.NewMockPlannerService()
			if tt.setupMock != nil {
				tt.setupMock(mockService)
			}
			router := newRouter(handler.NewPlannerHandler(mockService))

			w := doRequest(t, router, http.MethodPost, "/api/v1/budgets/review", tt.body, nil)
			require.Equal(t, tt.expectedStatus, w.Code)

			env := decodeEnvelope(t, w)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, env.Code)
			}
			if tt.validate != nil {
				var summary domain.BudgetSummary
				require.NoError(t, json.Unmarshal(env.Data, &summary))
				tt.validate(t, &summary)
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestPlannerHandler_Scenarios(t *testing.T) {
	userHeader := map[string]string{handler.UserIDHeader: "user-1"}
	id := uuid.New()
	stored := &domain.Scenario{
		ID:        id,
		UserID:    "user-1",
		Kind:      domain.ScenarioKindInvestment,
		Name:      "retirement",
		Inputs:    json.RawMessage(`{"starting_amount":10000}`),
		Result:    json.RawMessage(`{"final_balance":1}`),
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	t.Run("save requires user", func(t *testing.T) {
		mockService := mocks.NewMockPlannerService()
		router := newRouter(handler.NewPlannerHandler(mockService))

		w := doRequest(t, router, http.MethodPost, "/api/v1/scenarios", domain.SaveScenarioRequest{
			Name: "retirement", Kind: domain.ScenarioKindInvestment, Investment: domain.DefaultInvestmentParams(),
		}, nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		mockService.AssertNotCalled(t, "SaveScenario", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("save created", func(t *testing.T) {
		mockService := mocks.NewMockPlannerService()
		mockService.On("SaveScenario", mock.Anything, "user-1", mock.MatchedBy(func(req *domain.SaveScenarioRequest) bool {
			return req.Name == "retirement" && req.Investment != nil
		})).Return(stored, nil).Once()
		router := newRouter(handler.NewPlannerHandler(mockService))

		w := doRequest(t, router, http.MethodPost, "/api/v1/scenarios", domain.SaveScenarioRequest{
			Name: "retirement", Kind: domain.ScenarioKindInvestment, Investment: domain.DefaultInvestmentParams(),
		}, userHeader)

		require.Equal(t, http.StatusCreated, w.Code)
		var scenario domain.Scenario
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &scenario))
		assert.Equal(t, id, scenario.ID)
		assert.JSONEq(t, `{"starting_amount":10000}`, string(scenario.Inputs))
		mockService.AssertExpectations(t)
	})

	t.Run("save without payload for kind", func(t *testing.T) {
		mockService := mocks.NewMockPlannerService()
		router := newRouter(handler.NewPlannerHandler(mockService))

		w := doRequest(t, router, http.MethodPost, "/api/v1/scenarios", domain.SaveScenarioRequest{
			Name: "retirement", Kind: domain.ScenarioKindInvestment,
		}, userHeader)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("list", func(t *testing.T) {
		mockService := mocks.NewMockPlannerService()
		mockService.On("ListScenarios", mock.Anything, "user-1").Return([]*domain.Scenario{stored}, nil).Once()
		router := newRouter(handler.NewPlannerHandler(mockService))

		w := doRequest(t, router, http.MethodGet, "/api/v1/scenarios", nil, userHeader)

		require.Equal(t, http.StatusOK, w.Code)
		var scenarios []domain.Scenario
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &scenarios))
		assert.Len(t, scenarios, 1)
		mockService.AssertExpectations(t)
	})

	t.Run("get", func(t *testing.T) {
		mockService := mocks.NewMockPlannerService()
		mockService.On("GetScenario", mock.Anything, "user-1", id).Return(stored, nil).Once()
		router := newRouter(handler.NewPlannerHandler(mockService))

		w := doRequest(t, router, http.MethodGet, "/api/v1/scenarios/"+id.String(), nil, userHeader)

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("get not found", func(t *testing.T) {
		mockService := mocks.NewMockPlannerService()
		mockService.On("GetScenario", mock.Anything, "user-1", id).
			Return(nil, customError.WrapScenarioNotFound(id.String())).Once()
		router := newRouter(handler.NewPlannerHandler(mockService))

		w := doRequest(t, router, http.MethodGet, "/api/v1/scenarios/"+id.String(), nil, userHeader)

		assert.Equal(t, http.StatusNotFound, w.Code)
		env := decodeEnvelope(t, w)
		assert.Equal(t, customError.ErrCodeScenarioNotFound, env.Code)
		assert.Contains(t, env.Message, id.String())
	})

	t.Run("get invalid id", func(t *testing.T) {
		mockService := mocks.NewMockPlannerService()
		router := newRouter(handler.NewPlannerHandler(mockService))

		w := doRequest(t, router, http.MethodGet, "/api/v1/scenarios/not-a-uuid", nil, userHeader)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "GetScenario", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("delete", func(t *testing.T) {
		mockService := mocks.NewMockPlannerService()
		mockService.On("DeleteScenario", mock.Anything, "user-1", id).Return(nil).Once()
		router := newRouter(handler.NewPlannerHandler(mockService))

		w := doRequest(t, router, http.MethodDelete, "/api/v1/scenarios/"+id.String(), nil, userHeader)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
		mockService.AssertExpectations(t)
	})

	t.Run("storage failure hides details", func(t *testing.T) {
		mockService := mocks.NewMockPlannerService()
		mockService.On("DeleteScenario", mock.Anything, "user-1", id).
			Return(customError.WrapDatabaseError(errors.New("connection refused"))).Once()
		router := newRouter(handler.NewPlannerHandler(mockService))

		w := doRequest(t, router, http.MethodDelete, "/api/v1/scenarios/"+id.String(), nil, userHeader)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "connection refused")
		assert.Equal(t, customError.ErrCodeDatabaseError, decodeEnvelope(t, w).Code)
	})
}
