package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Scenario kinds
const (
	ScenarioKindDebtPayoff   = "debt_payoff"
	ScenarioKindInvestment   = "investment"
	ScenarioKindSavingsGoal  = "savings_goal"
	ScenarioKindBudgetReview = "budget_review"
)

// Scenario is a saved calculation: the inputs a user entered and the result they produced
type Scenario struct {
	ID        uuid.UUID       `json:"id" db:"id"`
	UserID    string          `json:"user_id" db:"user_id"`
	Kind      string          `json:"kind" db:"kind"`
	Name      string          `json:"name" db:"name"`
	Inputs    json.RawMessage `json:"inputs" db:"-"`
	Result    json.RawMessage `json:"result" db:"-"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt time.Time       `json:"updated_at" db:"updated_at"`
}

// ScenarioPayload is the stored body of a scenario
type ScenarioPayload struct {
	Inputs json.RawMessage `json:"inputs"`
	Result json.RawMessage `json:"result"`
}

type SaveScenarioRequest struct {
	Name         string             `json:"name" validate:"required,max=120"`
	Kind         string             `json:"kind" validate:"required,oneof=debt_payoff investment savings_goal budget_review"`
	DebtPayoff   *DebtPayoffRequest `json:"debt_payoff,omitempty" validate:"required_if=Kind debt_payoff"`
	Investment   *InvestmentParams  `json:"investment,omitempty" validate:"required_if=Kind investment"`
	SavingsGoal  *SavingsGoalData   `json:"savings_goal,omitempty" validate:"required_if=Kind savings_goal"`
	BudgetReview *BudgetReview      `json:"budget_review,omitempty" validate:"required_if=Kind budget_review"`
}
