package domain

import (
	"time"
)

// DebtType is an informational tag; it does not affect the simulation.
type DebtType string

const (
	DebtTypeCreditCard   DebtType = "credit-card"
	DebtTypeStudentLoan  DebtType = "student-loan"
	DebtTypeMortgage     DebtType = "mortgage"
	DebtTypePersonalLoan DebtType = "personal-loan"
	DebtTypeAutoLoan     DebtType = "auto-loan"
	DebtTypeOther        DebtType = "other"
)

// PayoffMethod selects the order in which extra payments are applied
type PayoffMethod string

const (
	// PayoffAvalanche pays the highest interest rate first
	PayoffAvalanche PayoffMethod = "avalanche"
	// PayoffSnowball pays the lowest balance first
	PayoffSnowball PayoffMethod = "snowball"
)

// Valid reports whether m is a known payoff method
func (m PayoffMethod) Valid() bool {
	return m == PayoffAvalanche || m == PayoffSnowball
}

// Debt represents one liability being paid down
type Debt struct {
	ID             string   `json:"id" validate:"required"`
	Name           string   `json:"name" validate:"required"`
	Balance        float64  `json:"balance" validate:"gte=0"`
	InterestRate   float64  `json:"interest_rate" validate:"gte=0,lte=100"`
	MinimumPayment float64  `json:"minimum_payment" validate:"gt=0"`
	Type           DebtType `json:"type" validate:"omitempty,oneof=credit-card student-loan mortgage personal-loan auto-loan other"`
}

// DebtPayment is the per-debt breakdown of a simulated month
type DebtPayment struct {
	DebtID           string  `json:"debt_id"`
	PaymentAmount    float64 `json:"payment_amount"`
	PrincipalAmount  float64 `json:"principal_amount"`
	InterestAmount   float64 `json:"interest_amount"`
	RemainingBalance float64 `json:"remaining_balance"`
	IsPaidOff        bool    `json:"is_paid_off"`
}

// MonthlyPayment is one simulated month of a payoff plan
type MonthlyPayment struct {
	Month          int            `json:"month"`
	Date           time.Time      `json:"date"`
	DebtPayments   []*DebtPayment `json:"debt_payments"`
	TotalPayment   float64        `json:"total_payment"`
	TotalPrincipal float64        `json:"total_principal"`
	TotalInterest  float64        `json:"total_interest"`
	RemainingDebts int            `json:"remaining_debts"`
}

// DebtPayoffPlan is the result of one payoff simulation.
// PaidOff is false when the simulation stopped at the month cap with debts outstanding.
type DebtPayoffPlan struct {
	Method            PayoffMethod      `json:"method"`
	TotalMonths       int               `json:"total_months"`
	TotalPaid         float64           `json:"total_paid"`
	TotalInterestPaid float64           `json:"total_interest_paid"`
	PaidOff           bool              `json:"paid_off"`
	MonthlyPayments   []*MonthlyPayment `json:"monthly_payments"`
	PayoffOrder       []Debt            `json:"payoff_order"`
	OriginalDebts     []Debt            `json:"original_debts"`
}

// StrategyComparison runs both methods over the same debts
type StrategyComparison struct {
	Avalanche     *DebtPayoffPlan `json:"avalanche"`
	Snowball      *DebtPayoffPlan `json:"snowball"`
	InterestSaved float64         `json:"interest_saved"`
	MonthsSaved   int             `json:"months_saved"`
	Recommended   PayoffMethod    `json:"recommended"`
}

// DTOs for requests and responses

// DebtPayoffRequest leaves ExtraPayment nil to use the configured default
type DebtPayoffRequest struct {
	Debts        []Debt       `json:"debts" validate:"dive"`
	ExtraPayment *float64     `json:"extra_payment,omitempty" validate:"omitempty,gte=0"`
	Method       PayoffMethod `json:"method" validate:"omitempty,oneof=avalanche snowball"`
	StartDate    *time.Time   `json:"start_date,omitempty"`
}

type DebtPayoffResponse struct {
	Plan           *DebtPayoffPlan    `json:"plan"`
	PayoffMonths   map[string]int     `json:"payoff_months"`
	InterestByDebt map[string]float64 `json:"interest_by_debt"`
}
