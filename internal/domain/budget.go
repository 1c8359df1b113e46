package domain

// BudgetMonthLayout is the format of BudgetReview.Month
const BudgetMonthLayout = "2006-01"

// BudgetCategory is one spending line of a monthly budget. An empty ID marks a
// category added in this review.
type BudgetCategory struct {
	ID       string  `json:"id,omitempty"`
	Name     string  `json:"name" validate:"required,max=80"`
	Budgeted float64 `json:"budgeted" validate:"gte=0"`
	Actual   float64 `json:"actual" validate:"gte=0"`
}

type BudgetReview struct {
	Month         string           `json:"month" validate:"required,datetime=2006-01"`
	MonthlyIncome float64          `json:"monthly_income" validate:"gte=0"`
	SavingsGoal   float64          `json:"savings_goal" validate:"gte=0"`
	SpendingGoal  float64          `json:"spending_goal" validate:"gte=0"`
	Categories    []BudgetCategory `json:"categories" validate:"dive"`
}

// BudgetCategorySummary compares one category's plan with its spending.
// A negative Difference means the category is over budget.
type BudgetCategorySummary struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Budgeted   float64 `json:"budgeted"`
	Actual     float64 `json:"actual"`
	Difference float64 `json:"difference"`
	OverBudget bool    `json:"over_budget"`
}

type BudgetSummary struct {
	Month           string                   `json:"month"`
	MonthlyIncome   float64                  `json:"monthly_income"`
	SavingsGoal     float64                  `json:"savings_goal"`
	SpendingGoal    float64                  `json:"spending_goal"`
	Categories      []*BudgetCategorySummary `json:"categories"`
	TotalBudgeted   float64                  `json:"total_budgeted"`
	TotalActual     float64                  `json:"total_actual"`
	TotalDifference float64                  `json:"total_difference"`
	RemainingBudget float64                  `json:"remaining_budget"`
	OverBudgetCount int                      `json:"over_budget_count"`
	// Editable is false for past months; only the current month's budget can be saved
	Editable bool `json:"editable"`
}

// DefaultBudgetReview is the budget shown for a month with no saved data
func DefaultBudgetReview(month string) *BudgetReview {
	return &BudgetReview{
		Month:         month,
		MonthlyIncome: 5000,
		SavingsGoal:   1000,
		SpendingGoal:  4000,
		Categories: []BudgetCategory{
			{ID: "1", Name: "Housing", Budgeted: 1500, Actual: 1450},
			{ID: "2", Name: "Groceries", Budgeted: 600, Actual: 720},
			{ID: "3", Name: "Transportation", Budgeted: 400, Actual: 385},
			{ID: "4", Name: "Utilities", Budgeted: 300, Actual: 310},
			{ID: "5", Name: "Entertainment", Budgeted: 200, Actual: 275},
			{ID: "6", Name: "Dining Out", Budgeted: 300, Actual: 420},
			{ID: "7", Name: "Healthcare", Budgeted: 150, Actual: 95},
			{ID: "8", Name: "Personal Care", Budgeted: 100, Actual: 115},
			{ID: "9", Name: "Subscriptions", Budgeted: 50, Actual: 65},
			{ID: "10", Name: "Miscellaneous", Budgeted: 400, Actual: 325},
		},
	}
}
