package calculator

import (
	"time"

	"github.com/segyhp/finance-planner/internal/domain"
)

// SummarizeBudget totals a month's budget against its actual spending.
//
// RemainingBudget is income left after the savings goal and every budgeted
// category. Months after the current one are rejected. Categories keep their
// input order.
func SummarizeBudget(review *domain.BudgetReview, opts ...Option) (*domain.BudgetSummary, error) {
	month, err := validateBudgetReview(review)
	if err != nil {
		return nil, err
	}
	o := newOptions(opts)

	current := monthStart(o.now())
	if month.After(current) {
		return nil, invalid("month", "must not be in the future", review.Month)
	}

	summary := &domain.BudgetSummary{
		Month:         review.Month,
		MonthlyIncome: review.MonthlyIncome,
		SavingsGoal:   review.SavingsGoal,
		SpendingGoal:  review.SpendingGoal,
		Categories:    make([]*domain.BudgetCategorySummary, 0, len(review.Categories)),
		Editable:      month.Equal(current),
	}

	for _, category := range review.Categories {
		difference := category.Budgeted - category.Actual
		line := &domain.BudgetCategorySummary{
			ID:         category.ID,
			Name:       category.Name,
			Budgeted:   category.Budgeted,
			Actual:     category.Actual,
			Difference: difference,
			OverBudget: difference < 0,
		}
		if line.OverBudget {
			summary.OverBudgetCount++
		}

		summary.TotalBudgeted += category.Budgeted
		summary.TotalActual += category.Actual
		summary.Categories = append(summary.Categories, line)
	}

	summary.TotalDifference = summary.TotalBudgeted - summary.TotalActual
	summary.RemainingBudget = review.MonthlyIncome - review.SavingsGoal - summary.TotalBudgeted

	if !finite(summary.TotalBudgeted) || !finite(summary.TotalActual) || !finite(summary.RemainingBudget) {
		return nil, invalid("categories", "totals exceed the representable range", summary.TotalBudgeted)
	}

	return summary, nil
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
