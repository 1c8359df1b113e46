package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/segyhp/finance-planner/internal/domain"
)

func TestRoundDebtPlan(t *testing.T) {
	plan := &domain.DebtPayoffPlan{
		TotalPaid: 1050.005,
		MonthlyPayments: []*domain.MonthlyPayment{
			{
				TotalPayment: 100.126,
				DebtPayments: []*domain.DebtPayment{
					{PaymentAmount: 100.126, InterestAmount: 0.333, RemainingBalance: 899.999},
				},
			},
		},
	}

	roundDebtPlan(plan)

	assert.Equal(t, 1050.01, plan.TotalPaid)
	assert.Equal(t, 100.13, plan.MonthlyPayments[0].TotalPayment)
	dp := plan.MonthlyPayments[0].DebtPayments[0]
	assert.Equal(t, 100.13, dp.PaymentAmount)
	assert.Equal(t, 0.33, dp.InterestAmount)
	assert.Equal(t, 900.0, dp.RemainingBalance)
}

func TestRoundingNilSafe(t *testing.T) {
	assert.NotPanics(t, func() {
		roundDebtPlan(nil)
		roundDebtPayoffResponse(nil)
		roundDebtPayoffResponse(&domain.DebtPayoffResponse{})
		roundStrategyComparison(nil)
		roundInvestmentResult(nil)
		roundSavingsGoalResult(nil)
		roundNetWorthSummary(nil)
	})
}

func TestRoundSavingsGoalResult(t *testing.T) {
	result := &domain.SavingsGoalResult{
		TimeToGoalWeeks: 12.345,
		TimeToGoalDays:  86.5,
		ComparisonTable: domain.ContributionComparison{Daily: 6.5753, Monthly: 200},
		MonthlyBreakdown: []*domain.MonthlyBreakdown{
			{Month: 1, Balance: 1202.499, Interest: 2.499},
		},
	}

	roundSavingsGoalResult(result)

	assert.Equal(t, 12.3, result.TimeToGoalWeeks)
	assert.Equal(t, 87.0, result.TimeToGoalDays)
	assert.Equal(t, 6.58, result.ComparisonTable.Daily)
	assert.Equal(t, 1202.5, result.MonthlyBreakdown[0].Balance)
	assert.Equal(t, 2.5, result.MonthlyBreakdown[0].Interest)
}

func TestRoundBudgetSummary(t *testing.T) {
	summary := &domain.BudgetSummary{
		MonthlyIncome:   5000.004,
		RemainingBudget: -75.555,
		Categories: []*domain.BudgetCategorySummary{
			{Budgeted: 99.999, Actual: 0.125, Difference: 99.874},
		},
	}

	roundBudgetSummary(summary)
	roundBudgetSummary(nil)

	assert.Equal(t, 5000.0, summary.MonthlyIncome)
	assert.Equal(t, -75.56, summary.RemainingBudget)
	assert.Equal(t, 100.0, summary.Categories[0].Budgeted)
	assert.Equal(t, 0.13, summary.Categories[0].Actual)
	assert.Equal(t, 99.87, summary.Categories[0].Difference)
}
