package calculator

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/segyhp/finance-planner/internal/domain"
)

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func validateDebts(debts []domain.Debt, extraPayment float64, method domain.PayoffMethod) error {
	if len(debts) == 0 {
		return ErrNoDebts
	}
	if !method.Valid() {
		return invalid("method", "must be avalanche or snowball", method)
	}
	if !finite(extraPayment) || extraPayment < 0 {
		return invalid("extraPayment", "must be a non-negative amount", extraPayment)
	}

	seen := make(map[string]struct{}, len(debts))
	for i, debt := range debts {
		field := func(name string) string {
			return fmt.Sprintf("debts[%d].%s", i, name)
		}

		if debt.ID == "" {
			return invalid(field("id"), "is required", debt.ID)
		}
		if _, dup := seen[debt.ID]; dup {
			return invalid(field("id"), "must be unique", debt.ID)
		}
		seen[debt.ID] = struct{}{}

		if debt.Name == "" {
			return invalid(field("name"), "is required", debt.Name)
		}
		if !finite(debt.Balance) || debt.Balance < 0 {
			return invalid(field("balance"), "must be a non-negative amount", debt.Balance)
		}
		if !finite(debt.InterestRate) || debt.InterestRate < 0 || debt.InterestRate > 100 {
			return invalid(field("interestRate"), "must be between 0 and 100", debt.InterestRate)
		}
		if !finite(debt.MinimumPayment) || debt.MinimumPayment <= 0 {
			return invalid(field("minimumPayment"), "must be greater than 0", debt.MinimumPayment)
		}

		interest := debt.Balance * monthlyDebtRate(debt.InterestRate)
		if debt.Balance > 0 && debt.MinimumPayment <= interest {
			return &MinimumPaymentError{
				DebtID:          debt.ID,
				MinimumPayment:  debt.MinimumPayment,
				MonthlyInterest: interest,
			}
		}
	}

	return nil
}

func validateInvestment(params *domain.InvestmentParams) error {
	if params == nil {
		return invalid("params", "are required", nil)
	}
	if !finite(params.StartingAmount) || params.StartingAmount < 0 {
		return invalid("startingAmount", "must be a non-negative amount", params.StartingAmount)
	}
	if params.InvestmentLength < 1 {
		return invalid("investmentLength", "must be at least 1 year", params.InvestmentLength)
	}
	if !finite(params.AnnualReturnRate) || params.AnnualReturnRate < 0 || params.AnnualReturnRate > 100 {
		return invalid("annualReturnRate", "must be between 0 and 100", params.AnnualReturnRate)
	}
	if !finite(params.ContributionAmount) || params.ContributionAmount < 0 {
		return invalid("contributionAmount", "must be a non-negative amount", params.ContributionAmount)
	}
	if periodsPerYear(params.CompoundingFrequency) == 0 {
		return invalid("compoundingFrequency", "is not supported", params.CompoundingFrequency)
	}
	if contributionsPerYear(params.ContributionFrequency) == 0 {
		return invalid("contributionFrequency", "is not supported", params.ContributionFrequency)
	}
	if params.ContributionTiming != domain.TimingBeginning && params.ContributionTiming != domain.TimingEnd {
		return invalid("contributionTiming", "must be beginning or end", params.ContributionTiming)
	}
	return nil
}

func validateSavingsGoal(data *domain.SavingsGoalData) error {
	if data == nil {
		return invalid("data", "is required", nil)
	}
	if !finite(data.GoalAmount) || data.GoalAmount <= 0 {
		return invalid("goalAmount", "must be greater than 0", data.GoalAmount)
	}
	if !finite(data.InitialDeposit) || data.InitialDeposit < 0 {
		return invalid("initialDeposit", "must be a non-negative amount", data.InitialDeposit)
	}
	if !finite(data.ContributionAmount) || data.ContributionAmount < 0 {
		return invalid("contributionAmount", "must be a non-negative amount", data.ContributionAmount)
	}
	if !finite(data.InterestRate) || data.InterestRate < 0 || data.InterestRate > 100 {
		return invalid("interestRate", "must be between 0 and 100", data.InterestRate)
	}
	if _, ok := contributionsPerMonth[data.ContributionFrequency]; !ok {
		return invalid("contributionFrequency", "is not supported", data.ContributionFrequency)
	}
	switch data.CompoundingFrequency {
	case domain.CompoundDaily, domain.CompoundMonthly, domain.CompoundQuarterly, domain.CompoundAnnually:
	default:
		return invalid("compoundingFrequency", "is not supported", data.CompoundingFrequency)
	}
	return nil
}

// validateBudgetReview returns the first day of the review's month.
func validateBudgetReview(review *domain.BudgetReview) (time.Time, error) {
	if review == nil {
		return time.Time{}, invalid("review", "is required", nil)
	}

	month, err := time.Parse(domain.BudgetMonthLayout, review.Month)
	if err != nil {
		return time.Time{}, invalid("month", "must be formatted YYYY-MM", review.Month)
	}

	amounts := []struct {
		field string
		value float64
	}{
		{"monthlyIncome", review.MonthlyIncome},
		{"savingsGoal", review.SavingsGoal},
		{"spendingGoal", review.SpendingGoal},
	}
	for _, a := range amounts {
		if !finite(a.value) || a.value < 0 {
			return time.Time{}, invalid(a.field, "must be a non-negative amount", a.value)
		}
	}

	seen := make(map[string]struct{}, len(review.Categories))
	for i, category := range review.Categories {
		field := func(name string) string {
			return fmt.Sprintf("categories[%d].%s", i, name)
		}

		if strings.TrimSpace(category.Name) == "" {
			return time.Time{}, invalid(field("name"), "is required", category.Name)
		}
		if !finite(category.Budgeted) || category.Budgeted < 0 {
			return time.Time{}, invalid(field("budgeted"), "must be a non-negative amount", category.Budgeted)
		}
		if !finite(category.Actual) || category.Actual < 0 {
			return time.Time{}, invalid(field("actual"), "must be a non-negative amount", category.Actual)
		}

		// New categories must carry a budget
		if category.ID == "" {
			if category.Budgeted <= 0 {
				return time.Time{}, invalid(field("budgeted"), "must be greater than 0 for a new category", category.Budgeted)
			}
			continue
		}
		if _, dup := seen[category.ID]; dup {
			return time.Time{}, invalid(field("id"), "must be unique", category.ID)
		}
		seen[category.ID] = struct{}{}
	}

	return month, nil
}
