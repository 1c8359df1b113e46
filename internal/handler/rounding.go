package handler

import (
	"github.com/segyhp/finance-planner/internal/domain"
	"github.com/segyhp/finance-planner/pkg/utils"
)

// Money leaves the API in whole cents. Rounding happens in place on freshly computed results.

func roundDebtPlan(plan *domain.DebtPayoffPlan) {
	if plan == nil {
		return
	}

	plan.TotalPaid = utils.RoundCents(plan.TotalPaid)
	plan.TotalInterestPaid = utils.RoundCents(plan.TotalInterestPaid)

	for _, mp := range plan.MonthlyPayments {
		mp.TotalPayment = utils.RoundCents(mp.TotalPayment)
		mp.TotalPrincipal = utils.RoundCents(mp.TotalPrincipal)
		mp.TotalInterest = utils.RoundCents(mp.TotalInterest)

		for _, dp := range mp.DebtPayments {
			dp.PaymentAmount = utils.RoundCents(dp.PaymentAmount)
			dp.PrincipalAmount = utils.RoundCents(dp.PrincipalAmount)
			dp.InterestAmount = utils.RoundCents(dp.InterestAmount)
			dp.RemainingBalance = utils.RoundCents(dp.RemainingBalance)
		}
	}
}

func roundDebtPayoffResponse(resp *domain.DebtPayoffResponse) {
	if resp == nil {
		return
	}

	roundDebtPlan(resp.Plan)
	for id, interest := range resp.InterestByDebt {
		resp.InterestByDebt[id] = utils.RoundCents(interest)
	}
}

func roundStrategyComparison(comparison *domain.StrategyComparison) {
	if comparison == nil {
		return
	}

	roundDebtPlan(comparison.Avalanche)
	roundDebtPlan(comparison.Snowball)
	comparison.InterestSaved = utils.RoundCents(comparison.InterestSaved)
}

func roundInvestmentResult(result *domain.InvestmentResult) {
	if result == nil {
		return
	}

	result.StartingAmount = utils.RoundCents(result.StartingAmount)
	result.TotalContributions = utils.RoundCents(result.TotalContributions)
	result.TotalInterest = utils.RoundCents(result.TotalInterest)
	result.FinalBalance = utils.RoundCents(result.FinalBalance)

	for _, year := range result.Schedule {
		year.StartBalance = utils.RoundCents(year.StartBalance)
		year.Contributions = utils.RoundCents(year.Contributions)
		year.Interest = utils.RoundCents(year.Interest)
		year.EndBalance = utils.RoundCents(year.EndBalance)
		year.ContributionsToDate = utils.RoundCents(year.ContributionsToDate)
		year.InterestToDate = utils.RoundCents(year.InterestToDate)
	}
}

func roundSavingsGoalResult(result *domain.SavingsGoalResult) {
	if result == nil {
		return
	}

	result.TimeToGoalWeeks = utils.RoundTo(result.TimeToGoalWeeks, 1)
	result.TimeToGoalDays = utils.RoundTo(result.TimeToGoalDays, 0)
	result.FinalAmount = utils.RoundCents(result.FinalAmount)
	result.TotalContributions = utils.RoundCents(result.TotalContributions)
	result.TotalInterest = utils.RoundCents(result.TotalInterest)

	for _, month := range result.MonthlyBreakdown {
		month.Balance = utils.RoundCents(month.Balance)
		month.Contributions = utils.RoundCents(month.Contributions)
		month.Interest = utils.RoundCents(month.Interest)
		month.ContributionToDate = utils.RoundCents(month.ContributionToDate)
		month.InterestToDate = utils.RoundCents(month.InterestToDate)
	}

	table := &result.ComparisonTable
	table.Daily = utils.RoundCents(table.Daily)
	table.Weekly = utils.RoundCents(table.Weekly)
	table.Biweekly = utils.RoundCents(table.Biweekly)
	table.Monthly = utils.RoundCents(table.Monthly)
}

func roundNetWorthSummary(summary *domain.NetWorthSummary) {
	if summary == nil {
		return
	}

	summary.NetWorth = utils.RoundCents(summary.NetWorth)
	summary.TotalAssets = utils.RoundCents(summary.TotalAssets)
	summary.TotalLiabilities = utils.RoundCents(summary.TotalLiabilities)
	summary.PeriodChange.Amount = utils.RoundCents(summary.PeriodChange.Amount)
}

func roundBudgetSummary(summary *domain.BudgetSummary) {
	if summary == nil {
		return
	}

	for _, line := range summary.Categories {
		line.Budgeted = utils.RoundCents(line.Budgeted)
		line.Actual = utils.RoundCents(line.Actual)
		line.Difference = utils.RoundCents(line.Difference)
	}

	summary.MonthlyIncome = utils.RoundCents(summary.MonthlyIncome)
	summary.SavingsGoal = utils.RoundCents(summary.SavingsGoal)
	summary.SpendingGoal = utils.RoundCents(summary.SpendingGoal)
	summary.TotalBudgeted = utils.RoundCents(summary.TotalBudgeted)
	summary.TotalActual = utils.RoundCents(summary.TotalActual)
	summary.TotalDifference = utils.RoundCents(summary.TotalDifference)
	summary.RemainingBudget = utils.RoundCents(summary.RemainingBudget)
}
