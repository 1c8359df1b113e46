package calculator

import (
	"math"

	"github.com/segyhp/finance-planner/internal/domain"
)

// TotalAssets sums positive account balances and savings.
func TotalAssets(accounts []domain.Account, savings []domain.SavingsAccount) float64 {
	total := 0.0
	for _, account := range accounts {
		if account.Balance > 0 {
			total += account.Balance
		}
	}
	for _, s := range savings {
		total += s.CurrentAmount
	}
	return total
}

// TotalLiabilities sums overdrawn accounts and outstanding loans.
func TotalLiabilities(accounts []domain.Account, loans []domain.Loan) float64 {
	total := 0.0
	for _, account := range accounts {
		if account.Balance < 0 {
			total += math.Abs(account.Balance)
		}
	}
	for _, loan := range loans {
		total += loan.CurrentBalance
	}
	return total
}

// NetWorth is total assets minus total liabilities.
func NetWorth(accounts []domain.Account, loans []domain.Loan, savings []domain.SavingsAccount) float64 {
	return TotalAssets(accounts, savings) - TotalLiabilities(accounts, loans)
}

// NetWorthChange is the percentage change from previous to current, rounded to one decimal.
// A zero previous value yields 0.
func NetWorthChange(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	pct := (current - previous) / previous * 100
	return math.Round(pct*10) / 10
}

// PeriodChange compares the last point of a history series against the first.
func PeriodChange(history []domain.NetWorthPoint) domain.PeriodChange {
	if len(history) < 2 {
		return domain.PeriodChange{}
	}

	first := history[0].Value
	last := history[len(history)-1].Value

	return domain.PeriodChange{
		Amount:     last - first,
		Percentage: NetWorthChange(last, first),
	}
}

// SummarizeNetWorth computes every net worth figure for one request.
func SummarizeNetWorth(req *domain.NetWorthRequest) *domain.NetWorthSummary {
	if req == nil {
		return &domain.NetWorthSummary{}
	}

	assets := TotalAssets(req.Accounts, req.SavingsAccounts)
	liabilities := TotalLiabilities(req.Accounts, req.Loans)

	return &domain.NetWorthSummary{
		NetWorth:         assets - liabilities,
		TotalAssets:      assets,
		TotalLiabilities: liabilities,
		PeriodChange:     PeriodChange(req.History),
	}
}
