package calculator

import (
	"math"

	"github.com/segyhp/finance-planner/internal/domain"
)

// Average calendar units per month
const (
	DaysPerMonth     = 30.4167
	WeeksPerMonth    = 4.34524
	BiweeksPerMonth  = 2.17262
	weeksPerYear     = 52.0
	biweeksPerYear   = 26.0
	monthsPerYear    = 12.0
	daysPerWeek      = 7.0
	daysPerBiweek    = 14.0
	compoundingYear  = 365.0
	monthsPerQuarter = 3.0
)

// contributionsPerMonth converts one contribution at a frequency to its monthly count
var contributionsPerMonth = map[domain.SavingsFrequency]float64{
	domain.SaveDaily:    DaysPerMonth,
	domain.SaveWeekly:   WeeksPerMonth,
	domain.SaveBiweekly: BiweeksPerMonth,
	domain.SaveMonthly:  1,
}

// MonthlyContribution re-expresses a contribution as its monthly equivalent.
func MonthlyContribution(amount float64, freq domain.SavingsFrequency) float64 {
	perMonth, ok := contributionsPerMonth[freq]
	if !ok {
		return amount
	}
	return amount * perMonth
}

// MonthlyInterestRate converts an annual percentage rate to the effective monthly rate
// for the given compounding frequency.
func MonthlyInterestRate(annualPercent float64, freq domain.CompoundingFrequency) float64 {
	r := annualPercent / 100

	switch freq {
	case domain.CompoundDaily:
		return math.Pow(1+r/compoundingYear, DaysPerMonth) - 1
	case domain.CompoundMonthly:
		return r / monthsPerYear
	case domain.CompoundQuarterly:
		return math.Pow(1+r/4, 1/monthsPerQuarter) - 1
	case domain.CompoundAnnually:
		return math.Pow(1+r, 1/monthsPerYear) - 1
	}
	return 0
}

// CompareContributions re-expresses one contribution at each supported frequency.
// It is a unit conversion for display and plays no part in the simulation.
func CompareContributions(amount float64, freq domain.SavingsFrequency) domain.ContributionComparison {
	switch freq {
	case domain.SaveDaily:
		return domain.ContributionComparison{
			Daily:    amount,
			Weekly:   amount * daysPerWeek,
			Biweekly: amount * daysPerBiweek,
			Monthly:  amount * DaysPerMonth,
		}
	case domain.SaveWeekly:
		return domain.ContributionComparison{
			Daily:    amount / daysPerWeek,
			Weekly:   amount,
			Biweekly: amount * 2,
			Monthly:  amount * WeeksPerMonth,
		}
	case domain.SaveBiweekly:
		return domain.ContributionComparison{
			Daily:    amount / daysPerBiweek,
			Weekly:   amount / 2,
			Biweekly: amount,
			Monthly:  amount * BiweeksPerMonth,
		}
	default:
		return domain.ContributionComparison{
			Daily:    amount / DaysPerMonth,
			Weekly:   amount * monthsPerYear / weeksPerYear,
			Biweekly: amount * monthsPerYear / biweeksPerYear,
			Monthly:  amount,
		}
	}
}

// CalculateSavingsGoal grows an initial deposit month by month until it reaches
// the goal or the horizon runs out. GoalReached tells the two apart.
func CalculateSavingsGoal(data *domain.SavingsGoalData, opts ...Option) (*domain.SavingsGoalResult, error) {
	if err := validateSavingsGoal(data); err != nil {
		return nil, err
	}
	o := newOptions(opts)

	monthly := MonthlyContribution(data.ContributionAmount, data.ContributionFrequency)
	rate := MonthlyInterestRate(data.InterestRate, data.CompoundingFrequency)

	balance := data.InitialDeposit
	totalContributions := data.InitialDeposit
	totalInterest := 0.0
	month := 0

	breakdown := []*domain.MonthlyBreakdown{{
		Month:              0,
		Balance:            balance,
		ContributionToDate: totalContributions,
	}}

	for balance < data.GoalAmount && month < o.horizonMonths {
		month++

		var interest float64
		balance, interest = savingsStep(balance, monthly, rate)
		totalContributions += monthly
		totalInterest += interest

		breakdown = append(breakdown, &domain.MonthlyBreakdown{
			Month:              month,
			Balance:            balance,
			Contributions:      monthly,
			Interest:           interest,
			ContributionToDate: totalContributions,
			InterestToDate:     totalInterest,
		})
	}

	if !finite(balance) {
		return nil, invalid("finalAmount", "exceeds the representable range", balance)
	}

	table := CompareContributions(data.ContributionAmount, data.ContributionFrequency)
	toGoal := func(amount float64, freq domain.SavingsFrequency) int {
		return monthsToGoal(data.InitialDeposit, data.GoalAmount, MonthlyContribution(amount, freq), rate, o.horizonMonths)
	}

	return &domain.SavingsGoalResult{
		GoalReached:        balance >= data.GoalAmount,
		TimeToGoalMonths:   month,
		TimeToGoalWeeks:    float64(month) * WeeksPerMonth,
		TimeToGoalDays:     float64(month) * DaysPerMonth,
		FinalAmount:        balance,
		TotalContributions: totalContributions,
		TotalInterest:      totalInterest,
		MonthlyBreakdown:   breakdown,
		ComparisonTable:    table,
		ComparisonMonths: domain.ContributionMonths{
			Daily:    toGoal(table.Daily, domain.SaveDaily),
			Weekly:   toGoal(table.Weekly, domain.SaveWeekly),
			Biweekly: toGoal(table.Biweekly, domain.SaveBiweekly),
			Monthly:  toGoal(table.Monthly, domain.SaveMonthly),
		},
	}, nil
}

// savingsStep deposits one month's contribution, then credits interest on the new balance.
func savingsStep(balance, monthly, rate float64) (float64, float64) {
	balance += monthly
	interest := balance * rate
	return balance + interest, interest
}

// monthsToGoal runs the savings loop without recording a breakdown.
func monthsToGoal(initial, goal, monthly, rate float64, horizon int) int {
	balance := initial
	month := 0
	for balance < goal && month < horizon {
		month++
		balance, _ = savingsStep(balance, monthly, rate)
	}
	return month
}
