package calculator

import (
	"math"

	"github.com/segyhp/finance-planner/internal/domain"
)

// periodsPerYear returns 0 for an unknown frequency
func periodsPerYear(freq domain.CompoundingFrequency) int {
	switch freq {
	case domain.CompoundDaily:
		return 365
	case domain.CompoundMonthly:
		return 12
	case domain.CompoundQuarterly:
		return 4
	case domain.CompoundSemiAnnually:
		return 2
	case domain.CompoundAnnually:
		return 1
	}
	return 0
}

// contributionsPerYear returns 0 for an unknown frequency
func contributionsPerYear(freq domain.ContributionFrequency) int {
	switch freq {
	case domain.ContributeMonthly:
		return 12
	case domain.ContributeQuarterly:
		return 4
	case domain.ContributeAnnually:
		return 1
	}
	return 0
}

// CalculateInvestment compounds a starting balance plus periodic contributions
// and returns a year-by-year schedule.
func CalculateInvestment(params *domain.InvestmentParams) (*domain.InvestmentResult, error) {
	if err := validateInvestment(params); err != nil {
		return nil, err
	}

	periods := periodsPerYear(params.CompoundingFrequency)
	contributions := contributionsPerYear(params.ContributionFrequency)
	ratePerPeriod := params.AnnualReturnRate / 100 / float64(periods)
	deposit, isContributionPeriod := contributionSchedule(periods, contributions, params.ContributionAmount)

	balance := params.StartingAmount
	contributionsToDate := 0.0
	interestToDate := 0.0
	schedule := make([]*domain.YearlyBreakdown, 0, params.InvestmentLength)

	for year := 1; year <= params.InvestmentLength; year++ {
		startBalance := balance
		yearContributions := 0.0
		yearInterest := 0.0

		for period := 1; period <= periods; period++ {
			contribute := isContributionPeriod(period)

			if contribute && params.ContributionTiming == domain.TimingBeginning {
				balance += deposit
				yearContributions += deposit
			}

			interest := balance * ratePerPeriod
			balance += interest
			yearInterest += interest

			if contribute && params.ContributionTiming == domain.TimingEnd {
				balance += deposit
				yearContributions += deposit
			}
		}

		contributionsToDate += yearContributions
		interestToDate += yearInterest

		schedule = append(schedule, &domain.YearlyBreakdown{
			Year:                year,
			StartBalance:        startBalance,
			Contributions:       yearContributions,
			Interest:            yearInterest,
			EndBalance:          balance,
			ContributionsToDate: contributionsToDate,
			InterestToDate:      interestToDate,
		})
	}

	// Large balances compounded long enough overflow float64
	if !finite(balance) {
		return nil, invalid("finalBalance", "exceeds the representable range", balance)
	}

	return &domain.InvestmentResult{
		StartingAmount:     params.StartingAmount,
		TotalContributions: contributionsToDate,
		TotalInterest:      interestToDate,
		FinalBalance:       balance,
		Schedule:           schedule,
	}, nil
}

// contributionSchedule decides which compounding periods receive a deposit and how large it is.
//
// When contributions are at least as frequent as compounding, every period receives
// the contributions that fall inside it. Otherwise a period contributes when
// period mod (periods/contributions) == 1, which only spaces deposits evenly when
// periods is a multiple of contributions (daily compounding deposits once a year).
func contributionSchedule(periods, contributions int, amount float64) (float64, func(period int) bool) {
	if contributions >= periods {
		deposit := amount * float64(contributions/periods)
		return deposit, func(int) bool { return true }
	}

	spacing := float64(periods) / float64(contributions)
	return amount, func(period int) bool {
		return math.Mod(float64(period), spacing) == 1
	}
}
