package calculator

import (
	"math"
	"sort"

	"github.com/segyhp/finance-planner/internal/domain"
	"github.com/segyhp/finance-planner/pkg/utils"
)

// CalculateDebtPayoff simulates paying down debts month by month.
//
// Every debt receives its minimum payment. The extra payment goes to the first
// debt, in priority order, that still has a balance. Once a debt is retired its
// minimum payment joins the extra payment for every following month.
// The caller's slice is never modified.
func CalculateDebtPayoff(debts []domain.Debt, extraPayment float64, method domain.PayoffMethod, opts ...Option) (*domain.DebtPayoffPlan, error) {
	if err := validateDebts(debts, extraPayment, method); err != nil {
		return nil, err
	}
	o := newOptions(opts)
	start := o.now()

	// Debt holds no references, so a value copy is a deep copy
	original := make([]domain.Debt, len(debts))
	copy(original, debts)
	working := make([]domain.Debt, len(debts))
	copy(working, debts)

	sortByPriority(working, method)

	payoffOrder := make([]domain.Debt, len(working))
	copy(payoffOrder, working)

	plan := &domain.DebtPayoffPlan{
		Method:          method,
		MonthlyPayments: make([]*domain.MonthlyPayment, 0),
		PayoffOrder:     payoffOrder,
		OriginalDebts:   original,
	}

	remaining := countOutstanding(working)
	currentExtra := waterfall(extraPayment, working)
	month := 0

	for remaining > 0 && month < o.maxMonths {
		month++

		mp := &domain.MonthlyPayment{
			Month:        month,
			Date:         utils.MonthDate(start, month),
			DebtPayments: make([]*domain.DebtPayment, 0, remaining),
		}

		// Minimum payments
		for i := range working {
			debt := &working[i]
			if debt.Balance <= 0 {
				continue
			}

			interest := debt.Balance * monthlyDebtRate(debt.InterestRate)
			payment := debt.MinimumPayment
			principal := payment - interest

			// Final payment covers the remaining balance plus this month's interest
			if principal > debt.Balance {
				principal = debt.Balance
				payment = principal + interest
			}

			debt.Balance -= principal

			mp.DebtPayments = append(mp.DebtPayments, &domain.DebtPayment{
				DebtID:           debt.ID,
				PaymentAmount:    payment,
				PrincipalAmount:  principal,
				InterestAmount:   interest,
				RemainingBalance: debt.Balance,
				IsPaidOff:        debt.Balance <= 0,
			})

			mp.TotalPayment += payment
			mp.TotalPrincipal += principal
			mp.TotalInterest += interest
		}

		// Extra payment goes to exactly one debt
		if currentExtra > 0 {
			for i := range working {
				debt := &working[i]
				if debt.Balance <= 0 {
					continue
				}

				extra := math.Min(debt.Balance, currentExtra)
				debt.Balance -= extra

				if record := findDebtPayment(mp.DebtPayments, debt.ID); record != nil {
					record.PaymentAmount += extra
					record.PrincipalAmount += extra
					record.RemainingBalance = debt.Balance
					record.IsPaidOff = debt.Balance <= 0
				}

				mp.TotalPayment += extra
				mp.TotalPrincipal += extra
				break
			}
		}

		remaining = countOutstanding(working)
		mp.RemainingDebts = remaining

		plan.MonthlyPayments = append(plan.MonthlyPayments, mp)
		plan.TotalPaid += mp.TotalPayment
		plan.TotalInterestPaid += mp.TotalInterest

		currentExtra = waterfall(extraPayment, working)
	}

	if !finite(plan.TotalPaid) {
		return nil, invalid("totalPaid", "exceeds the representable range", plan.TotalPaid)
	}

	plan.TotalMonths = month
	plan.PaidOff = remaining == 0

	return plan, nil
}

// PayoffMonths returns, per debt id, the first month the debt is paid off.
// Debts that start at a zero balance map to month 0. Debts never paid off
// within the plan are absent.
func PayoffMonths(plan *domain.DebtPayoffPlan) map[string]int {
	payoffMonths := make(map[string]int)
	if plan == nil {
		return payoffMonths
	}

	for _, debt := range plan.OriginalDebts {
		if debt.Balance <= 0 {
			payoffMonths[debt.ID] = 0
		}
	}

	for _, mp := range plan.MonthlyPayments {
		for _, dp := range mp.DebtPayments {
			if _, seen := payoffMonths[dp.DebtID]; dp.IsPaidOff && !seen {
				payoffMonths[dp.DebtID] = mp.Month
			}
		}
	}

	return payoffMonths
}

// TotalInterestByDebt sums the interest charged to each debt over the plan.
func TotalInterestByDebt(plan *domain.DebtPayoffPlan) map[string]float64 {
	interest := make(map[string]float64)
	if plan == nil {
		return interest
	}

	for _, debt := range plan.OriginalDebts {
		interest[debt.ID] = 0
	}

	for _, mp := range plan.MonthlyPayments {
		for _, dp := range mp.DebtPayments {
			interest[dp.DebtID] += dp.InterestAmount
		}
	}

	return interest
}

// CompareDebtStrategies runs the avalanche and snowball methods over the same debts.
// Savings are reported from avalanche's point of view and may be negative.
func CompareDebtStrategies(debts []domain.Debt, extraPayment float64, opts ...Option) (*domain.StrategyComparison, error) {
	avalanche, err := CalculateDebtPayoff(debts, extraPayment, domain.PayoffAvalanche, opts...)
	if err != nil {
		return nil, err
	}

	snowball, err := CalculateDebtPayoff(debts, extraPayment, domain.PayoffSnowball, opts...)
	if err != nil {
		return nil, err
	}

	comparison := &domain.StrategyComparison{
		Avalanche:     avalanche,
		Snowball:      snowball,
		InterestSaved: snowball.TotalInterestPaid - avalanche.TotalInterestPaid,
		MonthsSaved:   snowball.TotalMonths - avalanche.TotalMonths,
		Recommended:   domain.PayoffAvalanche,
	}

	// Snowball wins only when it is strictly cheaper
	if snowball.TotalInterestPaid < avalanche.TotalInterestPaid {
		comparison.Recommended = domain.PayoffSnowball
	}

	return comparison, nil
}

// sortByPriority orders debts in place. Ties keep the caller's input order.
func sortByPriority(debts []domain.Debt, method domain.PayoffMethod) {
	sort.SliceStable(debts, func(i, j int) bool {
		if method == domain.PayoffAvalanche {
			return debts[i].InterestRate > debts[j].InterestRate
		}
		return debts[i].Balance < debts[j].Balance
	})
}

func monthlyDebtRate(annualPercent float64) float64 {
	return annualPercent / 100 / 12
}

// waterfall is the extra payment plus every retired debt's minimum payment
func waterfall(extraPayment float64, debts []domain.Debt) float64 {
	total := extraPayment
	for _, debt := range debts {
		if debt.Balance <= 0 {
			total += debt.MinimumPayment
		}
	}
	return total
}

func countOutstanding(debts []domain.Debt) int {
	n := 0
	for _, debt := range debts {
		if debt.Balance > 0 {
			n++
		}
	}
	return n
}

func findDebtPayment(payments []*domain.DebtPayment, debtID string) *domain.DebtPayment {
	for _, p := range payments {
		if p.DebtID == debtID {
			return p
		}
	}
	return nil
}
