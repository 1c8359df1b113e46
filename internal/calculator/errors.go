package calculator

import (
	"errors"
	"fmt"
)

// Sentinel errors, use with errors.Is()
var (
	// ErrInvalidParameter is returned when an input is outside its domain
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrNoDebts is returned when a payoff simulation has nothing to pay off
	ErrNoDebts = errors.New("no debts provided")

	// ErrMinimumPaymentTooLow is returned when a debt's minimum payment does not
	// cover its first month of interest. Such a debt would never be paid off.
	ErrMinimumPaymentTooLow = errors.New("minimum payment does not cover monthly interest")
)

// ValidationError names the offending field of a rejected input.
type ValidationError struct {
	Field  string
	Reason string
	Value  any
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s (got %v)", e.Field, e.Reason, e.Value)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidParameter
}

func invalid(field, reason string, value any) error {
	return &ValidationError{Field: field, Reason: reason, Value: value}
}

// MinimumPaymentError carries the numbers behind ErrMinimumPaymentTooLow.
type MinimumPaymentError struct {
	DebtID          string
	MinimumPayment  float64
	MonthlyInterest float64
}

func (e *MinimumPaymentError) Error() string {
	return fmt.Sprintf("debt %s: minimum payment %.2f does not exceed monthly interest %.2f",
		e.DebtID, e.MinimumPayment, e.MonthlyInterest)
}

func (e *MinimumPaymentError) Unwrap() error {
	return ErrMinimumPaymentTooLow
}

// IsClientError returns true if the error is due to invalid caller input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidParameter) ||
		errors.Is(err, ErrNoDebts) ||
		errors.Is(err, ErrMinimumPaymentTooLow)
}
