package errors

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	ErrScenarioNotFound      = errors.New("scenario not found")
	ErrUnsupportedScenario   = errors.New("unsupported scenario kind")
	ErrEncryptionUnavailable = errors.New("scenario payload could not be sealed or opened")
)

// BusinessError represents a business logic error
type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

// NewBusinessError creates a new business error
func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Error codes
const (
	ErrCodeInvalidParameter     = "INVALID_PARAMETER"
	ErrCodeNoDebts              = "NO_DEBTS"
	ErrCodeMinimumPaymentTooLow = "MINIMUM_PAYMENT_TOO_LOW"
	ErrCodeScenarioNotFound     = "SCENARIO_NOT_FOUND"
	ErrCodeUnsupportedScenario  = "UNSUPPORTED_SCENARIO"
	ErrCodeDatabaseError        = "DATABASE_ERROR"
	ErrCodeCacheError           = "CACHE_ERROR"
	ErrCodeEncryptionError      = "ENCRYPTION_ERROR"
)

// Wrap common errors with business context
func WrapInvalidParameter(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeInvalidParameter,
		"Invalid calculation parameters",
		err,
	)
}

func WrapNoDebts(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeNoDebts,
		"At least one debt is required",
		err,
	)
}

func WrapMinimumPaymentTooLow(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeMinimumPaymentTooLow,
		"A minimum payment is too low to ever pay off its debt",
		err,
	)
}

func WrapScenarioNotFound(scenarioID string) *BusinessError {
	return NewBusinessError(
		ErrCodeScenarioNotFound,
		fmt.Sprintf("Scenario with ID %s not found", scenarioID),
		ErrScenarioNotFound,
	)
}

func WrapUnsupportedScenario(kind string) *BusinessError {
	return NewBusinessError(
		ErrCodeUnsupportedScenario,
		fmt.Sprintf("Scenario kind %q is not supported", kind),
		ErrUnsupportedScenario,
	)
}

func WrapDatabaseError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeDatabaseError,
		"database operation failed",
		err,
	)
}

func WrapCacheError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeCacheError,
		"Cache operation failed",
		err,
	)
}

func WrapEncryptionError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeEncryptionError,
		"Scenario payload encryption failed",
		errors.Join(ErrEncryptionUnavailable, err),
	)
}
