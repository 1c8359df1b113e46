package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusinessError_Error(t *testing.T) {
	withCause := NewBusinessError(ErrCodeInvalidParameter, "bad input", errors.New("rate out of range"))
	assert.Equal(t, "INVALID_PARAMETER: bad input (rate out of range)", withCause.Error())

	bare := NewBusinessError(ErrCodeNoDebts, "no debts", nil)
	assert.Equal(t, "NO_DEBTS: no debts", bare.Error())
}

func TestWrappers(t *testing.T) {
	cause := errors.New("cause")

	tests := []struct {
		name     string
		err      *BusinessError
		code     string
		sentinel error
	}{
		{"invalid parameter", WrapInvalidParameter(cause), ErrCodeInvalidParameter, cause},
		{"no debts", WrapNoDebts(cause), ErrCodeNoDebts, cause},
		{"minimum payment", WrapMinimumPaymentTooLow(cause), ErrCodeMinimumPaymentTooLow, cause},
		{"scenario not found", WrapScenarioNotFound("abc"), ErrCodeScenarioNotFound, ErrScenarioNotFound},
		{"unsupported scenario", WrapUnsupportedScenario("mortgage"), ErrCodeUnsupportedScenario, ErrUnsupportedScenario},
		{"database", WrapDatabaseError(cause), ErrCodeDatabaseError, cause},
		{"cache", WrapCacheError(cause), ErrCodeCacheError, cause},
		{"encryption", WrapEncryptionError(cause), ErrCodeEncryptionError, ErrEncryptionUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.True(t, errors.Is(tt.err, tt.sentinel))
		})
	}
}

func TestEncryptionErrorKeepsCause(t *testing.T) {
	cause := errors.New("no identity matched")
	assert.ErrorIs(t, WrapEncryptionError(cause), cause)
}

func TestBusinessErrorFoundThroughJoin(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), WrapScenarioNotFound("x"))

	var be *BusinessError
	require.ErrorAs(t, wrapped, &be)
	assert.Equal(t, ErrCodeScenarioNotFound, be.Code)
}
