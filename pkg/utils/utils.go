package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// RoundCurrency rounds an amount to whole cents
func RoundCurrency(amount float64) decimal.Decimal {
	return DecimalFromFloat(amount).Round(2)
}

// RoundCents rounds an amount to whole cents and returns it as a float
func RoundCents(amount float64) float64 {
	return RoundCurrency(amount).InexactFloat64()
}

// RoundTo rounds a value half away from zero to the given number of decimal places
func RoundTo(value float64, places int32) float64 {
	return DecimalFromFloat(value).Round(places).InexactFloat64()
}

// MonthDate returns the date of the given month of a schedule.
// Month 1 falls one calendar month after start.
func MonthDate(start time.Time, month int) time.Time {
	return start.AddDate(0, month, 0)
}

// RetentionCutoff returns the oldest timestamp still inside a retention window
func RetentionCutoff(now time.Time, retention time.Duration) time.Time {
	return now.Add(-retention)
}

// CacheKey derives a stable key from a kind and the JSON form of its inputs.
// Struct fields marshal in declaration order and map keys sorted, so equal inputs share a key.
func CacheKey(kind string, inputs interface{}) (string, error) {
	raw, err := json.Marshal(inputs)
	if err != nil {
		return "", fmt.Errorf("failed to marshal cache key inputs: %w", err)
	}

	sum := sha256.Sum256(raw)
	return fmt.Sprintf("calc:%s:%s", kind, hex.EncodeToString(sum[:])), nil
}

// DecimalFromFloat converts float64 to decimal.Decimal
func DecimalFromFloat(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

// DecimalFromString converts string to decimal.Decimal
func DecimalFromString(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}
