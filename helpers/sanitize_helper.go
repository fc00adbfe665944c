package helpers

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// ValidationError reports a raw input that failed sanitization in
// strict mode. The field name travels with the error so a caller can
// point the taxpayer at the offending entry.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid value for %s: %s", e.Field, e.Reason)
}

// Sanitize normalises an arbitrary raw input into a canonical
// non-negative amount rounded to 2 decimal places. It accepts numbers,
// numeric strings with optional thousands separators, and nil/empty
// (treated as 0). Anything non-numeric or negative collapses to 0.
// This is the legacy behaviour kept for internal fields; user-facing
// monetary inputs go through SanitizeStrict.
func Sanitize(raw interface{}) float64 {
	v, err := parseAmount(raw)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// SanitizeStrict normalises a raw input like Sanitize but rejects
// non-numeric and negative values with a *ValidationError naming the
// field instead of silently zeroing them.
func SanitizeStrict(field string, raw interface{}) (float64, error) {
	v, err := parseAmount(raw)
	if err != nil {
		return 0, &ValidationError{Field: field, Reason: err.Error()}
	}
	if v < 0 {
		return 0, &ValidationError{Field: field, Reason: "amount cannot be negative"}
	}
	return v, nil
}

// SanitizeRate normalises a withholding rate expressed as a fraction.
// Rates are not amounts: 0.125 must survive as 0.125, so no decimal
// rounding is applied. Values outside [0, 1] collapse to 0.
func SanitizeRate(raw float64) float64 {
	if math.IsNaN(raw) || math.IsInf(raw, 0) || raw < 0 || raw > 1 {
		return 0
	}
	return raw
}

// SanitizeRateStrict validates a rate fraction like SanitizeRate but
// rejects values outside [0, 1] with a *ValidationError naming the
// field.
func SanitizeRateStrict(field string, raw float64) (float64, error) {
	if math.IsNaN(raw) || math.IsInf(raw, 0) {
		return 0, &ValidationError{Field: field, Reason: "not a finite number"}
	}
	if raw < 0 || raw > 1 {
		return 0, &ValidationError{Field: field, Reason: "rate must be a fraction between 0 and 1"}
	}
	return raw, nil
}

// parseAmount converts the supported raw shapes to a float64 rounded
// to 2 decimal places. String parsing goes through decimal so values
// like "1,234,567.895" round exactly instead of picking up binary
// noise.
func parseAmount(raw interface{}) (float64, error) {
	switch v := raw.(type) {
	case nil:
		return 0, nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("not a finite number")
		}
		return Round2(v), nil
	case float32:
		return Round2(float64(v)), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		s := strings.TrimSpace(strings.ReplaceAll(v, ",", ""))
		if s == "" {
			return 0, nil
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return 0, fmt.Errorf("not a number: %q", v)
		}
		f, _ := d.Round(2).Float64()
		return f, nil
	default:
		return 0, fmt.Errorf("unsupported type %T", raw)
	}
}

// Round2 rounds to 2 decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
