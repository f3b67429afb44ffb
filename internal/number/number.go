// Package number converts between JSON number text, float64 and the numeric
// types produced by other decoders.
package number

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrNotRepresentable indicates a numeric literal outside the float64 range.
var ErrNotRepresentable = errors.New("number not representable")

// Parse converts a number lexeme to float64. Literals that overflow the
// float64 range are rejected instead of becoming infinities, and non-zero
// literals that underflow to zero are rejected as well.
func Parse(literal string) (float64, error) {
	f, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrNotRepresentable, literal)
	}
	if f == 0 && !zeroMantissa(literal) {
		return 0, fmt.Errorf("%w: %s underflows", ErrNotRepresentable, literal)
	}
	return f, nil
}

// zeroMantissa reports whether every digit before the exponent is zero.
func zeroMantissa(literal string) bool {
	if i := strings.IndexAny(literal, "eE"); i >= 0 {
		literal = literal[:i]
	}
	return strings.Trim(literal, "-+.0") == ""
}

// FormatCompact renders integral values without a fractional part and other
// values in their shortest form.
func FormatCompact(f float64) string {
	if f == math.Floor(f) && !math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// FormatPretty renders the shortest text that parses back to f.
func FormatPretty(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// ToFloat64 converts the numbers produced by the YAML and JSONPath decoders
// to float64.
func ToFloat64(value any) (float64, bool) {
	switch current := value.(type) {
	case int:
		return float64(current), true
	case int64:
		return float64(current), true
	case uint64:
		return float64(current), true
	case float64:
		return current, true
	default:
		return 0, false
	}
}
