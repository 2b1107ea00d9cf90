package calculation

import (
	"math"
	"strconv"
	"strings"
)

// FormatNumber renders v as the shortest string that round-trips, keeping a
// trailing ".0" on integral values and switching to exponent form outside
// [1e-4, 1e16).
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	abs := math.Abs(v)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// FiniteOrNil returns a pointer to v, or nil when v is NaN or ±Inf. JSON has
// no encoding for non-finite numbers, so encoders render nil as null.
func FiniteOrNil(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
