package calculation

import (
	"math"
	"testing"
)

func TestFormatNumber(t *testing.T) {
	testCases := []struct {
		value    float64
		expected string
	}{
		{10, "10.0"},
		{-3, "-3.0"},
		{0, "0.0"},
		{math.Copysign(0, -1), "-0.0"},
		{2.5, "2.5"},
		{0.1, "0.1"},
		{1.0 / 3.0, "0.3333333333333333"},
		{0.0001, "0.0001"},
		{0.00001, "1e-05"},
		{1.5e-7, "1.5e-07"},
		{1e15, "1000000000000000.0"},
		{1e16, "1e+16"},
		{-2.5e20, "-2.5e+20"},
		{math.Inf(1), "inf"},
		{math.Inf(-1), "-inf"},
		{math.NaN(), "nan"},
	}

	for _, tc := range testCases {
		if got := FormatNumber(tc.value); got != tc.expected {
			t.Errorf("FormatNumber(%v) = '%s', expected '%s'", tc.value, got, tc.expected)
		}
	}
}

func TestFiniteOrNil(t *testing.T) {
	if v := FiniteOrNil(2.5); v == nil || *v != 2.5 {
		t.Errorf("Expected pointer to 2.5, got %v", v)
	}
	for _, v := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		if FiniteOrNil(v) != nil {
			t.Errorf("Expected nil for %v", v)
		}
	}
}
