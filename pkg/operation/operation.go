// Package operation implements the arithmetic primitives behind every calculation.
package operation

import (
	"errors"
	"math"
)

// ErrDivisionByZero is returned by Division when the divisor is zero.
var ErrDivisionByZero = errors.New("Division by zero is not allowed.")

// Addition returns a + b.
func Addition(a, b float64) float64 {
	return a + b
}

// Subtraction returns a - b.
func Subtraction(a, b float64) float64 {
	return a - b
}

// Multiplication returns a * b.
func Multiplication(a, b float64) float64 {
	return a * b
}

// Division returns a / b. A zero divisor (positive or negative) is rejected
// with ErrDivisionByZero; everything else follows IEEE-754.
func Division(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

// Power returns a raised to b. Power(x, 0) is 1 for every x, including 0.
// A negative base with a fractional exponent yields NaN.
func Power(a, b float64) float64 {
	return math.Pow(a, b)
}
