// Package calculation binds arithmetic operations to operand pairs and
// provides the registry used to build them by name.
package calculation

import (
	"fmt"
	"math"

	"github.com/mamaar/gocalc/pkg/operation"
	"github.com/mamaar/gocalc/pkg/types"
)

// Kind identifies one of the fixed set of calculation variants
type Kind int

const (
	Add      Kind = iota // a + b
	Subtract             // a - b
	Multiply             // a * b
	Divide               // a / b
	Power                // a raised to b
)

// Kinds lists every variant in registration order
var Kinds = []Kind{Add, Subtract, Multiply, Divide, Power}

// String returns the operation label, e.g. "Add"
func (k Kind) String() string {
	switch k {
	case Add:
		return "Add"
	case Subtract:
		return "Subtract"
	case Multiply:
		return "Multiply"
	case Divide:
		return "Divide"
	case Power:
		return "Power"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// TypeName returns the variant name used in descriptions, e.g. "AddCalculation"
func (k Kind) TypeName() string {
	return k.String() + "Calculation"
}

// Constructor returns a constructor producing calculations of this kind
func (k Kind) Constructor() Constructor {
	return func(a, b float64) Calculation {
		return New(k, a, b)
	}
}

// Calculation is a single arithmetic operation bound to two operands.
// Values are immutable once constructed.
type Calculation struct {
	kind Kind
	a    float64
	b    float64
}

// New creates a calculation of the given kind
func New(kind Kind, a, b float64) Calculation {
	return Calculation{kind: kind, a: a, b: b}
}

// Kind returns the calculation variant
func (c Calculation) Kind() Kind { return c.kind }

// A returns the first operand
func (c Calculation) A() float64 { return c.a }

// B returns the second operand
func (c Calculation) B() float64 { return c.b }

// Execute computes the result. Divide rejects a zero divisor before the
// primitive sees it, so callers get "Cannot divide by zero." here while
// operation.Division keeps its own message.
func (c Calculation) Execute() (float64, error) {
	switch c.kind {
	case Add:
		return operation.Addition(c.a, c.b), nil
	case Subtract:
		return operation.Subtraction(c.a, c.b), nil
	case Multiply:
		return operation.Multiplication(c.a, c.b), nil
	case Divide:
		if c.b == 0 {
			return 0, &types.CalcError{
				Type:      types.DivisionByZero,
				Message:   "Cannot divide by zero.",
				Operation: "divide",
			}
		}
		return operation.Division(c.a, c.b)
	case Power:
		return c.power()
	default:
		return 0, types.NewCalcError(types.ExecutionFailure, "unknown calculation kind %d", int(c.kind))
	}
}

// Describe executes the calculation and renders
// "<TypeName>: <a> <Label> <b> = <result>".
func (c Calculation) Describe() (string, error) {
	result, err := c.Execute()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s: %s %s %s = %s",
		c.kind.TypeName(), FormatNumber(c.a), c.kind, FormatNumber(c.b), FormatNumber(result)), nil
}

func (c Calculation) String() string {
	desc, err := c.Describe()
	if err != nil {
		return fmt.Sprintf("%s: %v", c.kind.TypeName(), err)
	}
	return desc
}

// GoString renders the debug form "<TypeName>(a=<a>, b=<b>)"
func (c Calculation) GoString() string {
	return fmt.Sprintf("%s(a=%s, b=%s)", c.kind.TypeName(), FormatNumber(c.a), FormatNumber(c.b))
}

// power rejects zero raised to a negative exponent and results that overflow
// from finite operands.
func (c Calculation) power() (float64, error) {
	if c.a == 0 && c.b < 0 {
		return 0, &types.CalcError{
			Type:      types.DivisionByZero,
			Message:   "0.0 cannot be raised to a negative power",
			Operation: "power",
		}
	}
	result := operation.Power(c.a, c.b)
	if math.IsInf(result, 0) && !math.IsInf(c.a, 0) && !math.IsInf(c.b, 0) {
		return 0, &types.CalcError{
			Type:      types.ExecutionFailure,
			Message:   "Numerical result out of range",
			Operation: "power",
		}
	}
	return result, nil
}
