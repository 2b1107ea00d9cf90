package types

import (
	"errors"
	"fmt"
)

// CalcError represents errors raised while parsing, creating or executing a calculation
type CalcError struct {
	Type      ErrorType
	Message   string
	Operation string
	Cause     error
}

func (e *CalcError) Error() string {
	return e.Message
}

func (e *CalcError) Unwrap() error {
	return e.Cause
}

type ErrorType int

const (
	InvalidFormat ErrorType = iota
	UnsupportedOperation
	DivisionByZero
	DuplicateRegistration
	ExecutionFailure
)

func (t ErrorType) String() string {
	switch t {
	case InvalidFormat:
		return "InvalidFormat"
	case UnsupportedOperation:
		return "UnsupportedOperation"
	case DivisionByZero:
		return "DivisionByZero"
	case DuplicateRegistration:
		return "DuplicateRegistration"
	case ExecutionFailure:
		return "ExecutionFailure"
	default:
		return fmt.Sprintf("ErrorType(%d)", int(t))
	}
}

// NewCalcError builds a CalcError with a formatted message
func NewCalcError(errType ErrorType, format string, args ...any) *CalcError {
	return &CalcError{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
	}
}

// IsType reports whether any error in err's chain is a CalcError of the given type
func IsType(err error, errType ErrorType) bool {
	var calcErr *CalcError
	if errors.As(err, &calcErr) {
		return calcErr.Type == errType
	}
	return false
}
