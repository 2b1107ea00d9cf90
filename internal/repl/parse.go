package repl

import (
	"errors"
	"strconv"
	"strings"

	"github.com/mamaar/gocalc/pkg/types"
)

// ParseLine splits "<operation> <num1> <num2>" into its parts. Exactly three
// whitespace-separated tokens are required and both operands must be valid
// floating-point literals.
func ParseLine(line string) (op string, a, b float64, err error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return "", 0, 0, types.NewCalcError(types.InvalidFormat,
			"expected 3 tokens, got %d", len(fields))
	}

	if a, err = parseOperand(fields[1]); err != nil {
		return "", 0, 0, err
	}
	if b, err = parseOperand(fields[2]); err != nil {
		return "", 0, 0, err
	}
	return fields[0], a, b, nil
}

// parseOperand accepts decimal literals only. Out-of-range literals saturate
// to ±inf or 0.
func parseOperand(token string) (float64, error) {
	if isHexLiteral(token) {
		return 0, &types.CalcError{
			Type:    types.InvalidFormat,
			Message: "invalid number " + strconv.Quote(token),
		}
	}
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return v, nil
		}
		return 0, &types.CalcError{
			Type:    types.InvalidFormat,
			Message: "invalid number " + strconv.Quote(token),
			Cause:   err,
		}
	}
	return v, nil
}

func isHexLiteral(token string) bool {
	unsigned := strings.TrimLeft(token, "+-")
	return len(unsigned) >= 2 && unsigned[0] == '0' && (unsigned[1] == 'x' || unsigned[1] == 'X')
}
