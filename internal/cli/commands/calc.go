package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/mamaar/gocalc/internal/cli"
	"github.com/mamaar/gocalc/internal/repl"
	"github.com/mamaar/gocalc/pkg/calculation"
)

// CalcResult is the JSON shape of a one-shot calculation. Non-finite numbers
// are null; the description always carries the full rendering.
type CalcResult struct {
	Operation   string   `json:"operation"`
	A           *float64 `json:"a"`
	B           *float64 `json:"b"`
	Result      *float64 `json:"result"`
	Description string   `json:"description"`
}

// CalcCommand evaluates a single "<operation> <num1> <num2>" calculation
func CalcCommand(env *cli.Env) cli.CommandFunc {
	return func(ctx context.Context, args []string) error {
		op, a, b, err := repl.ParseLine(strings.Join(args, " "))
		if err != nil {
			return fmt.Errorf("%w: calc requires <operation> <num1> <num2>: %v", cli.ErrUsage, err)
		}

		calc, err := env.Registry.Create(op, a, b)
		if err != nil {
			return err
		}
		result, err := calc.Execute()
		if err != nil {
			return err
		}
		desc, err := calc.Describe()
		if err != nil {
			return err
		}
		env.Logger.Debug("one-shot calculation", "operation", op, "result", result)

		if *env.Flags.Json {
			return OutputJSON(env.Out, CalcResult{
				Operation:   strings.ToLower(op),
				A:           calculation.FiniteOrNil(a),
				B:           calculation.FiniteOrNil(b),
				Result:      calculation.FiniteOrNil(result),
				Description: desc,
			})
		}
		fmt.Fprintf(env.Out, "Result: %s\n", desc)
		return nil
	}
}
