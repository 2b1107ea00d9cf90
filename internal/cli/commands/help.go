package commands

import (
	"context"
	"fmt"

	"github.com/mamaar/gocalc/internal/cli"
	"github.com/mamaar/gocalc/internal/repl"
)

// HelpCommand handles help requests for specific commands
func HelpCommand(env *cli.Env) cli.CommandFunc {
	return func(ctx context.Context, args []string) error {
		if len(args) == 0 {
			cli.Usage(env.Out, nil)
			return nil
		}

		switch args[0] {
		case "repl":
			fmt.Fprintln(env.Out, `Repl Command - Start the interactive calculator

Usage: gocalc repl

Reads one "<operation> <num1> <num2>" line at a time and prints the result.
The session ends on "exit", end of input or Ctrl+C.`)
			repl.DisplayHelp(env.Out, env.Registry.Names())

		case "calc":
			fmt.Fprintln(env.Out, `Calc Command - Evaluate a single calculation

Usage: gocalc calc <operation> <num1> <num2>

Arguments:
  operation  One of the supported operations (see "gocalc list")
  num1       First operand, any floating-point literal
  num2       Second operand, any floating-point literal

Examples:
  gocalc calc add 10 5
  gocalc calc power 2 0.5
  gocalc --json calc divide 1 3`)

		case "list":
			fmt.Fprintln(env.Out, `List Command - List supported operations

Usage: gocalc list`)

		case "version":
			fmt.Fprintln(env.Out, `Version Command - Show application version

Usage: gocalc version`)

		default:
			return fmt.Errorf("%w: unknown command: %s", cli.ErrUsage, args[0])
		}
		return nil
	}
}
