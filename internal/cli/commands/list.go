package commands

import (
	"context"
	"fmt"

	"github.com/mamaar/gocalc/internal/cli"
)

// ListCommand prints the registered operation names
func ListCommand(env *cli.Env) cli.CommandFunc {
	return func(ctx context.Context, args []string) error {
		names := env.Registry.Names()
		if *env.Flags.Json {
			return OutputJSON(env.Out, map[string]interface{}{
				"operations": names,
			})
		}
		fmt.Fprintln(env.Out, "Supported operations:")
		for _, name := range names {
			fmt.Fprintf(env.Out, "  %s\n", name)
		}
		return nil
	}
}
