package commands

import (
	"context"
	"fmt"

	"github.com/mamaar/gocalc/internal/cli"
	"github.com/mamaar/gocalc/internal/repl"
)

// ReplCommand starts the interactive calculator on the environment's streams
func ReplCommand(env *cli.Env) cli.CommandFunc {
	return func(ctx context.Context, args []string) error {
		if len(args) > 0 {
			return fmt.Errorf("%w: repl takes no arguments", cli.ErrUsage)
		}
		session := repl.New(env.Registry, env.In, env.Out,
			repl.WithLogger(env.Logger),
			repl.WithPrompt(*env.Flags.Prompt),
		)
		return session.Run(ctx)
	}
}
