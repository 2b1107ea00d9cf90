package commands

import (
	"context"
	"fmt"

	"github.com/mamaar/gocalc/internal/cli"
)

// VersionCommand handles the version command
func VersionCommand(env *cli.Env) cli.CommandFunc {
	return func(ctx context.Context, args []string) error {
		if len(args) > 0 {
			// If any arguments provided, show help
			fmt.Fprintln(env.Out, `Version Command - Show application version

Usage: gocalc version

Shows the current version of gocalc.`)
			return nil
		}

		cli.ShowVersion(env.Out)
		return nil
	}
}
