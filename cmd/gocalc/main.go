package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mamaar/gocalc/internal/cli"
	"github.com/mamaar/gocalc/internal/cli/commands"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	app := cli.NewApp(stdin, stdout, stderr)
	if err := app.Initialize(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	runner := cli.NewRunner()
	commands.RegisterAll(runner, app.Env())

	// Ctrl+C cancels the context so the REPL can say goodbye and exit cleanly
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return app.Run(ctx, runner)
}
