package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/mamaar/gocalc/pkg/calculation"
)

// Env carries the shared state handed to every command
type Env struct {
	Registry *calculation.Registry
	Flags    *Flags
	Logger   *slog.Logger
	In       io.Reader
	Out      io.Writer
	Err      io.Writer
}

// App represents the gocalc application
type App struct {
	env  *Env
	fs   *flag.FlagSet
	args []string
}

// NewApp creates a new application instance bound to the given streams
func NewApp(in io.Reader, out, errOut io.Writer) *App {
	return &App{
		env: &Env{In: in, Out: out, Err: errOut},
	}
}

// Env returns the environment shared with commands. It is populated by Initialize.
func (app *App) Env() *Env {
	return app.env
}

// Initialize parses flags, sets up logging and populates the calculation registry
func (app *App) Initialize(args []string) error {
	app.fs = flag.NewFlagSet("gocalc", flag.ContinueOnError)
	app.fs.SetOutput(app.env.Err)
	flags, err := ParseFlags(app.fs, args, func() { Usage(app.env.Err, app.fs) })
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	app.args = app.fs.Args()
	app.env.Flags = flags
	app.env.Logger = NewLogger(app.env.Err, *flags.Verbose)
	app.env.Registry = calculation.NewDefaultRegistry(app.env.Logger)
	return nil
}

// Run executes the application logic with the provided runner and returns
// the process exit code
func (app *App) Run(ctx context.Context, runner *Runner) int {
	if *app.env.Flags.Version {
		ShowVersion(app.env.Out)
		return 0
	}

	command, rest := "repl", []string(nil)
	if len(app.args) > 0 {
		command, rest = app.args[0], app.args[1:]
	}

	app.env.Logger.Debug("executing command", "command", command, "args", rest)
	if err := runner.Execute(ctx, command, rest); err != nil {
		fmt.Fprintf(app.env.Err, "Error: %v\n", err)
		if errors.Is(err, ErrUsage) {
			Usage(app.env.Err, app.fs)
		}
		return 1
	}
	return 0
}
