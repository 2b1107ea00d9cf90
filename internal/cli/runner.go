package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

// ErrUsage marks errors caused by malformed command lines
var ErrUsage = errors.New("usage error")

// CommandFunc represents a command function signature
type CommandFunc func(ctx context.Context, args []string) error

// Runner handles command routing and execution
type Runner struct {
	commands map[string]CommandFunc
}

// NewRunner creates a new command runner
func NewRunner() *Runner {
	return &Runner{
		commands: make(map[string]CommandFunc),
	}
}

// RegisterCommand registers a command handler
func (r *Runner) RegisterCommand(name string, fn CommandFunc) {
	r.commands[name] = fn
}

// Execute runs the specified command with arguments
func (r *Runner) Execute(ctx context.Context, command string, args []string) error {
	fn, ok := r.commands[command]
	if !ok {
		return fmt.Errorf("%w: unknown command: %s", ErrUsage, command)
	}
	return fn(ctx, args)
}

// GetCommands returns the registered command names, sorted
func (r *Runner) GetCommands() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
