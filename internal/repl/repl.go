// Package repl implements the interactive read-evaluate-print loop of the
// calculator. A REPL owns its calculation history; the registry it reads
// from must be fully populated before Run is called.
package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/mamaar/gocalc/pkg/calculation"
	"github.com/mamaar/gocalc/pkg/types"
)

// DefaultPrompt is printed before every read
const DefaultPrompt = ">> "

// REPL reads "<operation> <num1> <num2>" lines and prints results
type REPL struct {
	registry *calculation.Registry
	in       io.Reader
	out      io.Writer
	prompt   string
	logger   *slog.Logger
	history  []string
}

// Option configures a REPL
type Option func(*REPL)

// WithLogger sets the logger used for diagnostics
func WithLogger(logger *slog.Logger) Option {
	return func(r *REPL) {
		r.logger = logger
	}
}

// WithPrompt overrides DefaultPrompt
func WithPrompt(prompt string) Option {
	return func(r *REPL) {
		r.prompt = prompt
	}
}

// New creates a REPL reading from in and writing to out
func New(registry *calculation.Registry, in io.Reader, out io.Writer, opts ...Option) *REPL {
	r := &REPL{
		registry: registry,
		in:       in,
		out:      out,
		prompt:   DefaultPrompt,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.With("session", uuid.NewString())
	return r
}

// History returns a copy of the descriptions of successful calculations
func (r *REPL) History() []string {
	history := make([]string, len(r.history))
	copy(history, r.history)
	return history
}

type readResult struct {
	line string
	err  error
}

// Run loops until exit, end of input or ctx cancellation. All three end the
// session normally and return nil; only a failing reader yields an error.
func (r *REPL) Run(ctx context.Context) error {
	r.logger.Info("calculator session started")
	r.println("Calculator started. Type 'help' for commands.")

	lines := make(chan readResult)
	done := make(chan struct{})
	defer close(done)
	go r.readLines(lines, done)

	for {
		fmt.Fprint(r.out, r.prompt)

		select {
		case <-ctx.Done():
			r.logger.Info("session interrupted", "reason", ctx.Err())
			r.println("\nKeyboard interrupt detected. Exiting calculator. Goodbye!")
			return nil
		case res := <-lines:
			if res.line != "" {
				if r.Handle(res.line) {
					return nil
				}
			}
			if res.err == nil {
				continue
			}
			if errors.Is(res.err, io.EOF) {
				r.logger.Info("end of input")
				r.println("\nEOF detected. Exiting calculator. Goodbye!")
				return nil
			}
			return fmt.Errorf("read input: %w", res.err)
		}
	}
}

func (r *REPL) readLines(lines chan<- readResult, done <-chan struct{}) {
	reader := bufio.NewReader(r.in)
	for {
		line, err := reader.ReadString('\n')
		select {
		case lines <- readResult{line: strings.TrimRight(line, "\r\n"), err: err}:
		case <-done:
			return
		}
		if err != nil {
			return
		}
	}
}

// Handle processes a single input line and reports whether the session
// should end.
func (r *REPL) Handle(line string) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return false
	}

	switch strings.ToLower(input) {
	case "exit":
		r.logger.Info("exit requested", "calculations", len(r.history))
		r.println("Exiting calculator. Goodbye!")
		return true
	case "help":
		DisplayHelp(r.out, r.registry.Names())
		return false
	case "history":
		DisplayHistory(r.out, r.history)
		return false
	}

	op, a, b, err := ParseLine(input)
	if err != nil {
		r.logger.Debug("rejected input", "input", input, "err", err)
		r.println("Invalid input. Please follow the format: <operation> <num1> <num2>")
		r.println("Type 'help' for more information.")
		return false
	}

	desc, err := r.evaluate(op, a, b)
	switch {
	case err == nil:
		r.history = append(r.history, desc)
		r.logger.Debug("calculation succeeded", "operation", op, "result", desc)
		r.println("Result: " + desc)
	case types.IsType(err, types.UnsupportedOperation):
		r.logger.Debug("unsupported operation", "operation", op)
		r.println(fmt.Sprintf("Unsupported calculation type: '%s'.", op))
		r.println("Type 'help' to see the list of supported operations.")
	case types.IsType(err, types.DivisionByZero):
		r.println("Cannot divide by zero.")
	default:
		r.logger.Error("calculation failed", "operation", op, "err", err)
		r.println(fmt.Sprintf("An error occurred during calculation: %v", err))
		r.println("Please try again.")
	}
	return false
}

// evaluate builds and runs a calculation. A panic inside a constructor or
// operation is reported as an ExecutionFailure instead of ending the session.
func (r *REPL) evaluate(op string, a, b float64) (desc string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = &types.CalcError{
				Type:      types.ExecutionFailure,
				Message:   fmt.Sprint(rec),
				Operation: op,
			}
		}
	}()

	calc, err := r.registry.Create(op, a, b)
	if err != nil {
		return "", err
	}
	return calc.Describe()
}

func (r *REPL) println(s string) {
	fmt.Fprintln(r.out, s)
}
