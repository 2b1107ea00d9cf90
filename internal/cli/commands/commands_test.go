package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/mamaar/gocalc/internal/cli"
	"github.com/mamaar/gocalc/pkg/types"
)

func newTestEnv(t *testing.T, stdin string, args ...string) (*cli.Env, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	app := cli.NewApp(strings.NewReader(stdin), &out, &bytes.Buffer{})
	if err := app.Initialize(args); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	return app.Env(), &out
}

func TestCalcCommand(t *testing.T) {
	g := NewWithT(t)
	env, out := newTestEnv(t, "")

	err := CalcCommand(env)(context.Background(), []string{"MULTIPLY", "7", "8"})

	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(out.String()).To(Equal("Result: MultiplyCalculation: 7.0 Multiply 8.0 = 56.0\n"))
}

func TestCalcCommand_JSON(t *testing.T) {
	g := NewWithT(t)
	env, out := newTestEnv(t, "", "-json")

	g.Expect(CalcCommand(env)(context.Background(), []string{"Divide", "1", "4"})).To(Succeed())

	var result CalcResult
	g.Expect(json.Unmarshal(out.Bytes(), &result)).To(Succeed())
	g.Expect(result.Operation).To(Equal("divide"))
	g.Expect(result.A).To(HaveValue(Equal(1.0)))
	g.Expect(result.B).To(HaveValue(Equal(4.0)))
	g.Expect(result.Result).To(HaveValue(Equal(0.25)))
	g.Expect(result.Description).To(Equal("DivideCalculation: 1.0 Divide 4.0 = 0.25"))
}

func TestCalcCommand_JSONNonFinite(t *testing.T) {
	testCases := []struct {
		name        string
		args        []string
		description string
	}{
		{"Overflowing product", []string{"multiply", "1e308", "10"}, "MultiplyCalculation: 1e+308 Multiply 10.0 = inf"},
		{"Infinite operand", []string{"add", "1e400", "1"}, "AddCalculation: inf Add 1.0 = inf"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := NewWithT(t)
			env, out := newTestEnv(t, "", "-json")

			g.Expect(CalcCommand(env)(context.Background(), tc.args)).To(Succeed())

			var result CalcResult
			g.Expect(json.Unmarshal(out.Bytes(), &result)).To(Succeed())
			g.Expect(result.Result).To(BeNil())
			g.Expect(result.Description).To(Equal(tc.description))
		})
	}
}

func TestCalcCommand_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		args    []string
		check   func(error) bool
		message string
	}{
		{"Missing operand", []string{"add", "1"}, func(err error) bool { return errors.Is(err, cli.ErrUsage) }, "calc requires"},
		{"Bad number", []string{"add", "one", "2"}, func(err error) bool { return errors.Is(err, cli.ErrUsage) }, "invalid number"},
		{"Unsupported", []string{"modulus", "1", "2"}, func(err error) bool { return types.IsType(err, types.UnsupportedOperation) }, "Unsupported calculation type: 'modulus'"},
		{"Divide by zero", []string{"divide", "1", "0"}, func(err error) bool { return types.IsType(err, types.DivisionByZero) }, "Cannot divide by zero."},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			env, _ := newTestEnv(t, "")
			err := CalcCommand(env)(context.Background(), tc.args)
			if err == nil || !tc.check(err) {
				t.Fatalf("Unexpected error: %v", err)
			}
			if !strings.Contains(err.Error(), tc.message) {
				t.Errorf("Expected error to contain %q, got %q", tc.message, err.Error())
			}
		})
	}
}

func TestListCommand(t *testing.T) {
	g := NewWithT(t)
	env, out := newTestEnv(t, "")

	g.Expect(ListCommand(env)(context.Background(), nil)).To(Succeed())
	g.Expect(out.String()).To(Equal("Supported operations:\n  add\n  subtract\n  multiply\n  divide\n  power\n"))
}

func TestListCommand_JSON(t *testing.T) {
	g := NewWithT(t)
	env, out := newTestEnv(t, "", "-json")

	g.Expect(ListCommand(env)(context.Background(), nil)).To(Succeed())

	var payload struct {
		Operations []string `json:"operations"`
	}
	g.Expect(json.Unmarshal(out.Bytes(), &payload)).To(Succeed())
	g.Expect(payload.Operations).To(HaveLen(5))
}

func TestReplCommand(t *testing.T) {
	g := NewWithT(t)
	env, out := newTestEnv(t, "power 2 10\nhistory\nexit\n", "-prompt", "> ")

	g.Expect(ReplCommand(env)(context.Background(), nil)).To(Succeed())
	g.Expect(out.String()).To(ContainSubstring("Result: PowerCalculation: 2.0 Power 10.0 = 1024.0"))
	g.Expect(out.String()).To(ContainSubstring("1. PowerCalculation: 2.0 Power 10.0 = 1024.0"))

	err := ReplCommand(env)(context.Background(), []string{"extra"})
	g.Expect(errors.Is(err, cli.ErrUsage)).To(BeTrue())
}

func TestHelpCommand(t *testing.T) {
	testCases := []struct {
		args     []string
		expected string
	}{
		{nil, "Usage: gocalc [options] [command] [arguments]"},
		{[]string{"repl"}, "Calculator REPL Help"},
		{[]string{"calc"}, "Calc Command - Evaluate a single calculation"},
		{[]string{"list"}, "List Command"},
		{[]string{"version"}, "Version Command"},
	}

	for _, tc := range testCases {
		env, out := newTestEnv(t, "")
		if err := HelpCommand(env)(context.Background(), tc.args); err != nil {
			t.Fatalf("Unexpected error for %v: %v", tc.args, err)
		}
		if !strings.Contains(out.String(), tc.expected) {
			t.Errorf("Expected help for %v to contain %q, got:\n%s", tc.args, tc.expected, out.String())
		}
	}

	env, _ := newTestEnv(t, "")
	if err := HelpCommand(env)(context.Background(), []string{"bogus"}); !errors.Is(err, cli.ErrUsage) {
		t.Errorf("Expected ErrUsage for unknown topic, got %v", err)
	}
}

func TestVersionCommand(t *testing.T) {
	env, out := newTestEnv(t, "")
	if err := VersionCommand(env)(context.Background(), nil); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if out.String() != "gocalc version 0.1.0\n" {
		t.Errorf("Unexpected output: %q", out.String())
	}
}

func TestRegisterAll(t *testing.T) {
	env, _ := newTestEnv(t, "")
	runner := cli.NewRunner()
	RegisterAll(runner, env)

	expected := []string{"calc", "help", "list", "repl", "version"}
	got := runner.GetCommands()
	if strings.Join(got, ",") != strings.Join(expected, ",") {
		t.Errorf("Expected commands %v, got %v", expected, got)
	}
}
