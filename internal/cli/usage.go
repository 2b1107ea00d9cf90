package cli

import (
	"flag"
	"fmt"
	"io"
)

// Usage prints the usage information for the gocalc command
func Usage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintf(w, `gocalc - Interactive command-line calculator

Usage: gocalc [options] [command] [arguments]

Commands:
  repl
    Start the interactive calculator (default when no command is given)

  calc <operation> <num1> <num2>
    Evaluate a single calculation and exit

  list
    List the supported operations

  version
    Show the application version

  help [command]
    Show help for a specific command

Options:
`)
	if fs != nil {
		fs.SetOutput(w)
		fs.PrintDefaults()
	}
	fmt.Fprintf(w, `
Examples:
  # Start an interactive session
  gocalc

  # Add two numbers without entering the REPL
  gocalc calc add 10 5

  # Same calculation with JSON output
  gocalc --json calc divide 20 4

  # Use a custom prompt and log diagnostics to stderr
  gocalc --verbose --prompt "calc> " repl
`)
}
