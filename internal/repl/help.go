package repl

import (
	"fmt"
	"io"
)

var operationSummaries = map[string]string{
	"add":      "Adds two numbers.",
	"subtract": "Subtracts the second number from the first.",
	"multiply": "Multiplies two numbers.",
	"divide":   "Divides the first number by the second.",
	"power":    "Raises the first number to the power of the second.",
}

// DisplayHelp prints the usage block, listing the given operation names
func DisplayHelp(w io.Writer, operations []string) {
	fmt.Fprint(w, `
Calculator REPL Help
--------------------
Usage:
    <operation> <number1> <number2>
    - Perform a calculation with the specified operation and two numbers.
    - Supported operations:
`)
	for _, name := range operations {
		summary, ok := operationSummaries[name]
		if !ok {
			summary = "Custom operation."
		}
		fmt.Fprintf(w, "        %-9s : %s\n", name, summary)
	}
	fmt.Fprint(w, `
Special Commands:
    help      : Display this help message.
    history   : Show the history of calculations.
    exit      : Exit the calculator.

Examples:
    add 10 5
    subtract 15.5 3.2
    multiply 7 8
    divide 20 4
    power 2 8
`)
}

// DisplayHistory prints the 1-indexed calculation history
func DisplayHistory(w io.Writer, history []string) {
	if len(history) == 0 {
		fmt.Fprintln(w, "No calculations performed yet.")
		return
	}
	fmt.Fprintln(w, "Calculation History:")
	for i, entry := range history {
		fmt.Fprintf(w, "%d. %s\n", i+1, entry)
	}
}
