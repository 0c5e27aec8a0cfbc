// Package repl compiles one program per input line and prints the result.
package repl

import (
	"bufio"
	"fmt"
	"io"

	"github.com/fatih/color"
	"thumbc/internal/compiler"
	"thumbc/internal/errors"
)

const PROMPT = ">> "

// Start reads lines from in until EOF. Each line is compiled on its own;
// diagnostics or the generated assembly are written to out.
func Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	prompt := color.New(color.FgCyan).SprintFunc()

	for {
		fmt.Fprint(out, prompt(PROMPT))
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return
		}

		line := scanner.Text()
		result := compiler.Compile("<repl>", line)
		reporter := errors.NewErrorReporter("<repl>", line)

		if result.HasErrors() {
			fmt.Fprint(out, reporter.FormatErrors(result.Errors()))
			continue
		}
		if len(result.Program.Functions) == 0 {
			continue
		}

		fmt.Fprint(out, reporter.FormatErrors(result.Warnings()))
		fmt.Fprint(out, result.Assembly)
	}
}
