// SPDX-License-Identifier: Apache-2.0
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	"thumbc/grammar"
	"thumbc/internal/compiler"
	"thumbc/internal/errors"
)

var log = commonlog.GetLogger("thumbc.cli")

type options struct {
	output    string
	tokens    bool
	ast       bool
	verify    bool
	verbosity int
	path      string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func parseOptions(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}

	flags := flag.NewFlagSet("thumbc", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&opts.output, "o", "", "write assembly to `path` instead of stdout")
	flags.BoolVar(&opts.tokens, "tokens", false, "print the token stream")
	flags.BoolVar(&opts.ast, "ast", false, "print the parsed program")
	flags.BoolVar(&opts.verify, "verify", false, "cross-check the source against the reference grammar")
	flags.IntVar(&opts.verbosity, "v", 0, "log verbosity")
	flags.Usage = func() {
		fmt.Fprintln(stderr, "Usage: thumbc [flags] <file.c>")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		return nil, err
	}
	if flags.NArg() != 1 {
		flags.Usage()
		return nil, fmt.Errorf("expected exactly one source file, got %d", flags.NArg())
	}
	opts.path = flags.Arg(0)

	return opts, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseOptions(args, stderr)
	if err != nil {
		return 1
	}

	commonlog.Configure(opts.verbosity, nil)

	startTime := time.Now()

	source, err := os.ReadFile(opts.path)
	if err != nil {
		fmt.Fprintf(stderr, "failed to read file: %v\n", err)
		return 1
	}

	result := compiler.Compile(opts.path, string(source))

	if opts.tokens {
		for _, tok := range result.Tokens {
			fmt.Fprintf(stdout, "%d:%d %s\n", tok.Position.Line, tok.Position.Column, tok.Lexeme)
		}
	}

	reporter := errors.NewErrorReporter(opts.path, string(source))
	fmt.Fprint(stderr, reporter.FormatErrors(result.Errors()))

	if opts.verify {
		if err := grammar.CrossCheck(opts.path, string(source), result.Program, result.HasErrors()); err != nil {
			log.Warningf("reference grammar disagrees: %s", err)
			color.New(color.FgYellow).Fprintf(stderr, "verify: %v\n", err)
		} else {
			log.Debugf("reference grammar agrees on %s", opts.path)
		}
	}

	duration := formatDuration(time.Since(startTime))

	if result.HasErrors() {
		color.New(color.FgRed).Fprintf(stderr, "Compilation failed after %s\n", duration)
		return 1
	}

	fmt.Fprint(stderr, reporter.FormatErrors(result.Warnings()))

	if opts.ast {
		fmt.Fprintln(stdout, result.Program.String())
	}

	if err := writeAssembly(opts.output, result.Assembly, stdout); err != nil {
		fmt.Fprintf(stderr, "failed to write assembly: %v\n", err)
		return 1
	}

	color.New(color.FgGreen).Fprintf(stderr, "Successfully compiled %s in %s\n", opts.path, duration)
	return 0
}

func writeAssembly(path, assembly string, stdout io.Writer) error {
	if path == "" {
		_, err := io.WriteString(stdout, assembly)
		return err
	}
	if err := os.WriteFile(path, []byte(assembly), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
