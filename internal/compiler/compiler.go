// Package compiler chains the lexer, parser and Thumb backend for callers
// that start from source text.
package compiler

import (
	"github.com/tliron/commonlog"
	"thumbc/internal/ast"
	"thumbc/internal/codegen/thumb"
	"thumbc/internal/errors"
	"thumbc/internal/parser"
)

var log = commonlog.GetLogger("thumbc.compiler")

// Result holds every artifact of one compilation. Assembly is empty when
// the source had diagnostics or declared no function.
type Result struct {
	Name        string
	Tokens      []parser.Token
	Program     *ast.Program
	ScanErrors  []parser.ScanError
	ParseErrors []parser.ParseError
	Assembly    string
}

// Compile runs the whole pipeline on source. name only labels log output.
func Compile(name, source string) *Result {
	log.Debugf("lexing %s (%d bytes)", name, len(source))
	lexed := parser.Lex(source)
	log.Debugf("lexing complete: %d tokens, %d errors", len(lexed.Tokens), len(lexed.Errors))

	parsed := parser.Parse(lexed.Tokens)
	log.Debugf("parsing complete: %d functions, %d errors", len(parsed.Program.Functions), len(parsed.Errors))

	result := &Result{
		Name:        name,
		Tokens:      lexed.Tokens,
		Program:     parsed.Program,
		ScanErrors:  lexed.Errors,
		ParseErrors: parsed.Errors,
	}

	switch {
	case result.HasErrors():
		log.Debugf("skipping code generation for %s: diagnostics present", name)
	case len(result.Program.Functions) == 0:
		log.Debugf("skipping code generation for %s: no functions", name)
	default:
		result.Assembly = thumb.Emit(result.Program)
		log.Debugf("code generation complete: %d bytes of assembly", len(result.Assembly))
	}

	return result
}

func (r *Result) HasErrors() bool {
	return len(r.ScanErrors) > 0 || len(r.ParseErrors) > 0
}

// Diagnostics returns lexical then syntax diagnostics in their text form.
func (r *Result) Diagnostics() []string {
	out := make([]string, 0, len(r.ScanErrors)+len(r.ParseErrors))
	for _, e := range r.ScanErrors {
		out = append(out, e.String())
	}
	for _, e := range r.ParseErrors {
		out = append(out, e.String())
	}
	return out
}

// Errors returns the diagnostics as structured compiler errors.
func (r *Result) Errors() []errors.CompilerError {
	return errors.Collect(r.ScanErrors, r.ParseErrors)
}

// Warnings reports functions whose return value the backend truncates.
func (r *Result) Warnings() []errors.CompilerError {
	var warnings []errors.CompilerError
	for _, fn := range r.Program.Functions {
		v := thumb.ReturnValue(fn)
		if imm := thumb.Immediate(v); imm != v {
			warnings = append(warnings, errors.ImmediateTruncated(fn, v, imm))
		}
	}
	return warnings
}
