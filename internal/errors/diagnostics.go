package errors

import (
	"fmt"
	"strings"

	"thumbc/internal/ast"
	"thumbc/internal/parser"
)

// DiagnosticBuilder provides a fluent interface for creating errors with suggestions
type DiagnosticBuilder struct {
	err CompilerError
}

// NewDiagnostic creates a new error builder
func NewDiagnostic(code, message string, pos ast.Position) *DiagnosticBuilder {
	return &DiagnosticBuilder{
		err: CompilerError{
			Level:    Error,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

// NewWarning creates a new warning builder
func NewWarning(code, message string, pos ast.Position) *DiagnosticBuilder {
	b := NewDiagnostic(code, message, pos)
	b.err.Level = Warning
	return b
}

// WithLength sets the length of the error span
func (b *DiagnosticBuilder) WithLength(length int) *DiagnosticBuilder {
	b.err.Length = length
	return b
}

// WithSuggestion adds a suggestion to the error
func (b *DiagnosticBuilder) WithSuggestion(message string) *DiagnosticBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message})
	return b
}

// WithReplacement adds a suggestion with replacement text
func (b *DiagnosticBuilder) WithReplacement(message, replacement string) *DiagnosticBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{
		Message:     message,
		Replacement: replacement,
	})
	return b
}

// WithNote adds a note to the error
func (b *DiagnosticBuilder) WithNote(note string) *DiagnosticBuilder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

// WithHelp adds help text to the error
func (b *DiagnosticBuilder) WithHelp(help string) *DiagnosticBuilder {
	b.err.HelpText = help
	return b
}

// Build returns the completed compiler error
func (b *DiagnosticBuilder) Build() CompilerError {
	return b.err
}

func toASTPosition(pos parser.Position) ast.Position {
	return ast.Position{Offset: pos.Offset, Line: pos.Line, Column: pos.Column}
}

// FromScanError converts a lexical diagnostic.
func FromScanError(err parser.ScanError) CompilerError {
	return NewDiagnostic(ErrorUnexpectedCharacter, err.Message, toASTPosition(err.Position)).
		WithLength(1).
		WithHelp("only letters, digits, '_', whitespace and ( ) { } ; , + - * / % = are recognized").
		Build()
}

// FromParseError converts a syntax diagnostic, picking the code from its message.
func FromParseError(err parser.ParseError) CompilerError {
	pos := toASTPosition(err.Position)

	switch {
	case err.Message == "expected expression":
		return NewDiagnostic(ErrorMissingExpression, err.Message, pos).
			WithSuggestion("return an integer literal, e.g. 'return 0;'").
			Build()
	case err.Message == "unexpected tokens after function":
		return NewDiagnostic(ErrorTrailingTokens, err.Message, pos).
			WithNote("a program holds at most one function").
			Build()
	case err.Message == "integer literal out of range":
		return NewDiagnostic(ErrorIntegerOutOfRange, err.Message, pos).
			WithNote("the value saturates to 2147483647").
			Build()
	case strings.HasPrefix(err.Message, "expected "):
		b := NewDiagnostic(ErrorUnexpectedToken, err.Message, pos)
		if quoted := quotedToken(err.Message); quoted != "" {
			b.WithReplacement(fmt.Sprintf("insert '%s'", quoted), quoted)
		}
		return b.Build()
	default:
		return NewDiagnostic(ErrorUnexpectedToken, err.Message, pos).Build()
	}
}

// ImmediateTruncated warns that a function's return value does not fit the
// 8-bit move immediate and will be emitted as its low byte.
func ImmediateTruncated(fn *ast.Function, value, emitted int32) CompilerError {
	return NewWarning(WarningImmediateTruncated,
		fmt.Sprintf("return value %d of '%s' does not fit in 8 bits", value, fn.Name), fn.Pos).
		WithNote(fmt.Sprintf("it is emitted as %d", emitted)).
		Build()
}

// Collect converts lexical then syntax diagnostics, preserving their order.
func Collect(scanErrors []parser.ScanError, parseErrors []parser.ParseError) []CompilerError {
	out := make([]CompilerError, 0, len(scanErrors)+len(parseErrors))
	for _, e := range scanErrors {
		out = append(out, FromScanError(e))
	}
	for _, e := range parseErrors {
		out = append(out, FromParseError(e))
	}
	return out
}

// quotedToken extracts x from messages like "expected 'x' ...".
func quotedToken(message string) string {
	start := strings.IndexByte(message, '\'')
	if start < 0 {
		return ""
	}
	end := strings.IndexByte(message[start+1:], '\'')
	if end < 0 {
		return ""
	}
	return message[start+1 : start+1+end]
}
