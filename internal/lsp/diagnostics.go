package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"
	"thumbc/internal/compiler"
	"thumbc/internal/errors"
)

// ConvertResult transforms every diagnostic of a compilation into LSP
// diagnostics: lexical errors, then syntax errors, then backend warnings
// when the source is otherwise clean.
func ConvertResult(result *compiler.Result) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}

	for _, scanErr := range result.ScanErrors {
		diagnostics = append(diagnostics, convert(errors.FromScanError(scanErr), "thumbc-scanner"))
	}
	for _, parseErr := range result.ParseErrors {
		diagnostics = append(diagnostics, convert(errors.FromParseError(parseErr), "thumbc-parser"))
	}
	if !result.HasErrors() {
		for _, warn := range result.Warnings() {
			diagnostics = append(diagnostics, convert(warn, "thumbc-codegen"))
		}
	}

	return diagnostics
}

func convert(err errors.CompilerError, source string) protocol.Diagnostic {
	length := err.Length
	if length <= 0 {
		length = 1
	}

	severity := protocol.DiagnosticSeverityError
	if err.Level == errors.Warning {
		severity = protocol.DiagnosticSeverityWarning
	}

	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{
				Line:      uint32(err.Position.Line - 1),   // Convert to 0-based indexing
				Character: uint32(err.Position.Column - 1), // Convert to 0-based indexing
			},
			End: protocol.Position{
				Line:      uint32(err.Position.Line - 1),
				Character: uint32(err.Position.Column - 1 + length),
			},
		},
		Severity: &severity,
		Code:     &protocol.IntegerOrString{Value: err.Code},
		Source:   ptrString(source),
		Message:  err.Message,
	}
}

func ptrString(s string) *string {
	return &s
}
