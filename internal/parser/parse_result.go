package parser

import "thumbc/internal/ast"

// ParseResult contains the tree and the syntax diagnostics of one parse.
// Program is never nil, even when Errors is not empty.
type ParseResult struct {
	Program *ast.Program
	Errors  []ParseError
}

func (pr ParseResult) Success() bool {
	return len(pr.Errors) == 0
}

// ParseSource lexes and parses source in one call.
func ParseSource(source string) (*ast.Program, []ParseError, []ScanError) {
	lexed := Lex(source)
	parsed := Parse(lexed.Tokens)
	return parsed.Program, parsed.Errors, lexed.Errors
}
