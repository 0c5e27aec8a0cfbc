package grammar

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"thumbc/internal/ast"
)

var parser = buildParser()

func buildParser() *participle.Parser[Program] {
	p, err := participle.Build[Program](
		participle.Lexer(ThumbcLexer),
		participle.Elide("Whitespace"),
	)
	if err != nil {
		panic(fmt.Errorf("failed to build parser: %w", err))
	}

	return p
}

// ParseString parses source against the reference grammar. Unlike the
// hand-written parser it stops at the first problem.
func ParseString(sourceName, source string) (*Program, error) {
	program, err := parser.ParseString(sourceName, source)
	if err != nil {
		return nil, err
	}
	if program.Function != nil {
		if _, err := program.Function.Return.IntValue(); err != nil {
			return nil, fmt.Errorf("%s: integer literal %q: %w", program.Function.Return.Pos, program.Function.Return.Value, err)
		}
	}
	return program, nil
}

// CrossCheck parses source with the reference grammar and reports any
// disagreement with a tree produced by the hand-written parser. hasErrors
// tells whether that parser reported diagnostics.
func CrossCheck(sourceName, source string, tree *ast.Program, hasErrors bool) error {
	ref, err := ParseString(sourceName, source)
	switch {
	case err != nil && !hasErrors:
		return fmt.Errorf("reference grammar rejects accepted source: %w", err)
	case err == nil && hasErrors:
		return fmt.Errorf("reference grammar accepts source with diagnostics")
	case err != nil:
		return nil
	}

	if ref.Function == nil {
		if tree != nil && len(tree.Functions) > 0 {
			return fmt.Errorf("reference grammar found no function, parser found %d", len(tree.Functions))
		}
		return nil
	}
	if tree == nil || len(tree.Functions) != 1 {
		return fmt.Errorf("reference grammar found one function, parser did not")
	}

	fn := tree.Functions[0]
	if fn.Name != ref.Function.Name {
		return fmt.Errorf("function name mismatch: reference %q, parser %q", ref.Function.Name, fn.Name)
	}

	want, _ := ref.Function.Return.IntValue()
	ret, ok := fn.Body.(*ast.ReturnStmt)
	if !ok {
		return fmt.Errorf("function %s: body is not a return statement", fn.Name)
	}
	lit, ok := ret.Expr.(*ast.IntLiteral)
	if !ok || lit.Value != want {
		return fmt.Errorf("function %s: return value mismatch, reference %d", fn.Name, want)
	}
	return nil
}
