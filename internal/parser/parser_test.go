package parser

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"thumbc/internal/ast"
)

func parseString(t *testing.T, source string) ParseResult {
	t.Helper()
	return Parse(Lex(source).Tokens)
}

func messages(errs []ParseError) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Message)
	}
	return out
}

func returnValue(t *testing.T, fn *ast.Function) int32 {
	t.Helper()
	ret, ok := fn.Body.(*ast.ReturnStmt)
	require.True(t, ok, "body should be a ReturnStmt")
	lit, ok := ret.Expr.(*ast.IntLiteral)
	require.True(t, ok, "return expression should be an IntLiteral")
	return lit.Value
}

func TestParseReturnFortyTwo(t *testing.T) {
	result := parseString(t, "int main(){ return 42; }")
	assert.True(t, result.Success())
	assert.Empty(t, result.Errors, "Should have no parse errors")

	require.Len(t, result.Program.Functions, 1)
	fn := result.Program.Functions[0]
	assert.Equal(t, "main", fn.Name)
	assert.Equal(t, int32(42), returnValue(t, fn))
	assert.Equal(t, ast.Position{Line: 1, Column: 1, Offset: 0}, fn.Pos)
}

func TestParseEmptyProgram(t *testing.T) {
	for _, src := range []string{"", "   \n\t\r\n"} {
		result := parseString(t, src)
		assert.Empty(t, result.Errors)
		require.NotNil(t, result.Program)
		assert.Empty(t, result.Program.Functions)
	}
}

func TestParseNoTokens(t *testing.T) {
	result := Parse(nil)
	assert.Empty(t, result.Errors)
	require.NotNil(t, result.Program)
	assert.Empty(t, result.Program.Functions)
}

func TestWellFormedFunctions(t *testing.T) {
	tests := []struct {
		name  string
		value int32
	}{
		{"main", 0},
		{"f", 1},
		{"_start", 255},
		{"answer42", 2147483647},
		{"big", 100000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := fmt.Sprintf("int %s(){ return %d; }", tt.name, tt.value)
			result := parseString(t, src)
			assert.Empty(t, result.Errors)
			require.Len(t, result.Program.Functions, 1)
			assert.Equal(t, tt.name, result.Program.Functions[0].Name)
			assert.Equal(t, tt.value, returnValue(t, result.Program.Functions[0]))
		})
	}
}

func TestMissingExpression(t *testing.T) {
	result := parseString(t, "int main(){ return ; }")

	require.Len(t, result.Errors, 1)
	assert.Equal(t, "expected expression", result.Errors[0].Message)
	assert.Equal(t, "parse error at 1:20 expected expression", result.Errors[0].String())

	require.Len(t, result.Program.Functions, 1)
	assert.Equal(t, int32(0), returnValue(t, result.Program.Functions[0]))
}

func TestTrailingFunction(t *testing.T) {
	result := parseString(t, "int main(){ return 1; } int other(){ return 2; }")

	require.Len(t, result.Errors, 1)
	assert.Equal(t, "unexpected tokens after function", result.Errors[0].Message)
	assert.Equal(t, Position{Line: 1, Column: 25, Offset: 24}, result.Errors[0].Position)

	require.Len(t, result.Program.Functions, 1)
	assert.Equal(t, "main", result.Program.Functions[0].Name)
}

func TestMissingSemicolonAfterLexError(t *testing.T) {
	result := parseString(t, "int main(){ return 5 @ }")

	assert.Equal(t, []string{"expected ';' after return expression"}, messages(result.Errors))
	assert.Equal(t, 24, result.Errors[0].Position.Column, "diagnostic sits on the offending '}'")
	require.Len(t, result.Program.Functions, 1)
	assert.Equal(t, int32(5), returnValue(t, result.Program.Functions[0]))
}

func TestConsumeDoesNotAdvanceOnMismatch(t *testing.T) {
	// Missing '(' is reported once; the following ')' is still matched.
	result := parseString(t, "int main){ return 3; }")

	assert.Equal(t, []string{"expected '('"}, messages(result.Errors))
	require.Len(t, result.Program.Functions, 1)
	assert.Equal(t, int32(3), returnValue(t, result.Program.Functions[0]))
}

func TestOneDiagnosticPerViolatedExpectation(t *testing.T) {
	result := parseString(t, "int main(")

	assert.Equal(t, []string{
		"expected ')'",
		"expected '{'",
		"expected 'return'",
		"expected expression",
		"expected ';' after return expression",
		"expected '}' after function body",
	}, messages(result.Errors))

	for _, e := range result.Errors {
		assert.Equal(t, Position{Line: 1, Column: 10, Offset: 9}, e.Position, "all errors sit on End")
	}
	require.Len(t, result.Program.Functions, 1)
	assert.Equal(t, "main", result.Program.Functions[0].Name)
}

func TestMissingFunctionStart(t *testing.T) {
	result := parseString(t, "main(){ return 1; }")

	require.NotEmpty(t, result.Errors)
	assert.Equal(t, "expected 'int' at function start", result.Errors[0].Message)
	assert.Equal(t, "parse error at 1:1 expected 'int' at function start", result.Errors[0].Error())
	require.Len(t, result.Program.Functions, 1)
	assert.Equal(t, "main", result.Program.Functions[0].Name)
}

func TestMissingFunctionName(t *testing.T) {
	result := parseString(t, "int (){ return 1; }")

	assert.Equal(t, []string{"expected function name"}, messages(result.Errors))
	require.Len(t, result.Program.Functions, 1)
	// the offending token stands in for the name
	assert.Equal(t, "(", result.Program.Functions[0].Name)
}

func TestReservedKeywordsHaveNoProduction(t *testing.T) {
	result := parseString(t, "int main(){ if 1; }")

	require.NotEmpty(t, result.Errors)
	assert.Equal(t, "expected 'return'", result.Errors[0].Message)
}

func TestTruncatedProgramsAlwaysDiagnose(t *testing.T) {
	full := "int main(){ return 42; }"
	for i := 1; i < len(full); i++ {
		src := full[:i]
		if len(Lex(src).Tokens) == 1 {
			continue
		}
		result := parseString(t, src)
		require.NotNil(t, result.Program, "source %q", src)
		assert.NotEmpty(t, result.Errors, "source %q", src)
		for _, fn := range result.Program.Functions {
			require.NotNil(t, fn.Body, "source %q", src)
			ret, ok := fn.Body.(*ast.ReturnStmt)
			require.True(t, ok)
			require.NotNil(t, ret.Expr, "source %q", src)
		}
	}
}

func TestIntegerOverflowSaturates(t *testing.T) {
	result := parseString(t, "int main(){ return 99999999999; }")

	assert.Equal(t, []string{"integer literal out of range"}, messages(result.Errors))
	assert.Equal(t, 20, result.Errors[0].Position.Column)
	assert.Equal(t, int32(math.MaxInt32), returnValue(t, result.Program.Functions[0]))
}

func TestParseSource(t *testing.T) {
	program, parseErrors, scanErrors := ParseSource("int main(){ return 7; }")
	assert.Empty(t, parseErrors)
	assert.Empty(t, scanErrors)
	require.Len(t, program.Functions, 1)

	_, parseErrors, scanErrors = ParseSource("int main(){ return 7 ? }")
	assert.Len(t, scanErrors, 1)
	assert.Len(t, parseErrors, 1)
}
