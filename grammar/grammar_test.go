package grammar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"thumbc/grammar"
	"thumbc/internal/parser"
)

func TestParseReturnFortyTwo(t *testing.T) {
	program, err := grammar.ParseString("main.c", "int main(){ return 42; }")
	require.NoError(t, err)
	require.NotNil(t, program.Function)

	assert.Equal(t, "int", program.Function.Type)
	assert.Equal(t, "main", program.Function.Name)
	assert.Equal(t, "42", program.Function.Return.Value)
	assert.Equal(t, 1, program.Function.Pos.Line)
	assert.Equal(t, 1, program.Function.Pos.Column)

	v, err := program.Function.Return.IntValue()
	require.NoError(t, err)
	assert.Equal(t, int32(42), v)
}

func TestParseEmpty(t *testing.T) {
	program, err := grammar.ParseString("empty.c", " \n")
	require.NoError(t, err)
	assert.Nil(t, program.Function)
}

func TestKeywordIsNotAName(t *testing.T) {
	_, err := grammar.ParseString("kw.c", "int return(){ return 1; }")
	assert.Error(t, err)

	program, err := grammar.ParseString("ident.c", "int integer(){ return 1; }")
	require.NoError(t, err)
	assert.Equal(t, "integer", program.Function.Name)
}

func TestOverflowIsRejected(t *testing.T) {
	_, err := grammar.ParseString("big.c", "int main(){ return 99999999999; }")
	assert.Error(t, err)
}

var corpus = []string{
	"",
	"   \n\t",
	"int main(){ return 42; }",
	"int main(){ return 300; }",
	"int _f1 ( ) {\n  return\n 0 ;\n}\n",
	"int main(){ return ; }",
	"int main(){ return 1; } int other(){ return 2; }",
	"int main(){ return 5 @ }",
	"int main(",
	"main(){ return 1; }",
	"int (){ return 1; }",
	"int main(){ if 1; }",
	"int main(){ return -1; }",
	"int main(){ return 2147483647; }",
	"int main(){ return 2147483648; }",
	"int return(){ return 1; }",
	"int main(){ return 1 }",
	"int main(){ return 1;",
}

func TestAgreesWithHandWrittenParser(t *testing.T) {
	for _, src := range corpus {
		t.Run(src, func(t *testing.T) {
			program, parseErrors, scanErrors := parser.ParseSource(src)
			hasErrors := len(parseErrors) > 0 || len(scanErrors) > 0

			_, refErr := grammar.ParseString("corpus.c", src)
			assert.Equal(t, hasErrors, refErr != nil, "acceptance should agree")

			assert.NoError(t, grammar.CrossCheck("corpus.c", src, program, hasErrors))
		})
	}
}

func TestCrossCheckReportsDisagreement(t *testing.T) {
	program, _, _ := parser.ParseSource("int main(){ return 1; }")
	program.Functions[0].Name = "renamed"

	err := grammar.CrossCheck("x.c", "int main(){ return 1; }", program, false)
	assert.ErrorContains(t, err, "function name mismatch")

	err = grammar.CrossCheck("x.c", "int main(){ return 1; }", program, true)
	assert.ErrorContains(t, err, "accepts source with diagnostics")
}
