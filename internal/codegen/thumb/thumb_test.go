package thumb

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"thumbc/internal/ast"
)

func program(fns ...*ast.Function) *ast.Program {
	return &ast.Program{Functions: fns}
}

func returning(name string, v int32) *ast.Function {
	return &ast.Function{
		Name: name,
		Body: &ast.ReturnStmt{Expr: &ast.IntLiteral{Value: v}},
	}
}

func TestEmitSingleFunction(t *testing.T) {
	expected := "  .syntax unified\n" +
		"  .thumb\n" +
		"  .global main\n" +
		"main:\n" +
		"  push {lr}\n" +
		"  movs r0, #42\n" +
		"  pop {pc}\n"

	assert.Equal(t, expected, Emit(program(returning("main", 42))))
}

func TestEmitPreambleOnly(t *testing.T) {
	assert.Equal(t, "  .syntax unified\n  .thumb\n", Emit(program()))
	assert.Equal(t, "  .syntax unified\n  .thumb\n", Emit(nil))
}

func TestEmitDeclarationOrder(t *testing.T) {
	asm := Emit(program(returning("first", 1), returning("second", 2)))

	first := strings.Index(asm, ".global first")
	second := strings.Index(asm, ".global second")
	require.NotEqual(t, -1, first)
	require.NotEqual(t, -1, second)
	assert.Less(t, first, second)
	assert.Contains(t, asm, "  movs r0, #1\n  pop {pc}\n  .global second")
}

func TestImmediateMasking(t *testing.T) {
	tests := []struct {
		name  string
		value int32
		want  int32
	}{
		{"zero", 0, 0},
		{"in range", 42, 42},
		{"upper bound", 255, 255},
		{"just over", 256, 0},
		{"three hundred", 300, 44},
		{"large", 0x12345, 0x45},
		{"max int32", 2147483647, 255},
		{"negative", -1, 255},
		{"negative large", -256, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Immediate(tt.value))
			if tt.value >= 0 && tt.value <= 255 {
				assert.Equal(t, tt.value, Immediate(tt.value))
			} else {
				assert.Equal(t, tt.value&0xFF, Immediate(tt.value))
			}
		})
	}
}

func TestEmitTruncatesLargeValue(t *testing.T) {
	assert.Contains(t, Emit(program(returning("main", 300))), "movs r0, #44\n")
}

func TestReturnValueDegradesToZero(t *testing.T) {
	assert.Equal(t, int32(0), ReturnValue(&ast.Function{Name: "f"}))
	assert.Equal(t, int32(0), ReturnValue(&ast.Function{Name: "f", Body: &ast.ReturnStmt{}}))
	assert.Equal(t, int32(9), ReturnValue(returning("f", 9)))

	asm := Emit(program(&ast.Function{Name: "f"}))
	assert.Contains(t, asm, "movs r0, #0\n")
}

func TestEmitIsDeterministic(t *testing.T) {
	p := program(returning("a", 7), returning("b", 513))
	assert.Equal(t, Emit(p), Emit(p))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestGeneratePropagatesWriteError(t *testing.T) {
	err := NewGenerator(failingWriter{}).Generate(program(returning("main", 1)))
	assert.EqualError(t, err, "disk full")
}
