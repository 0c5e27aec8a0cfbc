// Package thumb emits ARM Thumb assembly for a parsed program.
//
// Every function becomes a global symbol that saves the link register,
// moves its return value into r0 and returns by popping into pc.
package thumb

import (
	"fmt"
	"io"
	"strings"

	"thumbc/internal/ast"
)

const (
	// ReturnRegister holds a function's result under the ARM calling convention.
	ReturnRegister = "r0"

	// MaxImmediate is the largest value movs can encode directly.
	MaxImmediate = 255
)

// Generator writes Thumb assembly to w.
type Generator struct {
	w io.Writer
}

func NewGenerator(w io.Writer) *Generator {
	return &Generator{w: w}
}

// Emit returns the assembly text for program. It never fails.
func Emit(program *ast.Program) string {
	var b strings.Builder
	// strings.Builder never returns a write error
	_ = NewGenerator(&b).Generate(program)
	return b.String()
}

// Generate writes the preamble followed by every function in declaration
// order. The only error it can return comes from the underlying writer.
func (g *Generator) Generate(program *ast.Program) error {
	if err := g.emit("  .syntax unified\n  .thumb\n"); err != nil {
		return err
	}
	if program == nil {
		return nil
	}

	for _, fn := range program.Functions {
		if err := g.generateFunction(fn); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) generateFunction(fn *ast.Function) error {
	if fn == nil {
		return nil
	}
	return g.emit(fmt.Sprintf(
		"  .global %s\n%s:\n  push {lr}\n  movs %s, #%d\n  pop {pc}\n",
		fn.Name, fn.Name, ReturnRegister, Immediate(ReturnValue(fn)),
	))
}

func (g *Generator) emit(s string) error {
	_, err := io.WriteString(g.w, s)
	return err
}

// ReturnValue extracts the constant a function returns. Body shapes that are
// not a return of an integer literal yield 0.
func ReturnValue(fn *ast.Function) int32 {
	switch body := fn.Body.(type) {
	case *ast.ReturnStmt:
		return exprValue(body.Expr)
	default:
		return 0
	}
}

func exprValue(expr ast.Expr) int32 {
	switch e := expr.(type) {
	case *ast.IntLiteral:
		return e.Value
	default:
		return 0
	}
}

// Immediate maps v onto the 8-bit unsigned field of movs. Values outside
// [0, MaxImmediate] keep only their low 8 bits.
// TODO: synthesize wider constants with movw/movt instead of truncating.
func Immediate(v int32) int32 {
	if v >= 0 && v <= MaxImmediate {
		return v
	}
	return v & 0xFF
}
