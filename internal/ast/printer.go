package ast

import (
	"fmt"
	"strings"
)

func (p *Program) String() string {
	var b strings.Builder
	for i, fn := range p.Functions {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(fn.String())
	}
	return b.String()
}

func (f *Function) String() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("int %s() {\n", f.Name))
	if f.Body != nil {
		b.WriteString("  " + strings.ReplaceAll(f.Body.String(), "\n", "\n  ") + "\n")
	}
	b.WriteString("}")

	return b.String()
}

func (r *ReturnStmt) String() string {
	if r.Expr == nil {
		return "return;"
	}
	return fmt.Sprintf("return %s;", r.Expr.String())
}

func (l *IntLiteral) String() string {
	return fmt.Sprintf("%d", l.Value)
}
