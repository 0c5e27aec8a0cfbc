package ast

// Program is the root of the tree: every top level function in source order.
// Example: "int main(){ return 42; }"
type Program struct {
	Functions []*Function
}

// Position tracks location information for error reporting and tooling
type Position struct {
	Offset int
	Line   int
	Column int
}

// Function represents function declarations
// Example: "int main(){ return 42; }"
type Function struct {
	Pos  Position
	Name string
	Body Stmt // never nil
}

// ReturnStmt represents return statements
// Example: "return 42;"
type ReturnStmt struct {
	Pos  Position
	Expr Expr // never nil, a zero literal stands in for a missing expression
}

// IntLiteral represents decimal integer literals
// Example: "42"
type IntLiteral struct {
	Pos   Position
	Value int32
}
