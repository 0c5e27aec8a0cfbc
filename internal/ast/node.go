package ast

type Node interface {
	NodePos() Position
	NodeType() NodeType
	String() string
}

type NodeType int

const (
	ILLEGAL NodeType = iota
	PROGRAM
	FUNCTION
	RETURN_STMT
	INT_LITERAL
)

var nodeTypeNames = [...]string{
	ILLEGAL:     "ILLEGAL",
	PROGRAM:     "PROGRAM",
	FUNCTION:    "FUNCTION",
	RETURN_STMT: "RETURN_STMT",
	INT_LITERAL: "INT_LITERAL",
}

func (t NodeType) String() string {
	if t >= 0 && int(t) < len(nodeTypeNames) {
		return nodeTypeNames[t]
	}
	return "NodeType(?)"
}

// Expr is the closed set of value-producing nodes.
type Expr interface {
	Node
	isExpr()
}

// Stmt is the closed set of action nodes.
type Stmt interface {
	Node
	isStmt()
}

func (*IntLiteral) isExpr() {}

func (*ReturnStmt) isStmt() {}

func (*Program) NodePos() Position  { return Position{Line: 1, Column: 1} }
func (*Program) NodeType() NodeType { return PROGRAM }

func (f *Function) NodePos() Position { return f.Pos }
func (*Function) NodeType() NodeType  { return FUNCTION }

func (r *ReturnStmt) NodePos() Position { return r.Pos }
func (*ReturnStmt) NodeType() NodeType  { return RETURN_STMT }

func (l *IntLiteral) NodePos() Position { return l.Pos }
func (*IntLiteral) NodeType() NodeType  { return INT_LITERAL }

// NewPlaceholder returns the zero literal substituted for expressions the
// parser could not recognize.
func NewPlaceholder(pos Position) *IntLiteral {
	return &IntLiteral{Pos: pos, Value: 0}
}
