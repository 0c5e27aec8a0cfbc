package grammar

import (
	"strconv"

	"github.com/alecthomas/participle/v2/lexer"
)

// Program is the declarative form of: Program := Function?
type Program struct {
	Function *Function `parser:"@@?"`
}

type Function struct {
	Pos    lexer.Position
	Type   string      `parser:"@\"int\""`
	Name   string      `parser:"@Ident \"(\" \")\" \"{\""`
	Return *ReturnStmt `parser:"@@ \"}\""`
}

type ReturnStmt struct {
	Pos   lexer.Position
	Value string `parser:"\"return\" @Int \";\""`
}

// IntValue converts the literal the same way the hand-written parser does.
func (r *ReturnStmt) IntValue() (int32, error) {
	v, err := strconv.ParseInt(r.Value, 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}
