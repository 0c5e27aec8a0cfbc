package parser

type TokenKind int

const (
	// Special tokens
	End TokenKind = iota

	// Identifiers + literals
	Identifier
	IntLiteral

	// Keywords
	KwInt
	KwReturn
	KwIf
	KwElse
	KwWhile

	// Brackets
	LParen
	RParen
	LBrace
	RBrace

	// Separators
	Semicolon
	Comma

	// Operators
	Plus
	Minus
	Star
	Slash
	Percent
	Assign
)

var kindNames = [...]string{
	End:        "End",
	Identifier: "Identifier",
	IntLiteral: "IntLiteral",
	KwInt:      "KwInt",
	KwReturn:   "KwReturn",
	KwIf:       "KwIf",
	KwElse:     "KwElse",
	KwWhile:    "KwWhile",
	LParen:     "LParen",
	RParen:     "RParen",
	LBrace:     "LBrace",
	RBrace:     "RBrace",
	Semicolon:  "Semicolon",
	Comma:      "Comma",
	Plus:       "Plus",
	Minus:      "Minus",
	Star:       "Star",
	Slash:      "Slash",
	Percent:    "Percent",
	Assign:     "Assign",
}

func (k TokenKind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "TokenKind(?)"
}

// IsKeyword reports whether k is one of the reserved words.
func (k TokenKind) IsKeyword() bool {
	return k >= KwInt && k <= KwWhile
}

// IsOperator reports whether k is an arithmetic or assignment operator.
func (k TokenKind) IsOperator() bool {
	return k >= Plus && k <= Assign
}

type Position struct {
	Line   int // 1-based
	Column int // 1-based
	Offset int // 0-based absolute index in input
}
