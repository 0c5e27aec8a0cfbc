package parser

var KEYWORDS = map[string]TokenKind{
	"int":    KwInt,
	"return": KwReturn,
	"if":     KwIf,
	"else":   KwElse,
	"while":  KwWhile,
}

var punctuation = map[byte]TokenKind{
	'(': LParen,
	')': RParen,
	'{': LBrace,
	'}': RBrace,
	';': Semicolon,
	',': Comma,
	'+': Plus,
	'-': Minus,
	'*': Star,
	'/': Slash,
	'%': Percent,
	'=': Assign,
}

func lookupIdentifier(text string) TokenKind {
	if k, ok := KEYWORDS[text]; ok {
		return k
	}
	return Identifier
}
