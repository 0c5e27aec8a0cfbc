package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

var ThumbcLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Keywords must win over identifiers (order matters)
		{Name: "Keyword", Pattern: `\b(int|return|if|else|while)\b`, Action: nil},
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`, Action: nil},

		// Decimal integer literals
		{Name: "Int", Pattern: `[0-9]+`, Action: nil},

		// Single character punctuation and operators
		{Name: "Punct", Pattern: `[(){};,+\-*/%=]`, Action: nil},

		{Name: "Whitespace", Pattern: `[ \t\r\n]+`, Action: nil},
	},
})
