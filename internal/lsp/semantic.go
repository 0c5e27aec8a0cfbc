package lsp

import (
	"thumbc/internal/parser"
)

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions
// TokenType is an index into SemanticTokenTypes
// TokenModifiers is a bitmask based on SemanticTokenModifiers
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int
	TokenModifiers int
}

const modDeclaration = 1 << 0

// collectSemanticTokens classifies the lexer's tokens. Punctuation is left to
// the editor's syntax highlighting.
func collectSemanticTokens(tokens []parser.Token) []SemanticToken {
	var out []SemanticToken

	for i, tok := range tokens {
		switch {
		case tok.Kind.IsKeyword():
			out = append(out, makeToken(tok, "keyword", 0))
		case tok.Kind == parser.Identifier:
			if i > 0 && tokens[i-1].Kind == parser.KwInt {
				out = append(out, makeToken(tok, "function", modDeclaration))
			} else {
				out = append(out, makeToken(tok, "variable", 0))
			}
		case tok.Kind == parser.IntLiteral:
			out = append(out, makeToken(tok, "number", 0))
		case tok.Kind.IsOperator():
			out = append(out, makeToken(tok, "operator", 0))
		}
	}

	return out
}

func makeToken(tok parser.Token, tokenType string, modifiers int) SemanticToken {
	return SemanticToken{
		Line:           uint32(tok.Position.Line - 1),
		StartChar:      uint32(tok.Position.Column - 1),
		Length:         uint32(len(tok.Lexeme)),
		TokenType:      tokenTypeIndex(tokenType),
		TokenModifiers: modifiers,
	}
}

func tokenTypeIndex(name string) int {
	for i, t := range SemanticTokenTypes {
		if t == name {
			return i
		}
	}
	return 0
}

// encodeSemanticTokens packs tokens into the LSP wire format (delta-line,
// delta-start, length, type, modifiers).
func encodeSemanticTokens(tokens []SemanticToken) []uint32 {
	data := make([]uint32, 0, len(tokens)*5)
	var prevLine, prevStart uint32

	for _, token := range tokens {
		deltaLine := token.Line - prevLine
		var deltaStart uint32
		if deltaLine == 0 {
			deltaStart = token.StartChar - prevStart
		} else {
			deltaStart = token.StartChar
		}

		data = append(data, deltaLine, deltaStart, token.Length, uint32(token.TokenType), uint32(token.TokenModifiers))

		prevLine = token.Line
		prevStart = token.StartChar
	}

	return data
}
