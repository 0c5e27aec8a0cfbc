package parser

import "thumbc/internal/ast"

// peek returns the token offset places ahead of the cursor, or the final End
// token once the cursor runs past the slice.
func (p *Parser) peek(offset int) Token {
	idx := p.current + offset
	if idx >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[idx]
}

func (p *Parser) check(kind TokenKind) bool {
	return p.peek(0).Kind == kind
}

func (p *Parser) advance() Token {
	tok := p.peek(0)
	if p.current < len(p.tokens) {
		p.current++
	}
	return tok
}

// consume returns the current token and moves past it when it has the expected
// kind. Otherwise it records message at the offending token and returns that
// token without moving, so parsing carries on with what is actually there.
func (p *Parser) consume(kind TokenKind, message string) Token {
	if p.check(kind) {
		return p.advance()
	}
	p.errorAtCurrent(message)
	return p.peek(0)
}

func (p *Parser) isAtEnd() bool {
	return p.check(End)
}

func (p *Parser) errorAtCurrent(message string) {
	p.errorAt(p.peek(0), message)
}

func (p *Parser) errorAt(tok Token, message string) {
	p.errors = append(p.errors, ParseError{
		Message:  message,
		Position: tok.Position,
	})
}

func (p *Parser) makePos(tok Token) ast.Position {
	return ast.Position{
		Offset: tok.Position.Offset,
		Line:   tok.Position.Line,
		Column: tok.Position.Column,
	}
}
