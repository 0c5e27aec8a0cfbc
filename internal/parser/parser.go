package parser

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"thumbc/internal/ast"
)

type ParseError struct {
	Message  string
	Position Position
}

func (e ParseError) String() string {
	return fmt.Sprintf("parse error at %d:%d %s", e.Position.Line, e.Position.Column, e.Message)
}

func (e ParseError) Error() string {
	return e.String()
}

type Parser struct {
	tokens  []Token
	current int
	errors  []ParseError
}

func NewParser(tokens []Token) *Parser {
	if len(tokens) == 0 {
		tokens = []Token{{Kind: End, Position: Position{Line: 1, Column: 1}}}
	}
	return &Parser{tokens: tokens}
}

// Parse builds a Program from a token stream. It always returns a tree; any
// syntax problems are listed in the result's Errors.
func Parse(tokens []Token) ParseResult {
	p := NewParser(tokens)
	program := p.ParseProgram()
	return ParseResult{Program: program, Errors: p.errors}
}

// ParseProgram parses: Program := Function?
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}
	if !p.isAtEnd() {
		program.Functions = append(program.Functions, p.parseFunction())
	}
	if !p.isAtEnd() {
		p.errorAtCurrent("unexpected tokens after function")
	}
	return program
}

func (p *Parser) Errors() []ParseError {
	return p.errors
}

// parseFunction parses: 'int' Identifier '(' ')' '{' ReturnStmt '}'
func (p *Parser) parseFunction() *ast.Function {
	start := p.consume(KwInt, "expected 'int' at function start")
	name := p.consume(Identifier, "expected function name")
	p.consume(LParen, "expected '('")
	p.consume(RParen, "expected ')'")
	p.consume(LBrace, "expected '{'")
	body := p.parseReturnStmt()
	p.consume(RBrace, "expected '}' after function body")

	return &ast.Function{
		Pos:  p.makePos(start),
		Name: name.Lexeme,
		Body: body,
	}
}

// parseReturnStmt parses: 'return' Expr ';'
func (p *Parser) parseReturnStmt() *ast.ReturnStmt {
	start := p.consume(KwReturn, "expected 'return'")
	expr := p.parseExpr()
	p.consume(Semicolon, "expected ';' after return expression")

	return &ast.ReturnStmt{
		Pos:  p.makePos(start),
		Expr: expr,
	}
}

// parseExpr parses: Expr := IntLiteral
func (p *Parser) parseExpr() ast.Expr {
	if !p.check(IntLiteral) {
		p.errorAtCurrent("expected expression")
		return ast.NewPlaceholder(p.makePos(p.peek(0)))
	}

	tok := p.advance()
	return &ast.IntLiteral{
		Pos:   p.makePos(tok),
		Value: p.convertInt(tok),
	}
}

// convertInt turns a decimal lexeme into a 32-bit value. Literals too large
// for int32 are reported and saturate to math.MaxInt32.
func (p *Parser) convertInt(tok Token) int32 {
	v, err := strconv.ParseInt(tok.Lexeme, 10, 32)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			p.errorAt(tok, "integer literal out of range")
			return math.MaxInt32
		}
		p.errorAt(tok, fmt.Sprintf("invalid integer literal %q", tok.Lexeme))
		return 0
	}
	return int32(v)
}
