package parser

import (
	"fmt"
	"unicode/utf8"
)

type Token struct {
	Kind     TokenKind
	Lexeme   string
	Position Position
}

type Scanner struct {
	source      string
	tokens      []Token
	start       int
	current     int
	line        int
	column      int
	startLine   int
	startColumn int
	errors      []ScanError
}

type ScanError struct {
	Message  string
	Position Position // line, column, offset
	Length   int      // bytes covered by the offending character
}

func (e ScanError) String() string {
	return fmt.Sprintf("line %d:%d %s", e.Position.Line, e.Position.Column, e.Message)
}

func (e ScanError) Error() string {
	return e.String()
}

// LexResult is everything the scanner produced for one source text. Tokens
// always ends with exactly one End token.
type LexResult struct {
	Tokens []Token
	Errors []ScanError
}

// Lex scans source in a single pass. It never fails: unrecognized characters
// are reported in Errors and skipped.
func Lex(source string) LexResult {
	s := NewScanner(source)
	tokens := s.ScanTokens()
	return LexResult{Tokens: tokens, Errors: s.Errors()}
}

func NewScanner(source string) *Scanner {
	return &Scanner{
		source: source,
		line:   1,
		column: 1,
	}
}

func (s *Scanner) ScanTokens() []Token {
	for !s.isAtEnd() {
		s.start = s.current
		s.startLine = s.line
		s.startColumn = s.column
		s.scanToken()
	}
	s.tokens = append(s.tokens, Token{Kind: End, Position: Position{Line: s.line, Column: s.column, Offset: s.current}})
	return s.tokens
}

func (s *Scanner) Errors() []ScanError {
	return s.errors
}

func (s *Scanner) scanToken() {
	c := s.advance()
	switch c {
	case ' ', '\r', '\t':
		// Ignore whitespace
	case '\n':
		// Handled in advance()
	default:
		if kind, ok := punctuation[c]; ok {
			s.addToken(kind)
			return
		}
		s.scanDefault(c)
	}
}

func (s *Scanner) scanDefault(c byte) {
	if isDigit(c) {
		s.scanNumber()
	} else if isAlpha(c) {
		s.scanIdentifier()
	} else {
		s.scanUnexpected()
	}
}

func (s *Scanner) advance() byte {
	c := s.source[s.current]
	s.current++
	if c == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	return c
}

func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *Scanner) addToken(kind TokenKind) {
	text := s.source[s.start:s.current]
	s.tokens = append(s.tokens, Token{
		Kind:   kind,
		Lexeme: text,
		Position: Position{
			Line:   s.startLine,
			Column: s.startColumn,
			Offset: s.start,
		},
	})
}

func (s *Scanner) reportError(message string) {
	s.errors = append(s.errors, ScanError{
		Message:  message,
		Position: Position{Line: s.startLine, Column: s.startColumn, Offset: s.start},
		Length:   s.current - s.start,
	})
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

// Helper functions.

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || c == '_'
}

func (s *Scanner) scanIdentifier() {
	for isAlpha(s.peek()) || isDigit(s.peek()) {
		s.advance()
	}
	s.addToken(lookupIdentifier(s.source[s.start:s.current]))
}

func (s *Scanner) scanNumber() {
	for isDigit(s.peek()) {
		s.advance()
	}
	s.addToken(IntLiteral)
}

// scanUnexpected skips the rest of a multi-byte character so that a single
// non-ASCII character yields one diagnostic and one column.
func (s *Scanner) scanUnexpected() {
	r, size := utf8.DecodeRuneInString(s.source[s.start:])
	if r == utf8.RuneError && size <= 1 {
		s.reportError(fmt.Sprintf("unexpected character '\\x%02x'", s.source[s.start]))
		return
	}
	s.current = s.start + size
	s.reportError(fmt.Sprintf("unexpected character '%c'", r))
}
