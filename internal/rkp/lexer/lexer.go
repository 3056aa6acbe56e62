// Package lexer converts .rkp profile text into a token stream.
//
// The lexer is single-pass and one-shot: construct it with New, then call
// Next until it returns an EndOfInput token. Profiles routinely run to tens
// of thousands of lines, so the lexer never backtracks and allocates only
// for token text.
package lexer

import (
	"github.com/dskane/keyhud/internal/rkp/token"
)

// Lexer produces tokens from raw profile text.
type Lexer struct {
	src  string
	pos  int
	line int
	done bool
}

// New creates a lexer over src. Line numbers start at 1.
func New(src string) *Lexer {
	return &Lexer{src: src, line: 1}
}

// Next returns the next token, or an error for input the profile format
// does not allow. After the first EndOfInput token, Next keeps returning
// EndOfInput.
func (l *Lexer) Next() (token.Token, error) {
	l.skipSpace()

	if l.pos >= len(l.src) {
		l.done = true
		return token.Token{Kind: token.EndOfInput, Line: l.line}, nil
	}

	ch := l.src[l.pos]
	switch {
	case ch == '"':
		return l.lexString()
	case isDigit(ch):
		return l.lexInteger()
	case ch == '-':
		if l.pos+1 < len(l.src) && isDigit(l.src[l.pos+1]) {
			return l.lexInteger()
		}
		return token.Token{}, &UnexpectedCharacterError{Char: '-', Line: l.line}
	case isIdentStart(ch):
		return l.lexIdentifier(), nil
	case ch == '=':
		l.pos++
		return token.Token{Kind: token.Equals, Text: "=", Line: l.line}, nil
	case ch == '{':
		l.pos++
		return token.Token{Kind: token.OpenBrace, Text: "{", Line: l.line}, nil
	case ch == '}':
		l.pos++
		return token.Token{Kind: token.CloseBrace, Text: "}", Line: l.line}, nil
	case ch == ',':
		l.pos++
		return token.Token{Kind: token.Comma, Text: ",", Line: l.line}, nil
	default:
		return token.Token{}, &UnexpectedCharacterError{Char: rune(ch), Line: l.line}
	}
}

// Tokenize drains the lexer into a slice ending in EndOfInput.
// It is a convenience for tests and tooling; the parser pulls tokens
// one at a time.
func (l *Lexer) Tokenize() ([]token.Token, error) {
	var toks []token.Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == token.EndOfInput {
			return toks, nil
		}
	}
}

// skipSpace advances over spaces, tabs, and carriage returns, counting
// newlines into the line counter.
func (l *Lexer) skipSpace() {
	for l.pos < len(l.src) {
		switch l.src[l.pos] {
		case ' ', '\t', '\r':
			l.pos++
		case '\n':
			l.line++
			l.pos++
		default:
			return
		}
	}
}

// lexString consumes a double-quoted string. There is no escape
// processing: the literal is everything strictly between the quotes.
// Newlines inside the string still advance the line counter.
func (l *Lexer) lexString() (token.Token, error) {
	startLine := l.line
	l.pos++ // opening quote
	start := l.pos
	for l.pos < len(l.src) {
		ch := l.src[l.pos]
		if ch == '"' {
			text := l.src[start:l.pos]
			l.pos++
			return token.Token{Kind: token.StringLiteral, Text: text, Line: startLine}, nil
		}
		if ch == '\n' {
			l.line++
		}
		l.pos++
	}
	return token.Token{}, &UnterminatedStringError{Line: startLine}
}

func (l *Lexer) lexInteger() (token.Token, error) {
	start := l.pos
	if l.src[l.pos] == '-' {
		l.pos++
	}
	for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
		l.pos++
	}
	return token.Token{Kind: token.IntegerLiteral, Text: l.src[start:l.pos], Line: l.line}, nil
}

func (l *Lexer) lexIdentifier() token.Token {
	start := l.pos
	for l.pos < len(l.src) && isIdentPart(l.src[l.pos]) {
		l.pos++
	}
	text := l.src[start:l.pos]
	switch text {
	case "true", "false":
		return token.Token{Kind: token.BooleanLiteral, Text: text, Line: l.line}
	}
	return token.Token{Kind: token.Identifier, Text: text, Line: l.line}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}
