// Package parser builds the generic value tree from a .rkp profile
// document.
//
// The grammar is a single top-level assignment whose value must be a
// table:
//
//	document    := assignment EOF
//	assignment  := Identifier '=' value
//	value       := String | Integer | Boolean | table
//	table       := '{' (entry (',' entry)* ','?)? '}'
//	entry       := Identifier '=' value | value
//
// The parser is recursive descent with two tokens of lookahead (the
// second distinguishes a keyed entry from an anonymous value starting
// with an identifier-like token). One syntax error aborts the parse;
// there is no recovery or partial result.
package parser

import (
	"strconv"

	"github.com/dskane/keyhud/internal/rkp/ast"
	"github.com/dskane/keyhud/internal/rkp/lexer"
	"github.com/dskane/keyhud/internal/rkp/token"
)

// Parser consumes a token stream and produces the root table.
type Parser struct {
	lx   *lexer.Lexer
	cur  token.Token
	peek token.Token
}

// New creates a parser over src. The returned error is the first lex
// error, if the very first tokens are already malformed.
func New(src string) (*Parser, error) {
	p := &Parser{lx: lexer.New(src)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

// Parse parses src and returns the table assigned at the top level. The
// assignment identifier itself is validated and discarded.
func Parse(src string) (*ast.Table, error) {
	p, err := New(src)
	if err != nil {
		return nil, err
	}
	return p.Document()
}

// Document parses the whole document: one assignment followed by end of
// input (an optional trailing comma after the assignment is tolerated).
func (p *Parser) Document() (*ast.Table, error) {
	if p.cur.Kind != token.Identifier {
		return nil, &ExpectedTokenError{Want: "identifier", Got: p.cur, Line: p.cur.Line}
	}
	name := p.cur.Text
	nameLine := p.cur.Line
	if err := p.advance(); err != nil {
		return nil, err
	}

	if p.cur.Kind != token.Equals {
		return nil, &ExpectedTokenError{Want: "'='", Got: p.cur, Line: p.cur.Line}
	}
	if err := p.advance(); err != nil {
		return nil, err
	}

	value, err := p.parseValue()
	if err != nil {
		return nil, err
	}

	root, ok := value.(*ast.Table)
	if !ok {
		return nil, &TopLevelNotATableError{Name: name, Line: nameLine}
	}

	if p.cur.Kind == token.Comma {
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	if p.cur.Kind != token.EndOfInput {
		return nil, &TrailingContentError{Got: p.cur, Line: p.cur.Line}
	}
	return root, nil
}

func (p *Parser) parseValue() (ast.Value, error) {
	switch p.cur.Kind {
	case token.StringLiteral:
		v := ast.String{Text: p.cur.Text}
		return v, p.advance()
	case token.IntegerLiteral:
		n, err := strconv.ParseInt(p.cur.Text, 10, 32)
		if err != nil {
			return nil, &InvalidIntegerLiteralError{Text: p.cur.Text, Line: p.cur.Line}
		}
		v := ast.Integer{Value: int32(n)}
		return v, p.advance()
	case token.BooleanLiteral:
		v := ast.Bool{Value: p.cur.Text == "true"}
		return v, p.advance()
	case token.OpenBrace:
		return p.parseTable()
	default:
		return nil, &ExpectedValueError{Got: p.cur, Line: p.cur.Line}
	}
}

func (p *Parser) parseTable() (*ast.Table, error) {
	openLine := p.cur.Line
	if err := p.advance(); err != nil { // consume '{'
		return nil, err
	}

	tbl := &ast.Table{}
	for {
		if p.cur.Kind == token.CloseBrace {
			return tbl, p.advance()
		}
		if p.cur.Kind == token.EndOfInput {
			return nil, &UnterminatedTableError{Line: openLine}
		}

		entry, err := p.parseEntry()
		if err != nil {
			return nil, err
		}
		tbl.Entries = append(tbl.Entries, entry)

		switch p.cur.Kind {
		case token.Comma:
			if err := p.advance(); err != nil {
				return nil, err
			}
		case token.CloseBrace:
			// trailing comma optional before '}'
		case token.EndOfInput:
			return nil, &UnterminatedTableError{Line: openLine}
		default:
			return nil, &ExpectedTokenError{Want: "',' or '}'", Got: p.cur, Line: p.cur.Line}
		}
	}
}

// parseEntry parses a keyed field when the lookahead is Identifier '=';
// everything else is a bare value recorded as an anonymous entry.
func (p *Parser) parseEntry() (ast.Entry, error) {
	if p.cur.Kind == token.Identifier && p.peek.Kind == token.Equals {
		name := p.cur.Text
		if err := p.advance(); err != nil { // identifier
			return ast.Entry{}, err
		}
		if err := p.advance(); err != nil { // '='
			return ast.Entry{}, err
		}
		value, err := p.parseValue()
		if err != nil {
			return ast.Entry{}, err
		}
		return ast.Entry{Name: name, Value: value}, nil
	}

	value, err := p.parseValue()
	if err != nil {
		return ast.Entry{}, err
	}
	return ast.Entry{Anonymous: true, Value: value}, nil
}

func (p *Parser) advance() error {
	next, err := p.lx.Next()
	if err != nil {
		return err
	}
	p.cur = p.peek
	p.peek = next
	return nil
}
