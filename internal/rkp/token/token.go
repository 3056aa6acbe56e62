// Package token defines the lexical tokens of the .rkp profile format.
package token

import "fmt"

// Kind identifies the lexical class of a token.
type Kind uint8

const (
	// Illegal marks a token the lexer could not classify.
	// The lexer reports an error instead of emitting one; the kind
	// exists so the zero value of Token is never a valid token.
	Illegal Kind = iota

	// Identifier is a name: a letter or underscore followed by
	// letters, digits, or underscores.
	Identifier

	// StringLiteral is text between two double quotes, no escapes.
	StringLiteral

	// IntegerLiteral is an optionally negative run of digits.
	IntegerLiteral

	// BooleanLiteral is exactly the identifier "true" or "false".
	BooleanLiteral

	// Equals is "=".
	Equals

	// OpenBrace is "{".
	OpenBrace

	// CloseBrace is "}".
	CloseBrace

	// Comma is ",".
	Comma

	// EndOfInput terminates every token stream exactly once.
	EndOfInput
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case Identifier:
		return "identifier"
	case StringLiteral:
		return "string"
	case IntegerLiteral:
		return "integer"
	case BooleanLiteral:
		return "boolean"
	case Equals:
		return "'='"
	case OpenBrace:
		return "'{'"
	case CloseBrace:
		return "'}'"
	case Comma:
		return "','"
	case EndOfInput:
		return "end of input"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Token is a single lexical token with its source line.
type Token struct {
	Kind Kind
	Text string

	// Line is the 1-based source line the token started on.
	Line int
}

// IsLiteral returns true for string, integer, and boolean tokens.
func (t Token) IsLiteral() bool {
	return t.Kind == StringLiteral || t.Kind == IntegerLiteral || t.Kind == BooleanLiteral
}

// String returns a compact representation for diagnostics.
func (t Token) String() string {
	switch t.Kind {
	case StringLiteral:
		return fmt.Sprintf("%s %q (line %d)", t.Kind, t.Text, t.Line)
	case Identifier, IntegerLiteral, BooleanLiteral:
		return fmt.Sprintf("%s %s (line %d)", t.Kind, t.Text, t.Line)
	default:
		return fmt.Sprintf("%s (line %d)", t.Kind, t.Line)
	}
}
