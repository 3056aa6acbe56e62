package lexer

import "fmt"

// UnterminatedStringError reports a string literal whose closing quote was
// never found. Line is the line the string started on.
type UnterminatedStringError struct {
	Line int
}

func (e *UnterminatedStringError) Error() string {
	return fmt.Sprintf("line %d: unterminated string literal", e.Line)
}

// UnexpectedCharacterError reports a character the profile format does not
// allow, including a bare '-' not followed by a digit.
type UnexpectedCharacterError struct {
	Char rune
	Line int
}

func (e *UnexpectedCharacterError) Error() string {
	return fmt.Sprintf("line %d: unexpected character %q", e.Line, e.Char)
}
