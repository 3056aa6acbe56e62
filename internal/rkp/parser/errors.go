package parser

import (
	"fmt"

	"github.com/dskane/keyhud/internal/rkp/token"
)

// ExpectedTokenError reports that the parser found something other than the
// token class the grammar requires. Want describes the acceptable tokens.
type ExpectedTokenError struct {
	Want string
	Got  token.Token
	Line int
}

func (e *ExpectedTokenError) Error() string {
	return fmt.Sprintf("line %d: expected %s, found %s", e.Line, e.Want, e.Got.Kind)
}

// ExpectedValueError reports a token that cannot start a value.
type ExpectedValueError struct {
	Got  token.Token
	Line int
}

func (e *ExpectedValueError) Error() string {
	return fmt.Sprintf("line %d: expected a value, found %s", e.Line, e.Got.Kind)
}

// UnterminatedTableError reports a table whose closing brace was never
// found. Line is the line the table was opened on.
type UnterminatedTableError struct {
	Line int
}

func (e *UnterminatedTableError) Error() string {
	return fmt.Sprintf("line %d: unterminated table", e.Line)
}

// TrailingContentError reports tokens after the top-level assignment.
type TrailingContentError struct {
	Got  token.Token
	Line int
}

func (e *TrailingContentError) Error() string {
	return fmt.Sprintf("line %d: expected end of input, found %s", e.Line, e.Got.Kind)
}

// TopLevelNotATableError reports a top-level assignment whose value is not
// a table.
type TopLevelNotATableError struct {
	Name string
	Line int
}

func (e *TopLevelNotATableError) Error() string {
	return fmt.Sprintf("line %d: value assigned to %q must be a table", e.Line, e.Name)
}

// InvalidIntegerLiteralError reports an integer literal that does not fit
// in 32 bits.
type InvalidIntegerLiteralError struct {
	Text string
	Line int
}

func (e *InvalidIntegerLiteralError) Error() string {
	return fmt.Sprintf("line %d: invalid integer literal %q", e.Line, e.Text)
}
