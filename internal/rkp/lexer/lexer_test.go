package lexer

import (
	"errors"
	"strings"
	"testing"

	"github.com/dskane/keyhud/internal/rkp/token"
)

func TestTokenizeEmpty(t *testing.T) {
	toks, err := New("").Tokenize()
	if err != nil {
		t.Fatalf("Tokenize() error: %v", err)
	}
	if len(toks) != 1 {
		t.Fatalf("Tokenize() returned %d tokens, want 1", len(toks))
	}
	if toks[0].Kind != token.EndOfInput {
		t.Errorf("kind = %v, want EndOfInput", toks[0].Kind)
	}
	if toks[0].Line != 1 {
		t.Errorf("line = %d, want 1", toks[0].Line)
	}
}

func TestTokenizeAssignment(t *testing.T) {
	toks, err := New(`name = "test"`).Tokenize()
	if err != nil {
		t.Fatalf("Tokenize() error: %v", err)
	}

	want := []token.Token{
		{Kind: token.Identifier, Text: "name", Line: 1},
		{Kind: token.Equals, Text: "=", Line: 1},
		{Kind: token.StringLiteral, Text: "test", Line: 1},
		{Kind: token.EndOfInput, Line: 1},
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, w := range want {
		if toks[i] != w {
			t.Errorf("token %d = %+v, want %+v", i, toks[i], w)
		}
	}
}

func TestTokenizeKinds(t *testing.T) {
	tests := []struct {
		name string
		src  string
		kind token.Kind
		text string
	}{
		{"identifier", "bindingGroups", token.Identifier, "bindingGroups"},
		{"underscore identifier", "_hud_game", token.Identifier, "_hud_game"},
		{"string", `"zoom_in"`, token.StringLiteral, "zoom_in"},
		{"empty string", `""`, token.StringLiteral, ""},
		{"integer", "42", token.IntegerLiteral, "42"},
		{"negative integer", "-1", token.IntegerLiteral, "-1"},
		{"true", "true", token.BooleanLiteral, "true"},
		{"false", "false", token.BooleanLiteral, "false"},
		{"case-sensitive true", "True", token.Identifier, "True"},
		{"open brace", "{", token.OpenBrace, "{"},
		{"close brace", "}", token.CloseBrace, "}"},
		{"comma", ",", token.Comma, ","},
		{"equals", "=", token.Equals, "="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok, err := New(tt.src).Next()
			if err != nil {
				t.Fatalf("Next() error: %v", err)
			}
			if tok.Kind != tt.kind {
				t.Errorf("kind = %v, want %v", tok.Kind, tt.kind)
			}
			if tok.Text != tt.text {
				t.Errorf("text = %q, want %q", tok.Text, tt.text)
			}
		})
	}
}

func TestTokenizeLineNumbers(t *testing.T) {
	src := "profile = {\n\tname = \"x\",\n}\n"
	toks, err := New(src).Tokenize()
	if err != nil {
		t.Fatalf("Tokenize() error: %v", err)
	}

	wantLines := []int{1, 1, 1, 2, 2, 2, 2, 3, 4}
	if len(toks) != len(wantLines) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(wantLines))
	}
	for i, want := range wantLines {
		if toks[i].Line != want {
			t.Errorf("token %d (%v) line = %d, want %d", i, toks[i].Kind, toks[i].Line, want)
		}
	}
}

func TestNewlineInsideStringAdvancesLine(t *testing.T) {
	toks, err := New("\"a\nb\" x").Tokenize()
	if err != nil {
		t.Fatalf("Tokenize() error: %v", err)
	}
	if toks[0].Kind != token.StringLiteral || toks[0].Line != 1 {
		t.Errorf("string token = %+v, want line 1", toks[0])
	}
	if toks[1].Kind != token.Identifier || toks[1].Line != 2 {
		t.Errorf("identifier token = %+v, want line 2", toks[1])
	}
}

func TestBareMinusFails(t *testing.T) {
	_, err := New("repeatCount = -").Tokenize()

	var uc *UnexpectedCharacterError
	if !errors.As(err, &uc) {
		t.Fatalf("error = %v, want UnexpectedCharacterError", err)
	}
	if uc.Char != '-' {
		t.Errorf("char = %q, want '-'", uc.Char)
	}
	if uc.Line != 1 {
		t.Errorf("line = %d, want 1", uc.Line)
	}
}

func TestUnterminatedString(t *testing.T) {
	_, err := New("x = {\n  name = \"oops\n}").Tokenize()

	var us *UnterminatedStringError
	if !errors.As(err, &us) {
		t.Fatalf("error = %v, want UnterminatedStringError", err)
	}
	if us.Line != 2 {
		t.Errorf("line = %d, want 2 (the line the string started on)", us.Line)
	}
}

func TestUnexpectedCharacter(t *testing.T) {
	tests := []struct {
		src  string
		char rune
		line int
	}{
		{"#", '#', 1},
		{"a = b\n[", '[', 2},
		{"x = 1.5", '.', 1},
	}

	for _, tt := range tests {
		_, err := New(tt.src).Tokenize()
		var uc *UnexpectedCharacterError
		if !errors.As(err, &uc) {
			t.Fatalf("%q: error = %v, want UnexpectedCharacterError", tt.src, err)
		}
		if uc.Char != tt.char || uc.Line != tt.line {
			t.Errorf("%q: got (%q, %d), want (%q, %d)", tt.src, uc.Char, uc.Line, tt.char, tt.line)
		}
	}
}

func TestNextAfterEndKeepsReturningEnd(t *testing.T) {
	lx := New("x")
	for i := 0; i < 3; i++ {
		if _, err := lx.Next(); err != nil {
			t.Fatalf("Next() error: %v", err)
		}
	}
	tok, err := lx.Next()
	if err != nil {
		t.Fatalf("Next() error: %v", err)
	}
	if tok.Kind != token.EndOfInput {
		t.Errorf("kind = %v, want EndOfInput", tok.Kind)
	}
}

func TestLargeInputLinear(t *testing.T) {
	// Tens of thousands of lines should lex without trouble.
	var sb strings.Builder
	sb.WriteString("profile = {\n")
	for i := 0; i < 50_000; i++ {
		sb.WriteString("\t{ command = \"cmd\", keycombos = { { combo = \"A\", repeatCount = -1 } } },\n")
	}
	sb.WriteString("}\n")

	toks, err := New(sb.String()).Tokenize()
	if err != nil {
		t.Fatalf("Tokenize() error: %v", err)
	}
	last := toks[len(toks)-1]
	if last.Kind != token.EndOfInput {
		t.Fatalf("last token = %v, want EndOfInput", last.Kind)
	}
	if last.Line != 50_003 {
		t.Errorf("final line = %d, want 50003", last.Line)
	}
}
