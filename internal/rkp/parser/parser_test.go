package parser

import (
	"errors"
	"testing"

	"github.com/dskane/keyhud/internal/rkp/ast"
)

func TestParseMinimalProfile(t *testing.T) {
	src := `profile = { bindingGroups = { camera = { { command = "zoom_in" } } }, name = "test", warnConflicts = true }`

	root, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if got := root.GetString("name", ""); got != "test" {
		t.Errorf("name = %q, want %q", got, "test")
	}
	if !root.GetBool("warnConflicts", false) {
		t.Error("warnConflicts should be true")
	}

	groups := root.GetTable("bindingGroups")
	if groups == nil {
		t.Fatal("bindingGroups missing")
	}
	camera := groups.GetTable("camera")
	if camera == nil {
		t.Fatal("camera group missing")
	}
	anon := camera.Anonymous()
	if len(anon) != 1 {
		t.Fatalf("camera has %d anonymous entries, want 1", len(anon))
	}
	entry, ok := anon[0].(*ast.Table)
	if !ok {
		t.Fatalf("entry = %T, want *ast.Table", anon[0])
	}
	if got := entry.GetString("command", ""); got != "zoom_in" {
		t.Errorf("command = %q, want %q", got, "zoom_in")
	}
}

func TestParseValueKinds(t *testing.T) {
	src := `x = { s = "str", i = 42, n = -7, b = false }`
	root, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if got := root.GetString("s", ""); got != "str" {
		t.Errorf("s = %q", got)
	}
	if got := root.GetInt("i", 0); got != 42 {
		t.Errorf("i = %d", got)
	}
	if got := root.GetInt("n", 0); got != -7 {
		t.Errorf("n = %d", got)
	}
	if got := root.GetBool("b", true); got {
		t.Error("b should be false")
	}
}

func TestParseMixedEntries(t *testing.T) {
	src := `x = { "a", k = "v", { nested = 1 }, 5 }`
	root, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if root.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", root.Len())
	}
	anon := root.Anonymous()
	if len(anon) != 3 {
		t.Fatalf("anonymous = %d, want 3", len(anon))
	}
	if got := root.GetString("k", ""); got != "v" {
		t.Errorf("k = %q", got)
	}
}

func TestParseTrailingCommas(t *testing.T) {
	for _, src := range []string{
		`x = { a = 1, }`,
		`x = { a = 1 }`,
		`x = {}`,
		`x = { a = 1 },`, // trailing comma after the assignment
	} {
		if _, err := Parse(src); err != nil {
			t.Errorf("Parse(%q) error: %v", src, err)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		wantLine int
		check    func(error) bool
	}{
		{
			name:     "top level not a table",
			src:      `profile = "oops"`,
			wantLine: 1,
			check: func(err error) bool {
				var e *TopLevelNotATableError
				return errors.As(err, &e) && e.Name == "profile" && e.Line == 1
			},
		},
		{
			name:     "trailing content",
			src:      "x = {}\ny = {}",
			wantLine: 2,
			check: func(err error) bool {
				var e *TrailingContentError
				return errors.As(err, &e) && e.Line == 2
			},
		},
		{
			name:     "unterminated table reports open line",
			src:      "x = {\n a = {\n  b = 1",
			wantLine: 2,
			check: func(err error) bool {
				var e *UnterminatedTableError
				return errors.As(err, &e) && e.Line == 2
			},
		},
		{
			name:     "missing comma between entries",
			src:      "x = {\n a = 1\n b = 2\n}",
			wantLine: 3,
			check: func(err error) bool {
				var e *ExpectedTokenError
				return errors.As(err, &e) && e.Line == 3
			},
		},
		{
			name: "missing equals at top level",
			src:  `profile { }`,
			check: func(err error) bool {
				var e *ExpectedTokenError
				return errors.As(err, &e)
			},
		},
		{
			name: "identifier is not a value",
			src:  `x = { a = b }`,
			check: func(err error) bool {
				var e *ExpectedValueError
				return errors.As(err, &e)
			},
		},
		{
			name: "integer overflow",
			src:  `x = { n = 99999999999 }`,
			check: func(err error) bool {
				var e *InvalidIntegerLiteralError
				return errors.As(err, &e)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.src)
			if err == nil {
				t.Fatal("Parse() succeeded, want error")
			}
			if !tt.check(err) {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestParseDiscardsAssignmentName(t *testing.T) {
	// Any identifier works at the top level; only the table matters.
	root, err := Parse(`anything = { a = 1 }`)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if root.Len() != 1 {
		t.Errorf("Len() = %d, want 1", root.Len())
	}
}
