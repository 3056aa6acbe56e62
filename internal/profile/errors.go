package profile

import "fmt"

// FailureKind distinguishes why a profile load failed.
type FailureKind uint8

const (
	// FailureRead means the file could not be read at all.
	FailureRead FailureKind = iota

	// FailureSyntax means the file was read but did not lex or parse.
	FailureSyntax
)

// LoadError reports a failed profile load. A load failure never disturbs
// the currently active profile; callers decide whether to surface it.
type LoadError struct {
	Path string
	Kind FailureKind
	Err  error
}

func (e *LoadError) Error() string {
	switch e.Kind {
	case FailureRead:
		return fmt.Sprintf("reading profile %s: %v", e.Path, e.Err)
	default:
		return fmt.Sprintf("parsing profile %s: %v", e.Path, e.Err)
	}
}

// Unwrap returns the underlying read or parse error.
func (e *LoadError) Unwrap() error {
	return e.Err
}
