// Package profile runs the load pipeline for .rkp files and owns the
// active profile for the rest of the process.
//
// Load is the whole left-to-right pipeline: read, lex, parse, map. The
// Manager adds the activation step: a freshly loaded profile gets a fresh
// matcher index built off to the side, and the pair is swapped in as a
// single atomic step. Readers either see the old profile or the new one,
// never a partially rebuilt index, and a failed load leaves the active
// profile untouched.
package profile

import (
	"os"

	"github.com/dskane/keyhud/internal/binding"
	"github.com/dskane/keyhud/internal/binding/mapper"
	"github.com/dskane/keyhud/internal/rkp/parser"
)

// Load reads, parses, and maps one .rkp file. Errors are *LoadError,
// distinguishing unreadable files from syntax failures; the parse layer
// never recovers or returns partial results.
func Load(path string) (*binding.BindingProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Kind: FailureRead, Err: err}
	}

	root, err := parser.Parse(string(data))
	if err != nil {
		return nil, &LoadError{Path: path, Kind: FailureSyntax, Err: err}
	}

	return mapper.Map(root, path), nil
}
