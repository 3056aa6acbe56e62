// Package matcher builds query indices over a profile's bindings.
//
// An Index is built once per profile load and read continuously by the
// input coordinator. It is immutable after Build; a profile switch builds
// a fresh Index off to the side and swaps it in whole, so readers never
// observe a partially built index.
package matcher

import (
	"strings"

	"github.com/dskane/keyhud/internal/binding"
)

// Index answers exact-match and completion queries over a binding set.
type Index struct {
	all []*binding.Keybinding

	// byKey maps lowercase primary-key text to bindings reachable
	// through either combo, insertion order, deduplicated per binding.
	byKey map[string][]*binding.Keybinding

	// byModifiers maps exact modifier sets to bindings, same rules.
	byModifiers map[binding.Modifier][]*binding.Keybinding

	byCategory map[binding.Category][]*binding.Keybinding
}

// New returns an empty index. Queries on an empty index return nothing.
func New() *Index {
	return &Index{
		byKey:       make(map[string][]*binding.Keybinding),
		byModifiers: make(map[binding.Modifier][]*binding.Keybinding),
		byCategory:  make(map[binding.Category][]*binding.Keybinding),
	}
}

// Build creates an index over bindings. Prior contents of any previously
// built index are unreachable through the new one.
func Build(bindings []*binding.Keybinding) *Index {
	idx := New()
	for _, kb := range bindings {
		idx.add(kb)
	}
	return idx
}

func (idx *Index) add(kb *binding.Keybinding) {
	idx.all = append(idx.all, kb)

	// Register under both combos. A binding registers at most once per
	// key text and once per modifier set, even when primary and
	// alternate coincide.
	if !kb.Primary.IsEmpty() {
		key := strings.ToLower(kb.Primary.Key)
		idx.byKey[key] = append(idx.byKey[key], kb)
		idx.byModifiers[kb.Primary.Modifiers] = append(idx.byModifiers[kb.Primary.Modifiers], kb)
	}
	if !kb.Alternate.IsEmpty() {
		key := strings.ToLower(kb.Alternate.Key)
		if kb.Primary.IsEmpty() || !strings.EqualFold(kb.Primary.Key, kb.Alternate.Key) {
			idx.byKey[key] = append(idx.byKey[key], kb)
		}
		if kb.Primary.IsEmpty() || kb.Primary.Modifiers != kb.Alternate.Modifiers {
			idx.byModifiers[kb.Alternate.Modifiers] = append(idx.byModifiers[kb.Alternate.Modifiers], kb)
		}
	}

	idx.byCategory[kb.Category] = append(idx.byCategory[kb.Category], kb)
}

// GetAll returns every indexed binding in insertion order.
func (idx *Index) GetAll() []*binding.Keybinding {
	return idx.all
}

// GetBindingsForKey returns the bindings registered under keyText,
// case-insensitive. Empty or unknown key text yields an empty result.
func (idx *Index) GetBindingsForKey(keyText string) []*binding.Keybinding {
	if keyText == "" {
		return nil
	}
	return idx.byKey[strings.ToLower(keyText)]
}

// GetPossibleCompletions returns the bindings registered under exactly
// mods. There are no subset or superset semantics: a binding requiring
// Ctrl+Shift is not a completion for Ctrl alone.
func (idx *Index) GetPossibleCompletions(mods binding.Modifier) []*binding.Keybinding {
	return idx.byModifiers[mods]
}

// FindExactMatch returns the first binding, in insertion order, whose
// primary or alternate combination matches keyText (case-insensitive)
// with exactly mods. Returns nil when nothing matches; an empty keyText
// never matches.
func (idx *Index) FindExactMatch(keyText string, mods binding.Modifier) *binding.Keybinding {
	for _, kb := range idx.GetBindingsForKey(keyText) {
		if kb.Matches(keyText, mods) {
			return kb
		}
	}
	return nil
}

// GetBindingsForCategory returns the bindings in a category, insertion
// order.
func (idx *Index) GetBindingsForCategory(c binding.Category) []*binding.Keybinding {
	return idx.byCategory[c]
}

// Len returns the number of indexed bindings.
func (idx *Index) Len() int {
	return len(idx.all)
}
