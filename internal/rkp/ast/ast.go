// Package ast defines the generic value tree produced by parsing a .rkp
// profile document.
//
// The tree is a tagged union of four value kinds. It is transient: the
// domain mapper walks it once and discards it. Accessors are permissive:
// a missing or wrongly-typed field reports absence rather than an error,
// because profile files in the wild omit fields freely.
package ast

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	// KindString is a string value.
	KindString Kind = iota

	// KindInteger is a 32-bit integer value.
	KindInteger

	// KindBool is a boolean value.
	KindBool

	// KindTable is an ordered sequence of entries.
	KindTable
)

// Value is one node of the parsed tree.
type Value interface {
	Kind() Kind
}

// String is a string literal value.
type String struct {
	Text string
}

// Kind returns KindString.
func (String) Kind() Kind { return KindString }

// Integer is an integer literal value.
type Integer struct {
	Value int32
}

// Kind returns KindInteger.
func (Integer) Kind() Kind { return KindInteger }

// Bool is a boolean literal value.
type Bool struct {
	Value bool
}

// Kind returns KindBool.
func (Bool) Kind() Kind { return KindBool }

// Entry is one element of a table. A nil-equivalent Name ("" with
// Anonymous true) marks a positional element; otherwise the entry is a
// keyed field. Source order is preserved and names may repeat.
type Entry struct {
	Name      string
	Anonymous bool
	Value     Value
}

// Table is an ordered sequence of entries.
type Table struct {
	Entries []Entry
}

// Kind returns KindTable.
func (*Table) Kind() Kind { return KindTable }

// Get returns the value of the first keyed entry named name.
// The second result is false if no such entry exists.
func (t *Table) Get(name string) (Value, bool) {
	if t == nil {
		return nil, false
	}
	for _, e := range t.Entries {
		if !e.Anonymous && e.Name == name {
			return e.Value, true
		}
	}
	return nil, false
}

// GetString returns the first keyed string field named name, or fallback
// when the field is absent or not a string.
func (t *Table) GetString(name, fallback string) string {
	v, ok := t.Get(name)
	if !ok {
		return fallback
	}
	s, ok := v.(String)
	if !ok {
		return fallback
	}
	return s.Text
}

// GetInt returns the first keyed integer field named name, or fallback
// when the field is absent or not an integer.
func (t *Table) GetInt(name string, fallback int32) int32 {
	v, ok := t.Get(name)
	if !ok {
		return fallback
	}
	i, ok := v.(Integer)
	if !ok {
		return fallback
	}
	return i.Value
}

// GetBool returns the first keyed boolean field named name, or fallback
// when the field is absent or not a boolean.
func (t *Table) GetBool(name string, fallback bool) bool {
	v, ok := t.Get(name)
	if !ok {
		return fallback
	}
	b, ok := v.(Bool)
	if !ok {
		return fallback
	}
	return b.Value
}

// GetTable returns the first keyed table field named name, or nil when the
// field is absent or not a table.
func (t *Table) GetTable(name string) *Table {
	v, ok := t.Get(name)
	if !ok {
		return nil
	}
	sub, ok := v.(*Table)
	if !ok {
		return nil
	}
	return sub
}

// Anonymous returns the positional entries in source order.
func (t *Table) Anonymous() []Value {
	if t == nil {
		return nil
	}
	var out []Value
	for _, e := range t.Entries {
		if e.Anonymous {
			out = append(out, e.Value)
		}
	}
	return out
}

// Keyed returns the keyed entries in source order, including repeats.
func (t *Table) Keyed() []Entry {
	if t == nil {
		return nil
	}
	var out []Entry
	for _, e := range t.Entries {
		if !e.Anonymous {
			out = append(out, e)
		}
	}
	return out
}

// Len returns the total number of entries.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Entries)
}
