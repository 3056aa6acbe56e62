// Package binding defines the domain entities of a loaded key-binding
// profile: combinations, bindings, groups, and the profile itself.
//
// A profile is immutable once mapped. Reload replaces it wholesale; no
// entity is ever mutated in place.
package binding

// Keybinding ties one command to up to two key combinations.
type Keybinding struct {
	// CommandID is the game command this binding triggers.
	CommandID string

	// GroupName is the binding group the binding was declared in.
	GroupName string

	// Category is derived from GroupName.
	Category Category

	// Primary is the first combo descriptor of the binding.
	Primary KeyCombination

	// Alternate is the second combo descriptor, empty if absent.
	Alternate KeyCombination

	// EventType is the optional event kind from the first combo
	// descriptor ("" when the profile omits it).
	EventType string

	// RepeatCount is the repeat behavior from the first combo
	// descriptor. -1 means unspecified.
	RepeatCount int32
}

// Matches returns true if either combination matches the key and exact
// modifier set.
func (b *Keybinding) Matches(keyText string, mods Modifier) bool {
	return b.Primary.Matches(keyText, mods) || b.Alternate.Matches(keyText, mods)
}

// DisplayName returns the command id formatted for presentation.
func (b *Keybinding) DisplayName() string {
	return FormatCommandName(b.CommandID)
}

// BindingGroup is a named cluster of bindings. Group names may repeat
// across a profile; duplicates stay separate groups.
type BindingGroup struct {
	Name     string
	Category Category
	Bindings []*Keybinding
}

// BindingProfile is one fully mapped .rkp document.
type BindingProfile struct {
	Name           string
	FilePath       string
	WarnConflicts  bool
	WarnUnremapped bool
	Groups         []*BindingGroup
}

// AllBindings returns every binding across all groups, in profile order.
func (p *BindingProfile) AllBindings() []*Keybinding {
	var out []*Keybinding
	for _, g := range p.Groups {
		out = append(out, g.Bindings...)
	}
	return out
}

// BindingCount returns the total number of bindings in the profile.
func (p *BindingProfile) BindingCount() int {
	n := 0
	for _, g := range p.Groups {
		n += len(g.Bindings)
	}
	return n
}
