package binding

import "strings"

// KeyCombination is one primary key plus the modifier set that must be
// held for it to match. The zero value is the empty combination, which
// never matches anything.
type KeyCombination struct {
	Key       string
	Modifiers Modifier
}

// ParseCombo parses a combo descriptor like "Control+Shift+R" or
// "MouseWheelUp". Parts are split on '+' and trimmed; the parts Control,
// Shift, and Alt (case-insensitive) accumulate into the modifier set, and
// any other part becomes the primary key. When several non-modifier parts
// appear the last one wins; profiles in the wild contain such combos and
// the permissive reading matches how the game consumes them.
// Blank text yields the empty combination.
func ParseCombo(text string) KeyCombination {
	text = strings.TrimSpace(text)
	if text == "" {
		return KeyCombination{}
	}

	var combo KeyCombination
	for _, part := range strings.Split(text, "+") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if mod := ModifierFromName(part); mod != ModNone {
			combo.Modifiers = combo.Modifiers.With(mod)
			continue
		}
		combo.Key = part
	}
	if combo.Key == "" {
		// Modifier-only text does not form a combination.
		return KeyCombination{}
	}
	return combo
}

// IsEmpty returns true for a combination with no primary key. An empty
// combination carries no modifiers.
func (c KeyCombination) IsEmpty() bool {
	return c.Key == ""
}

// Matches returns true if keyText names this combination's primary key
// (case-insensitive) and mods equals its modifier set exactly. The empty
// combination matches nothing.
func (c KeyCombination) Matches(keyText string, mods Modifier) bool {
	if c.IsEmpty() || keyText == "" {
		return false
	}
	return strings.EqualFold(c.Key, keyText) && c.Modifiers == mods
}

// String returns a representation like "Ctrl+Shift+R".
func (c KeyCombination) String() string {
	if c.IsEmpty() {
		return ""
	}
	if mods := c.Modifiers.String(); mods != "" {
		return mods + "+" + c.Key
	}
	return c.Key
}
