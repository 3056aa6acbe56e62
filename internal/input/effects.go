package input

import "github.com/dskane/keyhud/internal/binding"

// Effects receives the display-facing outcomes of state transitions. All
// methods are called from the single logic goroutine, never concurrently.
//
// ShowCompletions is deterministic for a given modifier set; consumers may
// diff against the previously shown set to skip redundant redraws.
type Effects interface {
	// BindingMatched fires when a key or mouse press exactly matched a
	// binding; the binding should flash highlighted.
	BindingMatched(kb *binding.Keybinding)

	// ShowCompletions fires whenever the set of possible completions
	// for the held modifiers should be (re)displayed. mods is the held
	// set; bindings are those requiring exactly that set.
	ShowCompletions(mods binding.Modifier, bindings []*binding.Keybinding)
}

// Recorder receives usage statistics. Implemented by the stats package;
// a nil recorder on the coordinator disables recording.
type Recorder interface {
	// RecordMatched is called once per exact match.
	RecordMatched(commandID string)

	// RecordUnmatched is called for ordinary presses that matched no
	// binding.
	RecordUnmatched(keyText string)
}

// NopEffects discards all effects.
type NopEffects struct{}

// BindingMatched does nothing.
func (NopEffects) BindingMatched(*binding.Keybinding) {}

// ShowCompletions does nothing.
func (NopEffects) ShowCompletions(binding.Modifier, []*binding.Keybinding) {}
