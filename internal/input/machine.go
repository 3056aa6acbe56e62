package input

import (
	"github.com/dskane/keyhud/internal/binding"
	"github.com/dskane/keyhud/internal/matcher"
)

// State is the highlight state machine's current state.
type State uint8

const (
	// StateIdle means no modifiers held and no recent trigger.
	StateIdle State = iota

	// StateModifierHeld means one or more modifiers are held with no
	// exact match yet.
	StateModifierHeld

	// StateTriggered means an exact match just fired; the flash timer
	// is pending.
	StateTriggered
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateModifierHeld:
		return "modifier-held"
	case StateTriggered:
		return "triggered"
	default:
		return "unknown"
	}
}

// IndexProvider supplies the current binding index. The profile manager
// implements it; the machine re-fetches per event so a profile reload
// takes effect on the very next event.
type IndexProvider interface {
	Index() *matcher.Index
}

// machine is the pure state machine. It owns the modifier bookkeeping and
// has no goroutines, timers, or locks of its own; the Coordinator drives
// it from one goroutine and tests drive it directly.
type machine struct {
	provider IndexProvider
	effects  Effects
	recorder Recorder

	state State

	// mods is the last modifier snapshot observed on any event, used
	// when the flash timer expires.
	mods binding.Modifier
}

// keyDown applies a key press. The returned flag is true when the caller
// must (re)start the flash timer.
func (m *machine) keyDown(keyText string, mods binding.Modifier) (restartFlash bool) {
	m.mods = mods

	if kb := m.provider.Index().FindExactMatch(keyText, mods); kb != nil {
		m.state = StateTriggered
		if m.recorder != nil {
			m.recorder.RecordMatched(kb.CommandID)
		}
		m.effects.BindingMatched(kb)
		return true
	}

	if IsModifierKey(keyText) {
		m.state = StateModifierHeld
		m.showCompletions(mods)
		return false
	}

	// Ordinary key with no binding: state unchanged.
	if m.recorder != nil {
		m.recorder.RecordUnmatched(keyText)
	}
	return false
}

// keyUp applies a key release.
func (m *machine) keyUp(keyText string, mods binding.Modifier) {
	m.mods = mods

	if mods.IsEmpty() && m.state != StateTriggered {
		m.state = StateIdle
		m.showCompletions(binding.ModNone)
		return
	}
	if m.state == StateModifierHeld {
		m.showCompletions(mods)
	}
}

// mouseDown applies a mouse button press. A press either matches or it
// doesn't; mouse buttons have no held intermediate state.
func (m *machine) mouseDown(keyText string, mods binding.Modifier) (restartFlash bool) {
	m.mods = mods

	if kb := m.provider.Index().FindExactMatch(keyText, mods); kb != nil {
		m.state = StateTriggered
		if m.recorder != nil {
			m.recorder.RecordMatched(kb.CommandID)
		}
		m.effects.BindingMatched(kb)
		return true
	}

	if m.recorder != nil {
		m.recorder.RecordUnmatched(keyText)
	}
	return false
}

// flashExpired applies the flash timer firing. Only meaningful while
// Triggered; a stale timer that outlived its state is ignored.
func (m *machine) flashExpired() {
	if m.state != StateTriggered {
		return
	}
	if m.mods.IsEmpty() {
		m.state = StateIdle
		m.showCompletions(binding.ModNone)
		return
	}
	m.state = StateModifierHeld
	m.showCompletions(m.mods)
}

func (m *machine) showCompletions(mods binding.Modifier) {
	m.effects.ShowCompletions(mods, m.provider.Index().GetPossibleCompletions(mods))
}
