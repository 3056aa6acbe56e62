package input

import (
	"time"

	"github.com/dskane/keyhud/internal/binding"
)

// EventKind identifies the type of a normalized input event.
type EventKind uint8

const (
	// KeyDown is a keyboard key press.
	KeyDown EventKind = iota

	// KeyUp is a keyboard key release.
	KeyUp

	// MouseDown is a mouse button press. Mouse buttons follow the
	// exact-match path; there is no held intermediate state.
	MouseDown

	// MouseUp is a mouse button release.
	MouseUp
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case KeyDown:
		return "key-down"
	case KeyUp:
		return "key-up"
	case MouseDown:
		return "mouse-down"
	case MouseUp:
		return "mouse-up"
	default:
		return "unknown"
	}
}

// Event is one normalized input event as delivered by the capture source.
// Key uses the capture vocabulary of short identifiers: letters, digits,
// "F1".."F12", "MouseWheelUp", "LeftMouseButton", and so on. Modifiers is
// the capture source's modifier snapshot at the moment of the event.
type Event struct {
	Kind      EventKind
	Key       string
	Modifiers binding.Modifier
	Time      time.Time
}

// Source is the boundary to the OS-level input capture mechanism. The
// capture adapter translates raw platform codes into the normalized
// vocabulary and keeps the modifier snapshot current; both happen inline
// in the capture callback.
type Source interface {
	// CurrentModifiers returns the modifiers held right now.
	CurrentModifiers() binding.Modifier
}
