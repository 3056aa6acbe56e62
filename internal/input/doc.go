// Package input consumes normalized key and mouse events and drives the
// highlight state machine against the active binding index.
//
// # Architecture
//
// The producing side runs inside an OS-level capture callback that must
// return in bounded time, so the Process* methods only enqueue: they never
// block, never query the index, and never log. Everything else (exact
// match, completions, state transitions, statistics) happens on a single
// logic goroutine, so all transitions execute one at a time in arrival
// order.
//
// Two lanes feed that goroutine. Modifier key events travel on a priority
// lane that is drained before the ordinary lane, so completion overlays
// react to a held Ctrl or Shift immediately even when ordinary key traffic
// is backed up. Order is preserved within each lane.
//
// # States
//
// The machine has three states. Idle: nothing held, nothing recently
// triggered. ModifierHeld: one or more modifiers held with no exact match
// yet; every modifier change recomputes the possible completions.
// Triggered: an exact match just fired; a one-shot flash timer returns the
// machine to Idle or ModifierHeld depending on what is still held.
//
// Completions are deterministic: recomputing for the same modifier set
// always yields the same bindings in the same order.
package input
