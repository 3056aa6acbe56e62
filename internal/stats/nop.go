package stats

import "time"

// Nop is a recorder that discards everything. It satisfies the same
// consumer interfaces as Store and is the default when persistence is
// disabled.
type Nop struct{}

// RecordMatched does nothing.
func (Nop) RecordMatched(string) {}

// RecordUnmatched does nothing.
func (Nop) RecordUnmatched(string) {}

// MatchStarted does nothing.
func (Nop) MatchStarted(string, string, time.Time) {}

// MatchEnded does nothing.
func (Nop) MatchEnded(time.Time) {}
