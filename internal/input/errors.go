package input

import "errors"

// Sentinel errors for the input package.
var (
	// ErrAlreadyRunning is returned when Start is called on a running
	// coordinator.
	ErrAlreadyRunning = errors.New("coordinator is already running")

	// ErrNotRunning is returned when Stop is called on a stopped
	// coordinator.
	ErrNotRunning = errors.New("coordinator is not running")
)
