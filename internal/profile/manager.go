package profile

import (
	"log/slog"
	"sync/atomic"

	"github.com/dskane/keyhud/internal/binding"
	"github.com/dskane/keyhud/internal/matcher"
)

// loaded pairs a profile with the index built over it. The pair is
// immutable; Manager swaps whole pairs.
type loaded struct {
	profile *binding.BindingProfile
	index   *matcher.Index
}

// Manager owns the active profile and its matcher index. All readers go
// through Index and Profile, which are safe from any goroutine; Load may
// be called concurrently with reads.
type Manager struct {
	current atomic.Pointer[loaded]
	logger  *slog.Logger
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithLogger sets the logger for load activity. Defaults to slog.Default.
func WithLogger(logger *slog.Logger) ManagerOption {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// NewManager creates a manager with no profile loaded. Queries against
// its index return nothing until the first successful Load.
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{logger: slog.Default()}
	for _, opt := range opts {
		opt(m)
	}
	m.current.Store(&loaded{
		profile: &binding.BindingProfile{},
		index:   matcher.New(),
	})
	return m
}

// Load runs the pipeline on path and, on success, atomically replaces the
// active profile and index. On failure the previous profile stays active
// and the error is returned for the caller to surface.
func (m *Manager) Load(path string) error {
	p, err := Load(path)
	if err != nil {
		m.logger.Warn("profile load failed", "path", path, "error", err)
		return err
	}

	next := &loaded{profile: p, index: matcher.Build(p.AllBindings())}
	m.current.Store(next)

	m.logger.Info("profile loaded",
		"path", path,
		"name", p.Name,
		"groups", len(p.Groups),
		"bindings", p.BindingCount(),
	)
	return nil
}

// Profile returns the active profile. Never nil; an unloaded manager
// holds an empty profile.
func (m *Manager) Profile() *binding.BindingProfile {
	return m.current.Load().profile
}

// Index returns the active matcher index. Never nil.
func (m *Manager) Index() *matcher.Index {
	return m.current.Load().index
}
