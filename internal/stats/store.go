// Package stats implements the usage statistics sink.
//
// Matched and unmatched usage is accumulated in memory, since recording
// runs once per keypress and must stay cheap, and persisted to a bbolt
// database at session boundaries and on Close.
// Sessions are bracketed by the match-lifecycle events MatchStarted and
// MatchEnded; usage outside any session still counts toward the totals.
package stats

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"
)

var (
	bucketTotalsMatched   = []byte("totals_matched")
	bucketTotalsUnmatched = []byte("totals_unmatched")
	bucketSessions        = []byte("sessions")
)

// Session is one bracketed accumulation period, usually one game match.
type Session struct {
	ID          string            `json:"id"`
	MatchTypeID string            `json:"matchTypeId"`
	StartedAt   time.Time         `json:"startedAt"`
	EndedAt     time.Time         `json:"endedAt"`
	Matched     map[string]uint64 `json:"matched"`
	Unmatched   map[string]uint64 `json:"unmatched"`
}

// Store records usage statistics and persists them to bbolt.
type Store struct {
	db     *bolt.DB
	logger *slog.Logger

	mu      sync.Mutex
	session *Session
	matched map[string]uint64
	unmatch map[string]uint64
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithStoreLogger sets the logger. Defaults to slog.Default.
func WithStoreLogger(logger *slog.Logger) StoreOption {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Open opens (creating if needed) the statistics database at path.
func Open(path string, opts ...StoreOption) (*Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("statistics db path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{bucketTotalsMatched, bucketTotalsUnmatched, bucketSessions} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	s := &Store{
		db:      db,
		logger:  slog.Default(),
		matched: make(map[string]uint64),
		unmatch: make(map[string]uint64),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Close flushes pending totals and closes the database. An open session
// is persisted as ended now.
func (s *Store) Close() error {
	s.mu.Lock()
	if s.session != nil {
		s.session.EndedAt = time.Now()
		s.persistSessionLocked()
		s.session = nil
	}
	s.mu.Unlock()

	if err := s.flushTotals(); err != nil {
		return err
	}
	return s.db.Close()
}

// RecordMatched counts one exact match for commandID.
func (s *Store) RecordMatched(commandID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.matched[commandID]++
	if s.session != nil {
		s.session.Matched[commandID]++
	}
}

// RecordUnmatched counts one unbound press of keyText.
func (s *Store) RecordUnmatched(keyText string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unmatch[keyText]++
	if s.session != nil {
		s.session.Unmatched[keyText]++
	}
}

// MatchStarted opens a session. An empty sessionID gets a generated one.
// A session still open from a missed MatchEnded is persisted first.
func (s *Store) MatchStarted(matchTypeID, sessionID string, ts time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session != nil {
		s.logger.Warn("match started with session still open", "session", s.session.ID)
		s.session.EndedAt = ts
		s.persistSessionLocked()
	}
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	s.session = &Session{
		ID:          sessionID,
		MatchTypeID: matchTypeID,
		StartedAt:   ts,
		Matched:     make(map[string]uint64),
		Unmatched:   make(map[string]uint64),
	}
}

// MatchEnded closes and persists the current session. Without a matching
// MatchStarted it is a no-op.
func (s *Store) MatchEnded(ts time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return
	}
	s.session.EndedAt = ts
	s.persistSessionLocked()
	s.session = nil
}

// persistSessionLocked writes the current session; the caller holds mu.
func (s *Store) persistSessionLocked() {
	sess := s.session
	err := s.db.Update(func(tx *bolt.Tx) error {
		data, err := json.Marshal(sess)
		if err != nil {
			return err
		}
		return tx.Bucket(bucketSessions).Put([]byte(sess.ID), data)
	})
	if err != nil {
		s.logger.Warn("persisting session failed", "session", sess.ID, "error", err)
	}
}

// flushTotals merges the in-memory counters into the totals buckets and
// clears them.
func (s *Store) flushTotals() error {
	s.mu.Lock()
	matched := s.matched
	unmatched := s.unmatch
	s.matched = make(map[string]uint64)
	s.unmatch = make(map[string]uint64)
	s.mu.Unlock()

	if len(matched) == 0 && len(unmatched) == 0 {
		return nil
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		if err := mergeCounts(tx.Bucket(bucketTotalsMatched), matched); err != nil {
			return err
		}
		return mergeCounts(tx.Bucket(bucketTotalsUnmatched), unmatched)
	})
}

func mergeCounts(b *bolt.Bucket, deltas map[string]uint64) error {
	for key, delta := range deltas {
		var current uint64
		if v := b.Get([]byte(key)); len(v) == 8 {
			current = binary.BigEndian.Uint64(v)
		}
		buf := make([]byte, 8)
		binary.BigEndian.PutUint64(buf, current+delta)
		if err := b.Put([]byte(key), buf); err != nil {
			return err
		}
	}
	return nil
}

// Totals returns the persisted matched counts merged with any not yet
// flushed.
func (s *Store) Totals() (map[string]uint64, error) {
	totals := make(map[string]uint64)
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketTotalsMatched).ForEach(func(k, v []byte) error {
			if len(v) == 8 {
				totals[string(k)] = binary.BigEndian.Uint64(v)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	for k, v := range s.matched {
		totals[k] += v
	}
	s.mu.Unlock()
	return totals, nil
}

// Sessions returns all persisted sessions, ordered by ID.
func (s *Store) Sessions() ([]Session, error) {
	var out []Session
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSessions).ForEach(func(k, v []byte) error {
			var sess Session
			if err := json.Unmarshal(v, &sess); err != nil {
				return err
			}
			out = append(out, sess)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
