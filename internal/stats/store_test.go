package stats

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "usage.db")
	s, err := Open(path, WithStoreLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	return s, path
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open("  "); err == nil {
		t.Error("Open with blank path succeeded")
	}
}

func TestTotalsAcrossReopen(t *testing.T) {
	s, path := openTestStore(t)

	s.RecordMatched("select_all")
	s.RecordMatched("select_all")
	s.RecordMatched("zoom_in")
	s.RecordUnmatched("F13")

	// Unflushed counts are already visible.
	totals, err := s.Totals()
	if err != nil {
		t.Fatalf("Totals() error: %v", err)
	}
	if totals["select_all"] != 2 {
		t.Errorf("select_all = %d before close, want 2", totals["select_all"])
	}

	if err := s.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopening: %v", err)
	}
	defer s2.Close()

	s2.RecordMatched("select_all")

	totals, err = s2.Totals()
	if err != nil {
		t.Fatalf("Totals() error: %v", err)
	}
	if totals["select_all"] != 3 {
		t.Errorf("select_all = %d after reopen, want 3", totals["select_all"])
	}
	if totals["zoom_in"] != 1 {
		t.Errorf("zoom_in = %d after reopen, want 1", totals["zoom_in"])
	}
}

func TestSessionLifecycle(t *testing.T) {
	s, _ := openTestStore(t)
	defer s.Close()

	start := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	s.RecordMatched("outside_session")
	s.MatchStarted("1v1", "session-a", start)
	s.RecordMatched("select_all")
	s.RecordUnmatched("F13")
	s.MatchEnded(start.Add(20 * time.Minute))

	sessions, err := s.Sessions()
	if err != nil {
		t.Fatalf("Sessions() error: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("Sessions() returned %d, want 1", len(sessions))
	}

	sess := sessions[0]
	if sess.ID != "session-a" {
		t.Errorf("ID = %q, want session-a", sess.ID)
	}
	if sess.MatchTypeID != "1v1" {
		t.Errorf("MatchTypeID = %q, want 1v1", sess.MatchTypeID)
	}
	if sess.Matched["select_all"] != 1 {
		t.Errorf("session matched select_all = %d, want 1", sess.Matched["select_all"])
	}
	if _, ok := sess.Matched["outside_session"]; ok {
		t.Error("pre-session usage leaked into session counts")
	}
	if sess.Unmatched["F13"] != 1 {
		t.Errorf("session unmatched F13 = %d, want 1", sess.Unmatched["F13"])
	}
	if !sess.EndedAt.After(sess.StartedAt) {
		t.Errorf("EndedAt %v not after StartedAt %v", sess.EndedAt, sess.StartedAt)
	}
}

func TestMatchStartedGeneratesID(t *testing.T) {
	s, _ := openTestStore(t)
	defer s.Close()

	s.MatchStarted("ladder", "", time.Now())
	s.MatchEnded(time.Now())

	sessions, err := s.Sessions()
	if err != nil {
		t.Fatalf("Sessions() error: %v", err)
	}
	if len(sessions) != 1 || sessions[0].ID == "" {
		t.Fatalf("expected one session with generated ID, got %+v", sessions)
	}
}

func TestMatchStartedPersistsDanglingSession(t *testing.T) {
	s, _ := openTestStore(t)
	defer s.Close()

	s.MatchStarted("1v1", "first", time.Now())
	s.RecordMatched("select_all")
	// No MatchEnded: the next start must not lose the first session.
	s.MatchStarted("1v1", "second", time.Now())
	s.MatchEnded(time.Now())

	sessions, err := s.Sessions()
	if err != nil {
		t.Fatalf("Sessions() error: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("Sessions() returned %d, want 2", len(sessions))
	}
}

func TestMatchEndedWithoutStart(t *testing.T) {
	s, _ := openTestStore(t)
	defer s.Close()

	s.MatchEnded(time.Now())

	sessions, err := s.Sessions()
	if err != nil {
		t.Fatalf("Sessions() error: %v", err)
	}
	if len(sessions) != 0 {
		t.Errorf("Sessions() returned %d, want 0", len(sessions))
	}
}

func TestCloseEndsOpenSession(t *testing.T) {
	s, path := openTestStore(t)

	s.MatchStarted("1v1", "open-at-close", time.Now())
	s.RecordMatched("select_all")
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopening: %v", err)
	}
	defer s2.Close()

	sessions, err := s2.Sessions()
	if err != nil {
		t.Fatalf("Sessions() error: %v", err)
	}
	if len(sessions) != 1 || sessions[0].ID != "open-at-close" {
		t.Fatalf("expected the open session persisted at close, got %+v", sessions)
	}
	if sessions[0].EndedAt.IsZero() {
		t.Error("session persisted at close has zero EndedAt")
	}
}
