package ai

import (
	"strings"
	"testing"
	"time"
)

func TestGetOrCreateReturnsSameSession(t *testing.T) {
	st := NewSessionStore(0, 0)

	a := st.GetOrCreate("s1")
	a.Append("hi", "hello")

	b := st.GetOrCreate("s1")
	if b.Len() != 1 {
		t.Errorf("second GetOrCreate lost history: Len = %d, want 1", b.Len())
	}
	if st.Len() != 1 {
		t.Errorf("store Len = %d, want 1", st.Len())
	}
}

func TestRecentWindow(t *testing.T) {
	s := &Session{}
	for i := 0; i < 25; i++ {
		s.Append("u", "m")
	}

	recent := s.Recent(20)
	if len(recent) != 20 {
		t.Errorf("Recent(20) returned %d turns, want 20", len(recent))
	}

	all := s.Recent(100)
	if len(all) != 25 {
		t.Errorf("Recent(100) returned %d turns, want all 25", len(all))
	}
}

func TestRecentReturnsCopy(t *testing.T) {
	s := &Session{}
	s.Append("original", "reply")

	turns := s.Recent(10)
	turns[0].User = "mutated"

	if got := s.Recent(10)[0].User; got != "original" {
		t.Errorf("history mutated through Recent copy: %q", got)
	}
}

func TestSweepRemovesIdleSessions(t *testing.T) {
	st := NewSessionStore(30*time.Minute, time.Minute)

	st.GetOrCreate("fresh")
	stale := st.GetOrCreate("stale")
	stale.lastAccess = time.Now().Add(-time.Hour)

	removed := st.sweepOnce(time.Now())
	if removed != 1 {
		t.Errorf("sweepOnce removed %d sessions, want 1", removed)
	}
	if st.Len() != 1 {
		t.Errorf("store Len after sweep = %d, want 1", st.Len())
	}

	// The surviving session starts fresh history only if it was the stale one.
	if st.GetOrCreate("fresh").Len() != 0 {
		t.Error("fresh session should have survived with empty history")
	}
}

func TestSweepRefreshedSessionSurvives(t *testing.T) {
	st := NewSessionStore(30*time.Minute, time.Minute)

	s := st.GetOrCreate("s1")
	s.lastAccess = time.Now().Add(-time.Hour)

	// Access refreshes lastAccess, so the next sweep keeps it.
	st.GetOrCreate("s1")
	if removed := st.sweepOnce(time.Now()); removed != 0 {
		t.Errorf("sweepOnce removed %d sessions, want 0", removed)
	}
}

func TestAnonymousSessionID(t *testing.T) {
	a := AnonymousSessionID()
	b := AnonymousSessionID()

	if !strings.HasPrefix(a, "anon-") {
		t.Errorf("AnonymousSessionID = %q, want anon- prefix", a)
	}
	if a == b {
		t.Error("two anonymous session IDs collided")
	}
}
