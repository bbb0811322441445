package ai

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	defaultSessionTTL    = 30 * time.Minute
	defaultSweepInterval = 10 * time.Minute
)

// Turn is one user/model exchange in a conversation.
type Turn struct {
	User  string
	Model string
}

// Session holds the conversation history for one session ID. History grows
// without bound for the session's lifetime; only a window of recent turns is
// forwarded to the model per call.
type Session struct {
	mu      sync.Mutex
	history []Turn

	// lastAccess is guarded by the owning store's mutex, not the session's.
	lastAccess time.Time
}

// Append records a completed exchange.
func (s *Session) Append(userText, modelText string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, Turn{User: userText, Model: modelText})
}

// Recent returns a copy of the last n turns (all turns when fewer are stored).
func (s *Session) Recent(n int) []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := len(s.history) - n
	if start < 0 {
		start = 0
	}
	out := make([]Turn, len(s.history)-start)
	copy(out, s.history[start:])
	return out
}

// Len returns the number of stored turns.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.history)
}

// SessionStore maps session IDs to in-memory conversations and evicts idle
// ones. Sessions are never persisted.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	interval time.Duration
	logger   *slog.Logger
}

// NewSessionStore creates a store with the given idle TTL and sweep interval.
// Non-positive values fall back to the defaults (30m TTL, 10m sweep).
func NewSessionStore(ttl, sweepInterval time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	if sweepInterval <= 0 {
		sweepInterval = defaultSweepInterval
	}
	return &SessionStore{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		interval: sweepInterval,
		logger:   slog.Default(),
	}
}

// GetOrCreate returns the session for id, creating an empty one if absent.
// The session's last-access time is refreshed either way.
func (st *SessionStore) GetOrCreate(id string) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if !ok {
		s = &Session{}
		st.sessions[id] = s
	}
	s.lastAccess = time.Now()
	return s
}

// Len returns the number of live sessions.
func (st *SessionStore) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// Run sweeps idle sessions on the configured interval until ctx is cancelled.
func (st *SessionStore) Run(ctx context.Context) {
	ticker := time.NewTicker(st.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := st.sweepOnce(time.Now()); n > 0 {
				st.logger.Debug("expired idle sessions", "count", n)
			}
		}
	}
}

// sweepOnce removes sessions idle longer than the TTL and returns how many
// were removed.
func (st *SessionStore) sweepOnce(now time.Time) int {
	st.mu.Lock()
	defer st.mu.Unlock()

	removed := 0
	for id, s := range st.sessions {
		if now.Sub(s.lastAccess) > st.ttl {
			delete(st.sessions, id)
			removed++
		}
	}
	return removed
}

// AnonymousSessionID generates a session ID for callers that did not supply
// one. Random IDs avoid the collision window a timestamp-derived ID would
// have under concurrent anonymous requests.
func AnonymousSessionID() string {
	return "anon-" + uuid.New().String()
}
