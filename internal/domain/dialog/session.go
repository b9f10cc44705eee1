// Package dialog implements the stateful multi-turn conversation engine:
// per-session history and context, an ordered rule table mapping messages to
// canned responses, and the SessionStore abstraction the engine persists
// through.
//
// The engine itself performs no locking.  Concurrent turns for the same
// session id must be serialized by the caller; the application layer does
// this with per-session keyed locks.  Distinct sessions are fully
// independent.
package dialog

import (
	"context"
	"sync"
	"time"
)

// Role identifies the author of a conversation turn.
type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

// Turn is one timestamped entry in a session's history.
type Turn struct {
	Role      Role      `json:"role"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Context is the per-session conversation state the rule table keys on.
// PrimaryIssue holds a flow key once any domain flow has matched;
// IssueIdentified flips to true at the same moment and never resets except
// by clearing the session.
type Context struct {
	PrimaryIssue    FlowKey `json:"primary_issue,omitempty"`
	IssueIdentified bool    `json:"issue_identified"`
}

// Session is the unit of dialog state: an opaque id, the ordered turn
// history, and the context object.
type Session struct {
	ID      string  `json:"id"`
	History []Turn  `json:"history"`
	Context Context `json:"context"`
}

func (s *Session) clone() *Session {
	history := make([]Turn, len(s.History))
	copy(history, s.History)
	return &Session{ID: s.ID, History: history, Context: s.Context}
}

// SessionStore persists dialog sessions.  GetOrCreate never fails on an
// unknown id — first reference creates an empty session.  Implementations
// return detached copies: mutations are invisible until Save.
type SessionStore interface {
	GetOrCreate(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, session *Session) error
	Clear(ctx context.Context, id string) error
}

// MemoryStore is the in-process SessionStore.  Sessions older than the TTL
// are dropped lazily on access; a zero TTL disables expiry.
type MemoryStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[string]*memoryEntry
}

type memoryEntry struct {
	session *Session
	touched time.Time
}

// MemoryStoreOption configures a MemoryStore.
type MemoryStoreOption func(*MemoryStore)

// WithTTL sets the idle lifetime of a session.
func WithTTL(ttl time.Duration) MemoryStoreOption {
	return func(s *MemoryStore) { s.ttl = ttl }
}

// WithStoreClock overrides the time source used for TTL accounting.
func WithStoreClock(now func() time.Time) MemoryStoreOption {
	return func(s *MemoryStore) { s.now = now }
}

// NewMemoryStore builds an empty in-memory session store.
func NewMemoryStore(opts ...MemoryStoreOption) *MemoryStore {
	s := &MemoryStore{
		now:      time.Now,
		sessions: make(map[string]*memoryEntry),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetOrCreate returns a copy of the stored session, or a fresh empty one on
// first reference or after expiry.
func (s *MemoryStore) GetOrCreate(_ context.Context, id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[id]
	if ok && s.expired(entry) {
		delete(s.sessions, id)
		ok = false
	}
	if !ok {
		return &Session{ID: id}, nil
	}
	return entry.session.clone(), nil
}

// Save stores a detached copy of session, refreshing its TTL.
func (s *MemoryStore) Save(_ context.Context, session *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.ID] = &memoryEntry{
		session: session.clone(),
		touched: s.now(),
	}
	return nil
}

// Clear removes the session.  Clearing an unknown id is a no-op.
func (s *MemoryStore) Clear(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	return nil
}

// Len reports the number of live sessions, expired entries included until
// their next access.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *MemoryStore) expired(entry *memoryEntry) bool {
	return s.ttl > 0 && s.now().Sub(entry.touched) > s.ttl
}
