package conversation

import (
	"context"
	"errors"
	"sync"

	"github.com/kestrelbay/wildscope/backend/internal/model/conversation"
)

var ErrSessionNotFound = errors.New("session not found")

// Store persists conversation sessions between turns. Sessions are never
// destroyed; a completed conversation resets its fields instead.
type Store interface {
	Get(ctx context.Context, sessionID string) (conversation.Session, error)
	Put(ctx context.Context, session conversation.Session) error
}

// MemoryStore keeps sessions in process memory, suitable for a single
// backend instance.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]conversation.Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]conversation.Session)}
}

// Get returns a deep copy so callers can mutate freely before Put.
func (s *MemoryStore) Get(_ context.Context, sessionID string) (conversation.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return conversation.Session{}, ErrSessionNotFound
	}
	return session.Clone(), nil
}

func (s *MemoryStore) Put(_ context.Context, session conversation.Session) error {
	if session.ID == "" {
		return errors.New("session id is required")
	}

	s.mu.Lock()
	s.sessions[session.ID] = session.Clone()
	s.mu.Unlock()
	return nil
}

