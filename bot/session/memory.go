package session

import (
	"context"
	"sync"
)

// MemoryStore keeps sessions in process memory. Suitable for development and
// tests; state is lost on restart.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[int64]Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[int64]Session)}
}

func (s *MemoryStore) Get(_ context.Context, userID int64) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[userID]
	if !ok {
		return &Session{}, nil
	}
	// Copy so callers can mutate without holding the lock.
	out := sess
	return &out, nil
}

func (s *MemoryStore) Save(_ context.Context, userID int64, sess *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[userID] = *sess
	return nil
}

func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = make(map[int64]Session)
	return nil
}
