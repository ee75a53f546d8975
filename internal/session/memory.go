package session

import (
	"context"
	"sync"
)

// MemoryStore is a process-local Store. It backs tests and local runs
// where no Redis is configured; sessions do not survive a restart.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]State
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]State)}
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.sessions[id]
	if !ok {
		return nil, nil
	}
	return &st, nil
}

func (s *MemoryStore) Put(ctx context.Context, id string, st State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = st
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
