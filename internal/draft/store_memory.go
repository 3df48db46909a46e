package draft

import (
	"context"
	"fmt"
	"sync"

	"onboard/pkg/platform/sentinel"
)

// InMemoryStore keeps drafts in process memory, used for tests and when no
// redis is configured. Drafts do not survive a restart.
type InMemoryStore struct {
	mu     sync.RWMutex
	drafts map[Slot][]byte
}

// NewInMemoryStore constructs an empty in-memory draft store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{drafts: make(map[Slot][]byte)}
}

func (s *InMemoryStore) Save(_ context.Context, slot Slot, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[slot] = append([]byte(nil), payload...)
	return nil
}

func (s *InMemoryStore) Load(_ context.Context, slot Slot) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	payload, ok := s.drafts[slot]
	if !ok {
		return nil, fmt.Errorf("draft %s: %w", slot, sentinel.ErrNotFound)
	}
	return payload, nil
}

func (s *InMemoryStore) Clear(_ context.Context, slot Slot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, slot)
	return nil
}
