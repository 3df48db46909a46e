package blob

import (
	"context"
	"sync"
)

// InMemoryStore keeps uploaded objects in memory for tests/dev. It records
// every stored path so tests can assert on upload traffic, and can be primed
// to fail specific paths.
type InMemoryStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	failOn  map[string]error
}

// NewInMemoryStore constructs an empty in-memory blob store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		objects: make(map[string][]byte),
		failOn:  make(map[string]error),
	}
}

// FailOnPrefix makes Store return err for any path starting with prefix.
func (s *InMemoryStore) FailOnPrefix(prefix string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failOn[prefix] = err
}

func (s *InMemoryStore) Store(_ context.Context, data []byte, bucket, path string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for prefix, err := range s.failOn {
		if len(path) >= len(prefix) && path[:len(prefix)] == prefix {
			return "", err
		}
	}

	key := bucket + "/" + path
	s.objects[key] = append([]byte(nil), data...)
	return "memory://" + key, nil
}

// Paths returns the stored object keys, for tests.
func (s *InMemoryStore) Paths() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	paths := make([]string, 0, len(s.objects))
	for key := range s.objects {
		paths = append(paths, key)
	}
	return paths
}

// Len returns the number of stored objects, for tests.
func (s *InMemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}
