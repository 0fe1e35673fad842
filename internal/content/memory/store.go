package memory

import (
	"context"
	"sync"

	"github.com/kitbuilder587/adversify/internal/content"
)

type blob struct {
	data        []byte
	contentType string
}

// Store - in-memory content store for tests and local runs
type Store struct {
	mu    sync.RWMutex
	blobs map[string]blob
}

func New() *Store {
	return &Store{blobs: make(map[string]blob)}
}

func (s *Store) Exists(ctx context.Context, id string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.blobs[id]
	return ok, nil
}

func (s *Store) Get(ctx context.Context, id string) ([]byte, string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.blobs[id]
	if !ok {
		return nil, "", content.ErrNotFound
	}
	return b.data, b.contentType, nil
}

func (s *Store) Put(ctx context.Context, id string, data []byte, contentType string) error {
	s.mu.Lock()
	s.blobs[id] = blob{data: data, contentType: contentType}
	s.mu.Unlock()
	return nil
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.blobs)
}
