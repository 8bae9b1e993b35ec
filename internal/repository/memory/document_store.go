package memory

import (
	"context"
	"sync"

	"icisdportal/internal/domain"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

// NewDocumentStore returns an in-memory DocumentStore. It is the default
// backend when no DATABASE_URL is configured and the workhorse for tests;
// contents do not survive a restart.
func NewDocumentStore() domain.DocumentStore {
	return &documentStore{docs: make(map[string][]byte)}
}

func (s *documentStore) Load(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[key]
	if !ok {
		return nil, domain.ErrDocumentNotFound
	}
	cp := make([]byte, len(doc))
	copy(cp, doc)
	return cp, nil
}

func (s *documentStore) Save(_ context.Context, key string, doc []byte) error {
	cp := make([]byte, len(doc))
	copy(cp, doc)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[key] = cp
	return nil
}

func (s *documentStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, key)
	return nil
}
