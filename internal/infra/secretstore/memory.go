// Package secretstore provides the credential store implementations: a
// file-backed default, a redis-backed option and an in-memory store for
// tests and ephemeral runs.
package secretstore

import (
	"context"
	"sync"

	"storefront/internal/domain/repository"
)

// memoryStore keeps the credential in process memory only. Nothing survives a
// restart, which also means session restore always starts signed out.
type memoryStore struct {
	mu    sync.RWMutex
	token string
	set   bool
}

// NewMemoryStore is the constructor for memoryStore.
func NewMemoryStore() repository.CredentialRepository {
	return &memoryStore{}
}

func (s *memoryStore) Get(ctx context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.set {
		return "", repository.ErrCredentialNotFound
	}

	return s.token, nil
}

func (s *memoryStore) Set(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.set = true

	return nil
}

func (s *memoryStore) Delete(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.set = false

	return nil
}
