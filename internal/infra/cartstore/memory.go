// Package cartstore holds the session's basket in process memory.
package cartstore

import (
	"context"
	"sync"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

// memoryStore is the single-slot cart store. The basket itself is a value
// whose operations are copy-on-write, so readers holding a snapshot are never
// affected by later updates; the mutex makes each update atomic against
// concurrent actions.
type memoryStore struct {
	mu   sync.RWMutex
	cart entity.Cart
}

// NewMemoryStore is the constructor for memoryStore. The basket starts empty.
func NewMemoryStore() repository.CartRepository {
	return &memoryStore{cart: entity.NewCart()}
}

func (s *memoryStore) Get(ctx context.Context) (entity.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.cart, nil
}

func (s *memoryStore) Update(ctx context.Context, fn func(entity.Cart) entity.Cart) (entity.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart = fn(s.cart)

	return s.cart, nil
}
