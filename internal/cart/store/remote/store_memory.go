package remote

import (
	"context"
	"sync"

	"codedrip/internal/cart"
	id "codedrip/pkg/domain"
)

// InMemoryStore keeps per-user carts in a map, used when Redis is not
// configured and in tests.
type InMemoryStore struct {
	mu    sync.RWMutex
	carts map[id.UserID][]cart.LineItem
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{carts: make(map[id.UserID][]cart.LineItem)}
}

func (s *InMemoryStore) Fetch(_ context.Context, userID id.UserID) ([]cart.LineItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items, ok := s.carts[userID]
	if !ok {
		return []cart.LineItem{}, nil
	}
	out := make([]cart.LineItem, len(items))
	copy(out, items)
	return out, nil
}

func (s *InMemoryStore) Save(_ context.Context, userID id.UserID, items []cart.LineItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]cart.LineItem, len(items))
	copy(stored, items)
	s.carts[userID] = stored
	return nil
}
