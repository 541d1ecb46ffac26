// Package resource stores the server-side anonymous carts addressed by cart
// ID, backing the /api/cart endpoints.
package resource

import (
	"context"
	"sync"

	"codedrip/internal/cart"
	id "codedrip/pkg/domain"
	dErrors "codedrip/pkg/domainerrors"
)

type InMemoryStore struct {
	mu    sync.RWMutex
	carts map[id.CartID]cart.Cart
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{carts: make(map[id.CartID]cart.Cart)}
}

func (s *InMemoryStore) Create(_ context.Context) (cart.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := cart.Cart{ID: id.NewCartID(), Items: []cart.LineItem{}}
	s.carts[c.ID] = c
	return c, nil
}

func (s *InMemoryStore) Get(_ context.Context, cartID id.CartID) (cart.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.carts[cartID]
	if !ok {
		return cart.Cart{}, dErrors.New(dErrors.CodeNotFound, "cart not found")
	}
	return copyCart(c), nil
}

func (s *InMemoryStore) Save(_ context.Context, c cart.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.carts[c.ID]; !ok {
		return dErrors.New(dErrors.CodeNotFound, "cart not found")
	}
	s.carts[c.ID] = copyCart(c)
	return nil
}

func copyCart(c cart.Cart) cart.Cart {
	items := make([]cart.LineItem, len(c.Items))
	copy(items, c.Items)
	return cart.Cart{ID: c.ID, Items: items}
}
