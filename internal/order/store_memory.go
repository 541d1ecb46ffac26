package order

import (
	"context"
	"sync"

	id "codedrip/pkg/domain"
	dErrors "codedrip/pkg/domainerrors"
)

type InMemoryStore struct {
	mu     sync.RWMutex
	orders map[id.OrderID]Order
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{orders: make(map[id.OrderID]Order)}
}

func (s *InMemoryStore) Save(_ context.Context, o Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[o.ID] = o
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, orderID id.OrderID) (Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if o, ok := s.orders[orderID]; ok {
		return o, nil
	}
	return Order{}, dErrors.New(dErrors.CodeNotFound, "order not found")
}
