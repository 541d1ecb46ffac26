package catalog

import (
	"context"
	"sync"

	id "codedrip/pkg/domain"
	dErrors "codedrip/pkg/domainerrors"
)

// Store abstracts product persistence so the seeded in-memory catalog and a
// future database-backed one are interchangeable.
type Store interface {
	List(ctx context.Context) ([]Product, error)
	FindByID(ctx context.Context, productID id.ProductID) (Product, error)
	Create(ctx context.Context, product Product) error
}

// InMemoryStore serves the seed catalog plus any admin-created products.
// Reads return copies of the slice header; products themselves are treated
// as immutable once stored.
type InMemoryStore struct {
	mu      sync.RWMutex
	seed    []Product
	dynamic []Product
}

func NewInMemoryStore(seed []Product) *InMemoryStore {
	return &InMemoryStore{seed: seed}
}

func (s *InMemoryStore) List(_ context.Context) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	all := make([]Product, 0, len(s.seed)+len(s.dynamic))
	all = append(all, s.seed...)
	all = append(all, s.dynamic...)
	return all, nil
}

func (s *InMemoryStore) FindByID(_ context.Context, productID id.ProductID) (Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.seed {
		if p.ID == productID {
			return p, nil
		}
	}
	for _, p := range s.dynamic {
		if p.ID == productID {
			return p, nil
		}
	}
	return Product{}, dErrors.New(dErrors.CodeNotFound, "product not found")
}

func (s *InMemoryStore) Create(_ context.Context, product Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.seed {
		if p.ID == product.ID {
			return dErrors.New(dErrors.CodeConflict, "product id already exists")
		}
	}
	for _, p := range s.dynamic {
		if p.ID == product.ID {
			return dErrors.New(dErrors.CodeConflict, "product id already exists")
		}
	}
	s.dynamic = append(s.dynamic, product)
	return nil
}
