package subscriber

import (
	"context"
	"sync"

	dErrors "codedrip/pkg/domainerrors"
)

type InMemoryStore struct {
	mu       sync.RWMutex
	byEmail  map[string]Subscriber
	ordering []string
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{byEmail: make(map[string]Subscriber)}
}

func (s *InMemoryStore) Save(_ context.Context, sub Subscriber) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byEmail[sub.Email]; ok {
		return dErrors.New(dErrors.CodeConflict, "email already subscribed")
	}
	s.byEmail[sub.Email] = sub
	s.ordering = append(s.ordering, sub.Email)
	return nil
}

func (s *InMemoryStore) List(_ context.Context) ([]Subscriber, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	subs := make([]Subscriber, 0, len(s.ordering))
	for _, email := range s.ordering {
		subs = append(subs, s.byEmail[email])
	}
	return subs, nil
}
