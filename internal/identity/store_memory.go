package identity

import (
	"context"
	"sync"

	id "codedrip/pkg/domain"
	dErrors "codedrip/pkg/domainerrors"
)

// UserStore persists known users.
type UserStore interface {
	Save(ctx context.Context, user Identity) error
	FindByID(ctx context.Context, userID id.UserID) (Identity, error)
	FindByEmail(ctx context.Context, email string) (Identity, error)
}

// InMemoryUserStore keeps users in a map. Login traffic is light enough
// that the linear email scan does not matter.
type InMemoryUserStore struct {
	mu    sync.RWMutex
	users map[id.UserID]Identity
}

func NewInMemoryUserStore() *InMemoryUserStore {
	return &InMemoryUserStore{users: make(map[id.UserID]Identity)}
}

func (s *InMemoryUserStore) Save(_ context.Context, user Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = user
	return nil
}

func (s *InMemoryUserStore) FindByID(_ context.Context, userID id.UserID) (Identity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if user, ok := s.users[userID]; ok {
		return user, nil
	}
	return Identity{}, dErrors.New(dErrors.CodeNotFound, "user not found")
}

func (s *InMemoryUserStore) FindByEmail(_ context.Context, email string) (Identity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.Email == email {
			return user, nil
		}
	}
	return Identity{}, dErrors.New(dErrors.CodeNotFound, "user not found")
}
