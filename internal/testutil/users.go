package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/MTomala-IT/storeapi/internal/model"
)

var _ model.UserStore = (*MemoryUserStore)(nil)

// MemoryUserStore is a map-backed UserStore for tests that exercise whole flows.
type MemoryUserStore struct {
	mu     sync.Mutex
	nextID int64
	users  map[string]model.User
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: make(map[string]model.User)}
}

func (s *MemoryUserStore) GetByEmail(_ context.Context, email string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[email]
	if !ok {
		return model.User{}, model.ErrNotFound
	}
	return user, nil
}

func (s *MemoryUserStore) Create(_ context.Context, user model.User) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.Email]; ok {
		return model.User{}, model.ErrDuplicateUser
	}
	s.nextID++
	user.ID = s.nextID
	user.Confirmed = false
	user.CreatedAt = time.Now()
	s.users[user.Email] = user
	return user, nil
}

func (s *MemoryUserStore) SetConfirmed(_ context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[email]
	if !ok {
		return model.ErrNotFound
	}
	user.Confirmed = true
	s.users[email] = user
	return nil
}
