package state

import (
	"sync"

	"github.com/AyushAgarwal15/devtinder-cli/internal/models"
)

// UserStore holds the logged-in user, or nil when logged out.
type UserStore struct {
	mu   sync.RWMutex
	user *models.User
}

// NewUserStore returns an empty store.
func NewUserStore() *UserStore {
	return &UserStore{}
}

// Set replaces the current user.
func (s *UserStore) Set(u *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = u
}

// Get returns the current user, or nil.
func (s *UserStore) Get() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Clear drops the current user (logout).
func (s *UserStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
}
