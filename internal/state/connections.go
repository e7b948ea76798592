package state

import (
	"sync"

	"github.com/AyushAgarwal15/devtinder-cli/internal/models"
)

// ConnectionStore holds the users the current user has matched with.
type ConnectionStore struct {
	mu    sync.RWMutex
	users []models.User
}

// NewConnectionStore returns an empty store.
func NewConnectionStore() *ConnectionStore {
	return &ConnectionStore{}
}

// Set replaces the connection list.
func (s *ConnectionStore) Set(users []models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = users
}

// All returns a copy of the connection list.
func (s *ConnectionStore) All() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out
}

// Find returns the connection with the given id, or nil.
func (s *ConnectionStore) Find(id string) *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			c := u
			return &c
		}
	}
	return nil
}

// Remove drops a connection (unfriend).
func (s *ConnectionStore) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.users[:0]
	for _, u := range s.users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	s.users = kept
}

// Clear empties the list (logout).
func (s *ConnectionStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = nil
}
