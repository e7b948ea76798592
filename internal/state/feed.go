package state

import (
	"sync"

	"github.com/AyushAgarwal15/devtinder-cli/internal/models"
)

// FeedStore holds the ordered list of candidates waiting for a swipe
// decision. A decided entry is removed immediately, before the request
// round-trips to the server.
type FeedStore struct {
	mu    sync.RWMutex
	users []models.User
}

// NewFeedStore returns an empty store.
func NewFeedStore() *FeedStore {
	return &FeedStore{}
}

// Set replaces the whole feed.
func (s *FeedStore) Set(users []models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = users
}

// Peek returns the candidate at the front of the feed, or nil when empty.
func (s *FeedStore) Peek() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.users) == 0 {
		return nil
	}
	u := s.users[0]
	return &u
}

// Remove drops the candidate with the given id.
func (s *FeedStore) Remove(id string) {
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

// Len returns the number of undecided candidates.
func (s *FeedStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

// Clear empties the feed (logout).
func (s *FeedStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = nil
}
