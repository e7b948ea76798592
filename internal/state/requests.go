package state

import (
	"sync"

	"github.com/AyushAgarwal15/devtinder-cli/internal/models"
)

// RequestStore holds pending inbound connection requests. A reviewed
// request (accepted or rejected) is removed from the list.
type RequestStore struct {
	mu       sync.RWMutex
	requests []models.ConnectionRequest
}

// NewRequestStore returns an empty store.
func NewRequestStore() *RequestStore {
	return &RequestStore{}
}

// Set replaces the request list.
func (s *RequestStore) Set(requests []models.ConnectionRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = requests
}

// All returns a copy of the request list.
func (s *RequestStore) All() []models.ConnectionRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ConnectionRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

// Count returns the number of pending requests (the navbar badge).
func (s *RequestStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.requests)
}

// Remove drops the request with the given id after it is reviewed.
func (s *RequestStore) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.requests[:0]
	for _, r := range s.requests {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	s.requests = kept
}

// Clear empties the list (logout).
func (s *RequestStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = nil
}
