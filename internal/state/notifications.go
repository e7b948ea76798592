package state

import (
	"sync"

	"github.com/AyushAgarwal15/devtinder-cli/internal/models"
)

// NotificationStore tracks at most one unread-state record per chat
// counterpart. Records are kept newest-first by insertion; an upsert
// overwrites in place without changing position. The unread counter is
// maintained incrementally instead of rescanning on every mutation.
type NotificationStore struct {
	mu     sync.RWMutex
	byID   map[string]*models.Notification
	order  []string
	unread int
}

// NewNotificationStore returns an empty store.
func NewNotificationStore() *NotificationStore {
	return &NotificationStore{byID: make(map[string]*models.Notification)}
}

// Add upserts the record for a counterpart and marks it unread. A new
// counterpart is inserted at the front.
func (s *NotificationStore) Add(counterpartID, name, photoURL, lastMessage, timestamp string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.byID[counterpartID]; ok {
		if existing.IsRead {
			s.unread++
		}
		*existing = models.Notification{
			CounterpartID: counterpartID,
			Name:          name,
			PhotoURL:      photoURL,
			LastMessage:   lastMessage,
			Timestamp:     timestamp,
		}
		return
	}

	s.byID[counterpartID] = &models.Notification{
		CounterpartID: counterpartID,
		Name:          name,
		PhotoURL:      photoURL,
		LastMessage:   lastMessage,
		Timestamp:     timestamp,
	}
	s.order = append([]string{counterpartID}, s.order...)
	s.unread++
}

// MarkRead flags a counterpart's record as read. No-op when the
// counterpart has no record.
func (s *NotificationStore) MarkRead(counterpartID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.byID[counterpartID]
	if !ok || n.IsRead {
		return
	}
	n.IsRead = true
	s.unread--
}

// MarkAllRead flags every record as read.
func (s *NotificationStore) MarkAllRead() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range s.byID {
		n.IsRead = true
	}
	s.unread = 0
}

// Clear empties the store (logout).
func (s *NotificationStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID = make(map[string]*models.Notification)
	s.order = nil
	s.unread = 0
}

// UnreadCount returns the number of unread records.
func (s *NotificationStore) UnreadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.unread
}

// All returns the records newest-first.
func (s *NotificationStore) All() []models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Notification, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.byID[id])
	}
	return out
}
