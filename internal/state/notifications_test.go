package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationUpsertKeepsOneRecordPerCounterpart(t *testing.T) {
	s := NewNotificationStore()

	s.Add("u2", "Ada", "", "hi", "t1")
	s.Add("u2", "Ada", "", "second", "t2")
	s.Add("u2", "Ada", "", "third", "t3")

	all := s.All()
	require.Len(t, all, 1)
	assert.Equal(t, "third", all[0].LastMessage)
	assert.Equal(t, "t3", all[0].Timestamp)
	assert.False(t, all[0].IsRead)
	assert.Equal(t, 1, s.UnreadCount())
}

func TestNotificationNewestFirstOrdering(t *testing.T) {
	s := NewNotificationStore()

	s.Add("u1", "Ada", "", "a", "t1")
	s.Add("u2", "Grace", "", "b", "t2")
	s.Add("u3", "Linus", "", "c", "t3")

	all := s.All()
	require.Len(t, all, 3)
	assert.Equal(t, "u3", all[0].CounterpartID)
	assert.Equal(t, "u1", all[2].CounterpartID)
}

func TestUnreadCountTracksFlagsAcrossOperations(t *testing.T) {
	s := NewNotificationStore()

	s.Add("u1", "Ada", "", "a", "t1")
	s.Add("u2", "Grace", "", "b", "t2")
	require.Equal(t, 2, s.UnreadCount())

	s.MarkRead("u1")
	assert.Equal(t, 1, s.UnreadCount())

	// Upsert on a read record flips it back to unread.
	s.MarkRead("u2")
	require.Equal(t, 0, s.UnreadCount())
	s.Add("u2", "Grace", "", "again", "t3")
	assert.Equal(t, 1, s.UnreadCount())

	s.MarkAllRead()
	assert.Equal(t, 0, s.UnreadCount())

	s.Add("u3", "Linus", "", "c", "t4")
	s.Clear()
	assert.Equal(t, 0, s.UnreadCount())
	assert.Empty(t, s.All())
}

func TestMarkReadUnknownCounterpartIsNoOp(t *testing.T) {
	s := NewNotificationStore()

	s.MarkRead("ghost")
	assert.Equal(t, 0, s.UnreadCount())

	s.Add("u1", "Ada", "", "a", "t1")
	s.MarkRead("ghost")
	assert.Equal(t, 1, s.UnreadCount())
}

func TestOpenChatScenarioLeavesZeroUnread(t *testing.T) {
	s := NewNotificationStore()

	// Chat with u2 opens with no prior record: mark-as-read is a no-op.
	s.MarkRead("u2")
	require.Equal(t, 0, s.UnreadCount())

	// An inbound message adds the record, and since the chat is open it
	// is marked read immediately.
	s.Add("u2", "Grace", "", "hello there", "t1")
	s.MarkRead("u2")

	assert.Equal(t, 0, s.UnreadCount())
	all := s.All()
	require.Len(t, all, 1)
	assert.True(t, all[0].IsRead)
}
