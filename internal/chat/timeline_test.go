package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AyushAgarwal15/devtinder-cli/internal/models"
)

const selfID = "self"

func counterpartMsg(id, text string) models.Message {
	return models.Message{ID: id, SenderID: "other", Text: text, CreatedAt: "2025-06-01T10:00:00Z"}
}

func TestAppendLocalRejectsBlankText(t *testing.T) {
	tl := NewTimeline(selfID)

	assert.Nil(t, tl.AppendLocal("", "Ada"))
	assert.Nil(t, tl.AppendLocal("   \t ", "Ada"))
	assert.Equal(t, 0, tl.Len())
}

func TestAppendLocalCreatesPendingEntry(t *testing.T) {
	tl := NewTimeline(selfID)

	msg := tl.AppendLocal("  hi there ", "Ada")
	require.NotNil(t, msg)
	assert.Equal(t, "hi there", msg.Text)
	assert.Equal(t, selfID, msg.SenderID)
	assert.NotEmpty(t, msg.ClientID)
	assert.True(t, msg.Pending)
	assert.Equal(t, 1, tl.Len())
}

func TestHistoryThenIncomingKeepsOrderWithoutDuplicates(t *testing.T) {
	tl := NewTimeline(selfID)
	tl.Replace([]models.Message{counterpartMsg("m1", "one"), counterpartMsg("m2", "two")})

	action := tl.ApplyIncoming(counterpartMsg("m3", "three"))
	assert.Equal(t, Appended, action)

	msgs := tl.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, "m1", msgs[0].ID)
	assert.Equal(t, "m2", msgs[1].ID)
	assert.Equal(t, "m3", msgs[2].ID)
}

func TestIncomingDuplicateByIDIsDropped(t *testing.T) {
	tl := NewTimeline(selfID)
	tl.Replace([]models.Message{counterpartMsg("m1", "one")})

	assert.Equal(t, Dropped, tl.ApplyIncoming(counterpartMsg("m1", "one")))
	assert.Equal(t, 1, tl.Len())
}

func TestIncomingDuplicateByTextAndSenderIsDropped(t *testing.T) {
	tl := NewTimeline(selfID)
	tl.Replace([]models.Message{counterpartMsg("m1", "same words")})

	// Same text and sender under a different id still counts as the same
	// message racing in from two sources.
	assert.Equal(t, Dropped, tl.ApplyIncoming(counterpartMsg("m9", "same words")))
	assert.Equal(t, 1, tl.Len())
}

func TestSelfEchoReplacesOptimisticEntryByClientID(t *testing.T) {
	tl := NewTimeline(selfID)
	local := tl.AppendLocal("hi", "Ada")
	require.NotNil(t, local)

	echo := models.Message{
		ID:        "server123",
		ClientID:  local.ClientID,
		SenderID:  selfID,
		Text:      "hi",
		CreatedAt: "2025-06-01T10:00:05Z",
	}
	assert.Equal(t, Reconciled, tl.ApplyIncoming(echo))

	msgs := tl.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "server123", msgs[0].ID)
	assert.False(t, msgs[0].Pending)
}

func TestSelfEchoFallsBackToTextMatch(t *testing.T) {
	tl := NewTimeline(selfID)
	require.NotNil(t, tl.AppendLocal("hi", "Ada"))

	// Echo from a backend that stripped the client id.
	echo := models.Message{ID: "server123", SenderID: selfID, Text: "hi"}
	assert.Equal(t, Reconciled, tl.ApplyIncoming(echo))

	msgs := tl.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "server123", msgs[0].ID)
}

func TestSelfEchoWithoutMatchIsAppended(t *testing.T) {
	tl := NewTimeline(selfID)

	echo := models.Message{ID: "server999", SenderID: selfID, Text: "from another device"}
	assert.Equal(t, Appended, tl.ApplyIncoming(echo))
	assert.Equal(t, 1, tl.Len())
}

func TestReconciledEntryKeepsItsPosition(t *testing.T) {
	tl := NewTimeline(selfID)
	tl.Replace([]models.Message{counterpartMsg("m1", "one")})
	local := tl.AppendLocal("mine", "Ada")
	tl.ApplyIncoming(counterpartMsg("m2", "two"))

	// Echo with a later server timestamp must not move the entry.
	echo := models.Message{ID: "s1", ClientID: local.ClientID, SenderID: selfID, Text: "mine", CreatedAt: "2030-01-01T00:00:00Z"}
	require.Equal(t, Reconciled, tl.ApplyIncoming(echo))

	msgs := tl.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, "m1", msgs[0].ID)
	assert.Equal(t, "s1", msgs[1].ID)
	assert.Equal(t, "m2", msgs[2].ID)
}

func TestDuplicateSameTextSentTwiceReconcilesSeparately(t *testing.T) {
	tl := NewTimeline(selfID)
	first := tl.AppendLocal("hey", "Ada")
	second := tl.AppendLocal("hey", "Ada")
	require.NotEqual(t, first.ClientID, second.ClientID)

	echo2 := models.Message{ID: "s2", ClientID: second.ClientID, SenderID: selfID, Text: "hey"}
	require.Equal(t, Reconciled, tl.ApplyIncoming(echo2))

	msgs := tl.Messages()
	require.Len(t, msgs, 2)
	assert.True(t, msgs[0].Pending)
	assert.Equal(t, "s2", msgs[1].ID)
}

func TestSnapshotReplacesOnlyWhenNonEmpty(t *testing.T) {
	tl := NewTimeline(selfID)
	tl.AppendLocal("draft", "Ada")

	assert.False(t, tl.ApplySnapshot(nil))
	assert.Equal(t, 1, tl.Len())

	snapshot := []models.Message{counterpartMsg("m1", "one"), counterpartMsg("m2", "two")}
	assert.True(t, tl.ApplySnapshot(snapshot))

	msgs := tl.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, "m1", msgs[0].ID)
}
