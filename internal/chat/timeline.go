package chat

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/AyushAgarwal15/devtinder-cli/internal/models"
)

// Action says what ApplyIncoming did with a message.
type Action int

const (
	// Appended means the message was added to the end of the timeline.
	Appended Action = iota
	// Reconciled means an optimistic local entry was replaced in place by
	// the authoritative server copy.
	Reconciled
	// Dropped means the message was a duplicate and ignored.
	Dropped
)

// Timeline is the single ordered, duplicate-free message list for one open
// chat. It merges three sources: the page-load history fetch, optimistic
// local sends, and the inbound realtime stream. Order is arrival order;
// entries are never re-sorted, so a reconciled message keeps the position
// of its optimistic placeholder.
type Timeline struct {
	mu     sync.RWMutex
	selfID string
	msgs   []models.Message
}

// NewTimeline builds an empty timeline for the given local user.
func NewTimeline(selfID string) *Timeline {
	return &Timeline{selfID: selfID}
}

// Replace swaps the whole list for the fetched history.
func (t *Timeline) Replace(msgs []models.Message) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.msgs = append([]models.Message(nil), msgs...)
}

// ApplySnapshot replaces the list with a server-pushed history snapshot
// (delivered after a reconnect). An empty snapshot is ignored so a fresh
// room doesn't wipe optimistic entries.
func (t *Timeline) ApplySnapshot(msgs []models.Message) bool {
	if len(msgs) == 0 {
		return false
	}
	t.Replace(msgs)
	return true
}

// AppendLocal creates and appends an optimistic entry for an outgoing
// message. Returns nil when the trimmed text is empty: nothing is added
// and nothing should be emitted. The entry carries a temporary
// timestamp-derived id and a client UUID used to match the server echo.
func (t *Timeline) AppendLocal(text, firstName string) *models.Message {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	now := time.Now()
	msg := models.Message{
		ID:         strconv.FormatInt(now.UnixMilli(), 10),
		ClientID:   uuid.NewString(),
		SenderID:   t.selfID,
		SenderName: firstName,
		Text:       trimmed,
		CreatedAt:  now.UTC().Format(time.RFC3339),
		Pending:    true,
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.msgs = append(t.msgs, msg)
	return &msg
}

// ApplyIncoming folds one realtime message into the timeline.
//
// A counterpart message is appended unless an entry already matches by id
// or by (text, sender), the duplicate guard against racing history and
// optimistic paths. A self message is the server echo of our own send: the
// first still-pending entry with the same client id (or, failing that, the
// same text) is replaced in place so the real id and timestamp land; with
// no match it is appended.
func (t *Timeline) ApplyIncoming(msg models.Message) Action {
	t.mu.Lock()
	defer t.mu.Unlock()

	if msg.SenderID != t.selfID {
		for _, m := range t.msgs {
			if (msg.ID != "" && m.ID == msg.ID) || (m.Text == msg.Text && m.SenderID == msg.SenderID) {
				return Dropped
			}
		}
		t.msgs = append(t.msgs, msg)
		return Appended
	}

	if i := t.findPending(msg); i >= 0 {
		msg.Pending = false
		t.msgs[i] = msg
		return Reconciled
	}
	t.msgs = append(t.msgs, msg)
	return Appended
}

// findPending locates the optimistic entry for a self echo. Client id is
// authoritative when the server echoed it; the (text, sender) heuristic
// remains as fallback for backends that strip unknown fields.
func (t *Timeline) findPending(msg models.Message) int {
	if msg.ClientID != "" {
		for i, m := range t.msgs {
			if m.Pending && m.ClientID == msg.ClientID {
				return i
			}
		}
		return -1
	}
	for i, m := range t.msgs {
		if m.Pending && m.Text == msg.Text && m.SenderID == msg.SenderID {
			return i
		}
	}
	return -1
}

// Messages returns a copy of the timeline in order.
func (t *Timeline) Messages() []models.Message {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]models.Message, len(t.msgs))
	copy(out, t.msgs)
	return out
}

// Len returns the number of messages.
func (t *Timeline) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.msgs)
}
