package chat

import (
	"sync"

	"github.com/AyushAgarwal15/devtinder-cli/internal/models"
	"github.com/AyushAgarwal15/devtinder-cli/internal/realtime"
)

// Emitter is the slice of the realtime manager a room needs.
type Emitter interface {
	Emit(event string, payload any) error
}

// Room manages the join/leave lifecycle for the logical chat room of one
// (self, counterpart) pair. Join is guarded so repeated calls emit once;
// Rejoin re-emits unconditionally and is meant for reconnect hooks.
type Room struct {
	em        Emitter
	selfID    string
	targetID  string
	firstName string

	mu     sync.Mutex
	joined bool
}

// NewRoom builds a room for the pair. Both ids must be non-empty.
func NewRoom(em Emitter, selfID, targetID, firstName string) *Room {
	return &Room{em: em, selfID: selfID, targetID: targetID, firstName: firstName}
}

// Join enters the room exactly once.
func (r *Room) Join() error {
	r.mu.Lock()
	if r.joined {
		r.mu.Unlock()
		return nil
	}
	r.joined = true
	r.mu.Unlock()

	err := r.em.Emit(realtime.EventJoinChat, realtime.JoinChatPayload{
		UserID:       r.selfID,
		TargetUserID: r.targetID,
		FirstName:    r.firstName,
	})
	if err != nil {
		r.mu.Lock()
		r.joined = false
		r.mu.Unlock()
	}
	return err
}

// Rejoin re-enters the room after a transport reconnect.
func (r *Room) Rejoin() error {
	r.mu.Lock()
	r.joined = true
	r.mu.Unlock()
	return r.em.Emit(realtime.EventJoinChat, realtime.JoinChatPayload{
		UserID:       r.selfID,
		TargetUserID: r.targetID,
		FirstName:    r.firstName,
	})
}

// Leave notifies the server the chat closed. Fire and forget: the error
// is discarded because nothing can act on it during teardown.
func (r *Room) Leave() {
	r.mu.Lock()
	if !r.joined {
		r.mu.Unlock()
		return
	}
	r.joined = false
	r.mu.Unlock()

	_ = r.em.Emit(realtime.EventLeaveChat, realtime.LeaveChatPayload{
		UserID:       r.selfID,
		TargetUserID: r.targetID,
	})
}

// Send emits an outgoing message for an already-appended optimistic entry.
func (r *Room) Send(msg *models.Message) error {
	return r.em.Emit(realtime.EventSendMessage, realtime.SendMessagePayload{
		UserID:       r.selfID,
		TargetUserID: r.targetID,
		FirstName:    r.firstName,
		Text:         msg.Text,
		ClientID:     msg.ClientID,
	})
}
