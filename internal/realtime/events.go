package realtime

import "encoding/json"

// Event names on the realtime channel. The client emits the first three
// and consumes the rest.
const (
	EventJoinChat            = "joinChat"
	EventLeaveChat           = "leaveChat"
	EventSendMessage         = "sendMessage"
	EventReceivedMessage     = "receivedMessage"
	EventChatHistory         = "chatHistory"
	EventMessageNotification = "messageNotification"
	EventError               = "error"
)

// Envelope frames every message on the wire.
type Envelope struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// JoinChatPayload enters the logical room for a user pair.
type JoinChatPayload struct {
	UserID       string `json:"userId"`
	TargetUserID string `json:"targetUserId"`
	FirstName    string `json:"firstName,omitempty"`
}

// LeaveChatPayload notifies the server the chat view closed. Fire and
// forget.
type LeaveChatPayload struct {
	UserID       string `json:"userId"`
	TargetUserID string `json:"targetUserId"`
}

// SendMessagePayload carries an outgoing chat message. ClientID is a
// client-generated UUID the server echoes back, so the optimistic entry
// can be matched without guessing by text.
type SendMessagePayload struct {
	UserID       string `json:"userId"`
	TargetUserID string `json:"targetUserId"`
	FirstName    string `json:"firstName,omitempty"`
	Text         string `json:"text"`
	ClientID     string `json:"clientId"`
}
