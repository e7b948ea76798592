package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageUnmarshalEmbeddedSender(t *testing.T) {
	raw := `{"_id":"m1","senderId":{"_id":"u2","firstName":"Grace","lastName":"Hopper","photoUrl":"p.png"},"text":"hi","createdAt":"2025-06-01T10:00:00Z"}`

	var m Message
	require.NoError(t, json.Unmarshal([]byte(raw), &m))
	assert.Equal(t, "m1", m.ID)
	assert.Equal(t, "u2", m.SenderID)
	assert.Equal(t, "Grace Hopper", m.SenderName)
	assert.Equal(t, "p.png", m.SenderPhoto)
	assert.Equal(t, "hi", m.Text)
}

func TestMessageUnmarshalBareSenderID(t *testing.T) {
	raw := `{"_id":"m2","senderId":"u1","text":"yo","timestamp":"2025-06-01T11:00:00Z"}`

	var m Message
	require.NoError(t, json.Unmarshal([]byte(raw), &m))
	assert.Equal(t, "u1", m.SenderID)
	assert.Empty(t, m.SenderName)
	// timestamp is the fallback field name for createdAt
	assert.Equal(t, "2025-06-01T11:00:00Z", m.CreatedAt)
}

func TestMessageUnmarshalLegacySenderField(t *testing.T) {
	raw := `{"_id":"m3","sender":"u9","text":"old shape"}`

	var m Message
	require.NoError(t, json.Unmarshal([]byte(raw), &m))
	assert.Equal(t, "u9", m.SenderID)
}

func TestMessageClientIDRoundTrip(t *testing.T) {
	m := Message{ID: "m1", ClientID: "c-123", SenderID: "u1", Text: "hi", CreatedAt: "2025-06-01T10:00:00Z"}

	data, err := json.Marshal(m)
	require.NoError(t, err)

	var back Message
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, "c-123", back.ClientID)
	assert.Equal(t, "u1", back.SenderID)
}

func TestClockTime(t *testing.T) {
	assert.Empty(t, Message{}.ClockTime())
	assert.Empty(t, Message{CreatedAt: "not a date"}.ClockTime())
	assert.NotEmpty(t, Message{CreatedAt: "2025-06-01T10:04:00Z"}.ClockTime())
}

func TestUserFullName(t *testing.T) {
	assert.Equal(t, "Ada", User{FirstName: "Ada"}.FullName())
	assert.Equal(t, "Ada Lovelace", User{FirstName: "Ada", LastName: "Lovelace"}.FullName())
}
