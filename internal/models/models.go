package models

import (
	"encoding/json"
	"strings"
	"time"
)

// User is a DevTinder profile as returned by the backend.
type User struct {
	ID           string   `json:"_id"`
	FirstName    string   `json:"firstName"`
	LastName     string   `json:"lastName,omitempty"`
	EmailID      string   `json:"emailId,omitempty"`
	About        string   `json:"about,omitempty"`
	Location     string   `json:"location,omitempty"`
	PhotoURL     string   `json:"photoUrl,omitempty"`
	Age          int      `json:"age,omitempty"`
	Gender       string   `json:"gender,omitempty"`
	Skills       []string `json:"skills,omitempty"`
	GithubURL    string   `json:"githubUrl,omitempty"`
	PortfolioURL string   `json:"portfolioUrl,omitempty"`
	LinkedinURL  string   `json:"linkedinUrl,omitempty"`
}

// FullName joins first and last name, skipping an empty last name.
func (u User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// ConnectionRequest is a pending inbound request with the sender embedded.
type ConnectionRequest struct {
	ID        string `json:"_id"`
	FromUser  User   `json:"fromUserId"`
	ToUserID  string `json:"toUserId"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// Message is one chat message. The backend sends senderId either as a bare
// id string or as an embedded profile object; UnmarshalJSON normalizes both
// shapes into SenderID plus display fields.
type Message struct {
	ID          string
	ClientID    string
	SenderID    string
	SenderName  string
	SenderPhoto string
	TargetID    string
	Text        string
	CreatedAt   string
	// Pending marks an optimistic local entry not yet replaced by the
	// authoritative server copy.
	Pending bool
}

type wireSender struct {
	ID        string `json:"_id"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	PhotoURL  string `json:"photoUrl,omitempty"`
}

type wireMessage struct {
	ID        string          `json:"_id"`
	ClientID  string          `json:"clientId,omitempty"`
	SenderID  json.RawMessage `json:"senderId"`
	Sender    string          `json:"sender,omitempty"`
	TargetID  string          `json:"targetUserId,omitempty"`
	Text      string          `json:"text"`
	CreatedAt string          `json:"createdAt,omitempty"`
	Timestamp string          `json:"timestamp,omitempty"`
}

// UnmarshalJSON accepts both wire shapes for the sender field.
func (m *Message) UnmarshalJSON(data []byte) error {
	var w wireMessage
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	m.ID = w.ID
	m.ClientID = w.ClientID
	m.TargetID = w.TargetID
	m.Text = w.Text
	m.CreatedAt = w.CreatedAt
	if m.CreatedAt == "" {
		m.CreatedAt = w.Timestamp
	}
	if len(w.SenderID) > 0 {
		if w.SenderID[0] == '{' {
			var s wireSender
			if err := json.Unmarshal(w.SenderID, &s); err != nil {
				return err
			}
			m.SenderID = s.ID
			m.SenderName = strings.TrimSpace(s.FirstName + " " + s.LastName)
			m.SenderPhoto = s.PhotoURL
		} else {
			var id string
			if err := json.Unmarshal(w.SenderID, &id); err != nil {
				return err
			}
			m.SenderID = id
		}
	}
	if m.SenderID == "" {
		m.SenderID = w.Sender
	}
	return nil
}

// MarshalJSON writes the normalized shape back out.
func (m Message) MarshalJSON() ([]byte, error) {
	sender, err := json.Marshal(wireSender{ID: m.SenderID, FirstName: m.SenderName, PhotoURL: m.SenderPhoto})
	if err != nil {
		return nil, err
	}
	return json.Marshal(wireMessage{
		ID:        m.ID,
		ClientID:  m.ClientID,
		SenderID:  sender,
		TargetID:  m.TargetID,
		Text:      m.Text,
		CreatedAt: m.CreatedAt,
	})
}

// ClockTime renders the message timestamp as HH:MM, or "" when the
// timestamp is missing or unparsable.
func (m Message) ClockTime() string {
	if m.CreatedAt == "" {
		return ""
	}
	t, err := time.Parse(time.RFC3339, m.CreatedAt)
	if err != nil {
		return ""
	}
	return t.Local().Format("15:04")
}

// Notification is the per-counterpart unread record behind the badge count.
type Notification struct {
	CounterpartID string
	Name          string
	PhotoURL      string
	LastMessage   string
	Timestamp     string
	IsRead        bool
}
