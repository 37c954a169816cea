package domain

import "time"

type MessageType string

const (
	MessageText     MessageType = "text"
	MessagePhoto    MessageType = "photo"
	MessageLocation MessageType = "location"
)

func (t MessageType) Valid() bool {
	switch t {
	case MessageText, MessagePhoto, MessageLocation:
		return true
	}
	return false
}

// Message belongs to a match. Read and Deleted only ever go from false to true.
type Message struct {
	ID        string      `json:"id" db:"id"`
	MatchID   string      `json:"match_id" db:"match_id"`
	SenderID  string      `json:"sender_id" db:"sender_id"`
	Content   string      `json:"content" db:"content"`
	Type      MessageType `json:"type" db:"type"`
	Latitude  *float64    `json:"latitude,omitempty" db:"latitude"`
	Longitude *float64    `json:"longitude,omitempty" db:"longitude"`
	PhotoURL  *string     `json:"photo_url,omitempty" db:"photo_url"`
	Read      bool        `json:"read" db:"read"`
	ReadAt    *time.Time  `json:"read_at,omitempty" db:"read_at"`
	Deleted   bool        `json:"deleted" db:"deleted"`
	DeletedAt *time.Time  `json:"deleted_at,omitempty" db:"deleted_at"`
	CreatedAt time.Time   `json:"created_at" db:"created_at"`
	// Seq is the insertion order; it breaks CreatedAt ties within a thread.
	Seq       int64       `json:"-" db:"seq"`
}

// Validate checks the type-specific payload.
func (m *Message) Validate() error {
	if !m.Type.Valid() {
		return NewError(ErrValidation, "unknown message type")
	}
	switch m.Type {
	case MessageText:
		if m.Content == "" {
			return NewError(ErrValidation, "text message requires content")
		}
	case MessageLocation:
		if m.Latitude == nil || m.Longitude == nil {
			return NewError(ErrValidation, "location message requires coordinates")
		}
	case MessagePhoto:
		if m.PhotoURL == nil || *m.PhotoURL == "" {
			return NewError(ErrValidation, "photo message requires photo_url")
		}
	}
	return nil
}
