package domain

import "time"

const (
	// PublicChatWindow bounds how far back the room is read.
	PublicChatWindow = 24 * time.Hour
	// PublicChatScanLimit caps the rows loaded per read, newest first.
	PublicChatScanLimit = 500
	// PublicChatLimit caps the messages returned after filtering.
	PublicChatLimit = 100
	// PublicChatRadiusKm is the room radius when the request has none.
	PublicChatRadiusKm = 25.0
)

// PublicMessage is a post in the location-scoped public room. Name and
// coordinates are copied from the sender's profile at send time.
type PublicMessage struct {
	ID         string    `json:"id" db:"id"`
	SenderID   string    `json:"sender_id" db:"sender_id"`
	SenderName string    `json:"sender_name" db:"sender_name"`
	Content    string    `json:"content" db:"content"`
	Latitude   *float64  `json:"latitude,omitempty" db:"latitude"`
	Longitude  *float64  `json:"longitude,omitempty" db:"longitude"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

func (m *PublicMessage) HasCoordinates() bool {
	return m.Latitude != nil && m.Longitude != nil
}
