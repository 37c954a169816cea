package domain

import "time"

// Wink is a lightweight signal of interest, unique per (sender, receiver).
type Wink struct {
	ID         string    `json:"id" db:"id"`
	SenderID   string    `json:"sender_id" db:"sender_id"`
	ReceiverID string    `json:"receiver_id" db:"receiver_id"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// ProfileView is recorded when a Pro user opens someone's profile.
type ProfileView struct {
	ID        string    `json:"id" db:"id"`
	ViewerID  string    `json:"viewer_id" db:"viewer_id"`
	ViewedID  string    `json:"viewed_id" db:"viewed_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ScreenshotAttempt is reported by clients when a screenshot of a private
// album is detected.
type ScreenshotAttempt struct {
	ID        string    `json:"id" db:"id"`
	ViewerID  string    `json:"viewer_id" db:"viewer_id"`
	OwnerID   string    `json:"owner_id" db:"owner_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
