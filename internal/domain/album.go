package domain

import "time"

type RequestState string

const (
	RequestPending  RequestState = "pending"
	RequestAccepted RequestState = "accepted"
	RequestRejected RequestState = "rejected"
)

// Active reports whether the state blocks a new request for the same pair.
func (s RequestState) Active() bool {
	return s == RequestPending || s == RequestAccepted
}

// AlbumAccessRequest asks an owner to reveal their private photos.
// An accepted request is the grant itself and is never revoked.
type AlbumAccessRequest struct {
	ID          string       `json:"id" db:"id"`
	RequesterID string       `json:"requester_id" db:"requester_id"`
	OwnerID     string       `json:"owner_id" db:"owner_id"`
	State       RequestState `json:"state" db:"state"`
	CreatedAt   time.Time    `json:"created_at" db:"created_at"`
	RespondedAt *time.Time   `json:"responded_at,omitempty" db:"responded_at"`
}
