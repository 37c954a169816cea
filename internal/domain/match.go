package domain

import "time"

type Decision string

const (
	DecisionLike Decision = "like"
	DecisionPass Decision = "pass"
)

func (d Decision) Valid() bool {
	return d == DecisionLike || d == DecisionPass
}

// Swipe is a like or pass edge, unique per (actor, target, decision).
type Swipe struct {
	ID        string    `json:"id" db:"id"`
	ActorID   string    `json:"actor_id" db:"actor_id"`
	TargetID  string    `json:"target_id" db:"target_id"`
	Decision  Decision  `json:"decision" db:"decision"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Match links two users; UserAID < UserBID always holds.
type Match struct {
	ID        string    `json:"id" db:"id"`
	UserAID   string    `json:"user_a_id" db:"user_a_id"`
	UserBID   string    `json:"user_b_id" db:"user_b_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CanonicalPair orders two ids so a symmetric relation has one key.
func CanonicalPair(a, b string) (string, string) {
	if a > b {
		return b, a
	}
	return a, b
}

func NewMatch(id, user1, user2 string, at time.Time) *Match {
	a, b := CanonicalPair(user1, user2)
	return &Match{ID: id, UserAID: a, UserBID: b, CreatedAt: at}
}

func (m *Match) HasUser(userID string) bool {
	return m.UserAID == userID || m.UserBID == userID
}

func (m *Match) GetOtherUserID(userID string) (string, bool) {
	if m.UserAID == userID {
		return m.UserBID, true
	}
	if m.UserBID == userID {
		return m.UserAID, true
	}
	return "", false
}
