package domain

import "time"

type Tier string

const (
	TierFree Tier = "free"
	TierPro  Tier = "pro"
)

const (
	// DailyQuota is the number of quota-consuming actions a free user gets per window.
	DailyQuota = 50
	// QuotaWindow is anchored to the last reset, not to calendar midnight.
	QuotaWindow = 24 * time.Hour
	// OnlineWindow is how long after the last activity a user counts as online.
	OnlineWindow = 5 * time.Minute
)

type User struct {
	ID           string     `json:"id" db:"id"`
	Tier         Tier       `json:"tier" db:"tier"`
	QuotaCount   int        `json:"quota_count" db:"quota_count"`
	QuotaResetAt *time.Time `json:"quota_reset_at" db:"quota_reset_at"`
	LastActiveAt *time.Time `json:"last_active_at" db:"last_active_at"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
}

func (u *User) IsPro() bool {
	return u.Tier == TierPro
}

// QuotaExpired reports whether the quota window has elapsed at now.
// A user that never had a reset is treated as expired.
func (u *User) QuotaExpired(now time.Time) bool {
	return u.QuotaResetAt == nil || now.Sub(*u.QuotaResetAt) > QuotaWindow
}

// IsOnlineAt reports presence; a user with no recorded activity is never online.
func IsOnlineAt(lastActive *time.Time, now time.Time) bool {
	if lastActive == nil {
		return false
	}
	return now.Sub(*lastActive) <= OnlineWindow
}

// QuotaRemaining returns the actions left in the current window. Pro users
// are unlimited and get -1.
func (u *User) QuotaRemaining(now time.Time) int {
	if u.IsPro() {
		return -1
	}
	if u.QuotaExpired(now) {
		return DailyQuota
	}
	if left := DailyQuota - u.QuotaCount; left > 0 {
		return left
	}
	return 0
}
