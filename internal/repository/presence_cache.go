package repository

import (
	"context"
	"time"
)

// PresenceCache is a short-lived copy of last activity. It may lose data;
// the user repository stays authoritative.
type PresenceCache interface {
	Touch(ctx context.Context, userID string, at time.Time) error
	// LastActive returns entries only for ids present in the cache.
	LastActive(ctx context.Context, userIDs []string) (map[string]time.Time, error)
}
