package repository

import (
	"context"
	"time"

	"github.com/gdugdh24/matchcore/internal/domain"
)

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	// ConsumeQuota resets an expired window and takes one unit in a single
	// atomic step. It returns the counter after the increment, or
	// domain.ErrQuotaExceeded without mutating anything.
	ConsumeQuota(ctx context.Context, id string, now time.Time, limit int, window time.Duration) (int, error)
	TouchActivity(ctx context.Context, id string, at time.Time) error
	// LastActive returns the recorded activity for the ids that have one.
	LastActive(ctx context.Context, ids []string) (map[string]time.Time, error)
}
