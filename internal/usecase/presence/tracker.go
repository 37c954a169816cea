package presence

import (
	"context"
	"errors"
	"time"

	"github.com/gdugdh24/matchcore/internal/domain"
	"github.com/gdugdh24/matchcore/internal/metrics"
	"github.com/gdugdh24/matchcore/internal/repository"
	"github.com/gdugdh24/matchcore/pkg/logger"
)

// Tracker owns the daily quota counter and last-activity timestamp of each user.
type Tracker struct {
	userRepo repository.UserRepository
	cache    repository.PresenceCache
	now      func() time.Time
}

// NewTracker builds a tracker; cache may be nil.
func NewTracker(userRepo repository.UserRepository, cache repository.PresenceCache) *Tracker {
	return &Tracker{
		userRepo: userRepo,
		cache:    cache,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// CheckAndConsumeQuota lets Pro users through untouched and takes one unit of
// the daily budget from Free users.
func (t *Tracker) CheckAndConsumeQuota(ctx context.Context, user *domain.User) error {
	if user.IsPro() {
		return nil
	}

	count, err := t.userRepo.ConsumeQuota(ctx, user.ID, t.now(), domain.DailyQuota, domain.QuotaWindow)
	if err != nil {
		if errors.Is(err, domain.ErrQuotaExceeded) {
			metrics.QuotaExceeded.Inc()
			logger.Info(ctx, "daily quota exhausted", logger.String("user_id", user.ID))
		}
		return err
	}
	user.QuotaCount = count
	return nil
}

func (t *Tracker) TouchActivity(ctx context.Context, userID string) error {
	now := t.now()
	if err := t.userRepo.TouchActivity(ctx, userID, now); err != nil {
		return err
	}
	if t.cache != nil {
		if err := t.cache.Touch(ctx, userID, now); err != nil {
			metrics.PresenceCacheErrors.Inc()
			logger.Warn(ctx, "presence cache write failed",
				logger.String("user_id", userID),
				logger.ErrorField(err),
			)
		}
	}
	return nil
}

func (t *Tracker) IsOnline(ctx context.Context, userID string) (bool, error) {
	set, err := t.OnlineSet(ctx, []string{userID})
	if err != nil {
		return false, err
	}
	return set[userID], nil
}

// OnlineSet reports presence for every id. Ids without recorded activity map to false.
func (t *Tracker) OnlineSet(ctx context.Context, userIDs []string) (map[string]bool, error) {
	lastActive, err := t.lastActive(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	now := t.now()
	out := make(map[string]bool, len(userIDs))
	for _, id := range userIDs {
		at, ok := lastActive[id]
		out[id] = ok && domain.IsOnlineAt(&at, now)
	}
	return out, nil
}

func (t *Tracker) lastActive(ctx context.Context, userIDs []string) (map[string]time.Time, error) {
	found := make(map[string]time.Time, len(userIDs))
	missing := userIDs

	if t.cache != nil && len(userIDs) > 0 {
		cached, err := t.cache.LastActive(ctx, userIDs)
		if err != nil {
			metrics.PresenceCacheErrors.Inc()
			logger.Warn(ctx, "presence cache read failed", logger.ErrorField(err))
		} else {
			missing = missing[:0:0]
			for _, id := range userIDs {
				if at, ok := cached[id]; ok {
					found[id] = at
				} else {
					missing = append(missing, id)
				}
			}
		}
	}

	if len(missing) == 0 {
		return found, nil
	}
	stored, err := t.userRepo.LastActive(ctx, missing)
	if err != nil {
		return nil, err
	}
	for id, at := range stored {
		found[id] = at
	}
	return found, nil
}
