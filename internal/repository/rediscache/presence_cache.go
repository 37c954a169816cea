package rediscache

import (
	"context"
	"strconv"
	"time"

	"github.com/gdugdh24/matchcore/internal/domain"
	"github.com/gdugdh24/matchcore/internal/repository"
	"github.com/gdugdh24/matchcore/pkg/logger"
	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker"
)

const presenceKeyPrefix = "presence:"

func presenceKey(userID string) string {
	return presenceKeyPrefix + userID
}

type presenceCache struct {
	client  *redis.Client
	breaker *gobreaker.CircuitBreaker
	ttl     time.Duration
}

// NewPresenceCache stores last activity as unix milliseconds under presence:<id>.
// Entries live for the online window, so a miss means "ask the database".
func NewPresenceCache(client *redis.Client) repository.PresenceCache {
	return &presenceCache{
		client:  client,
		breaker: newBreaker("presence-cache"),
		ttl:     domain.OnlineWindow,
	}
}

func newBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,
		Interval:    15 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 5 && failureRatio >= 0.5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn(context.Background(), "circuit breaker state changed",
				logger.String("name", name),
				logger.String("from", from.String()),
				logger.String("to", to.String()),
			)
		},
	})
}

func (c *presenceCache) Touch(ctx context.Context, userID string, at time.Time) error {
	_, err := c.breaker.Execute(func() (interface{}, error) {
		return nil, c.client.Set(ctx, presenceKey(userID), at.UnixMilli(), c.ttl).Err()
	})
	return err
}

func (c *presenceCache) LastActive(ctx context.Context, userIDs []string) (map[string]time.Time, error) {
	out := make(map[string]time.Time, len(userIDs))
	if len(userIDs) == 0 {
		return out, nil
	}

	keys := make([]string, len(userIDs))
	for i, id := range userIDs {
		keys[i] = presenceKey(id)
	}

	res, err := c.breaker.Execute(func() (interface{}, error) {
		return c.client.MGet(ctx, keys...).Result()
	})
	if err != nil {
		return nil, err
	}

	for i, v := range res.([]interface{}) {
		s, ok := v.(string)
		if !ok {
			continue
		}
		ms, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			continue
		}
		out[userIDs[i]] = time.UnixMilli(ms).UTC()
	}
	return out, nil
}
