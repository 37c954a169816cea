package feed

import (
	"context"
	"fmt"

	"github.com/gdugdh24/matchcore/internal/domain"
	"github.com/gdugdh24/matchcore/internal/repository"
	"github.com/gdugdh24/matchcore/pkg/logger"
)

// Presence is the part of the presence tracker the feed needs.
type Presence interface {
	CheckAndConsumeQuota(ctx context.Context, user *domain.User) error
	OnlineSet(ctx context.Context, userIDs []string) (map[string]bool, error)
}

type FeedUseCase struct {
	profileRepo repository.ProfileRepository
	swipeRepo   repository.SwipeRepository
	presence    Presence
}

func NewFeedUseCase(
	profileRepo repository.ProfileRepository,
	swipeRepo repository.SwipeRepository,
	presence Presence,
) *FeedUseCase {
	return &FeedUseCase{
		profileRepo: profileRepo,
		swipeRepo:   swipeRepo,
		presence:    presence,
	}
}

// FeedFilter holds the optional discovery filters of one request.
type FeedFilter struct {
	domain.CandidateFilter
	// MaxDistanceKm overrides the tier radius when positive.
	MaxDistanceKm *float64
	OnlineOnly    bool
}

// FeedProfile is a candidate with its distance from the viewer.
type FeedProfile struct {
	*domain.Profile
	Distance float64 `json:"distance"`
	Online   bool    `json:"online"`
}

// GetFeed returns a point-in-time snapshot of candidates for the viewer.
// Candidates without coordinates are never returned, nor are any when the
// viewer has none.
func (uc *FeedUseCase) GetFeed(ctx context.Context, viewer *domain.User, filter FeedFilter) ([]*FeedProfile, error) {
	if err := uc.presence.CheckAndConsumeQuota(ctx, viewer); err != nil {
		return nil, err
	}

	me, err := uc.profileRepo.GetByUserID(ctx, viewer.ID)
	if err != nil {
		return nil, err
	}

	decided, err := uc.swipeRepo.ListDecidedTargets(ctx, viewer.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get decided targets: %w", err)
	}
	exclude := append(decided, viewer.ID)

	candidates, err := uc.profileRepo.ListCandidates(ctx, exclude, filter.CandidateFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}

	radius := domain.DefaultRadiusKm(viewer.Tier)
	if filter.MaxDistanceKm != nil && *filter.MaxDistanceKm > 0 {
		radius = *filter.MaxDistanceKm
	}

	nearby := make([]*FeedProfile, 0, len(candidates))
	for _, c := range candidates {
		distance, ok := me.DistanceTo(c)
		if !ok || distance > radius {
			continue
		}
		nearby = append(nearby, &FeedProfile{
			Profile:  c.Public(),
			Distance: domain.RoundKm(distance),
		})
	}

	ids := make([]string, len(nearby))
	for i, p := range nearby {
		ids[i] = p.UserID
	}
	online, err := uc.presence.OnlineSet(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve presence: %w", err)
	}

	result := nearby[:0]
	for _, p := range nearby {
		p.Online = online[p.UserID]
		if filter.OnlineOnly && !p.Online {
			continue
		}
		result = append(result, p)
	}

	logger.Debug(ctx, "feed built",
		logger.String("user_id", viewer.ID),
		logger.Int("candidates", len(candidates)),
		logger.Int("returned", len(result)),
		logger.Float64("radius_km", radius),
	)
	return result, nil
}
