package swipe

import (
	"context"
	"fmt"
	"time"

	"github.com/gdugdh24/matchcore/internal/domain"
	"github.com/gdugdh24/matchcore/internal/metrics"
	"github.com/gdugdh24/matchcore/internal/repository"
	"github.com/gdugdh24/matchcore/pkg/logger"
	"github.com/google/uuid"
)

// QuotaChecker is the part of the presence tracker the engine needs.
type QuotaChecker interface {
	CheckAndConsumeQuota(ctx context.Context, user *domain.User) error
}

type SwipeUseCase struct {
	swipeRepo   repository.SwipeRepository
	matchRepo   repository.MatchRepository
	profileRepo repository.ProfileRepository
	quota       QuotaChecker
	now         func() time.Time
}

func NewSwipeUseCase(
	swipeRepo repository.SwipeRepository,
	matchRepo repository.MatchRepository,
	profileRepo repository.ProfileRepository,
	quota QuotaChecker,
) *SwipeUseCase {
	return &SwipeUseCase{
		swipeRepo:   swipeRepo,
		matchRepo:   matchRepo,
		profileRepo: profileRepo,
		quota:       quota,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// SwipeResult represents swipe result
type SwipeResult struct {
	Matched bool   `json:"matched"`
	MatchID string `json:"match_id,omitempty"`
}

// MatchWithProfile is a match as seen by one of its participants.
type MatchWithProfile struct {
	*domain.Match
	OtherUser *domain.Profile `json:"other_user"`
}

// LikeReceived represents a like received
type LikeReceived struct {
	*domain.Swipe
	Profile        *domain.Profile `json:"profile"`
	AlreadyMatched bool            `json:"already_matched"`
}

// RecordSwipe stores a like or pass and turns a reciprocal like into a match.
// Repeating a like is safe: no second edge is stored and the existing match is returned.
func (uc *SwipeUseCase) RecordSwipe(ctx context.Context, actor *domain.User, targetID string, decision domain.Decision) (*SwipeResult, error) {
	if !decision.Valid() {
		return nil, domain.NewError(domain.ErrValidation, "decision must be like or pass")
	}
	if actor.ID == targetID {
		return nil, domain.ErrSelfReference
	}

	if _, err := uc.profileRepo.GetByUserID(ctx, actor.ID); err != nil {
		return nil, err
	}
	if _, err := uc.profileRepo.GetByUserID(ctx, targetID); err != nil {
		return nil, err
	}

	if err := uc.quota.CheckAndConsumeQuota(ctx, actor); err != nil {
		return nil, err
	}

	now := uc.now()
	created, err := uc.swipeRepo.Create(ctx, &domain.Swipe{
		ID:        uuid.NewString(),
		ActorID:   actor.ID,
		TargetID:  targetID,
		Decision:  decision,
		CreatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create swipe: %w", err)
	}
	if created {
		metrics.SwipesTotal.WithLabelValues(string(decision)).Inc()
	}

	if decision == domain.DecisionPass {
		return &SwipeResult{}, nil
	}

	mutual, err := uc.swipeRepo.HasLiked(ctx, targetID, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check reciprocal like: %w", err)
	}
	if !mutual {
		return &SwipeResult{}, nil
	}

	match, isNew, err := uc.matchRepo.Upsert(ctx, domain.NewMatch(uuid.NewString(), actor.ID, targetID, now))
	if err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}
	if isNew {
		metrics.MatchesCreated.Inc()
		logger.Info(ctx, "match created",
			logger.String("match_id", match.ID),
			logger.String("user_a_id", match.UserAID),
			logger.String("user_b_id", match.UserBID),
		)
	}

	return &SwipeResult{Matched: true, MatchID: match.ID}, nil
}

// ListMatches returns the user's matches with the counterpart's public profile.
func (uc *SwipeUseCase) ListMatches(ctx context.Context, userID string) ([]*MatchWithProfile, error) {
	matches, err := uc.matchRepo.GetUserMatches(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get matches: %w", err)
	}

	otherIDs := make([]string, 0, len(matches))
	for _, m := range matches {
		other, _ := m.GetOtherUserID(userID)
		otherIDs = append(otherIDs, other)
	}
	profiles, err := uc.profileRepo.GetByUserIDs(ctx, otherIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get profiles: %w", err)
	}

	result := make([]*MatchWithProfile, 0, len(matches))
	for i, m := range matches {
		result = append(result, &MatchWithProfile{
			Match:     m,
			OtherUser: profiles[otherIDs[i]].Public(),
		})
	}
	return result, nil
}

// GetLikesReceived returns list of users who liked current user. Pro only.
func (uc *SwipeUseCase) GetLikesReceived(ctx context.Context, user *domain.User) ([]*LikeReceived, error) {
	if !user.IsPro() {
		return nil, domain.ErrProRequired
	}

	likes, err := uc.swipeRepo.LikesReceived(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get likes received: %w", err)
	}
	matches, err := uc.matchRepo.GetUserMatches(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get matches: %w", err)
	}

	matched := make(map[string]bool, len(matches))
	for _, m := range matches {
		other, _ := m.GetOtherUserID(user.ID)
		matched[other] = true
	}

	actorIDs := make([]string, 0, len(likes))
	for _, like := range likes {
		actorIDs = append(actorIDs, like.ActorID)
	}
	profiles, err := uc.profileRepo.GetByUserIDs(ctx, actorIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get profiles: %w", err)
	}

	result := make([]*LikeReceived, 0, len(likes))
	for _, like := range likes {
		result = append(result, &LikeReceived{
			Swipe:          like,
			Profile:        profiles[like.ActorID].Public(),
			AlreadyMatched: matched[like.ActorID],
		})
	}
	return result, nil
}
