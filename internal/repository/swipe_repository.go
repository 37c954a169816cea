package repository

import (
	"context"

	"github.com/gdugdh24/matchcore/internal/domain"
)

type SwipeRepository interface {
	// Create inserts the edge unless the same (actor, target, decision) exists.
	Create(ctx context.Context, swipe *domain.Swipe) (bool, error)
	HasLiked(ctx context.Context, actorID, targetID string) (bool, error)
	// ListDecidedTargets returns every user the actor liked or passed.
	ListDecidedTargets(ctx context.Context, actorID string) ([]string, error)
	LikesReceived(ctx context.Context, targetID string) ([]*domain.Swipe, error)
}
