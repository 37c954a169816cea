package repository

import (
	"context"

	"github.com/gdugdh24/matchcore/internal/domain"
)

type MatchRepository interface {
	// Upsert stores the match keyed by its canonical pair. When the pair is
	// already matched the stored match is returned with created=false.
	Upsert(ctx context.Context, match *domain.Match) (*domain.Match, bool, error)
	GetByID(ctx context.Context, id string) (*domain.Match, error)
	GetUserMatches(ctx context.Context, userID string) ([]*domain.Match, error)
}
