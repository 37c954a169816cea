package repository

import (
	"context"

	"github.com/gdugdh24/matchcore/internal/domain"
)

// ProfileRepository reads the external profile store. The core never writes profiles.
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*domain.Profile, error)
	GetByUserIDs(ctx context.Context, userIDs []string) (map[string]*domain.Profile, error)
	// ListCandidates returns profiles not owned by any of excludeIDs that pass
	// the attribute filter.
	ListCandidates(ctx context.Context, excludeIDs []string, filter domain.CandidateFilter) ([]*domain.Profile, error)
}
