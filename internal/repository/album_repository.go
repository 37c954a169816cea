package repository

import (
	"context"
	"time"

	"github.com/gdugdh24/matchcore/internal/domain"
)

type AlbumRepository interface {
	// CreateIfNoActive stores req unless a pending or accepted request already
	// exists for the pair, in which case that one is returned with created=false.
	CreateIfNoActive(ctx context.Context, req *domain.AlbumAccessRequest) (*domain.AlbumAccessRequest, bool, error)
	ListPending(ctx context.Context, ownerID string) ([]*domain.AlbumAccessRequest, error)
	// Respond moves a pending request owned by ownerID to state.
	Respond(ctx context.Context, id, ownerID string, state domain.RequestState, at time.Time) (*domain.AlbumAccessRequest, error)
	HasAccepted(ctx context.Context, requesterID, ownerID string) (bool, error)
}
