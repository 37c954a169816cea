package album

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

type AlbumUseCase struct {
	albumRepo   repository.AlbumRepository
	profileRepo repository.ProfileRepository
	now         func() time.Time
}

func NewAlbumUseCase(albumRepo repository.AlbumRepository, profileRepo repository.ProfileRepository) *AlbumUseCase {
	return &AlbumUseCase{
		albumRepo:   albumRepo,
		profileRepo: profileRepo,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

type RequestResult struct {
	RequestID string              `json:"request_id"`
	State     domain.RequestState `json:"state"`
	Created   bool                `json:"created"`
}

type PendingRequest struct {
	*domain.AlbumAccessRequest
	RequesterProfile *domain.Profile `json:"requester_profile"`
}

// RequestAccess asks ownerID to reveal their private photos to requesterID.
// An open or granted request for the pair is returned as is.
func (uc *AlbumUseCase) RequestAccess(ctx context.Context, requesterID, ownerID string) (*RequestResult, error) {
	if requesterID == ownerID {
		return nil, domain.ErrSelfReference
	}
	if _, err := uc.profileRepo.GetByUserID(ctx, ownerID); err != nil {
		return nil, err
	}

	req, created, err := uc.albumRepo.CreateIfNoActive(ctx, &domain.AlbumAccessRequest{
		ID:          uuid.NewString(),
		RequesterID: requesterID,
		OwnerID:     ownerID,
		State:       domain.RequestPending,
		CreatedAt:   uc.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create album request: %w", err)
	}

	return &RequestResult{RequestID: req.ID, State: req.State, Created: created}, nil
}

func (uc *AlbumUseCase) ListPending(ctx context.Context, ownerID string) ([]*PendingRequest, error) {
	requests, err := uc.albumRepo.ListPending(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list album requests: %w", err)
	}

	ids := make([]string, 0, len(requests))
	for _, r := range requests {
		ids = append(ids, r.RequesterID)
	}
	profiles, err := uc.profileRepo.GetByUserIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get profiles: %w", err)
	}

	result := make([]*PendingRequest, 0, len(requests))
	for _, r := range requests {
		result = append(result, &PendingRequest{
			AlbumAccessRequest: r,
			RequesterProfile:   profiles[r.RequesterID].Public(),
		})
	}
	return result, nil
}

// Respond answers a pending request. Acceptance is the grant itself.
func (uc *AlbumUseCase) Respond(ctx context.Context, requestID, ownerID string, accept bool) (*domain.AlbumAccessRequest, error) {
	state := domain.RequestRejected
	if accept {
		state = domain.RequestAccepted
	}

	req, err := uc.albumRepo.Respond(ctx, requestID, ownerID, state, uc.now())
	if err != nil {
		return nil, err
	}

	metrics.AlbumResponses.WithLabelValues(string(state)).Inc()
	logger.Info(ctx, "album request answered",
		logger.String("request_id", req.ID),
		logger.String("state", string(state)),
	)
	return req, nil
}

// HasAccess reports whether viewerID holds an accepted request for
// ownerID's private photos.
func (uc *AlbumUseCase) HasAccess(ctx context.Context, ownerID, viewerID string) (bool, error) {
	return uc.albumRepo.HasAccepted(ctx, viewerID, ownerID)
}
