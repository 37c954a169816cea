package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gdugdh24/matchcore/internal/domain"
	"github.com/gdugdh24/matchcore/internal/repository"
	"github.com/jmoiron/sqlx"
)

type albumRepository struct {
	db *sqlx.DB
}

func NewAlbumRepository(db *sqlx.DB) repository.AlbumRepository {
	return &albumRepository{db: db}
}

const albumColumns = `id, requester_id, owner_id, state, created_at, responded_at`

// createAttempts bounds the insert/select loop when the active request is
// answered between the two statements.
const createAttempts = 3

func (r *albumRepository) CreateIfNoActive(ctx context.Context, req *domain.AlbumAccessRequest) (*domain.AlbumAccessRequest, bool, error) {
	insert := `
		INSERT INTO album_access_requests (id, requester_id, owner_id, state, created_at)
		VALUES ($1, $2, $3, 'pending', $4)
		ON CONFLICT (requester_id, owner_id) WHERE state IN ('pending', 'accepted') DO NOTHING
		RETURNING ` + albumColumns
	active := `
		SELECT ` + albumColumns + ` FROM album_access_requests
		WHERE requester_id = $1 AND owner_id = $2 AND state IN ('pending', 'accepted')
	`

	for i := 0; i < createAttempts; i++ {
		var created domain.AlbumAccessRequest
		err := r.db.GetContext(ctx, &created, insert, req.ID, req.RequesterID, req.OwnerID, req.CreatedAt)
		if err == nil {
			return &created, true, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, false, translateError(err)
		}

		var existing domain.AlbumAccessRequest
		err = r.db.GetContext(ctx, &existing, active, req.RequesterID, req.OwnerID)
		if err == nil {
			return &existing, false, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, false, err
		}
	}
	return nil, false, fmt.Errorf("%w: album access request kept changing", domain.ErrConflict)
}

func (r *albumRepository) ListPending(ctx context.Context, ownerID string) ([]*domain.AlbumAccessRequest, error) {
	var requests []*domain.AlbumAccessRequest
	query := `
		SELECT ` + albumColumns + ` FROM album_access_requests
		WHERE owner_id = $1 AND state = 'pending'
		ORDER BY created_at DESC
	`
	err := r.db.SelectContext(ctx, &requests, query, ownerID)
	return requests, err
}

func (r *albumRepository) Respond(ctx context.Context, id, ownerID string, state domain.RequestState, at time.Time) (*domain.AlbumAccessRequest, error) {
	query := `
		UPDATE album_access_requests
		SET state = $3, responded_at = $4
		WHERE id = $1 AND owner_id = $2 AND state = 'pending'
		RETURNING ` + albumColumns
	var updated domain.AlbumAccessRequest
	err := r.db.GetContext(ctx, &updated, query, id, ownerID, state, at)
	if err == nil {
		return &updated, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	var current domain.RequestState
	err = r.db.GetContext(ctx, &current, `SELECT state FROM album_access_requests WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, err
	}
	return nil, domain.ErrRequestAlreadyAnswered
}

func (r *albumRepository) HasAccepted(ctx context.Context, requesterID, ownerID string) (bool, error) {
	var exists bool
	query := `
		SELECT EXISTS(
			SELECT 1 FROM album_access_requests
			WHERE requester_id = $1 AND owner_id = $2 AND state = 'accepted'
		)
	`
	err := r.db.GetContext(ctx, &exists, query, requesterID, ownerID)
	return exists, err
}
