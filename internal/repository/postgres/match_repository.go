package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gdugdh24/matchcore/internal/domain"
	"github.com/gdugdh24/matchcore/internal/repository"
	"github.com/jmoiron/sqlx"
)

type matchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) repository.MatchRepository {
	return &matchRepository{db: db}
}

func (r *matchRepository) Upsert(ctx context.Context, match *domain.Match) (*domain.Match, bool, error) {
	userAID, userBID := domain.CanonicalPair(match.UserAID, match.UserBID)

	// The no-op update makes RETURNING yield the existing row on conflict;
	// xmax = 0 only for a freshly inserted tuple.
	query := `
		INSERT INTO matches (id, user_a_id, user_b_id, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_a_id, user_b_id) DO UPDATE SET user_a_id = EXCLUDED.user_a_id
		RETURNING id, user_a_id, user_b_id, created_at, (xmax = 0) AS inserted
	`
	var stored domain.Match
	var inserted bool
	err := r.db.QueryRowContext(ctx, query, match.ID, userAID, userBID, match.CreatedAt).
		Scan(&stored.ID, &stored.UserAID, &stored.UserBID, &stored.CreatedAt, &inserted)
	if err != nil {
		return nil, false, translateError(err)
	}
	return &stored, inserted, nil
}

func (r *matchRepository) GetByID(ctx context.Context, id string) (*domain.Match, error) {
	var match domain.Match
	query := `SELECT id, user_a_id, user_b_id, created_at FROM matches WHERE id = $1`
	err := r.db.GetContext(ctx, &match, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMatchNotFound
		}
		return nil, err
	}
	return &match, nil
}

func (r *matchRepository) GetUserMatches(ctx context.Context, userID string) ([]*domain.Match, error) {
	var matches []*domain.Match
	query := `
		SELECT id, user_a_id, user_b_id, created_at FROM matches
		WHERE (user_a_id = $1 OR user_b_id = $1)
		ORDER BY created_at DESC
	`
	err := r.db.SelectContext(ctx, &matches, query, userID)
	return matches, err
}
