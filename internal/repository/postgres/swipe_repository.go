package postgres

import (
	"context"

	"github.com/gdugdh24/matchcore/internal/domain"
	"github.com/gdugdh24/matchcore/internal/repository"
	"github.com/jmoiron/sqlx"
)

type swipeRepository struct {
	db *sqlx.DB
}

func NewSwipeRepository(db *sqlx.DB) repository.SwipeRepository {
	return &swipeRepository{db: db}
}

func (r *swipeRepository) Create(ctx context.Context, swipe *domain.Swipe) (bool, error) {
	query := `
		INSERT INTO swipes (id, actor_id, target_id, decision, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (actor_id, target_id, decision) DO NOTHING
	`
	result, err := r.db.ExecContext(ctx, query, swipe.ID, swipe.ActorID, swipe.TargetID, swipe.Decision, swipe.CreatedAt)
	if err != nil {
		return false, translateError(err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows == 1, nil
}

func (r *swipeRepository) HasLiked(ctx context.Context, actorID, targetID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM swipes WHERE actor_id = $1 AND target_id = $2 AND decision = 'like')`
	err := r.db.GetContext(ctx, &exists, query, actorID, targetID)
	return exists, err
}

func (r *swipeRepository) ListDecidedTargets(ctx context.Context, actorID string) ([]string, error) {
	var ids []string
	query := `SELECT DISTINCT target_id FROM swipes WHERE actor_id = $1`
	err := r.db.SelectContext(ctx, &ids, query, actorID)
	return ids, err
}

func (r *swipeRepository) LikesReceived(ctx context.Context, targetID string) ([]*domain.Swipe, error) {
	var swipes []*domain.Swipe
	query := `
		SELECT id, actor_id, target_id, decision, created_at
		FROM swipes
		WHERE target_id = $1 AND decision = 'like'
		ORDER BY created_at DESC
	`
	err := r.db.SelectContext(ctx, &swipes, query, targetID)
	return swipes, err
}
