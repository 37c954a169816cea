package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gdugdh24/matchcore/internal/domain"
	"github.com/gdugdh24/matchcore/internal/repository"
	"github.com/jmoiron/sqlx"
)

type winkRepository struct {
	db *sqlx.DB
}

func NewWinkRepository(db *sqlx.DB) repository.WinkRepository {
	return &winkRepository{db: db}
}

func (r *winkRepository) Create(ctx context.Context, wink *domain.Wink) (*domain.Wink, bool, error) {
	insert := `
		INSERT INTO winks (id, sender_id, receiver_id, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (sender_id, receiver_id) DO NOTHING
		RETURNING id, sender_id, receiver_id, created_at
	`
	var stored domain.Wink
	err := r.db.GetContext(ctx, &stored, insert, wink.ID, wink.SenderID, wink.ReceiverID, wink.CreatedAt)
	if err == nil {
		return &stored, true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, false, translateError(err)
	}

	existing := `SELECT id, sender_id, receiver_id, created_at FROM winks WHERE sender_id = $1 AND receiver_id = $2`
	if err := r.db.GetContext(ctx, &stored, existing, wink.SenderID, wink.ReceiverID); err != nil {
		return nil, false, err
	}
	return &stored, false, nil
}

func (r *winkRepository) ListReceived(ctx context.Context, receiverID string) ([]*domain.Wink, error) {
	var winks []*domain.Wink
	query := `
		SELECT id, sender_id, receiver_id, created_at FROM winks
		WHERE receiver_id = $1
		ORDER BY created_at DESC
	`
	err := r.db.SelectContext(ctx, &winks, query, receiverID)
	return winks, err
}

type profileViewRepository struct {
	db *sqlx.DB
}

func NewProfileViewRepository(db *sqlx.DB) repository.ProfileViewRepository {
	return &profileViewRepository{db: db}
}

func (r *profileViewRepository) Create(ctx context.Context, view *domain.ProfileView) error {
	query := `INSERT INTO profile_views (id, viewer_id, viewed_id, created_at) VALUES ($1, $2, $3, $4)`
	_, err := r.db.ExecContext(ctx, query, view.ID, view.ViewerID, view.ViewedID, view.CreatedAt)
	return translateError(err)
}

func (r *profileViewRepository) ListByViewed(ctx context.Context, viewedID string) ([]*domain.ProfileView, error) {
	var views []*domain.ProfileView
	query := `
		SELECT id, viewer_id, viewed_id, created_at FROM profile_views
		WHERE viewed_id = $1
		ORDER BY created_at DESC
	`
	err := r.db.SelectContext(ctx, &views, query, viewedID)
	return views, err
}

type screenshotRepository struct {
	db *sqlx.DB
}

func NewScreenshotRepository(db *sqlx.DB) repository.ScreenshotRepository {
	return &screenshotRepository{db: db}
}

func (r *screenshotRepository) Create(ctx context.Context, attempt *domain.ScreenshotAttempt) error {
	query := `INSERT INTO screenshot_attempts (id, viewer_id, owner_id, created_at) VALUES ($1, $2, $3, $4)`
	_, err := r.db.ExecContext(ctx, query, attempt.ID, attempt.ViewerID, attempt.OwnerID, attempt.CreatedAt)
	return translateError(err)
}

func (r *screenshotRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.ScreenshotAttempt, error) {
	var attempts []*domain.ScreenshotAttempt
	query := `
		SELECT id, viewer_id, owner_id, created_at FROM screenshot_attempts
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`
	err := r.db.SelectContext(ctx, &attempts, query, ownerID)
	return attempts, err
}

type publicMessageRepository struct {
	db *sqlx.DB
}

func NewPublicMessageRepository(db *sqlx.DB) repository.PublicMessageRepository {
	return &publicMessageRepository{db: db}
}

func (r *publicMessageRepository) Create(ctx context.Context, msg *domain.PublicMessage) error {
	query := `
		INSERT INTO public_messages (id, sender_id, sender_name, content, latitude, longitude, created_at)
		VALUES (:id, :sender_id, :sender_name, :content, :latitude, :longitude, :created_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, msg)
	return translateError(err)
}

func (r *publicMessageRepository) ListSince(ctx context.Context, since time.Time, limit int) ([]*domain.PublicMessage, error) {
	var messages []*domain.PublicMessage
	query := `
		SELECT id, sender_id, sender_name, content, latitude, longitude, created_at
		FROM public_messages
		WHERE created_at >= $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	err := r.db.SelectContext(ctx, &messages, query, since, limit)
	return messages, err
}
