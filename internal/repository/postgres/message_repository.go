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

type messageRepository struct {
	db *sqlx.DB
}

func NewMessageRepository(db *sqlx.DB) repository.MessageRepository {
	return &messageRepository{db: db}
}

const messageColumns = `id, match_id, sender_id, content, type, latitude, longitude, photo_url,
		       read, read_at, deleted, deleted_at, created_at, seq`

func (r *messageRepository) Create(ctx context.Context, msg *domain.Message) error {
	query := `
		INSERT INTO messages (id, match_id, sender_id, content, type, latitude, longitude, photo_url, created_at)
		VALUES (:id, :match_id, :sender_id, :content, :type, :latitude, :longitude, :photo_url, :created_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, msg)
	return translateError(err)
}

func (r *messageRepository) GetByID(ctx context.Context, id string) (*domain.Message, error) {
	var msg domain.Message
	query := `SELECT ` + messageColumns + ` FROM messages WHERE id = $1`
	err := r.db.GetContext(ctx, &msg, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMessageNotFound
		}
		return nil, err
	}
	return &msg, nil
}

func (r *messageRepository) MarkRead(ctx context.Context, matchID, senderID string, at time.Time) (int64, error) {
	query := `
		UPDATE messages SET read = TRUE, read_at = $3
		WHERE match_id = $1 AND sender_id = $2 AND read = FALSE
	`
	result, err := r.db.ExecContext(ctx, query, matchID, senderID, at)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *messageRepository) ListThread(ctx context.Context, matchID string) ([]*domain.Message, error) {
	var messages []*domain.Message
	query := `
		SELECT ` + messageColumns + ` FROM messages
		WHERE match_id = $1 AND deleted = FALSE
		ORDER BY created_at ASC, seq ASC
	`
	err := r.db.SelectContext(ctx, &messages, query, matchID)
	return messages, err
}

func (r *messageRepository) SoftDelete(ctx context.Context, id string, at time.Time) (bool, error) {
	query := `UPDATE messages SET deleted = TRUE, deleted_at = $2 WHERE id = $1 AND deleted = FALSE`
	result, err := r.db.ExecContext(ctx, query, id, at)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows == 1, nil
}
