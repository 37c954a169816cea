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
	"github.com/lib/pq"
)

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	query := `SELECT id, tier, quota_count, quota_reset_at, last_active_at, created_at FROM users WHERE id = $1`
	err := r.db.GetContext(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// windowExpired is true when the last reset is older than the window ($4 seconds) at $2.
const windowExpired = `(quota_reset_at IS NULL OR $2::timestamptz - quota_reset_at > $4::bigint * INTERVAL '1 second')`

var consumeQuotaQuery = fmt.Sprintf(`
		UPDATE users
		SET quota_count = CASE WHEN %[1]s THEN 1 ELSE quota_count + 1 END,
		    quota_reset_at = CASE WHEN %[1]s THEN $2::timestamptz ELSE quota_reset_at END
		WHERE id = $1 AND (%[1]s OR quota_count < $3)
		RETURNING quota_count
	`, windowExpired)

func (r *userRepository) ConsumeQuota(ctx context.Context, id string, now time.Time, limit int, window time.Duration) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, consumeQuotaQuery, id, now, limit, int64(window/time.Second)).Scan(&count)
	if err == nil {
		return count, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, err
	}

	// Nothing updated: either the user is unknown or the limit is reached.
	var exists bool
	if err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, id).Scan(&exists); err != nil {
		return 0, err
	}
	if !exists {
		return 0, domain.ErrUserNotFound
	}
	return 0, domain.ErrQuotaExceeded
}

func (r *userRepository) TouchActivity(ctx context.Context, id string, at time.Time) error {
	query := `UPDATE users SET last_active_at = $2 WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id, at)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *userRepository) LastActive(ctx context.Context, ids []string) (map[string]time.Time, error) {
	out := make(map[string]time.Time, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	query := `SELECT id, last_active_at FROM users WHERE id = ANY($1) AND last_active_at IS NOT NULL`
	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		var at time.Time
		if err := rows.Scan(&id, &at); err != nil {
			return nil, err
		}
		out[id] = at
	}
	return out, rows.Err()
}
