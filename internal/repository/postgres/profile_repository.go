package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gdugdh24/matchcore/internal/domain"
	"github.com/gdugdh24/matchcore/internal/repository"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

const profileColumns = `id, user_id, username, name, age, bio, gender_identity, pronouns, interests,
		       looking_for, tribe, position, available_now, photos, private_photos,
		       has_private_album, latitude, longitude, created_at`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProfile(row rowScanner) (*domain.Profile, error) {
	var profile domain.Profile
	err := row.Scan(
		&profile.ID, &profile.UserID, &profile.Username, &profile.Name, &profile.Age,
		&profile.Bio, &profile.GenderIdentity, &profile.Pronouns, pq.Array(&profile.Interests),
		&profile.LookingFor, &profile.Tribe, &profile.Position, &profile.AvailableNow,
		pq.Array(&profile.Photos), pq.Array(&profile.PrivatePhotos),
		&profile.HasPrivateAlbum, &profile.Latitude, &profile.Longitude, &profile.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = $1`
	profile, err := scanProfile(r.db.QueryRowContext(ctx, query, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

func (r *profileRepository) GetByUserIDs(ctx context.Context, userIDs []string) (map[string]*domain.Profile, error) {
	out := make(map[string]*domain.Profile, len(userIDs))
	if len(userIDs) == 0 {
		return out, nil
	}

	query := `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = ANY($1)`
	profiles, err := r.query(ctx, query, pq.Array(userIDs))
	if err != nil {
		return nil, err
	}
	for _, p := range profiles {
		out[p.UserID] = p
	}
	return out, nil
}

func (r *profileRepository) ListCandidates(ctx context.Context, excludeIDs []string, filter domain.CandidateFilter) ([]*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE NOT (user_id = ANY($1))`
	args := []interface{}{pq.Array(excludeIDs)}
	argCount := 2

	if filter.Position != nil {
		query += fmt.Sprintf(" AND position = $%d", argCount)
		args = append(args, *filter.Position)
		argCount++
	}
	if filter.Tribe != nil {
		query += fmt.Sprintf(" AND tribe = $%d", argCount)
		args = append(args, *filter.Tribe)
		argCount++
	}
	if filter.LookingFor != nil {
		query += fmt.Sprintf(" AND looking_for = $%d", argCount)
		args = append(args, *filter.LookingFor)
		argCount++
	}
	if filter.MinAge != nil {
		query += fmt.Sprintf(" AND age >= $%d", argCount)
		args = append(args, *filter.MinAge)
		argCount++
	}
	if filter.MaxAge != nil {
		query += fmt.Sprintf(" AND age <= $%d", argCount)
		args = append(args, *filter.MaxAge)
		argCount++
	}
	if filter.AvailableNow {
		query += " AND available_now = TRUE"
	}

	return r.query(ctx, query, args...)
}

func (r *profileRepository) query(ctx context.Context, query string, args ...interface{}) ([]*domain.Profile, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []*domain.Profile
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	return profiles, rows.Err()
}
