package security

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound indicates no security settings exist for the user.
var ErrNotFound = errors.New("security settings not found")

// Repository persists security settings.
type Repository interface {
	Get(ctx context.Context, userID string) (Settings, error)
	Upsert(ctx context.Context, settings Settings) error
}

// PostgresRepository stores security settings in PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed security repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Get fetches the settings row for a user.
func (r *PostgresRepository) Get(ctx context.Context, userID string) (Settings, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return Settings{}, ErrNotFound
	}
	row := r.db.QueryRow(ctx, `SELECT user_id, pin_hash, two_factor_enabled, created_at, updated_at
        FROM security_settings WHERE user_id = $1`, uid)

	var (
		s     Settings
		idVal uuid.UUID
	)
	if err := row.Scan(&idVal, &s.PINHash, &s.TwoFactorEnabled, &s.CreatedAt, &s.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Settings{}, ErrNotFound
		}
		return Settings{}, err
	}
	s.UserID = idVal.String()
	s.CreatedAt = s.CreatedAt.UTC()
	s.UpdatedAt = s.UpdatedAt.UTC()
	return s, nil
}

// Upsert writes the settings row, creating it on first use.
func (r *PostgresRepository) Upsert(ctx context.Context, settings Settings) error {
	uid, err := uuid.Parse(settings.UserID)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `INSERT INTO security_settings (user_id, pin_hash, two_factor_enabled, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (user_id) DO UPDATE SET
            pin_hash = EXCLUDED.pin_hash,
            two_factor_enabled = EXCLUDED.two_factor_enabled,
            updated_at = EXCLUDED.updated_at`,
		uid, settings.PINHash, settings.TwoFactorEnabled,
		settings.CreatedAt.UTC(), settings.UpdatedAt.UTC())
	return err
}
