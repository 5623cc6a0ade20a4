package settings

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound indicates no settings row exists for the user.
var ErrNotFound = errors.New("settings not found")

// Repository persists user settings.
type Repository interface {
	Get(ctx context.Context, userID string) (Settings, error)
	Upsert(ctx context.Context, s Settings) error
}

// PostgresRepository stores user settings in PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed settings repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Get fetches the settings row for a user.
func (r *PostgresRepository) Get(ctx context.Context, userID string) (Settings, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return Settings{}, ErrNotFound
	}
	row := r.db.QueryRow(ctx, `SELECT user_id, dark_mode, language, email_notifications, push_notifications, transaction_alerts, created_at, updated_at
        FROM user_settings WHERE user_id = $1`, uid)

	var (
		s     Settings
		idVal uuid.UUID
	)
	if err := row.Scan(&idVal, &s.DarkMode, &s.Language, &s.EmailNotifications, &s.PushNotifications, &s.TransactionAlerts, &s.CreatedAt, &s.UpdatedAt); err != nil {
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
func (r *PostgresRepository) Upsert(ctx context.Context, s Settings) error {
	uid, err := uuid.Parse(s.UserID)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `INSERT INTO user_settings (user_id, dark_mode, language, email_notifications, push_notifications, transaction_alerts, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        ON CONFLICT (user_id) DO UPDATE SET
            dark_mode = EXCLUDED.dark_mode,
            language = EXCLUDED.language,
            email_notifications = EXCLUDED.email_notifications,
            push_notifications = EXCLUDED.push_notifications,
            transaction_alerts = EXCLUDED.transaction_alerts,
            updated_at = EXCLUDED.updated_at`,
		uid, s.DarkMode, s.Language, s.EmailNotifications, s.PushNotifications, s.TransactionAlerts,
		s.CreatedAt.UTC(), s.UpdatedAt.UTC())
	return err
}
