package balance

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound indicates no balance record exists yet for the user. Callers
// recover by seeding the default record; it is never surfaced to clients.
var ErrNotFound = errors.New("balance record not found")

// Repository persists balance records.
type Repository interface {
	Get(ctx context.Context, userID string) (Record, error)
	Upsert(ctx context.Context, rec Record) error
}

// PostgresRepository stores balance records in PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed balance repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Get fetches the balance record for a user.
func (r *PostgresRepository) Get(ctx context.Context, userID string) (Record, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return Record{}, err
	}
	row := r.db.QueryRow(ctx, `SELECT user_id, locked_balance, automatic_balance, growth_rate, last_updated, created_at, updated_at
        FROM balances WHERE user_id = $1`, uid)

	var (
		rec   Record
		idVal uuid.UUID
	)
	if err := row.Scan(&idVal, &rec.LockedBalance, &rec.AutomaticBalance, &rec.GrowthRate, &rec.LastUpdated, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}
	rec.UserID = idVal.String()
	rec.LastUpdated = rec.LastUpdated.UTC()
	rec.CreatedAt = rec.CreatedAt.UTC()
	rec.UpdatedAt = rec.UpdatedAt.UTC()
	return rec, nil
}

// Upsert writes the record, creating it on first use. Concurrent refreshes
// for the same user resolve by last write wins.
func (r *PostgresRepository) Upsert(ctx context.Context, rec Record) error {
	uid, err := uuid.Parse(rec.UserID)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `INSERT INTO balances (user_id, locked_balance, automatic_balance, growth_rate, last_updated, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (user_id) DO UPDATE SET
            locked_balance = EXCLUDED.locked_balance,
            automatic_balance = EXCLUDED.automatic_balance,
            growth_rate = EXCLUDED.growth_rate,
            last_updated = EXCLUDED.last_updated,
            updated_at = EXCLUDED.updated_at`,
		uid, rec.LockedBalance, rec.AutomaticBalance, rec.GrowthRate,
		rec.LastUpdated.UTC(), rec.CreatedAt.UTC(), rec.UpdatedAt.UTC())
	return err
}
