package training

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound indicates no entry exists for the given user and day.
var ErrNotFound = errors.New("training entry not found")

// Repository persists training entries.
type Repository interface {
	ListByUser(ctx context.Context, userID string) ([]Entry, error)
	Get(ctx context.Context, userID string, day int) (Entry, error)
	Upsert(ctx context.Context, entry Entry) error
}

// PostgresRepository stores training entries in PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed training repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const entryColumns = `id, user_id, day_number, title, description, completed, completion_date, created_at, updated_at`

// ListByUser returns the user's entries ordered by day.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]Entry, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, `SELECT `+entryColumns+` FROM training_progress
        WHERE user_id = $1 ORDER BY day_number`, uid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Get fetches one day's entry for a user.
func (r *PostgresRepository) Get(ctx context.Context, userID string, day int) (Entry, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return Entry{}, ErrNotFound
	}
	row := r.db.QueryRow(ctx, `SELECT `+entryColumns+` FROM training_progress
        WHERE user_id = $1 AND day_number = $2`, uid, day)
	e, err := scanEntry(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Entry{}, ErrNotFound
	}
	return e, err
}

// Upsert writes an entry, creating it on first touch of that day.
func (r *PostgresRepository) Upsert(ctx context.Context, entry Entry) error {
	id, err := uuid.Parse(entry.ID)
	if err != nil {
		return err
	}
	uid, err := uuid.Parse(entry.UserID)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `INSERT INTO training_progress (id, user_id, day_number, title, description, completed, completion_date, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        ON CONFLICT (user_id, day_number) DO UPDATE SET
            title = EXCLUDED.title,
            description = EXCLUDED.description,
            completed = EXCLUDED.completed,
            completion_date = EXCLUDED.completion_date,
            updated_at = EXCLUDED.updated_at`,
		id, uid, entry.DayNumber, entry.Title, entry.Description,
		entry.Completed, entry.CompletionDate, entry.CreatedAt.UTC(), entry.UpdatedAt.UTC())
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (Entry, error) {
	var (
		e        Entry
		id, user uuid.UUID
	)
	if err := row.Scan(&id, &user, &e.DayNumber, &e.Title, &e.Description, &e.Completed, &e.CompletionDate, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return Entry{}, err
	}
	e.ID = id.String()
	e.UserID = user.String()
	e.CreatedAt = e.CreatedAt.UTC()
	e.UpdatedAt = e.UpdatedAt.UTC()
	return e, nil
}
