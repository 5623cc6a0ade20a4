package notification

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound indicates no notification exists for the given id.
var ErrNotFound = errors.New("notification not found")

// Repository persists stored notifications.
type Repository interface {
	Create(ctx context.Context, n Notification) error
	ListByUser(ctx context.Context, userID string) ([]Notification, error)
	MarkRead(ctx context.Context, id, userID string) error
}

// PostgresRepository stores notifications in PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed notification repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a notification.
func (r *PostgresRepository) Create(ctx context.Context, n Notification) error {
	id, err := uuid.Parse(n.ID)
	if err != nil {
		return err
	}
	userID, err := uuid.Parse(n.UserID)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `INSERT INTO notifications (id, user_id, title, message, notification_type, read, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		id, userID, n.Title, n.Message, n.Type, n.Read, n.CreatedAt.UTC(), n.UpdatedAt.UTC())
	return err
}

// ListByUser returns the user's notifications, newest first.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]Notification, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, `SELECT id, user_id, title, message, notification_type, read, created_at, updated_at
        FROM notifications WHERE user_id = $1 ORDER BY created_at DESC`, uid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Notification
	for rows.Next() {
		var (
			n        Notification
			id, user uuid.UUID
		)
		if err := rows.Scan(&id, &user, &n.Title, &n.Message, &n.Type, &n.Read, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, err
		}
		n.ID = id.String()
		n.UserID = user.String()
		out = append(out, n)
	}
	return out, rows.Err()
}

// MarkRead flags a notification as read. Scoped to the owner so one user
// cannot touch another's notifications.
func (r *PostgresRepository) MarkRead(ctx context.Context, id, userID string) error {
	nid, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}
	uid, err := uuid.Parse(userID)
	if err != nil {
		return ErrNotFound
	}
	cmd, err := r.db.Exec(ctx, `UPDATE notifications SET read = TRUE, updated_at = now() WHERE id = $1 AND user_id = $2`, nid, uid)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
