package transactions

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound indicates no transaction exists for the given id.
var ErrNotFound = errors.New("transaction not found")

// Repository persists transactions.
type Repository interface {
	Create(ctx context.Context, tx Transaction) error
	ListByUser(ctx context.Context, userID string) ([]Transaction, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

// PostgresRepository stores transactions in PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed transaction repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a transaction record.
func (r *PostgresRepository) Create(ctx context.Context, tx Transaction) error {
	txID, err := uuid.Parse(tx.ID)
	if err != nil {
		return err
	}
	userID, err := uuid.Parse(tx.UserID)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `INSERT INTO transactions (id, user_id, transaction_type, amount, description, status, reference_id, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		txID, userID, tx.Type, tx.Amount, tx.Description, tx.Status, tx.ReferenceID,
		tx.CreatedAt.UTC(), tx.UpdatedAt.UTC())
	return err
}

// ListByUser returns the user's transactions, newest first.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]Transaction, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, `SELECT id, user_id, transaction_type, amount, description, status, reference_id, created_at, updated_at
        FROM transactions WHERE user_id = $1 ORDER BY created_at DESC`, uid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Transaction
	for rows.Next() {
		var (
			tx       Transaction
			id, user uuid.UUID
		)
		if err := rows.Scan(&id, &user, &tx.Type, &tx.Amount, &tx.Description, &tx.Status, &tx.ReferenceID, &tx.CreatedAt, &tx.UpdatedAt); err != nil {
			return nil, err
		}
		tx.ID = id.String()
		tx.UserID = user.String()
		tx.CreatedAt = tx.CreatedAt.UTC()
		tx.UpdatedAt = tx.UpdatedAt.UTC()
		out = append(out, tx)
	}
	return out, rows.Err()
}

// UpdateStatus transitions a transaction to a new status.
func (r *PostgresRepository) UpdateStatus(ctx context.Context, id, status string) error {
	txID, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}
	cmd, err := r.db.Exec(ctx, `UPDATE transactions SET status = $1, updated_at = now() WHERE id = $2`, status, txID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
