package network

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	// ErrNotFound indicates no member exists for the given id.
	ErrNotFound = errors.New("network member not found")
	// ErrSlotTaken indicates the parent already has a member in the
	// requested position.
	ErrSlotTaken = errors.New("position already filled")
)

// Repository persists network members.
type Repository interface {
	Create(ctx context.Context, m Member) error
	FindByID(ctx context.Context, id string) (Member, error)
	ListByUser(ctx context.Context, userID string) ([]Member, error)
	ChildAt(ctx context.Context, parentID, position string) (Member, error)
}

// PostgresRepository stores network members in PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed network repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const memberColumns = `id, user_id, name, avatar, parent_id, position, level, status, join_date, created_at, updated_at`

// Create inserts a member record.
func (r *PostgresRepository) Create(ctx context.Context, m Member) error {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		return err
	}
	userID, err := uuid.Parse(m.UserID)
	if err != nil {
		return err
	}
	var parentID *uuid.UUID
	if m.ParentID != "" {
		pid, err := uuid.Parse(m.ParentID)
		if err != nil {
			return err
		}
		parentID = &pid
	}
	_, err = r.db.Exec(ctx, `INSERT INTO network_members (`+memberColumns+`)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		id, userID, m.Name, m.Avatar, parentID, m.Position, m.Level, m.Status,
		m.JoinDate.UTC(), m.CreatedAt.UTC(), m.UpdatedAt.UTC())
	return err
}

// FindByID fetches a member by identifier.
func (r *PostgresRepository) FindByID(ctx context.Context, id string) (Member, error) {
	mid, err := uuid.Parse(id)
	if err != nil {
		return Member{}, ErrNotFound
	}
	row := r.db.QueryRow(ctx, `SELECT `+memberColumns+` FROM network_members WHERE id = $1`, mid)
	m, err := scanMember(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Member{}, ErrNotFound
	}
	return m, err
}

// ListByUser returns every member in the user's downline.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]Member, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, `SELECT `+memberColumns+` FROM network_members
        WHERE user_id = $1 ORDER BY level, join_date`, uid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// ChildAt returns the member occupying a parent's position, if any.
func (r *PostgresRepository) ChildAt(ctx context.Context, parentID, position string) (Member, error) {
	pid, err := uuid.Parse(parentID)
	if err != nil {
		return Member{}, ErrNotFound
	}
	row := r.db.QueryRow(ctx, `SELECT `+memberColumns+` FROM network_members
        WHERE parent_id = $1 AND position = $2`, pid, position)
	m, err := scanMember(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Member{}, ErrNotFound
	}
	return m, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMember(row rowScanner) (Member, error) {
	var (
		m        Member
		id, user uuid.UUID
		parent   *uuid.UUID
	)
	if err := row.Scan(&id, &user, &m.Name, &m.Avatar, &parent, &m.Position, &m.Level, &m.Status, &m.JoinDate, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return Member{}, err
	}
	m.ID = id.String()
	m.UserID = user.String()
	if parent != nil {
		m.ParentID = parent.String()
	}
	m.JoinDate = m.JoinDate.UTC()
	m.CreatedAt = m.CreatedAt.UTC()
	m.UpdatedAt = m.UpdatedAt.UTC()
	return m, nil
}
