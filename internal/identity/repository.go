package identity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mandala-pay/mandala_pay/internal/rbac"
)

// ErrNotFound indicates no user exists for the given key.
var ErrNotFound = errors.New("user not found")

// Repository persists users and their role linkage.
type Repository interface {
	Create(ctx context.Context, user User) error
	FindByEmail(ctx context.Context, email string) (User, error)
	FindByID(ctx context.Context, id string) (User, error)
	UpdateTokenVersion(ctx context.Context, id string, version int) error
	UpdateRole(ctx context.Context, id string, role rbac.Role) error
	// RoleByUserID satisfies rbac.Store. Absence of a linkage is a valid
	// outcome, not an error.
	RoleByUserID(ctx context.Context, userID string) (rbac.Role, bool, error)
}

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed identity repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const userColumns = `u.id, u.email, u.full_name, u.avatar_url, u.password_hash, COALESCE(r.name, ''), u.token_version, u.created_at, u.updated_at`

// Create inserts a new user. The role linkage starts empty; rbac treats that
// as visitor.
func (r *PostgresRepository) Create(ctx context.Context, user User) error {
	userID, err := uuid.Parse(user.ID)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `INSERT INTO users (id, email, full_name, avatar_url, password_hash, token_version, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		userID, user.Email, user.FullName, user.AvatarURL, user.PasswordHash,
		user.TokenVersion, user.CreatedAt.UTC(), user.UpdatedAt.UTC())
	return err
}

// FindByEmail fetches a user by email.
func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+`
        FROM users u LEFT JOIN roles r ON r.id = u.role_id
        WHERE u.email = $1`, email)
	return scanUser(row)
}

// FindByID fetches a user by identifier.
func (r *PostgresRepository) FindByID(ctx context.Context, id string) (User, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return User{}, ErrNotFound
	}
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+`
        FROM users u LEFT JOIN roles r ON r.id = u.role_id
        WHERE u.id = $1`, userID)
	return scanUser(row)
}

// UpdateTokenVersion bumps the token version, invalidating older tokens.
func (r *PostgresRepository) UpdateTokenVersion(ctx context.Context, id string, version int) error {
	userID, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}
	cmd, err := r.db.Exec(ctx, `UPDATE users SET token_version = $1, updated_at = $2 WHERE id = $3`,
		version, time.Now().UTC(), userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateRole reassigns the user's role linkage.
func (r *PostgresRepository) UpdateRole(ctx context.Context, id string, role rbac.Role) error {
	userID, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}
	cmd, err := r.db.Exec(ctx, `UPDATE users SET role_id = (SELECT id FROM roles WHERE name = $1), updated_at = $2 WHERE id = $3`,
		role.String(), time.Now().UTC(), userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// RoleByUserID returns the role linked to the user, if any.
func (r *PostgresRepository) RoleByUserID(ctx context.Context, userID string) (rbac.Role, bool, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return "", false, ErrNotFound
	}
	var name *string
	row := r.db.QueryRow(ctx, `SELECT r.name FROM users u
        LEFT JOIN roles r ON r.id = u.role_id
        WHERE u.id = $1`, uid)
	if err := row.Scan(&name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, ErrNotFound
		}
		return "", false, err
	}
	if name == nil || *name == "" {
		return "", false, nil
	}
	role, err := rbac.ParseRole(*name)
	if err != nil {
		return "", false, err
	}
	return role, true, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (User, error) {
	var (
		user     User
		id       uuid.UUID
		roleName string
	)
	if err := row.Scan(&id, &user.Email, &user.FullName, &user.AvatarURL, &user.PasswordHash,
		&roleName, &user.TokenVersion, &user.CreatedAt, &user.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	user.ID = id.String()
	if roleName != "" {
		if role, err := rbac.ParseRole(roleName); err == nil {
			user.Role = role
		}
	}
	user.CreatedAt = user.CreatedAt.UTC()
	user.UpdatedAt = user.UpdatedAt.UTC()
	return user, nil
}
