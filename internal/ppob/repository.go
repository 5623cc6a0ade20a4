package ppob

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrUnknownService indicates the requested service type is not in the catalog.
var ErrUnknownService = errors.New("unknown service type")

// Repository persists the service catalog.
type Repository interface {
	List(ctx context.Context) ([]ServiceInfo, error)
	FindByType(ctx context.Context, serviceType string) (ServiceInfo, error)
}

// PostgresRepository stores the catalog in PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed catalog repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List returns the whole catalog.
func (r *PostgresRepository) List(ctx context.Context) ([]ServiceInfo, error) {
	rows, err := r.db.Query(ctx, `SELECT id, service_type, name, description, icon, created_at, updated_at
        FROM ppob_services ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ServiceInfo
	for rows.Next() {
		var (
			svc ServiceInfo
			id  uuid.UUID
		)
		if err := rows.Scan(&id, &svc.ServiceType, &svc.Name, &svc.Description, &svc.Icon, &svc.CreatedAt, &svc.UpdatedAt); err != nil {
			return nil, err
		}
		svc.ID = id.String()
		out = append(out, svc)
	}
	return out, rows.Err()
}

// FindByType fetches one catalog entry by service type.
func (r *PostgresRepository) FindByType(ctx context.Context, serviceType string) (ServiceInfo, error) {
	row := r.db.QueryRow(ctx, `SELECT id, service_type, name, description, icon, created_at, updated_at
        FROM ppob_services WHERE service_type = $1`, serviceType)

	var (
		svc ServiceInfo
		id  uuid.UUID
	)
	if err := row.Scan(&id, &svc.ServiceType, &svc.Name, &svc.Description, &svc.Icon, &svc.CreatedAt, &svc.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ServiceInfo{}, ErrUnknownService
		}
		return ServiceInfo{}, err
	}
	svc.ID = id.String()
	return svc, nil
}
