package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/catalog-service/internal/domain"
)

// StatusCheckRepository defines persistence access for status-check pings.
type StatusCheckRepository interface {
	Create(ctx context.Context, check *domain.StatusCheck) error
	List(ctx context.Context, limit int) ([]domain.StatusCheck, error)
}

type statusCheckRepository struct {
	pool *pgxpool.Pool
}

// NewStatusCheckRepository returns a Postgres-backed implementation.
func NewStatusCheckRepository(pool *pgxpool.Pool) StatusCheckRepository {
	return &statusCheckRepository{pool: pool}
}

func (r *statusCheckRepository) Create(ctx context.Context, check *domain.StatusCheck) error {
	const query = `
        INSERT INTO status_checks (id, client_name, timestamp)
        VALUES ($1, $2, $3)`

	_, err := r.pool.Exec(ctx, query, check.ID, check.ClientName, check.Timestamp)
	return err
}

func (r *statusCheckRepository) List(ctx context.Context, limit int) ([]domain.StatusCheck, error) {
	const query = `
        SELECT id, client_name, timestamp
        FROM status_checks ORDER BY timestamp DESC LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	checks := []domain.StatusCheck{}
	for rows.Next() {
		var c domain.StatusCheck
		if err := rows.Scan(&c.ID, &c.ClientName, &c.Timestamp); err != nil {
			return nil, err
		}
		checks = append(checks, c)
	}
	return checks, rows.Err()
}
