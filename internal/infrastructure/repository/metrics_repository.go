package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// MetricsRepository runs the dashboard aggregates as raw SQL on the pgx
// pool, outside the ORM.
type MetricsRepository struct {
	pool *pgxpool.Pool
}

func NewMetricsRepository(pool *pgxpool.Pool) *MetricsRepository {
	return &MetricsRepository{pool: pool}
}

func (r *MetricsRepository) ServiceWorth(ctx context.Context) (float64, error) {
	var total float64

	err := r.pool.QueryRow(ctx,
		"SELECT COALESCE(SUM(price), 0) FROM service_records WHERE deleted_at IS NULL",
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("service worth aggregate: %w", err)
	}
	return total, nil
}
