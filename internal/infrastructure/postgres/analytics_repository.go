package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/suministros-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard del tenant.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// OrdersByStatus conteo de órdenes por estado para la organización.
func (r *AnalyticsRepo) OrdersByStatus(ctx context.Context, orgID string) ([]repository.StatusCount, error) {
	const query = `
		SELECT status, COUNT(*)
		FROM supplier_orders WHERE org_id = $1 GROUP BY status ORDER BY status`
	rows, err := r.pool.Query(ctx, query, orgID)
	if err != nil {
		return nil, fmt.Errorf("analytics.OrdersByStatus: %w", err)
	}
	defer rows.Close()
	var out []repository.StatusCount
	for rows.Next() {
		var row repository.StatusCount
		if err := rows.Scan(&row.Status, &row.Count); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// PaymentTotalsByStatus conteo e importe total de pagos por estado.
func (r *AnalyticsRepo) PaymentTotalsByStatus(ctx context.Context, orgID string) ([]repository.PaymentTotals, error) {
	const query = `
		SELECT status, COUNT(*), COALESCE(SUM(amount), 0)
		FROM payments WHERE org_id = $1 GROUP BY status ORDER BY status`
	rows, err := r.pool.Query(ctx, query, orgID)
	if err != nil {
		return nil, fmt.Errorf("analytics.PaymentTotalsByStatus: %w", err)
	}
	defer rows.Close()
	var out []repository.PaymentTotals
	for rows.Next() {
		var row repository.PaymentTotals
		if err := rows.Scan(&row.Status, &row.Count, &row.Amount); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// CustomerCount número de clientes de la organización.
func (r *AnalyticsRepo) CustomerCount(ctx context.Context, orgID string) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM customers WHERE org_id = $1`, orgID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("analytics.CustomerCount: %w", err)
	}
	return n, nil
}
