package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// StatusCount conteo de órdenes por estado.
type StatusCount struct {
	Status string
	Count  int
}

// PaymentTotals acumulado de pagos por estado.
type PaymentTotals struct {
	Status string
	Count  int
	Amount decimal.Decimal
}

// AnalyticsRepository consultas read-only para el dashboard del tenant.
type AnalyticsRepository interface {
	OrdersByStatus(ctx context.Context, orgID string) ([]StatusCount, error)
	PaymentTotalsByStatus(ctx context.Context, orgID string) ([]PaymentTotals, error)
	CustomerCount(ctx context.Context, orgID string) (int, error)
}
