package dto

import "github.com/shopspring/decimal"

// DashboardStatusEntry conteo de órdenes en un estado.
type DashboardStatusEntry struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// DashboardPaymentEntry acumulado de pagos en un estado.
type DashboardPaymentEntry struct {
	Status string          `json:"status"`
	Count  int             `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

// DashboardSummaryResponse panel de la organización: órdenes, pagos y clientes.
type DashboardSummaryResponse struct {
	OrdersByStatus []DashboardStatusEntry  `json:"orders_by_status"`
	Payments       []DashboardPaymentEntry `json:"payments"`
	CustomerCount  int                     `json:"customer_count"`
}
