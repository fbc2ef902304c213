package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePaymentRequest entrada de POST /api/payments.
type CreatePaymentRequest struct {
	OrderID   string          `json:"order_id" validate:"required"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency" validate:"omitempty,len=3"`
	Method    string          `json:"method" validate:"required,oneof=card transfer credit"`
	Reference string          `json:"reference"`
}

// PaymentListQuery filtros del historial de pagos.
type PaymentListQuery struct {
	Status  string `query:"status"`
	Method  string `query:"method"`
	OrderID string `query:"order_id"`
	From    string `query:"from"` // YYYY-MM-DD
	To      string `query:"to"`   // YYYY-MM-DD
	PageRequest
}

// PaymentResponse salida de un pago.
type PaymentResponse struct {
	ID        string          `json:"id"`
	OrgID     string          `json:"org_id"`
	OrderID   string          `json:"order_id"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	Method    string          `json:"method"`
	Status    string          `json:"status"`
	Reference string          `json:"reference"`
	PaidAt    *time.Time      `json:"paid_at,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// PaymentListResponse historial paginado de pagos.
type PaymentListResponse struct {
	Items []PaymentResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// PaymentSummaryEntry acumulado por estado para el dashboard.
type PaymentSummaryEntry struct {
	Status string          `json:"status"`
	Count  int             `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

// PaymentSummaryResponse resumen del historial de pagos.
type PaymentSummaryResponse struct {
	ByStatus []PaymentSummaryEntry `json:"by_status"`
}
