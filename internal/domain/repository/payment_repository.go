package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/suministros-api/internal/domain/entity"
)

// PaymentFilter filtros del historial de pagos.
type PaymentFilter struct {
	Status  string
	Method  string
	OrderID string
	From    *time.Time
	To      *time.Time
}

// PaymentSummaryRow total e importe acumulado por estado de pago.
type PaymentSummaryRow struct {
	Status string
	Count  int
	Amount decimal.Decimal
}

// PaymentRepository puerto de persistencia para PaymentRecord.
type PaymentRepository interface {
	Create(p *entity.PaymentRecord) error
	GetByID(id string) (*entity.PaymentRecord, error)
	ListByOrg(orgID string, f PaymentFilter, limit, offset int) ([]*entity.PaymentRecord, int, error)
	SummaryByOrg(orgID string) ([]PaymentSummaryRow, error)
}
