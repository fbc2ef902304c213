package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un pago.
const (
	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentFailed   = "failed"
	PaymentRefunded = "refunded"
)

// Métodos de pago soportados.
const (
	MethodCard     = "card"
	MethodTransfer = "transfer"
	MethodCredit   = "credit"
)

// PaymentRecord pago asociado a una orden a proveedor.
type PaymentRecord struct {
	ID        string
	OrgID     string
	OrderID   string
	Amount    decimal.Decimal
	Currency  string
	Method    string
	Status    string
	Reference string
	PaidAt    *time.Time
	CreatedAt time.Time
}

// ValidPaymentMethod indica si el método es uno de los soportados.
func ValidPaymentMethod(m string) bool {
	switch m {
	case MethodCard, MethodTransfer, MethodCredit:
		return true
	}
	return false
}
