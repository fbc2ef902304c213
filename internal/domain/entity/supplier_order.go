package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden a proveedor.
const (
	OrderDraft     = "draft"
	OrderSubmitted = "submitted"
	OrderConfirmed = "confirmed"
	OrderInTransit = "in_transit"
	OrderDelivered = "delivered"
	OrderCancelled = "cancelled"
)

// OrderItem línea de una orden a proveedor.
type OrderItem struct {
	ItemCode  string          `json:"item_code"`
	Name      string          `json:"name"`
	Unit      string          `json:"unit"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// Subtotal cantidad × precio unitario.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.Quantity.Mul(i.UnitPrice)
}

// SupplierOrder orden de compra de un restaurante a un proveedor.
type SupplierOrder struct {
	ID               string
	OrgID            string
	RestaurantID     string
	SupplierID       string
	SupplierName     string
	Status           string
	Items            []OrderItem
	Total            decimal.Decimal
	Currency         string
	ExpectedDelivery *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// orderTransitions aristas permitidas del ciclo de vida.
// Cualquier estado no terminal puede pasar además a cancelled.
var orderTransitions = map[string]string{
	OrderDraft:     OrderSubmitted,
	OrderSubmitted: OrderConfirmed,
	OrderConfirmed: OrderInTransit,
	OrderInTransit: OrderDelivered,
}

// CanTransition indica si el cambio de estado from→to está permitido.
func CanTransition(from, to string) bool {
	if from == to {
		return false
	}
	if to == OrderCancelled {
		return from != OrderDelivered && from != OrderCancelled
	}
	return orderTransitions[from] == to
}

// ComputeTotal suma los subtotales de las líneas.
func ComputeTotal(items []OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal())
	}
	return total
}
