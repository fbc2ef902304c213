package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemInput línea de orden en creación.
type OrderItemInput struct {
	ItemCode  string          `json:"item_code" validate:"required"`
	Name      string          `json:"name" validate:"required"`
	Unit      string          `json:"unit"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CreateOrderRequest entrada de POST /api/orders. La orden nace en draft.
type CreateOrderRequest struct {
	RestaurantID     string           `json:"restaurant_id" validate:"required"`
	SupplierID       string           `json:"supplier_id" validate:"required"`
	SupplierName     string           `json:"supplier_name"`
	Currency         string           `json:"currency" validate:"omitempty,len=3"`
	ExpectedDelivery *time.Time       `json:"expected_delivery"`
	Items            []OrderItemInput `json:"items" validate:"required,min=1,dive"`
}

// ChangeOrderStatusRequest entrada de PUT /api/orders/:id/status.
type ChangeOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=draft submitted confirmed in_transit delivered cancelled"`
}

// OrderListQuery filtros de GET /api/orders.
type OrderListQuery struct {
	Status       string `query:"status"`
	SupplierID   string `query:"supplier_id"`
	RestaurantID string `query:"restaurant_id"`
	From         string `query:"from"` // YYYY-MM-DD
	To           string `query:"to"`   // YYYY-MM-DD
	PageRequest
}

// OrderItemResponse línea de orden en respuestas.
type OrderItemResponse struct {
	ItemCode  string          `json:"item_code"`
	Name      string          `json:"name"`
	Unit      string          `json:"unit"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// OrderResponse salida de una orden a proveedor.
type OrderResponse struct {
	ID               string              `json:"id"`
	OrgID            string              `json:"org_id"`
	RestaurantID     string              `json:"restaurant_id"`
	SupplierID       string              `json:"supplier_id"`
	SupplierName     string              `json:"supplier_name"`
	Status           string              `json:"status"`
	Items            []OrderItemResponse `json:"items"`
	Total            decimal.Decimal     `json:"total"`
	Currency         string              `json:"currency"`
	ExpectedDelivery *time.Time          `json:"expected_delivery,omitempty"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

// OrderListResponse lista paginada de órdenes.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// OrderEvent notificación que se publica por WebSocket en cada cambio.
// El cliente solo la usa como disparador de refetch.
type OrderEvent struct {
	Type    string `json:"type"` // order_created | order_status_changed
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}
