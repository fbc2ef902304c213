package entity

import "time"

// Estados del ciclo de vida de una recepción de mercancía.
const (
	AcceptancePending    = "pending"
	AcceptanceInProgress = "in_progress"
	AcceptanceCompleted  = "completed"
)

// Condiciones posibles de una línea recibida.
const (
	ConditionGood    = "good"
	ConditionDamaged = "damaged"
	ConditionExpired = "expired"
	ConditionPartial = "partial"
)

// AcceptanceItem línea de una recepción: qué se pidió vs qué llegó y en qué estado.
type AcceptanceItem struct {
	ItemCode      string   `json:"itemCode"`
	Name          string   `json:"name"`
	Unit          string   `json:"unit"`
	OrderedQty    float64  `json:"orderedQty"`
	ReceivedQty   float64  `json:"receivedQty"`
	QualityRating int      `json:"qualityRating"` // 1..5
	Condition     string   `json:"condition"`
	Photos        []string `json:"photos"`
	Notes         string   `json:"notes"`
}

// AcceptanceRecord registro de recepción de mercancía asociado a una orden de compra.
// Vive en un store en memoria del proceso: se pierde al reiniciar.
type AcceptanceRecord struct {
	ID             string           `json:"id"`
	OrderID        string           `json:"orderId"`
	RestaurantID   string           `json:"restaurantId"`
	SupplierName   string           `json:"supplierName"`
	Status         string           `json:"status"`
	DeliveryNote   string           `json:"deliveryNote"`
	AcceptedBy     string           `json:"acceptedBy"`
	AcceptanceTime *time.Time       `json:"acceptanceTime,omitempty"`
	Items          []AcceptanceItem `json:"items"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}
