package dto

// Los DTO de recepciones usan camelCase: es el contrato original del
// microservicio con el front (orderId, restaurantId, acceptanceTime...).

// AcceptanceItemInput línea de recepción en creación/actualización.
type AcceptanceItemInput struct {
	ItemCode      string   `json:"itemCode" validate:"required"`
	Name          string   `json:"name"`
	Unit          string   `json:"unit"`
	OrderedQty    float64  `json:"orderedQty" validate:"min=0"`
	ReceivedQty   float64  `json:"receivedQty" validate:"min=0"`
	QualityRating int      `json:"qualityRating" validate:"omitempty,min=1,max=5"`
	Condition     string   `json:"condition" validate:"omitempty,oneof=good damaged expired partial"`
	Photos        []string `json:"photos"`
	Notes         string   `json:"notes"`
}

// CreateAcceptanceRequest entrada de POST /acceptance.
type CreateAcceptanceRequest struct {
	OrderID      string                `json:"orderId" validate:"required"`
	RestaurantID string                `json:"restaurantId" validate:"required"`
	SupplierName string                `json:"supplierName"`
	DeliveryNote string                `json:"deliveryNote"`
	AcceptedBy   string                `json:"acceptedBy"`
	Items        []AcceptanceItemInput `json:"items" validate:"dive"`
}

// UpdateAcceptanceRequest entrada de PUT /acceptance/:id. Merge superficial:
// solo se tocan los campos presentes (punteros no nil).
type UpdateAcceptanceRequest struct {
	Status       *string                `json:"status" validate:"omitempty,oneof=pending in_progress completed"`
	SupplierName *string                `json:"supplierName"`
	DeliveryNote *string                `json:"deliveryNote"`
	AcceptedBy   *string                `json:"acceptedBy"`
	Items        *[]AcceptanceItemInput `json:"items" validate:"omitempty,dive"`
}

// AcceptanceListQuery filtros de GET /acceptance.
type AcceptanceListQuery struct {
	OrderID      string `query:"orderId"`
	Status       string `query:"status"`
	RestaurantID string `query:"restaurantId"`
}

// UploadPhotoResponse resultado de POST /acceptance/upload-photo.
type UploadPhotoResponse struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
}
