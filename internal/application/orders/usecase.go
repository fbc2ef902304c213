// Package orders casos de uso de gestión de órdenes a proveedor: listado con
// filtros, creación, transiciones de estado, import XML y notificaciones.
package orders

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/suministros-api/internal/application/dto"
	"github.com/tu-usuario/suministros-api/internal/domain"
	"github.com/tu-usuario/suministros-api/internal/domain/entity"
	"github.com/tu-usuario/suministros-api/internal/domain/repository"
)

// UseCase casos de uso de órdenes.
type UseCase struct {
	repo   repository.OrderRepository
	events EventPublisher
	parser DispatchAdviceParser
}

// NewUseCase construye el caso de uso. events puede ser nil en tests.
func NewUseCase(repo repository.OrderRepository, events EventPublisher, parser DispatchAdviceParser) *UseCase {
	return &UseCase{repo: repo, events: events, parser: parser}
}

// Create crea una orden en draft; el total se calcula desde las líneas.
func (uc *UseCase) Create(orgID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.RestaurantID == "" || in.SupplierID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	currency := in.Currency
	if currency == "" {
		currency = "COP"
	}
	items := make([]entity.OrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		if it.Quantity.Sign() <= 0 {
			return nil, domain.ErrInvalidInput
		}
		items = append(items, entity.OrderItem{
			ItemCode:  it.ItemCode,
			Name:      it.Name,
			Unit:      it.Unit,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	now := time.Now()
	order := &entity.SupplierOrder{
		ID:               uuid.New().String(),
		OrgID:            orgID,
		RestaurantID:     in.RestaurantID,
		SupplierID:       in.SupplierID,
		SupplierName:     in.SupplierName,
		Status:           entity.OrderDraft,
		Items:            items,
		Total:            entity.ComputeTotal(items),
		Currency:         currency,
		ExpectedDelivery: in.ExpectedDelivery,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(order); err != nil {
		return nil, err
	}
	uc.publish(orgID, dto.OrderEvent{Type: "order_created", OrderID: order.ID, Status: order.Status})
	return toOrderResponse(order), nil
}

// GetByID devuelve ErrNotFound si la orden no existe o es de otra organización.
func (uc *UseCase) GetByID(orgID, id string) (*dto.OrderResponse, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil || order.OrgID != orgID {
		return nil, domain.ErrNotFound
	}
	return toOrderResponse(order), nil
}

// List filtra y pagina las órdenes de la organización.
func (uc *UseCase) List(orgID string, q dto.OrderListQuery) (*dto.OrderListResponse, error) {
	q.DefaultPage()
	f := repository.OrderFilter{
		Status:       q.Status,
		SupplierID:   q.SupplierID,
		RestaurantID: q.RestaurantID,
	}
	from, err := parseDay(q.From)
	if err != nil {
		return nil, fmt.Errorf("%w: from debe ser YYYY-MM-DD", domain.ErrInvalidInput)
	}
	f.From = from
	to, err := parseDay(q.To)
	if err != nil {
		return nil, fmt.Errorf("%w: to debe ser YYYY-MM-DD", domain.ErrInvalidInput)
	}
	if to != nil {
		end := to.Add(24*time.Hour - time.Nanosecond)
		f.To = &end
	}
	list, total, err := uc.repo.ListByOrg(orgID, f, q.Limit, q.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o))
	}
	return &dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: q.Limit, Offset: q.Offset, Total: total},
	}, nil
}

// ChangeStatus aplica una transición del ciclo de vida. Aristas ilegales → ErrInvalidTransition.
func (uc *UseCase) ChangeStatus(orgID, id, status string) (*dto.OrderResponse, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil || order.OrgID != orgID {
		return nil, domain.ErrNotFound
	}
	if !entity.CanTransition(order.Status, status) {
		return nil, domain.ErrInvalidTransition
	}
	now := time.Now()
	if err := uc.repo.UpdateStatus(id, status, now); err != nil {
		return nil, err
	}
	order.Status = status
	order.UpdatedAt = now
	uc.publish(orgID, dto.OrderEvent{Type: "order_status_changed", OrderID: id, Status: status})
	return toOrderResponse(order), nil
}

// Import parsea un aviso de despacho XML del proveedor y crea la orden en draft.
func (uc *UseCase) Import(orgID string, xmlData []byte) (*dto.OrderResponse, error) {
	if uc.parser == nil {
		return nil, domain.ErrInvalidInput
	}
	req, err := uc.parser.Parse(xmlData)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return uc.Create(orgID, *req)
}

func (uc *UseCase) publish(orgID string, ev dto.OrderEvent) {
	if uc.events != nil {
		uc.events.Publish(orgID, ev)
	}
}

// parseDay interpreta YYYY-MM-DD; cadena vacía no es error, es "sin filtro".
func parseDay(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func toOrderResponse(o *entity.SupplierOrder) *dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemResponse{
			ItemCode:  it.ItemCode,
			Name:      it.Name,
			Unit:      it.Unit,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Subtotal:  it.Subtotal(),
		})
	}
	return &dto.OrderResponse{
		ID:               o.ID,
		OrgID:            o.OrgID,
		RestaurantID:     o.RestaurantID,
		SupplierID:       o.SupplierID,
		SupplierName:     o.SupplierName,
		Status:           o.Status,
		Items:            items,
		Total:            o.Total,
		Currency:         o.Currency,
		ExpectedDelivery: o.ExpectedDelivery,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}
