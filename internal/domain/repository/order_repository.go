package repository

import (
	"time"

	"github.com/tu-usuario/suministros-api/internal/domain/entity"
)

// OrderFilter filtros del listado de órdenes. Campos en cero = sin filtro.
type OrderFilter struct {
	Status       string
	SupplierID   string
	RestaurantID string
	From         *time.Time
	To           *time.Time
}

// OrderRepository puerto de persistencia para SupplierOrder.
type OrderRepository interface {
	Create(order *entity.SupplierOrder) error
	GetByID(id string) (*entity.SupplierOrder, error)
	ListByOrg(orgID string, f OrderFilter, limit, offset int) ([]*entity.SupplierOrder, int, error)
	UpdateStatus(id, status string, updatedAt time.Time) error
}
