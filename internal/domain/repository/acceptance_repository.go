package repository

import "github.com/tu-usuario/suministros-api/internal/domain/entity"

// AcceptanceFilter filtros opcionales del listado de recepciones.
// Campo vacío = sin filtro.
type AcceptanceFilter struct {
	OrderID      string
	Status       string
	RestaurantID string
}

// AcceptanceRepository puerto del store de recepciones. La implementación de
// referencia es en memoria (los registros se pierden al reiniciar el proceso).
type AcceptanceRepository interface {
	Create(rec *entity.AcceptanceRecord) error
	GetByID(id string) (*entity.AcceptanceRecord, error)
	List(f AcceptanceFilter) ([]*entity.AcceptanceRecord, error)
	ListByOrder(orderID string) ([]*entity.AcceptanceRecord, error)
	Update(rec *entity.AcceptanceRecord) error
}
