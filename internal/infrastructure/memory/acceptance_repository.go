// Package memory implementa el store en memoria del servicio de recepciones.
// Los registros viven en un slice del proceso y se pierden al reiniciar;
// el mutex solo protege el acceso concurrente de los handlers HTTP.
package memory

import (
	"sync"

	"github.com/tu-usuario/suministros-api/internal/domain/entity"
	"github.com/tu-usuario/suministros-api/internal/domain/repository"
)

var _ repository.AcceptanceRepository = (*AcceptanceRepo)(nil)

// AcceptanceRepo store en memoria de recepciones.
type AcceptanceRepo struct {
	mu      sync.RWMutex
	records []*entity.AcceptanceRecord
}

// NewAcceptanceRepository construye el store vacío.
func NewAcceptanceRepository() *AcceptanceRepo {
	return &AcceptanceRepo{}
}

// Create agrega el registro al final del slice.
func (r *AcceptanceRepo) Create(rec *entity.AcceptanceRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *rec
	r.records = append(r.records, &cp)
	return nil
}

// GetByID devuelve una copia del registro, o nil si no existe.
func (r *AcceptanceRepo) GetByID(id string) (*entity.AcceptanceRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rec := range r.records {
		if rec.ID == id {
			cp := *rec
			return &cp, nil
		}
	}
	return nil, nil
}

// List filtra el slice por los campos presentes del filtro.
func (r *AcceptanceRepo) List(f repository.AcceptanceFilter) ([]*entity.AcceptanceRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.AcceptanceRecord, 0, len(r.records))
	for _, rec := range r.records {
		if f.OrderID != "" && rec.OrderID != f.OrderID {
			continue
		}
		if f.Status != "" && rec.Status != f.Status {
			continue
		}
		if f.RestaurantID != "" && rec.RestaurantID != f.RestaurantID {
			continue
		}
		cp := *rec
		out = append(out, &cp)
	}
	return out, nil
}

// ListByOrder recepciones de una orden.
func (r *AcceptanceRepo) ListByOrder(orderID string) ([]*entity.AcceptanceRecord, error) {
	return r.List(repository.AcceptanceFilter{OrderID: orderID})
}

// Update reemplaza el registro con el mismo ID. No-op si no existe.
func (r *AcceptanceRepo) Update(rec *entity.AcceptanceRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.records {
		if existing.ID == rec.ID {
			cp := *rec
			r.records[i] = &cp
			return nil
		}
	}
	return nil
}
