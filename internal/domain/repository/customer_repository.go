package repository

import "github.com/tu-usuario/suministros-api/internal/domain/entity"

// CustomerRepository puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	GetByOrgAndTaxID(orgID, taxID string) (*entity.Customer, error)
	ListByOrg(orgID string, limit, offset int) ([]*entity.Customer, int, error)
	Update(customer *entity.Customer) error
	Delete(id string) error
}
