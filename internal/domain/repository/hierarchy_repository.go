package repository

import "github.com/tu-usuario/suministros-api/internal/domain/entity"

// HierarchyRepository puerto de persistencia de nodos de jerarquía (filas planas).
type HierarchyRepository interface {
	Create(node *entity.HierarchyNode) error
	GetByID(id string) (*entity.HierarchyNode, error)
	ListByOrg(orgID string) ([]*entity.HierarchyNode, error)
	ListChildren(parentID string) ([]*entity.HierarchyNode, error)
	Update(node *entity.HierarchyNode) error
	Delete(id string) error
	CountChildren(id string) (int, error)
}
