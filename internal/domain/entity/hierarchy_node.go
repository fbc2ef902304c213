package entity

import "time"

// Niveles de la jerarquía de clientes, de raíz a hoja.
const (
	NodeGroup        = "group"
	NodeCompany      = "company"
	NodeLocation     = "location"
	NodeBusinessUnit = "business_unit"
)

// HierarchyNode un nivel de la organización del cliente (grupo/empresa/sede/unidad de negocio).
// Se persiste plano (ParentID); el árbol se arma en memoria con domain/hierarchy.
type HierarchyNode struct {
	ID        string
	OrgID     string
	Name      string
	Type      string
	ParentID  *string
	IsActive  bool
	SortOrder int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidNodeType indica si el tipo corresponde a un nivel conocido.
func ValidNodeType(t string) bool {
	switch t {
	case NodeGroup, NodeCompany, NodeLocation, NodeBusinessUnit:
		return true
	}
	return false
}
