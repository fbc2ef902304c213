package dto

import "time"

// HierarchyNodeResponse nodo del árbol en respuestas. Children se omite en
// listados planos; ChildrenCount siempre coincide con len(Children) cuando va poblado.
type HierarchyNodeResponse struct {
	ID            string                  `json:"id"`
	Name          string                  `json:"name"`
	Type          string                  `json:"type"`
	ParentID      *string                 `json:"parentId,omitempty"`
	IsActive      bool                    `json:"isActive"`
	Children      []HierarchyNodeResponse `json:"children"`
	ChildrenCount int                     `json:"childrenCount"`
	CreatedAt     *time.Time              `json:"createdAt,omitempty"`
	UpdatedAt     *time.Time              `json:"updatedAt,omitempty"`
}

// HierarchyTreeResponse árbol completo de la organización.
type HierarchyTreeResponse struct {
	Roots      []HierarchyNodeResponse `json:"roots"`
	TotalNodes int                     `json:"totalNodes"`
}

// HierarchySearchResult un acierto de búsqueda con su ruta desde la raíz.
type HierarchySearchResult struct {
	Node HierarchyNodeResponse `json:"node"`
	Path []string              `json:"path"`
}

// CreateNodeRequest entrada de POST /v2/hierarchy/nodes.
type CreateNodeRequest struct {
	Name      string  `json:"name" validate:"required,min=1,max=200"`
	Type      string  `json:"type" validate:"required,oneof=group company location business_unit"`
	ParentID  *string `json:"parentId"`
	SortOrder int     `json:"sortOrder"`
}

// UpdateNodeRequest entrada de PUT /v2/hierarchy/nodes/:id.
type UpdateNodeRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=1,max=200"`
	IsActive  *bool   `json:"isActive"`
	ParentID  *string `json:"parentId"`
	SortOrder *int    `json:"sortOrder"`
}
