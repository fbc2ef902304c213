// Package hierarchy casos de uso del servicio de jerarquía de clientes
// (/v2/hierarchy): árbol, búsqueda y CRUD de nodos.
package hierarchy

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/suministros-api/internal/application/dto"
	"github.com/tu-usuario/suministros-api/internal/domain"
	"github.com/tu-usuario/suministros-api/internal/domain/entity"
	domtree "github.com/tu-usuario/suministros-api/internal/domain/hierarchy"
	"github.com/tu-usuario/suministros-api/internal/domain/repository"
)

// UseCase casos de uso de la jerarquía.
type UseCase struct {
	repo repository.HierarchyRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.HierarchyRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Tree arma el árbol completo de la organización con childrenCount poblado.
func (uc *UseCase) Tree(orgID string) (*dto.HierarchyTreeResponse, error) {
	nodes, err := uc.repo.ListByOrg(orgID)
	if err != nil {
		return nil, err
	}
	roots := domtree.BuildTree(nodes)
	out := make([]dto.HierarchyNodeResponse, 0, len(roots))
	for _, r := range roots {
		out = append(out, toNodeResponse(r, true))
	}
	return &dto.HierarchyTreeResponse{
		Roots:      out,
		TotalNodes: domtree.CountNodes(roots),
	}, nil
}

// Search busca por nombre (insensible a tildes/mayúsculas) y devuelve cada
// acierto con su ruta desde la raíz.
func (uc *UseCase) Search(orgID, query string) ([]dto.HierarchySearchResult, error) {
	nodes, err := uc.repo.ListByOrg(orgID)
	if err != nil {
		return nil, err
	}
	roots := domtree.BuildTree(nodes)
	matches := domtree.Search(roots, query)
	results := make([]dto.HierarchySearchResult, 0, len(matches))
	for _, m := range matches {
		results = append(results, dto.HierarchySearchResult{
			Node: toNodeResponse(m.Node, false),
			Path: m.Path,
		})
	}
	return results, nil
}

// GetNode devuelve un nodo con sus hijos directos. ErrNotFound si no existe
// o pertenece a otra organización.
func (uc *UseCase) GetNode(orgID, id string) (*dto.HierarchyNodeResponse, error) {
	node, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if node == nil || node.OrgID != orgID {
		return nil, domain.ErrNotFound
	}
	children, err := uc.repo.ListChildren(id)
	if err != nil {
		return nil, err
	}
	resp := flatNodeResponse(node)
	resp.Children = make([]dto.HierarchyNodeResponse, 0, len(children))
	for _, c := range children {
		resp.Children = append(resp.Children, flatNodeResponse(c))
	}
	resp.ChildrenCount = len(resp.Children)
	return &resp, nil
}

// CreateNode valida tipo y padre y persiste el nodo.
// Un business_unit es hoja: no puede ser padre de nada.
func (uc *UseCase) CreateNode(orgID string, in dto.CreateNodeRequest) (*dto.HierarchyNodeResponse, error) {
	if !entity.ValidNodeType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	if in.ParentID != nil {
		parent, err := uc.repo.GetByID(*in.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil || parent.OrgID != orgID {
			return nil, domain.ErrNotFound
		}
		if parent.Type == entity.NodeBusinessUnit {
			return nil, domain.ErrConflict
		}
	}
	now := time.Now()
	node := &entity.HierarchyNode{
		ID:        uuid.New().String(),
		OrgID:     orgID,
		Name:      in.Name,
		Type:      in.Type,
		ParentID:  in.ParentID,
		IsActive:  true,
		SortOrder: in.SortOrder,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(node); err != nil {
		return nil, err
	}
	resp := flatNodeResponse(node)
	return &resp, nil
}

// UpdateNode renombra, (des)activa o re-cuelga el nodo. El cambio de padre
// rechaza ciclos y padres de otra organización.
func (uc *UseCase) UpdateNode(orgID, id string, in dto.UpdateNodeRequest) (*dto.HierarchyNodeResponse, error) {
	node, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if node == nil || node.OrgID != orgID {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		node.Name = *in.Name
	}
	if in.IsActive != nil {
		node.IsActive = *in.IsActive
	}
	if in.SortOrder != nil {
		node.SortOrder = *in.SortOrder
	}
	if in.ParentID != nil {
		parent, err := uc.repo.GetByID(*in.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil || parent.OrgID != orgID {
			return nil, domain.ErrNotFound
		}
		if parent.Type == entity.NodeBusinessUnit {
			return nil, domain.ErrConflict
		}
		all, err := uc.repo.ListByOrg(orgID)
		if err != nil {
			return nil, err
		}
		if domtree.WouldCycle(all, node.ID, *in.ParentID) {
			return nil, domain.ErrCycle
		}
		node.ParentID = in.ParentID
	}
	node.UpdatedAt = time.Now()
	if err := uc.repo.Update(node); err != nil {
		return nil, err
	}
	resp := flatNodeResponse(node)
	return &resp, nil
}

// DeleteNode elimina un nodo sin hijos. ErrHasChildren (409) si tiene.
func (uc *UseCase) DeleteNode(orgID, id string) error {
	node, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if node == nil || node.OrgID != orgID {
		return domain.ErrNotFound
	}
	n, err := uc.repo.CountChildren(id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrHasChildren
	}
	return uc.repo.Delete(id)
}

func toNodeResponse(t *domtree.TreeNode, withChildren bool) dto.HierarchyNodeResponse {
	resp := flatNodeResponse(&t.HierarchyNode)
	resp.ChildrenCount = t.ChildrenCount
	if withChildren {
		resp.Children = make([]dto.HierarchyNodeResponse, 0, len(t.Children))
		for _, c := range t.Children {
			resp.Children = append(resp.Children, toNodeResponse(c, true))
		}
	}
	return resp
}

func flatNodeResponse(n *entity.HierarchyNode) dto.HierarchyNodeResponse {
	created := n.CreatedAt
	updated := n.UpdatedAt
	return dto.HierarchyNodeResponse{
		ID:        n.ID,
		Name:      n.Name,
		Type:      n.Type,
		ParentID:  n.ParentID,
		IsActive:  n.IsActive,
		Children:  []dto.HierarchyNodeResponse{},
		CreatedAt: &created,
		UpdatedAt: &updated,
	}
}
