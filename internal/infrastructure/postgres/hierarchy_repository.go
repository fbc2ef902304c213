package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/suministros-api/internal/domain"
	"github.com/tu-usuario/suministros-api/internal/domain/entity"
	"github.com/tu-usuario/suministros-api/internal/domain/repository"
)

var _ repository.HierarchyRepository = (*HierarchyRepo)(nil)

// HierarchyRepo persistencia plana de nodos de jerarquía; el árbol se arma
// en memoria con domain/hierarchy.
type HierarchyRepo struct {
	q Querier
}

// NewHierarchyRepository construye el adaptador. Pasar pool o tx (Querier).
func NewHierarchyRepository(q Querier) *HierarchyRepo {
	return &HierarchyRepo{q: q}
}

const nodeColumns = `id, org_id, name, type, parent_id, is_active, sort_order, created_at, updated_at`

// Create persiste un nodo nuevo.
func (r *HierarchyRepo) Create(node *entity.HierarchyNode) error {
	query := `
		INSERT INTO hierarchy_nodes (` + nodeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		node.ID, node.OrgID, node.Name, node.Type, node.ParentID,
		node.IsActive, node.SortOrder, node.CreatedAt, node.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert hierarchy node: %w", err)
	}
	return nil
}

// GetByID obtiene un nodo por ID, nil si no existe.
func (r *HierarchyRepo) GetByID(id string) (*entity.HierarchyNode, error) {
	var n entity.HierarchyNode
	err := r.q.QueryRow(context.Background(),
		`SELECT `+nodeColumns+` FROM hierarchy_nodes WHERE id = $1`, id).Scan(
		&n.ID, &n.OrgID, &n.Name, &n.Type, &n.ParentID,
		&n.IsActive, &n.SortOrder, &n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get hierarchy node: %w", err)
	}
	return &n, nil
}

// ListByOrg todas las filas de la organización (el árbol completo se arma arriba).
func (r *HierarchyRepo) ListByOrg(orgID string) ([]*entity.HierarchyNode, error) {
	return r.list(`SELECT `+nodeColumns+` FROM hierarchy_nodes WHERE org_id = $1 ORDER BY sort_order, name`, orgID)
}

// ListChildren hijos directos de un nodo.
func (r *HierarchyRepo) ListChildren(parentID string) ([]*entity.HierarchyNode, error) {
	return r.list(`SELECT `+nodeColumns+` FROM hierarchy_nodes WHERE parent_id = $1 ORDER BY sort_order, name`, parentID)
}

// Update actualiza nombre, estado, padre y orden.
func (r *HierarchyRepo) Update(node *entity.HierarchyNode) error {
	query := `
		UPDATE hierarchy_nodes SET name = $2, is_active = $3, parent_id = $4,
			sort_order = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		node.ID, node.Name, node.IsActive, node.ParentID, node.SortOrder, node.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update hierarchy node: %w", err)
	}
	return nil
}

// Delete elimina un nodo por ID.
func (r *HierarchyRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM hierarchy_nodes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete hierarchy node: %w", err)
	}
	return nil
}

// CountChildren número de hijos directos.
func (r *HierarchyRepo) CountChildren(id string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM hierarchy_nodes WHERE parent_id = $1`, id).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count children: %w", err)
	}
	return n, nil
}

func (r *HierarchyRepo) list(query string, args ...any) ([]*entity.HierarchyNode, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list hierarchy nodes: %w", err)
	}
	defer rows.Close()
	var list []*entity.HierarchyNode
	for rows.Next() {
		var n entity.HierarchyNode
		if err := rows.Scan(&n.ID, &n.OrgID, &n.Name, &n.Type, &n.ParentID,
			&n.IsActive, &n.SortOrder, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan hierarchy node: %w", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}
