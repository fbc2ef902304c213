// Package hierarchy contiene las operaciones puras sobre el árbol de la
// organización del cliente: armado del árbol desde filas planas, recorrido,
// búsqueda y validaciones estructurales. Sin dependencias de infraestructura.
package hierarchy

import (
	"sort"

	"github.com/tu-usuario/suministros-api/internal/domain/entity"
)

// TreeNode nodo del árbol ya armado. ChildrenCount siempre es len(Children).
type TreeNode struct {
	entity.HierarchyNode
	Children      []*TreeNode
	ChildrenCount int
}

// BuildTree arma el bosque a partir de filas planas. Los nodos cuyo ParentID
// no aparece en el conjunto se tratan como raíces (tolerante a filas huérfanas).
// Hermanos ordenados por SortOrder y luego por Name.
func BuildTree(nodes []*entity.HierarchyNode) []*TreeNode {
	byID := make(map[string]*TreeNode, len(nodes))
	for _, n := range nodes {
		byID[n.ID] = &TreeNode{HierarchyNode: *n}
	}

	var roots []*TreeNode
	for _, n := range nodes {
		tn := byID[n.ID]
		if n.ParentID != nil {
			if parent, ok := byID[*n.ParentID]; ok {
				parent.Children = append(parent.Children, tn)
				continue
			}
		}
		roots = append(roots, tn)
	}

	var finish func(t *TreeNode)
	finish = func(t *TreeNode) {
		sortSiblings(t.Children)
		t.ChildrenCount = len(t.Children)
		for _, c := range t.Children {
			finish(c)
		}
	}
	sortSiblings(roots)
	for _, r := range roots {
		finish(r)
	}
	return roots
}

func sortSiblings(ns []*TreeNode) {
	sort.SliceStable(ns, func(i, j int) bool {
		if ns[i].SortOrder != ns[j].SortOrder {
			return ns[i].SortOrder < ns[j].SortOrder
		}
		return ns[i].Name < ns[j].Name
	})
}

// Flatten devuelve todos los nodos del bosque en pre-orden.
func Flatten(roots []*TreeNode) []*TreeNode {
	var out []*TreeNode
	var walk func(t *TreeNode)
	walk = func(t *TreeNode) {
		out = append(out, t)
		for _, c := range t.Children {
			walk(c)
		}
	}
	for _, r := range roots {
		walk(r)
	}
	return out
}

// CountNodes cuenta todos los nodos del bosque.
func CountNodes(roots []*TreeNode) int {
	count := 0
	var walk func(t *TreeNode)
	walk = func(t *TreeNode) {
		count++
		for _, c := range t.Children {
			walk(c)
		}
	}
	for _, r := range roots {
		walk(r)
	}
	return count
}

// FindNode busca un nodo por ID dentro del bosque. Devuelve nil si no está.
func FindNode(roots []*TreeNode, id string) *TreeNode {
	for _, t := range Flatten(roots) {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// PathTo devuelve los nombres de los ancestros desde la raíz hasta el nodo
// (inclusive). Slice vacío si el ID no existe.
func PathTo(roots []*TreeNode, id string) []string {
	var path []string
	var walk func(t *TreeNode, trail []string) bool
	walk = func(t *TreeNode, trail []string) bool {
		trail = append(trail, t.Name)
		if t.ID == id {
			path = append(path, trail...)
			return true
		}
		for _, c := range t.Children {
			if walk(c, trail) {
				return true
			}
		}
		return false
	}
	for _, r := range roots {
		if walk(r, nil) {
			break
		}
	}
	return path
}

// WouldCycle indica si mover nodeID bajo newParentID crearía un ciclo:
// el nuevo padre no puede ser el propio nodo ni uno de sus descendientes.
// Opera sobre las filas planas, sin armar el árbol.
func WouldCycle(nodes []*entity.HierarchyNode, nodeID, newParentID string) bool {
	if nodeID == newParentID {
		return true
	}
	parentOf := make(map[string]string, len(nodes))
	for _, n := range nodes {
		if n.ParentID != nil {
			parentOf[n.ID] = *n.ParentID
		}
	}
	// Subir desde el nuevo padre hacia la raíz: si aparece nodeID, hay ciclo.
	cur := newParentID
	for i := 0; i < len(nodes)+1; i++ {
		p, ok := parentOf[cur]
		if !ok {
			return false
		}
		if p == nodeID {
			return true
		}
		cur = p
	}
	return true // cadena de padres degenerada: tratar como ciclo
}
