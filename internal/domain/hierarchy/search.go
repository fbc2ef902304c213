package hierarchy

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Match resultado de búsqueda: el nodo y su ruta desde la raíz.
type Match struct {
	Node *TreeNode
	Path []string
}

// Normalize pasa a minúsculas y elimina diacríticos ("Bogotá" → "bogota"),
// para que la búsqueda no dependa de tildes ni mayúsculas.
func Normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// Search recorre el bosque y devuelve los nodos cuyo nombre contiene el
// término (insensible a mayúsculas y acentos), con su ruta completa.
func Search(roots []*TreeNode, query string) []Match {
	q := Normalize(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var matches []Match
	var walk func(t *TreeNode, trail []string)
	walk = func(t *TreeNode, trail []string) {
		trail = append(trail, t.Name)
		if strings.Contains(Normalize(t.Name), q) {
			path := make([]string, len(trail))
			copy(path, trail)
			matches = append(matches, Match{Node: t, Path: path})
		}
		for _, c := range t.Children {
			walk(c, trail)
		}
	}
	for _, r := range roots {
		walk(r, nil)
	}
	return matches
}
