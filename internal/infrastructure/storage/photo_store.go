// Package storage guarda las fotos de recepción en disco local. El directorio
// se sirve como estático bajo el prefijo público configurado.
package storage

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/tu-usuario/suministros-api/internal/application/acceptance"
)

var _ acceptance.PhotoStore = (*LocalPhotoStore)(nil)

// LocalPhotoStore guarda archivos bajo dir y construye URLs con publicPath.
type LocalPhotoStore struct {
	dir        string
	publicPath string
}

// NewLocalPhotoStore crea el directorio si no existe.
func NewLocalPhotoStore(dir, publicPath string) (*LocalPhotoStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de uploads: %w", err)
	}
	return &LocalPhotoStore{dir: dir, publicPath: strings.TrimSuffix(publicPath, "/")}, nil
}

// Save escribe el contenido con un nombre único (uuid + extensión original).
// El nombre recibido solo aporta la extensión: nunca se usa como ruta.
func (s *LocalPhotoStore) Save(filename string, r io.Reader) (url, storedName string, err error) {
	ext := strings.ToLower(filepath.Ext(filepath.Base(filename)))
	storedName = uuid.New().String() + ext

	f, err := os.Create(filepath.Join(s.dir, storedName))
	if err != nil {
		return "", "", fmt.Errorf("crear archivo: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", "", fmt.Errorf("escribir foto: %w", err)
	}
	return path.Join(s.publicPath, storedName), storedName, nil
}
