package recommender

import (
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
)

// Neighbor: vecino precalculado de una película con su similitud.
type Neighbor struct {
	MovieID int
	Sim     float64
}

// Artifact es el blob serializado (gob) que produce cmd/trainer y
// consume ItemKNN.Load. Neighbors ya viene ordenado por sim descendente
// y truncado a K por película.
type Artifact struct {
	Algo      string // "item-knn"
	Metric    string // "cosine"
	K         int
	Neighbors map[int][]Neighbor
}

// Save escribe el artefacto en path (gob).
func (a *Artifact) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creando directorio del modelo: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("escribiendo modelo %s: %w", path, err)
	}
	defer f.Close()

	if err := gob.NewEncoder(f).Encode(a); err != nil {
		return fmt.Errorf("serializando modelo: %w", err)
	}
	return nil
}
