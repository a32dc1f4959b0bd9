package recommender

import (
	"encoding/gob"
	"fmt"
	"log"
	"os"
	"sort"
	"sync"

	"movierec/internal/models"
)

// userId sintético con el que se arma la query de sesión
// (las sesiones son anónimas, el modelo igual espera un usuario)
const sessionUserID = 9999

// ItemKNN: recomendador item-based sobre vecinos precalculados.
// El artefacto se carga una sola vez y después es read-only, así que
// puede compartirse entre todas las sesiones del proceso.
type ItemKNN struct {
	mu     sync.Mutex
	loaded bool
	path   string
	art    *Artifact
}

func NewItemKNN() *ItemKNN { return &ItemKNN{} }

// Load deserializa el artefacto con doble chequeo bajo mutex: si dos
// requests concurrentes llegan primero, solo una deserializa.
func (m *ItemKNN) Load(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.loaded {
		if m.path == path {
			log.Printf("[recommender] modelo ya cargado: %s", path)
			return nil
		}
		return fmt.Errorf("%w: ya hay un modelo cargado desde %s", ErrModelLoad, m.path)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrModelLoad, err)
	}
	defer f.Close()

	var art Artifact
	if err := gob.NewDecoder(f).Decode(&art); err != nil {
		return fmt.Errorf("%w: %v", ErrModelLoad, err)
	}
	if art.Algo != "item-knn" || len(art.Neighbors) == 0 {
		return fmt.Errorf("%w: artefacto incompatible (algo=%q, items=%d)",
			ErrModelLoad, art.Algo, len(art.Neighbors))
	}

	m.art = &art
	m.path = path
	m.loaded = true
	log.Printf("[recommender] modelo %s/%s cargado desde %s (%d items, k=%d)",
		art.Algo, art.Metric, path, len(art.Neighbors), art.K)
	return nil
}

// fila de la query interna: un usuario sintético, una película, su rating
type queryRow struct {
	userID  int
	movieID int
	rating  float64
}

// Recommend construye la query desde el snapshot de ratings y rankea a
// los vecinos no valorados: score = sum(sim*rating) / sum(sim), solo
// similitudes positivas. Orden: score descendente, empates por movieId
// ascendente (determinista dentro del proceso).
func (m *ItemKNN) Recommend(ratings []models.Rating, n int) ([]int, error) {
	m.mu.Lock()
	art := m.art
	loaded := m.loaded
	m.mu.Unlock()

	if !loaded {
		return nil, ErrModelNotLoaded
	}
	if len(ratings) == 0 {
		return nil, fmt.Errorf("se necesita al menos un rating para recomendar")
	}

	query := make([]queryRow, 0, len(ratings))
	rated := make(map[int]struct{}, len(ratings))
	for _, r := range ratings {
		query = append(query, queryRow{
			userID:  sessionUserID,
			movieID: r.MovieID,
			rating:  float64(r.Value),
		})
		rated[r.MovieID] = struct{}{}
	}

	scores := make(map[int]float64)
	weights := make(map[int]float64)

	for _, q := range query {
		for _, nb := range art.Neighbors[q.movieID] {
			if _, ya := rated[nb.MovieID]; ya {
				continue
			}
			if nb.Sim <= 0 {
				continue
			}
			scores[nb.MovieID] += nb.Sim * q.rating
			weights[nb.MovieID] += nb.Sim
		}
	}

	items := make([]models.RecItem, 0, len(scores))
	for id, num := range scores {
		den := weights[id]
		if den <= 0 {
			continue
		}
		items = append(items, models.RecItem{MovieID: id, Score: num / den})
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Score != items[j].Score {
			return items[i].Score > items[j].Score
		}
		return items[i].MovieID < items[j].MovieID
	})

	if n > 0 && len(items) > n {
		items = items[:n]
	}

	ids := make([]int, len(items))
	for i, it := range items {
		ids[i] = it.MovieID
	}
	return ids, nil
}
