package session

import (
	"errors"
	"sync"

	"movierec/internal/catalog"
	"movierec/internal/models"
	"movierec/internal/recommender"
)

// Estados del grid: random (browsing) o resultado de una recomendación.
type State string

const (
	StateBrowsing    State = "browsing"
	StateRecommended State = "recommended"
)

// MinRatingsToRecommend: con menos de 5 ratings el botón ni se ofrece;
// la API igual lo valida por si alguien pega directo al endpoint.
const MinRatingsToRecommend = 5

var ErrNotEnoughRatings = errors.New("se necesitan al menos 5 ratings para pedir recomendaciones")

// Session: todo el estado mutable de una sesión de usuario, detrás de un
// handle explícito (nada de globals, varias sesiones conviven en el proceso).
// El mutex cubre los accesos desde requests concurrentes de la misma sesión.
type Session struct {
	ID string

	mu      sync.Mutex
	ratings *RatingStore
	grid    []int
	state   State
	search  string
}

func newSession(id string, grid []int) *Session {
	return &Session{
		ID:      id,
		ratings: NewRatingStore(),
		grid:    grid,
		state:   StateBrowsing,
	}
}

// Refresh re-muestrea el grid random y limpia el filtro de búsqueda.
// Desde Recommended vuelve a Browsing (el botón 🔄 del front original).
func (s *Session) Refresh(cat *catalog.Catalog, count int) error {
	ids, err := cat.Sample(count)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grid = ids
	s.state = StateBrowsing
	s.search = ""
	return nil
}

// Rate delega en el RatingStore. No cambia grid ni estado.
func (s *Session) Rate(movieID, value int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ratings.Set(movieID, value)
}

// ClearRatings vacía los ratings y el filtro de búsqueda, dejando
// grid y estado como estaban.
func (s *Session) ClearRatings() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ratings.Clear()
	s.search = ""
}

// SetSearch registra el filtro activo (la búsqueda en sí corre contra el
// catálogo y no toca el grid guardado).
func (s *Session) SetSearch(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.search = q
}

// Recommend dispara la transición a Recommended: valida el mínimo de
// ratings, rankea con el modelo y reemplaza el grid con el resultado en
// ese orden exacto. Ids fuera del catálogo no entran al grid.
func (s *Session) Recommend(m recommender.Model, cat *catalog.Catalog, n int) ([]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ratings.Size() < MinRatingsToRecommend {
		return nil, ErrNotEnoughRatings
	}

	ids, err := m.Recommend(s.ratings.All(), n)
	if err != nil {
		return nil, err
	}

	grid := make([]int, 0, len(ids))
	for _, id := range ids {
		if cat.Has(id) {
			grid = append(grid, id)
		}
	}

	s.grid = grid
	s.state = StateRecommended
	s.search = ""

	out := make([]int, len(grid))
	copy(out, grid)
	return out, nil
}

// Grid devuelve una copia del grid actual junto con el estado.
func (s *Session) Grid() ([]int, State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]int, len(s.grid))
	copy(out, s.grid)
	return out, s.state
}

// Ratings: snapshot en orden de inserción.
func (s *Session) Ratings() []models.Rating {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ratings.All()
}

func (s *Session) RatingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ratings.Size()
}

func (s *Session) Search() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.search
}
