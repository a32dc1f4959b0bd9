package session

import (
	"errors"

	"movierec/internal/models"
)

// ErrInvalidRating: valor fuera de [0,5]. Se rechaza antes de mutar nada,
// nunca se clampea en silencio.
var ErrInvalidRating = errors.New("rating inválido: tiene que estar entre 0 y 5")

// RatingStore: los ratings de UNA sesión, en orden de inserción.
// Sin I/O, vive y muere con la sesión.
type RatingStore struct {
	values map[int]int
	order  []int
}

func NewRatingStore() *RatingStore {
	return &RatingStore{values: make(map[int]int)}
}

// Set upserta el rating de una película. Re-valorar no cambia el tamaño
// ni la posición de inserción, gana el último valor.
func (s *RatingStore) Set(movieID, value int) error {
	if value < 0 || value > 5 {
		return ErrInvalidRating
	}
	if _, ok := s.values[movieID]; !ok {
		s.order = append(s.order, movieID)
	}
	s.values[movieID] = value
	return nil
}

func (s *RatingStore) Clear() {
	s.values = make(map[int]int)
	s.order = nil
}

func (s *RatingStore) Size() int { return len(s.values) }

// All devuelve un snapshot en orden de inserción.
func (s *RatingStore) All() []models.Rating {
	out := make([]models.Rating, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, models.Rating{MovieID: id, Value: s.values[id]})
	}
	return out
}
