package recommender

import (
	"errors"

	"movierec/internal/models"
)

// ErrModelLoad: artefacto ausente o incompatible. Fatal para cualquier
// intento de recomendar en este proceso, no se traga.
var ErrModelLoad = errors.New("no se pudo cargar el modelo")

// ErrModelNotLoaded: Recommend antes de Load. Error de programación.
var ErrModelNotLoaded = errors.New("modelo no cargado: falta llamar Load")

// Model es la caja negra de recomendación: cargar un artefacto
// pre-entrenado y rankear el catálogo contra los ratings de la sesión.
// Cambiar de algoritmo es enchufar otra implementación, el resto del
// sistema no sabe qué hay adentro.
type Model interface {
	// Load deserializa el artefacto una sola vez por proceso.
	// Repetir Load con el mismo path es un no-op.
	Load(path string) error

	// Recommend devuelve hasta n movieIds ordenados por score predicho
	// descendente. Requiere al menos un rating en el snapshot.
	Recommend(ratings []models.Rating, n int) ([]int, error)
}
