package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"movierec/internal/models"
)

// ErrInsufficientCatalog: se pidió muestrear sobre un catálogo vacío.
// Esto es un problema de datos, no algo transitorio, así que sube al caller.
var ErrInsufficientCatalog = errors.New("catálogo vacío: no hay películas para muestrear")

// Catalog: el set completo de películas recomendables, inmutable después de Load.
// Compartido read-only entre todas las sesiones del proceso.
type Catalog struct {
	movies []models.Movie
	byID   map[int]models.Movie
}

// New construye un catálogo directamente desde filas ya armadas.
func New(movies []models.Movie) *Catalog {
	byID := make(map[int]models.Movie, len(movies))
	for _, m := range movies {
		byID[m.MovieID] = m
	}
	return &Catalog{movies: movies, byID: byID}
}

// Load lee movies.csv y links.csv (formato MovieLens) y los mergea por movieId.
// Las filas sin tmdbId se descartan, igual que el dropna del front original.
func Load(moviesPath, linksPath string) (*Catalog, error) {
	links, err := readLinks(linksPath)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(moviesPath)
	if err != nil {
		return nil, fmt.Errorf("abriendo %s: %w", moviesPath, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	if _, err := r.Read(); err != nil { // header movieId,title,genres
		return nil, fmt.Errorf("leyendo header de %s: %w", moviesPath, err)
	}

	var movies []models.Movie
	dropped := 0
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("leyendo %s: %w", moviesPath, err)
		}
		if len(rec) < 2 {
			continue
		}
		movieID, err := strconv.Atoi(rec[0])
		if err != nil {
			continue
		}
		tmdbID, ok := links[movieID]
		if !ok {
			dropped++
			continue
		}
		movies = append(movies, models.Movie{
			MovieID: movieID,
			Title:   rec[1],
			TMDBID:  tmdbID,
		})
	}

	log.Printf("[catalog] %d películas cargadas (%d descartadas sin tmdbId)", len(movies), dropped)
	return New(movies), nil
}

// readLinks: movieId -> tmdbId. Columnas movieId,imdbId,tmdbId; tmdbId puede venir vacío.
func readLinks(path string) (map[int]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("abriendo %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	if _, err := r.Read(); err != nil {
		return nil, fmt.Errorf("leyendo header de %s: %w", path, err)
	}

	links := make(map[int]int)
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("leyendo %s: %w", path, err)
		}
		if len(rec) < 3 || rec[2] == "" {
			continue
		}
		movieID, err1 := strconv.Atoi(rec[0])
		tmdbID, err2 := strconv.Atoi(rec[2])
		if err1 != nil || err2 != nil {
			continue
		}
		links[movieID] = tmdbID
	}
	return links, nil
}

func (c *Catalog) Len() int { return len(c.movies) }

func (c *Catalog) Get(movieID int) (models.Movie, bool) {
	m, ok := c.byID[movieID]
	return m, ok
}

func (c *Catalog) Has(movieID int) bool {
	_, ok := c.byID[movieID]
	return ok
}

// Search: substring sobre el título, case-insensitive, cortado a limit.
// Busca sobre el catálogo completo, no cambia nada del estado de sesión.
func (c *Catalog) Search(q string, limit int) []models.Movie {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return nil
	}
	var out []models.Movie
	for _, m := range c.movies {
		if strings.Contains(strings.ToLower(m.Title), q) {
			out = append(out, m)
			if limit > 0 && len(out) >= limit {
				break
			}
		}
	}
	return out
}

// Sample: muestra uniforme sin reemplazo de movieIds, tamaño min(count, len).
func (c *Catalog) Sample(count int) ([]int, error) {
	if count <= 0 {
		return nil, nil
	}
	if len(c.movies) == 0 {
		return nil, ErrInsufficientCatalog
	}
	if count > len(c.movies) {
		count = len(c.movies)
	}

	ids := make([]int, 0, count)
	for _, i := range rand.Perm(len(c.movies))[:count] {
		ids = append(ids, c.movies[i].MovieID)
	}
	return ids, nil
}
