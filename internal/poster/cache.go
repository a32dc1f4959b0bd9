package poster

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"sync"
)

// Cache: tmdbId -> posterUrl, respaldado por un CSV plano con header
// tmdb_id,poster_url. Se escribe el snapshot completo después de cada
// insert, igual que hacía el cache del front original. El archivo es
// compartido entre sesiones; dos misses concurrentes sobre el mismo id
// pueden duplicar el lookup externo, gana la última escritura.
type Cache struct {
	mu      sync.Mutex
	path    string
	entries map[int]string
	client  *Client
}

// NewCache crea el archivo (solo header) si no existe y carga el mapping.
func NewCache(path string, client *Client) (*Cache, error) {
	c := &Cache{
		path:    path,
		entries: make(map[int]string),
		client:  client,
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("creando directorio de cache: %w", err)
			}
		}
		if err := c.flushLocked(); err != nil {
			return nil, err
		}
		log.Printf("[poster] cache nuevo en %s", path)
		return c, nil
	}

	if err := c.load(); err != nil {
		return nil, err
	}
	log.Printf("[poster] cache cargado: %d pósters (%s)", len(c.entries), path)
	return c, nil
}

func (c *Cache) load() error {
	f, err := os.Open(c.path)
	if err != nil {
		return fmt.Errorf("abriendo cache %s: %w", c.path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	if _, err := r.Read(); err != nil { // header
		return fmt.Errorf("leyendo header del cache: %w", err)
	}
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("leyendo cache %s: %w", c.path, err)
		}
		if len(rec) < 2 {
			continue
		}
		id, err := strconv.Atoi(rec[0])
		if err != nil {
			continue
		}
		// en filas duplicadas gana la última
		c.entries[id] = rec[1]
	}
	return nil
}

// Lookup: lectura pura contra el mapping en memoria, nunca va a la red.
func (c *Cache) Lookup(tmdbID int) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	url, ok := c.entries[tmdbID]
	return url, ok
}

// Resolve: hit -> URL cacheada. Miss -> lookup externo; si sale bien se
// inserta (pisando cualquier entrada previa) y se vuelca el cache entero
// al archivo. Los fallos se tragan: devolvemos el placeholder sin
// cachearlo, así el próximo miss reintenta contra el API.
func (c *Cache) Resolve(ctx context.Context, tmdbID int) string {
	if url, ok := c.Lookup(tmdbID); ok {
		return url
	}

	url, ok := c.client.PosterURL(ctx, tmdbID)
	if !ok {
		return url // placeholder, sin insertar
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[tmdbID] = url
	if err := c.flushLocked(); err != nil {
		log.Printf("[poster] error guardando cache: %v", err)
	}
	return url
}

// Len: cantidad de entradas en memoria.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// flushLocked escribe el snapshot completo (header + todas las filas).
// Requiere c.mu tomado, salvo durante NewCache.
func (c *Cache) flushLocked() error {
	f, err := os.Create(c.path)
	if err != nil {
		return fmt.Errorf("escribiendo cache %s: %w", c.path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"tmdb_id", "poster_url"}); err != nil {
		return err
	}
	for id, url := range c.entries {
		if err := w.Write([]string{strconv.Itoa(id), url}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
