package poster

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

const baseImg = "https://image.tmdb.org/t/p/w200"

// newTestCache levanta un TMDB falso y un cache en un CSV temporal.
func newTestCache(t *testing.T, handler http.HandlerFunc) (*Cache, *httptest.Server, *int32) {
	t.Helper()

	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	client := NewClient("test-token", baseImg, "en")
	client.BaseURL = srv.URL

	cache, err := NewCache(filepath.Join(t.TempDir(), "posters.csv"), client)
	if err != nil {
		t.Fatal(err)
	}
	return cache, srv, &calls
}

func postersJSON(w http.ResponseWriter, posters string) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{"posters":[%s]}`, posters)
}

func TestNewCache_CreatesFileWithHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "posters.csv")
	if _, err := NewCache(path, NewClient("", baseImg, "en")); err != nil {
		t.Fatal(err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(string(b)) != "tmdb_id,poster_url" {
		t.Fatalf("archivo nuevo = %q, esperaba solo el header", string(b))
	}
}

func TestResolve_MissThenHit(t *testing.T) {
	cache, _, calls := newTestCache(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-token" {
			t.Errorf("falta el bearer token, Authorization=%q", r.Header.Get("Authorization"))
		}
		postersJSON(w, `{"iso_639_1":"fr","file_path":"/fr.jpg"},{"iso_639_1":"en","file_path":"/en.jpg"}`)
	})

	want := baseImg + "/en.jpg"
	if got := cache.Resolve(context.Background(), 862); got != want {
		t.Fatalf("Resolve = %q, esperaba el póster en inglés %q", got, want)
	}

	// segunda resolución: hit en memoria, cero llamadas nuevas
	if got := cache.Resolve(context.Background(), 862); got != want {
		t.Fatalf("Resolve (hit) = %q, esperaba %q", got, want)
	}
	if n := atomic.LoadInt32(calls); n != 1 {
		t.Fatalf("llamadas externas = %d, esperaba exactamente 1", n)
	}
}

func TestResolve_LanguageFallback(t *testing.T) {
	cache, _, _ := newTestCache(t, func(w http.ResponseWriter, r *http.Request) {
		postersJSON(w, `{"iso_639_1":"fr","file_path":"/fr.jpg"},{"iso_639_1":"de","file_path":"/de.jpg"}`)
	})

	if got, want := cache.Resolve(context.Background(), 1), baseImg+"/fr.jpg"; got != want {
		t.Fatalf("sin póster en el idioma preferido gana el primero: %q, esperaba %q", got, want)
	}
}

func TestResolve_EmptyPostersCachesSentinel(t *testing.T) {
	cache, _, calls := newTestCache(t, func(w http.ResponseWriter, r *http.Request) {
		postersJSON(w, ``)
	})

	if got := cache.Resolve(context.Background(), 42); got != SentinelURL {
		t.Fatalf("Resolve = %q, esperaba el placeholder", got)
	}
	// respuesta válida sin pósters SÍ se cachea
	if got := cache.Resolve(context.Background(), 42); got != SentinelURL {
		t.Fatalf("Resolve (hit) = %q", got)
	}
	if n := atomic.LoadInt32(calls); n != 1 {
		t.Fatalf("llamadas = %d, el placeholder de respuesta vacía debe quedar cacheado", n)
	}
}

func TestResolve_FailureIsNotCached(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"non-2xx", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"json roto", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"posters": [`)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache, _, calls := newTestCache(t, tt.handler)

			if got := cache.Resolve(context.Background(), 42); got != SentinelURL {
				t.Fatalf("Resolve = %q, esperaba el placeholder", got)
			}
			if cache.Len() != 0 {
				t.Fatalf("un fallo no debe poblar el cache, len=%d", cache.Len())
			}

			// sin negative caching: el siguiente miss vuelve a intentar
			cache.Resolve(context.Background(), 42)
			if n := atomic.LoadInt32(calls); n != 2 {
				t.Fatalf("llamadas = %d, esperaba reintento en cada miss", n)
			}
		})
	}
}

func TestResolve_Timeout(t *testing.T) {
	cache, _, _ := newTestCache(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		postersJSON(w, `{"iso_639_1":"en","file_path":"/en.jpg"}`)
	})
	cache.client.httpc.Timeout = 50 * time.Millisecond

	if got := cache.Resolve(context.Background(), 42); got != SentinelURL {
		t.Fatalf("timeout debe degradar al placeholder, got=%q", got)
	}
	if cache.Len() != 0 {
		t.Fatalf("el timeout no debe poblar el cache, len=%d", cache.Len())
	}
}

func TestResolve_MissingToken(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer srv.Close()

	client := NewClient("", baseImg, "en") // sin token
	client.BaseURL = srv.URL
	cache, err := NewCache(filepath.Join(t.TempDir(), "posters.csv"), client)
	if err != nil {
		t.Fatal(err)
	}

	if got := cache.Resolve(context.Background(), 42); got != SentinelURL {
		t.Fatalf("sin token todo degrada al placeholder, got=%q", got)
	}
	if atomic.LoadInt32(&calls) != 0 {
		t.Fatalf("sin token no debe haber llamadas al API")
	}
}

func TestCache_PersistAndReloadUniqueKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "posters.csv")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// cada id recibe su propio file_path
		parts := strings.Split(r.URL.Path, "/")
		id := parts[len(parts)-2]
		postersJSON(w, fmt.Sprintf(`{"iso_639_1":"en","file_path":"/p%s.jpg"}`, id))
	}))
	defer srv.Close()

	client := NewClient("test-token", baseImg, "en")
	client.BaseURL = srv.URL

	cache, err := NewCache(path, client)
	if err != nil {
		t.Fatal(err)
	}

	// misses repetidos sobre los mismos ids
	for _, id := range []int{1, 2, 3, 2, 1, 3, 3} {
		cache.Resolve(context.Background(), id)
	}

	// recargar el archivo desde cero: claves únicas, una por id distinto
	reloaded, err := NewCache(path, client)
	if err != nil {
		t.Fatal(err)
	}
	if reloaded.Len() != 3 {
		t.Fatalf("recarga con %d entradas, esperaba 3 (una por tmdbId)", reloaded.Len())
	}
	for _, id := range []int{1, 2, 3} {
		want := fmt.Sprintf("%s/p%d.jpg", baseImg, id)
		if got, ok := reloaded.Lookup(id); !ok || got != want {
			t.Fatalf("Lookup(%d) = %q, %v; esperaba %q", id, got, ok, want)
		}
	}
}
