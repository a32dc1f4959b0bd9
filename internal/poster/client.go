package poster

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

// SentinelURL: placeholder cuando no se pudo resolver ningún póster real.
const SentinelURL = "https://via.placeholder.com/200x300?text=No+Image"

const tmdbAPIBase = "https://api.themoviedb.org/3"

// tiempo máximo por consulta a TMDB; pasarse cuenta como fallo
const lookupTimeout = 3 * time.Second

type tmdbPoster struct {
	ISO6391  string `json:"iso_639_1"`
	FilePath string `json:"file_path"`
}

type tmdbImagesResponse struct {
	Posters []tmdbPoster `json:"posters"`
}

// Client habla con el endpoint de imágenes de TMDB (bearer token).
type Client struct {
	httpc   *http.Client
	token   string
	baseImg string
	lang    string

	// BaseURL del API, sobreescribible en tests con httptest
	BaseURL string
}

func NewClient(token, baseImgURL, lang string) *Client {
	return &Client{
		httpc:   &http.Client{Timeout: lookupTimeout},
		token:   token,
		baseImg: baseImgURL,
		lang:    lang,
		BaseURL: tmdbAPIBase,
	}
}

// PosterURL consulta GET /movie/{id}/images y arma la URL final
// (base de imágenes + file_path). Preferimos el póster del idioma
// configurado; si no hay, el primero de cualquier idioma; si la
// respuesta viene vacía, el placeholder.
//
// ok=false significa fallo (sin token, timeout, non-2xx, JSON roto):
// el caller devuelve el placeholder pero NO lo cachea, para que un
// miss futuro vuelva a intentar contra el API.
func (c *Client) PosterURL(ctx context.Context, tmdbID int) (url string, ok bool) {
	if c.token == "" {
		return SentinelURL, false
	}

	endpoint := fmt.Sprintf("%s/movie/%d/images", c.BaseURL, tmdbID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return SentinelURL, false
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	res, err := c.httpc.Do(req)
	if err != nil {
		log.Printf("[poster] error consultando TMDB (tmdbId=%d): %v", tmdbID, err)
		return SentinelURL, false
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		log.Printf("[poster] TMDB respondió %d (tmdbId=%d)", res.StatusCode, tmdbID)
		return SentinelURL, false
	}

	var body tmdbImagesResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		log.Printf("[poster] respuesta TMDB inválida (tmdbId=%d): %v", tmdbID, err)
		return SentinelURL, false
	}

	for _, p := range body.Posters {
		if p.ISO6391 == c.lang {
			return c.baseImg + p.FilePath, true
		}
	}
	if len(body.Posters) > 0 {
		return c.baseImg + body.Posters[0].FilePath, true
	}

	// respuesta válida pero sin pósters: el placeholder sí es cacheable
	return SentinelURL, true
}
