package models

// PosterEntry: una fila del cache plano de pósters (tmdb_id,poster_url).
// Clave única por tmdbId; en duplicados gana la última escritura.
type PosterEntry struct {
	TMDBID    int    `json:"tmdb_id"`
	PosterURL string `json:"poster_url"`
}
