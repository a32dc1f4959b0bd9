package models

// Movie es una fila del catálogo estático (movies.csv + links.csv mergeados).
// Las filas sin tmdbId quedan fuera del catálogo: sin tmdbId no hay póster.
type Movie struct {
	MovieID int    `json:"movieId"`
	Title   string `json:"title"`
	TMDBID  int    `json:"tmdbId"`
}
