package models

// RecItem: película recomendada con su score predicho (item-knn).
type RecItem struct {
	MovieID int     `json:"movieId"`
	Score   float64 `json:"score"`
}

// GridMovie: lo que pinta el front por cada celda del grid.
type GridMovie struct {
	MovieID   int    `json:"movieId"`
	Title     string `json:"title"`
	TMDBID    int    `json:"tmdbId"`
	PosterURL string `json:"posterUrl"`
}
