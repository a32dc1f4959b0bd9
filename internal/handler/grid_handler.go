package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"movierec/internal/catalog"
	"movierec/internal/models"
	"movierec/internal/poster"
	"movierec/internal/session"
)

type GridHandler struct {
	cat         *catalog.Catalog
	posters     *poster.Cache
	gridSize    int
	searchLimit int
}

func NewGridHandler(cat *catalog.Catalog, posters *poster.Cache, gridSize, searchLimit int) *GridHandler {
	return &GridHandler{
		cat:         cat,
		posters:     posters,
		gridSize:    gridSize,
		searchLimit: searchLimit,
	}
}

type gridResponse struct {
	State   session.State      `json:"state"`
	Search  string             `json:"search,omitempty"`
	Ratings int                `json:"ratings"`
	Movies  []models.GridMovie `json:"movies"`
}

// toGrid resuelve el póster de cada película (cache primero, TMDB en miss).
func (h *GridHandler) toGrid(ctx context.Context, movies []models.Movie) []models.GridMovie {
	out := make([]models.GridMovie, 0, len(movies))
	for _, m := range movies {
		out = append(out, models.GridMovie{
			MovieID:   m.MovieID,
			Title:     m.Title,
			TMDBID:    m.TMDBID,
			PosterURL: h.posters.Resolve(ctx, m.TMDBID),
		})
	}
	return out
}

func (h *GridHandler) moviesOf(ids []int) []models.Movie {
	out := make([]models.Movie, 0, len(ids))
	for _, id := range ids {
		if m, ok := h.cat.Get(id); ok {
			out = append(out, m)
		}
	}
	return out
}

// @Summary Grid actual de la sesión
// @Tags grid
// @Security BearerAuth
// @Produce json
// @Success 200 {object} gridResponse
// @Router /me/grid [get]
func (h *GridHandler) GetGrid(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	sess := SessionFromContext(r.Context())

	ids, state := sess.Grid()
	_ = json.NewEncoder(w).Encode(gridResponse{
		State:   state,
		Search:  sess.Search(),
		Ratings: sess.RatingCount(),
		Movies:  h.toGrid(r.Context(), h.moviesOf(ids)),
	})
}

// @Summary Nuevo grid random
// @Description Re-muestrea el grid y limpia la búsqueda activa
// @Tags grid
// @Security BearerAuth
// @Produce json
// @Success 200 {object} gridResponse
// @Router /me/grid/refresh [post]
func (h *GridHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	sess := SessionFromContext(r.Context())

	if err := sess.Refresh(h.cat, h.gridSize); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	ids, state := sess.Grid()
	_ = json.NewEncoder(w).Encode(gridResponse{
		State:   state,
		Ratings: sess.RatingCount(),
		Movies:  h.toGrid(r.Context(), h.moviesOf(ids)),
	})
}

// @Summary Buscar por título
// @Description Substring case-insensitive sobre el catálogo completo,
// cortado al límite de display. No toca el grid guardado ni el estado.
// @Tags grid
// @Security BearerAuth
// @Produce json
// @Param q query string true "texto a buscar"
// @Success 200 {object} gridResponse
// @Router /me/search [get]
func (h *GridHandler) Search(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	sess := SessionFromContext(r.Context())

	q := r.URL.Query().Get("q")
	sess.SetSearch(q)

	matches := h.cat.Search(q, h.searchLimit)
	_, state := sess.Grid()
	_ = json.NewEncoder(w).Encode(gridResponse{
		State:   state,
		Search:  q,
		Ratings: sess.RatingCount(),
		Movies:  h.toGrid(r.Context(), matches),
	})
}
