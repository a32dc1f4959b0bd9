package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"movierec/internal/catalog"
	"movierec/internal/models"
	"movierec/internal/poster"
	"movierec/internal/recommender"
	"movierec/internal/session"

	"github.com/gorilla/websocket"
)

type RecommendHandler struct {
	model   recommender.Model
	cat     *catalog.Catalog
	posters *poster.Cache
	count   int
}

func NewRecommendHandler(m recommender.Model, cat *catalog.Catalog, posters *poster.Cache, count int) *RecommendHandler {
	return &RecommendHandler{
		model:   m,
		cat:     cat,
		posters: posters,
		count:   count,
	}
}

type recommendResponse struct {
	State  session.State      `json:"state"`
	Movies []models.GridMovie `json:"movies"`
}

func (h *RecommendHandler) grid(r *http.Request, ids []int) []models.GridMovie {
	out := make([]models.GridMovie, 0, len(ids))
	for _, id := range ids {
		m, ok := h.cat.Get(id)
		if !ok {
			continue
		}
		out = append(out, models.GridMovie{
			MovieID:   m.MovieID,
			Title:     m.Title,
			TMDBID:    m.TMDBID,
			PosterURL: h.posters.Resolve(r.Context(), m.TMDBID),
		})
	}
	return out
}

// @Summary Pedir recomendaciones
// @Description Dispara la transición a Recommended; requiere >= 5 ratings
// @Tags recommend
// @Security BearerAuth
// @Produce json
// @Success 200 {object} recommendResponse
// @Failure 409 {string} string "faltan ratings"
// @Router /me/recommendations [post]
func (h *RecommendHandler) PostMyRecommendations(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	sess := SessionFromContext(r.Context())

	ids, err := sess.Recommend(h.model, h.cat, h.count)
	if err != nil {
		if errors.Is(err, session.ErrNotEnoughRatings) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	_, state := sess.Grid()
	_ = json.NewEncoder(w).Encode(recommendResponse{
		State:  state,
		Movies: h.grid(r, ids),
	})
}

// upgrader global (no afecta a swagger)
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// @Summary Recomendaciones en tiempo real (WebSocket)
// @Description Frames: start, progress (un póster resuelto) y recommendations
// @Tags recommend
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /me/ws/recommendations [get]
func (h *RecommendHandler) GetMyRecommendationsWS(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "No se pudo abrir WebSocket", http.StatusBadRequest)
		return
	}
	defer conn.Close()

	conn.WriteJSON(map[string]any{
		"type": "start",
		"msg":  "Conexión WS abierta, calculando recomendaciones…",
	})

	ids, err := sess.Recommend(h.model, h.cat, h.count)
	if err != nil {
		conn.WriteJSON(map[string]any{
			"type":  "error",
			"error": err.Error(),
		})
		return
	}

	// resolver pósters uno por uno, avisando el avance
	movies := make([]models.GridMovie, 0, len(ids))
	for i, id := range ids {
		m, ok := h.cat.Get(id)
		if !ok {
			continue
		}
		gm := models.GridMovie{
			MovieID:   m.MovieID,
			Title:     m.Title,
			TMDBID:    m.TMDBID,
			PosterURL: h.posters.Resolve(r.Context(), m.TMDBID),
		}
		movies = append(movies, gm)

		conn.WriteJSON(map[string]any{
			"type":  "progress",
			"done":  i + 1,
			"total": len(ids),
			"movie": gm,
		})
	}

	conn.WriteJSON(map[string]any{
		"type":        "recommendations",
		"sessionId":   sess.ID,
		"movies":      movies,
		"generatedAt": time.Now(),
	})
}
