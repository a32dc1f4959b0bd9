package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"movierec/internal/session"
)

type RatingHandler struct{}

func NewRatingHandler() *RatingHandler { return &RatingHandler{} }

type ratingRequest struct {
	MovieID int `json:"movieId"`
	Rating  int `json:"rating"`
}

// @Summary Crear/actualizar rating
// @Description Upsert del rating (0..5) de una película de la sesión
// @Tags ratings
// @Security BearerAuth
// @Accept json
// @Param body body ratingRequest true "rating"
// @Success 204
// @Failure 400 {string} string "rating fuera de rango"
// @Router /me/ratings [post]
func (h *RatingHandler) PostMyRating(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	sess := SessionFromContext(r.Context())

	var req ratingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := sess.Rate(req.MovieID, req.Rating); err != nil {
		if errors.Is(err, session.ErrInvalidRating) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Listar ratings de la sesión
// @Tags ratings
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Rating
// @Router /me/ratings [get]
func (h *RatingHandler) GetMyRatings(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	sess := SessionFromContext(r.Context())
	_ = json.NewEncoder(w).Encode(sess.Ratings())
}

// @Summary Limpiar todos los ratings
// @Description Vacía los ratings sin tocar el grid ni el estado
// @Tags ratings
// @Security BearerAuth
// @Success 204
// @Router /me/ratings [delete]
func (h *RatingHandler) ClearMyRatings(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	sess.ClearRatings()
	w.WriteHeader(http.StatusNoContent)
}
