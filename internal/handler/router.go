package handler

import (
	"movierec/internal/catalog"
	"movierec/internal/config"
	"movierec/internal/poster"
	"movierec/internal/recommender"
	"movierec/internal/session"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter arma todas las rutas. Separado de main para poder levantar
// el router completo en tests con httptest.
func NewRouter(
	cfg *config.Config,
	cat *catalog.Catalog,
	posters *poster.Cache,
	model recommender.Model,
	mgr *session.Manager,
) *chi.Mux {
	sessionH := NewSessionHandler(mgr, cat, cfg.JWTSecret, cfg.RandomCount)
	gridH := NewGridHandler(cat, posters, cfg.RandomCount, cfg.SearchLimit)
	ratingH := NewRatingHandler()
	recH := NewRecommendHandler(model, cat, posters, cfg.RecommendCount)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// =============
	// Rutas públicas
	// =============
	r.Get("/health", Health)
	r.Post("/session", sessionH.Create)

	// ===========================
	// Rutas de sesión (token JWT)
	// ===========================
	authMw := SessionAuth(cfg.JWTSecret, mgr)

	r.Group(func(r chi.Router) {
		r.Use(authMw)

		r.Route("/me", func(r chi.Router) {
			r.Get("/grid", gridH.GetGrid)
			r.Post("/grid/refresh", gridH.Refresh)
			r.Get("/search", gridH.Search)

			r.Get("/ratings", ratingH.GetMyRatings)
			r.Post("/ratings", ratingH.PostMyRating)
			r.Delete("/ratings", ratingH.ClearMyRatings)

			r.Post("/recommendations", recH.PostMyRecommendations)

			// WebSocket
			r.Get("/ws/recommendations", recH.GetMyRecommendationsWS)
		})
	})

	return r
}
