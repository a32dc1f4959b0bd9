package main

import (
	"log"
	"net/http"

	_ "movierec/docs" // swagger docs

	"movierec/internal/catalog"
	"movierec/internal/config"
	"movierec/internal/handler"
	"movierec/internal/poster"
	"movierec/internal/recommender"
	"movierec/internal/session"

	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Movie Recommender API
// @version 1.0
// @description Recomendador de películas (item-knn, catálogo MovieLens, pósters TMDB)
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	// catálogo estático (movies.csv + links.csv, read-only de acá en adelante)
	cat, err := catalog.Load(cfg.MoviesCSV, cfg.LinksCSV)
	if err != nil {
		log.Fatalf("[catalog] error cargando catálogo: %v", err)
	}

	// cache de pósters compartido por todas las sesiones
	posters, err := poster.NewCache(
		cfg.PosterCacheCSV,
		poster.NewClient(cfg.TMDBToken, cfg.TMDBBaseImgURL, cfg.PosterLang),
	)
	if err != nil {
		log.Fatalf("[poster] error inicializando cache: %v", err)
	}
	if cfg.TMDBToken == "" {
		log.Println("[poster] ⚠️ sin TMDB_API_TOKEN: todos los pósters nuevos van al placeholder")
	}

	// modelo pre-entrenado, una sola carga por proceso
	model := recommender.NewItemKNN()
	if err := model.Load(cfg.ModelPath); err != nil {
		log.Fatalf("[recommender] %v", err)
	}

	mgr := session.NewManager()

	r := handler.NewRouter(cfg, cat, posters, model, mgr)

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	log.Printf("HTTP escuchando en :%s", cfg.HTTPPort)
	log.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, r))
}
