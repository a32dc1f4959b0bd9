package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort  string
	JWTSecret string

	// TMDB / pósters
	TMDBToken      string
	TMDBBaseImgURL string
	PosterLang     string
	PosterCacheCSV string

	// datos y modelo
	MoviesCSV string
	LinksCSV  string
	ModelPath string

	// tamaños del grid
	RandomCount    int
	RecommendCount int
	SearchLimit    int
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		HTTPPort:  getEnv("HTTP_PORT", "8080"),
		JWTSecret: getEnv("JWT_SECRET", "super-secret"),

		// sin token TMDB no hay API de pósters: todo degrada al placeholder,
		// por eso no lleva default ni warning
		TMDBToken:      os.Getenv("TMDB_API_TOKEN"),
		TMDBBaseImgURL: getEnv("TMDB_BASE_IMG_URL", "https://image.tmdb.org/t/p/w200"),
		PosterLang:     getEnv("MR_POSTER_LANG", "en"),
		PosterCacheCSV: getEnv("MR_CACHE_POSTERS_URLS", ".cache/posters.csv"),

		MoviesCSV: getEnv("MOVIES_CSV", "data/csv/movies.csv"),
		LinksCSV:  getEnv("LINKS_CSV", "data/csv/links.csv"),
		ModelPath: getEnv("MODEL_PATH", "models/item-knn.gob"),

		RandomCount:    getEnvInt("MR_RANDOM_MOVIES_COUNT", 10),
		RecommendCount: getEnvInt("MR_RECOMMENDATIONS_COUNT", 10),
		SearchLimit:    getEnvInt("MR_SEARCH_LIMIT", 20),
	}
}

func getEnv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Printf("[config] %s no está seteado, usando valor por defecto\n", key)
		return def
	}
	return v
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		log.Printf("[config] %s no está seteado, usando valor por defecto\n", key)
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[config] %s=%q no es un entero, usando valor por defecto\n", key, v)
		return def
	}
	return n
}
