package main

import (
	"encoding/csv"
	"flag"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"movierec/internal/config"
	"movierec/internal/recommender"
)

// Entrena el item-knn offline: lee ratings.csv (MovieLens), precalcula
// los vecinos cosine de cada película y serializa el artefacto que
// después carga la API.
func main() {
	cfg := config.Load()

	ratingsPath := flag.String("ratings", "data/csv/ratings.csv", "ratings.csv de entrada")
	outPath := flag.String("out", cfg.ModelPath, "artefacto de salida (gob)")
	k := flag.Int("k", recommender.DefaultK, "vecinos por película")
	minCommon := flag.Int("min-common", recommender.DefaultMinCommon, "mínimo de usuarios en común por par")
	flag.Parse()

	ratings, err := readRatings(*ratingsPath)
	if err != nil {
		log.Fatalf("[trainer] error leyendo ratings: %v", err)
	}
	log.Printf("[trainer] %d ratings leídos de %s", len(ratings), *ratingsPath)

	start := time.Now()
	art := recommender.BuildItemKNN(ratings, *k, *minCommon)
	log.Printf("[trainer] similitudes listas: %d películas con vecinos, tiempo=%s",
		len(art.Neighbors), time.Since(start))

	if err := art.Save(*outPath); err != nil {
		log.Fatalf("[trainer] error guardando modelo: %v", err)
	}
	log.Printf("[trainer] ✅ modelo guardado en %s (k=%d, min_common=%d)", *outPath, *k, *minCommon)
}

// readRatings: columnas userId,movieId,rating,timestamp con header.
func readRatings(path string) ([]recommender.TrainingRating, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	if _, err := r.Read(); err != nil { // header
		return nil, err
	}

	var out []recommender.TrainingRating
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(rec) < 3 {
			continue
		}
		userID, err1 := strconv.Atoi(rec[0])
		movieID, err2 := strconv.Atoi(rec[1])
		rating, err3 := strconv.ParseFloat(rec[2], 64)
		if err1 != nil || err2 != nil || err3 != nil {
			continue
		}
		out = append(out, recommender.TrainingRating{
			UserID:  userID,
			MovieID: movieID,
			Rating:  rating,
		})
	}
	return out, nil
}
