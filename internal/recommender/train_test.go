package recommender

import (
	"math"
	"path/filepath"
	"testing"

	"movierec/internal/models"
)

func TestBuildItemKNN_CosineAndMinCommon(t *testing.T) {
	ratings := []TrainingRating{
		{UserID: 1, MovieID: 1, Rating: 4}, {UserID: 1, MovieID: 2, Rating: 4},
		{UserID: 2, MovieID: 1, Rating: 5}, {UserID: 2, MovieID: 2, Rating: 5},
		{UserID: 3, MovieID: 1, Rating: 3}, {UserID: 3, MovieID: 3, Rating: 4},
	}

	art := BuildItemKNN(ratings, 10, 2)

	if art.Algo != "item-knn" || art.Metric != "cosine" {
		t.Fatalf("artefacto mal etiquetado: %s/%s", art.Algo, art.Metric)
	}

	// m1 y m3 comparten un solo usuario: el par no cuenta
	for _, nb := range art.Neighbors[1] {
		if nb.MovieID == 3 {
			t.Fatalf("par con menos de min_common usuarios no debe entrar")
		}
	}

	// sim(m1, m2) = 41 / (sqrt(50)*sqrt(41))
	want := 41.0 / (math.Sqrt(50) * math.Sqrt(41))
	var got float64
	for _, nb := range art.Neighbors[1] {
		if nb.MovieID == 2 {
			got = nb.Sim
		}
	}
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("sim(1,2) = %f, esperaba %f", got, want)
	}

	// la similitud es simétrica
	var back float64
	for _, nb := range art.Neighbors[2] {
		if nb.MovieID == 1 {
			back = nb.Sim
		}
	}
	if math.Abs(back-got) > 1e-9 {
		t.Fatalf("sim asimétrica: %f vs %f", got, back)
	}
}

func TestBuildItemKNN_TopKOrderAndTruncation(t *testing.T) {
	ratings := []TrainingRating{
		{UserID: 1, MovieID: 1, Rating: 5}, {UserID: 1, MovieID: 2, Rating: 5},
		{UserID: 1, MovieID: 3, Rating: 1}, {UserID: 1, MovieID: 4, Rating: 4},
		{UserID: 2, MovieID: 1, Rating: 5}, {UserID: 2, MovieID: 2, Rating: 5},
		{UserID: 2, MovieID: 3, Rating: 5}, {UserID: 2, MovieID: 4, Rating: 1},
	}

	art := BuildItemKNN(ratings, 2, 2)

	ns := art.Neighbors[1]
	if len(ns) != 2 {
		t.Fatalf("k=2 pero m1 tiene %d vecinos", len(ns))
	}
	if ns[0].MovieID != 2 {
		t.Fatalf("el vecino más parecido de m1 debe ser m2, got=%d", ns[0].MovieID)
	}
	if ns[0].Sim < ns[1].Sim {
		t.Fatalf("vecinos fuera de orden: %v", ns)
	}
	for _, nb := range ns {
		if nb.Sim <= 0 {
			t.Fatalf("solo se guardan similitudes positivas: %v", nb)
		}
	}
}

// entrenar -> guardar -> cargar -> recomendar, el ciclo completo
func TestBuildItemKNN_RoundTrip(t *testing.T) {
	ratings := []TrainingRating{
		{UserID: 1, MovieID: 1, Rating: 5}, {UserID: 1, MovieID: 2, Rating: 5},
		{UserID: 2, MovieID: 1, Rating: 4}, {UserID: 2, MovieID: 2, Rating: 5},
		{UserID: 2, MovieID: 3, Rating: 4},
		{UserID: 3, MovieID: 2, Rating: 5}, {UserID: 3, MovieID: 3, Rating: 4},
	}

	art := BuildItemKNN(ratings, 10, 2)
	path := filepath.Join(t.TempDir(), "model.gob")
	if err := art.Save(path); err != nil {
		t.Fatal(err)
	}

	m := NewItemKNN()
	if err := m.Load(path); err != nil {
		t.Fatal(err)
	}

	got, err := m.Recommend([]models.Rating{{MovieID: 1, Value: 5}}, 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) == 0 {
		t.Fatalf("el modelo entrenado no recomendó nada")
	}
	for _, id := range got {
		if id == 1 {
			t.Fatalf("recomendó una película ya valorada")
		}
	}
}
