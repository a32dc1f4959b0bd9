package recommender

import (
	"math"
	"sort"
)

// TrainingRating: fila cruda de ratings.csv para el entrenamiento offline.
type TrainingRating struct {
	UserID  int
	MovieID int
	Rating  float64
}

// defaults del trainer
const (
	DefaultK         = 50
	DefaultMinCommon = 2
)

// BuildItemKNN precalcula las similitudes item-item (cosine) y se queda
// con los k vecinos más parecidos por película. Pares con menos de
// minCommon usuarios en común no cuentan, y solo guardamos sim > 0.
//
// El producto punto se acumula recorriendo usuario por usuario los pares
// de películas co-valoradas, así nunca se materializa la matriz completa.
func BuildItemKNN(ratings []TrainingRating, k, minCommon int) *Artifact {
	if k <= 0 {
		k = DefaultK
	}
	if minCommon <= 0 {
		minCommon = DefaultMinCommon
	}

	// vector de cada usuario (rating duplicado: gana el último)
	byUser := make(map[int]map[int]float64)
	for _, r := range ratings {
		if byUser[r.UserID] == nil {
			byUser[r.UserID] = make(map[int]float64)
		}
		byUser[r.UserID][r.MovieID] = r.Rating
	}

	normSq := make(map[int]float64)
	for _, items := range byUser {
		for id, v := range items {
			normSq[id] += v * v
		}
	}

	type pair struct{ a, b int }
	dots := make(map[pair]float64)
	common := make(map[pair]int)

	for _, items := range byUser {
		ids := make([]int, 0, len(items))
		for id := range items {
			ids = append(ids, id)
		}
		sort.Ints(ids) // par canónico a < b

		for i := 0; i < len(ids); i++ {
			for j := i + 1; j < len(ids); j++ {
				p := pair{ids[i], ids[j]}
				dots[p] += items[ids[i]] * items[ids[j]]
				common[p]++
			}
		}
	}

	neighbors := make(map[int][]Neighbor)
	for p, dot := range dots {
		if common[p] < minCommon {
			continue
		}
		den := math.Sqrt(normSq[p.a]) * math.Sqrt(normSq[p.b])
		if den == 0 {
			continue
		}
		sim := dot / den
		if sim <= 0 {
			continue
		}
		neighbors[p.a] = append(neighbors[p.a], Neighbor{MovieID: p.b, Sim: sim})
		neighbors[p.b] = append(neighbors[p.b], Neighbor{MovieID: p.a, Sim: sim})
	}

	for id, ns := range neighbors {
		sort.Slice(ns, func(i, j int) bool {
			if ns[i].Sim != ns[j].Sim {
				return ns[i].Sim > ns[j].Sim
			}
			return ns[i].MovieID < ns[j].MovieID
		})
		if len(ns) > k {
			ns = ns[:k]
		}
		neighbors[id] = ns
	}

	return &Artifact{
		Algo:      "item-knn",
		Metric:    "cosine",
		K:         k,
		Neighbors: neighbors,
	}
}
