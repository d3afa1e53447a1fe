package models

import (
	"encoding/json"
	"math"
)

// SimilarityRow es una fila del CSV de actores similares.
type SimilarityRow struct {
	ActorID   string  `json:"actorId" bson:"actorId"`
	ActorName string  `json:"actorName" bson:"actorName"`
	Distance  float64 `json:"distance" bson:"distance"`
}

// SimilarityResult: top-k actores más cercanos al query, distancia ascendente.
type SimilarityResult struct {
	QueryID   string          `json:"queryId" bson:"queryId"`
	QueryName string          `json:"queryName" bson:"queryName"`
	Metric    string          `json:"metric" bson:"metric"`
	K         int             `json:"k" bson:"k"`
	Rows      []SimilarityRow `json:"rows" bson:"rows"`
}

// IDs devuelve los actor_id en el orden del resultado.
func (r SimilarityResult) IDs() []string {
	out := make([]string, 0, len(r.Rows))
	for _, row := range r.Rows {
		out = append(out, row.ActorID)
	}
	return out
}

// SimilarityDoc es el documento en Mongo con los vecinos más recientes
// de un actor para una métrica (uno por actor+métrica).
type SimilarityDoc struct {
	ID        string          `json:"_id" bson:"_id"`
	ActorID   string          `json:"actorId" bson:"actorId"`
	Metric    string          `json:"metric" bson:"metric"`
	K         int             `json:"k" bson:"k"`
	Neighbors []SimilarityRow `json:"neighbors" bson:"neighbors"`
	UpdatedAt string          `json:"updatedAt" bson:"updatedAt"`
}

// MetricComparison resume cómo cambia la lista entre coseno y euclidiana.
type MetricComparison struct {
	QueryID       string   `json:"queryId"`
	Shared        []string `json:"shared"`
	OnlyCosine    []string `json:"onlyCosine"`
	OnlyEuclidean []string `json:"onlyEuclidean"`
}

// Overlap: fracción de la lista coseno que también aparece en la euclidiana.
func (c MetricComparison) Overlap() float64 {
	total := len(c.Shared) + len(c.OnlyCosine)
	if total == 0 {
		return 0
	}
	return float64(len(c.Shared)) / float64(total)
}

// MarshalJSON escribe null cuando la distancia es NaN (vector de magnitud cero),
// encoding/json no acepta NaN.
func (r SimilarityRow) MarshalJSON() ([]byte, error) {
	type alias struct {
		ActorID   string   `json:"actorId"`
		ActorName string   `json:"actorName"`
		Distance  *float64 `json:"distance"`
	}
	a := alias{ActorID: r.ActorID, ActorName: r.ActorName}
	if !math.IsNaN(r.Distance) {
		d := r.Distance
		a.Distance = &d
	}
	return json.Marshal(a)
}

// UnmarshalJSON es el inverso de MarshalJSON: null vuelve a NaN.
func (r *SimilarityRow) UnmarshalJSON(b []byte) error {
	var a struct {
		ActorID   string   `json:"actorId"`
		ActorName string   `json:"actorName"`
		Distance  *float64 `json:"distance"`
	}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	r.ActorID = a.ActorID
	r.ActorName = a.ActorName
	r.Distance = math.NaN()
	if a.Distance != nil {
		r.Distance = *a.Distance
	}
	return nil
}
