package models

import "time"

const (
	RunKindCentrality = "centrality"
	RunKindSimilarity = "similarity"
)

// AnalysisRun es el historial de una corrida exportado a Mongo.
// Solo se escribe; ningún pipeline lo vuelve a leer para construir nada.
type AnalysisRun struct {
	ID         string            `bson:"_id"        json:"id"`
	Kind       string            `bson:"kind"       json:"kind"`
	Dataset    string            `bson:"dataset"    json:"dataset"`
	Params     map[string]any    `bson:"params"     json:"params"`
	Nodes      int               `bson:"nodes"      json:"nodes"`
	Edges      int               `bson:"edges"      json:"edges"`
	Centrality []CentralityRow   `bson:"centrality,omitempty" json:"centrality,omitempty"`
	Similarity *SimilarityResult `bson:"similarity,omitempty" json:"similarity,omitempty"`
	ElapsedMs  int64             `bson:"elapsedMs"  json:"elapsedMs"`
	CreatedAt  time.Time         `bson:"createdAt"  json:"createdAt"`
}
