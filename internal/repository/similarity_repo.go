package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ibukun5588/problem-set-1/internal/models"
)

type SimilarityRepository struct {
	col *mongo.Collection
}

func NewSimilarityRepository(db *mongo.Database) *SimilarityRepository {
	return &SimilarityRepository{col: db.Collection("similarities")}
}

func similarityDocID(actorID, metric string) string {
	return actorID + ":" + metric
}

// Upsert reemplaza los vecinos guardados para (actor, métrica).
func (r *SimilarityRepository) Upsert(ctx context.Context, res models.SimilarityResult) error {
	doc := models.SimilarityDoc{
		ID:        similarityDocID(res.QueryID, res.Metric),
		ActorID:   res.QueryID,
		Metric:    res.Metric,
		K:         res.K,
		Neighbors: res.Rows,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, options.Replace().SetUpsert(true))
	return err
}
