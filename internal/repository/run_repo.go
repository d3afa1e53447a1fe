package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ibukun5588/problem-set-1/internal/models"
)

type RunRepository struct {
	col *mongo.Collection
}

func NewRunRepository(db *mongo.Database) *RunRepository {
	return &RunRepository{
		col: db.Collection("analysis_runs"),
	}
}

func (r *RunRepository) Insert(ctx context.Context, run *models.AnalysisRun) error {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}
	_, err := r.col.InsertOne(ctx, run)
	return err
}

// FindRecent lista el historial, más nuevo primero. kind vacío = todos.
func (r *RunRepository) FindRecent(ctx context.Context, kind string, limit int64) ([]models.AnalysisRun, error) {
	filter := bson.M{}
	if kind != "" {
		filter["kind"] = kind
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.AnalysisRun
	for cur.Next(ctx) {
		var run models.AnalysisRun
		if err := cur.Decode(&run); err != nil {
			return nil, err
		}
		out = append(out, run)
	}
	return out, cur.Err()
}
