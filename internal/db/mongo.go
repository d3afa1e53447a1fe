package db

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ibukun5588/problem-set-1/internal/config"
)

var mongoClient *mongo.Client
var mongoDB *mongo.Database

// InitMongo conecta y hace ping. Sin MONGO_URI no hace nada: la exportación
// de resultados queda deshabilitada.
func InitMongo(cfg *config.Config) error {
	if cfg.MongoURI == "" {
		log.Info().Str("component", "mongo").Msg("MONGO_URI vacío, exportación a Mongo deshabilitada")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return err
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return err
	}

	mongoClient = client
	mongoDB = client.Database(cfg.MongoDB)
	log.Info().Str("component", "mongo").Str("db", cfg.MongoDB).Msg("conectado")
	return nil
}

// DB devuelve nil si Mongo no está configurado.
func DB() *mongo.Database {
	return mongoDB
}

func Enabled() bool {
	return mongoDB != nil
}

func Close(ctx context.Context) error {
	if mongoClient == nil {
		return nil
	}
	err := mongoClient.Disconnect(ctx)
	mongoClient, mongoDB = nil, nil
	return err
}
