package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ibukun5588/problem-set-1/internal/cache"
	"github.com/ibukun5588/problem-set-1/internal/config"
	"github.com/ibukun5588/problem-set-1/internal/dataset"
	"github.com/ibukun5588/problem-set-1/internal/db"
	"github.com/ibukun5588/problem-set-1/internal/handler"
	"github.com/ibukun5588/problem-set-1/internal/logging"
	"github.com/ibukun5588/problem-set-1/internal/repository"
	"github.com/ibukun5588/problem-set-1/internal/service"
)

func main() {
	// nivel provisorio hasta leer la config
	logging.Setup(os.Getenv("LOG_LEVEL"))
	cfg := config.Load()
	logging.Setup(cfg.LogLevel)

	// Dataset: si ya está en disco no se vuelve a bajar
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	path := cfg.DatasetPath()
	if err := dataset.Ensure(ctx, nil, cfg.DatasetURL, path, false); err != nil {
		log.Info().Str("component", "dataset").Str("path", path).Msg("dataset no encontrado, descargando")
		if err := dataset.Ensure(ctx, nil, cfg.DatasetURL, path, true); err != nil {
			cancel()
			log.Fatal().Str("component", "dataset").Err(err).Msg("no se pudo obtener el dataset")
		}
	}
	cancel()

	// Mongo y Redis (opcionales)
	if err := db.InitMongo(cfg); err != nil {
		log.Fatal().Str("component", "mongo").Err(err).Msg("error conectando a Mongo")
	}
	if err := cache.InitRedis(cfg); err != nil {
		log.Fatal().Str("component", "redis").Err(err).Msg("error conectando a Redis")
	}
	defer cache.Close()
	defer db.Close(context.Background())

	// repos: sin Mongo quedan en nil y el servicio no exporta
	var runs service.RunStore
	var neighbors service.NeighborStore
	if db.Enabled() {
		runs = repository.NewRunRepository(db.DB())
		neighbors = repository.NewSimilarityRepository(db.DB())
	}

	svc := service.NewAnalysisService(path, cfg.CacheTTLSeconds, runs, neighbors)

	log.Info().Str("component", "http").Msgf("HTTP escuchando en :%s", cfg.HTTPPort)
	if err := http.ListenAndServe(":"+cfg.HTTPPort, handler.NewRouter(svc)); err != nil {
		log.Error().Str("component", "http").Err(err).Msg("servidor detenido")
	}
}
