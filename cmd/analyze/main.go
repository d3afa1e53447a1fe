// Command analyze baja el dataset y corre los dos análisis: centralidad en
// el grafo de co-apariciones y actores similares por géneros.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ibukun5588/problem-set-1/internal/config"
	"github.com/ibukun5588/problem-set-1/internal/dataset"
	"github.com/ibukun5588/problem-set-1/internal/db"
	"github.com/ibukun5588/problem-set-1/internal/logging"
	"github.com/ibukun5588/problem-set-1/internal/models"
	"github.com/ibukun5588/problem-set-1/internal/report"
	"github.com/ibukun5588/problem-set-1/internal/repository"
	"github.com/ibukun5588/problem-set-1/internal/service"
)

func main() {
	// nivel provisorio hasta leer la config
	logging.Setup(os.Getenv("LOG_LEVEL"))
	cfg := config.Load()

	flag.StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "directorio del dataset")
	flag.StringVar(&cfg.DatasetFile, "dataset-file", cfg.DatasetFile, "nombre del archivo NDJSON")
	flag.StringVar(&cfg.OutDir, "out-dir", cfg.OutDir, "directorio de los CSV de salida")
	flag.StringVar(&cfg.DatasetURL, "url", cfg.DatasetURL, "URL del dataset")
	flag.StringVar(&cfg.QueryActorID, "actor", cfg.QueryActorID, "actor_id de consulta para similitud")
	flag.IntVar(&cfg.TopN, "top-n", cfg.TopN, "filas de centralidad a imprimir")
	flag.IntVar(&cfg.SimilarK, "k", cfg.SimilarK, "cantidad de vecinos")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "nivel de log")
	fetch := flag.Bool("fetch", true, "descargar el dataset antes de analizar")
	flag.Parse()

	logging.Setup(cfg.LogLevel)
	if cfg.TopN <= 0 {
		log.Warn().Int("top-n", cfg.TopN).Msg("-top-n inválido, usando 10")
		cfg.TopN = 10
	}

	if err := run(context.Background(), cfg, *fetch, os.Stdout); err != nil {
		log.Error().Err(err).Msg("análisis abortado")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, fetch bool, out io.Writer) error {
	path := cfg.DatasetPath()
	if err := dataset.Ensure(ctx, nil, cfg.DatasetURL, path, fetch); err != nil {
		return err
	}

	// exportación opcional a Mongo
	if err := db.InitMongo(cfg); err != nil {
		log.Warn().Str("component", "mongo").Err(err).Msg("sin exportación a Mongo")
	}
	defer db.Close(context.Background())

	var runs service.RunStore
	var neighbors service.NeighborStore
	if db.Enabled() {
		runs = repository.NewRunRepository(db.DB())
		neighbors = repository.NewSimilarityRepository(db.DB())
	}
	svc := service.NewAnalysisService(path, cfg.CacheTTLSeconds, runs, neighbors)

	ts := time.Now()

	// 1) Grafo de co-apariciones
	g, err := svc.Centrality(ctx)
	if err != nil {
		return err
	}
	report.PrintGraphSummary(out, g.NodeCount, g.EdgeCount, g.Centrality, cfg.TopN)
	fmt.Fprintln(out)
	report.PrintEdges(out, g.Edges, cfg.TopN)
	fmt.Fprintln(out)

	if err := saveCSV(report.CentralityFile(cfg.OutDir, ts), func(w io.Writer) error {
		return report.WriteCentrality(w, g.Centrality)
	}); err != nil {
		return err
	}
	if err := saveCSV(report.EdgesFile(cfg.OutDir, ts), func(w io.Writer) error {
		return report.WriteEdges(w, g.Edges)
	}); err != nil {
		return err
	}

	// 2) Similitud por géneros, coseno vs euclidiana
	cmp, err := svc.Compare(ctx, cfg.QueryActorID, cfg.SimilarK, true)
	if err != nil {
		return err
	}
	for _, res := range []models.SimilarityResult{cmp.Cosine, cmp.Euclidean} {
		report.PrintSimilarity(out, res)
		fmt.Fprintln(out)
	}
	fmt.Fprintln(out, cmp.Narrative)

	return saveCSV(report.SimilarityFile(cfg.OutDir, ts), func(w io.Writer) error {
		return report.WriteSimilarity(w, cmp.Cosine)
	})
}

func saveCSV(path string, fn func(io.Writer) error) error {
	if err := report.SaveFile(path, fn); err != nil {
		return err
	}
	log.Info().Str("component", "report").Str("path", path).Msg("CSV escrito")
	return nil
}
