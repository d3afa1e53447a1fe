package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ibukun5588/problem-set-1/internal/apperr"
	"github.com/ibukun5588/problem-set-1/internal/cache"
	"github.com/ibukun5588/problem-set-1/internal/dataset"
	"github.com/ibukun5588/problem-set-1/internal/genre"
	"github.com/ibukun5588/problem-set-1/internal/graph"
	"github.com/ibukun5588/problem-set-1/internal/models"
	"github.com/ibukun5588/problem-set-1/internal/similarity"
)

const (
	MaxK = 100 // por seguridad, no deja pedir miles de vecinos
	// filas de centralidad que se guardan en el historial de Mongo
	storedCentralityRows = 100
)

// RunStore guarda el historial de corridas (Mongo en producción).
type RunStore interface {
	Insert(ctx context.Context, run *models.AnalysisRun) error
	FindRecent(ctx context.Context, kind string, limit int64) ([]models.AnalysisRun, error)
}

// NeighborStore guarda la última lista de vecinos por actor+métrica.
type NeighborStore interface {
	Upsert(ctx context.Context, res models.SimilarityResult) error
}

// AnalysisService corre los dos pipelines contra el dataset local.
// No guarda estado entre corridas: cada llamada vuelve a leer el archivo.
type AnalysisService struct {
	datasetPath string
	cacheTTL    int
	runs        RunStore
	neighbors   NeighborStore
}

// runs y neighbors pueden ser nil (sin Mongo).
func NewAnalysisService(datasetPath string, cacheTTLSeconds int, runs RunStore, neighbors NeighborStore) *AnalysisService {
	return &AnalysisService{
		datasetPath: datasetPath,
		cacheTTL:    cacheTTLSeconds,
		runs:        runs,
		neighbors:   neighbors,
	}
}

func (s *AnalysisService) DatasetPath() string { return s.datasetPath }

// ====== Grafo de co-apariciones ======

type GraphReport struct {
	NodeCount  int                    `json:"nodeCount"`
	EdgeCount  int                    `json:"edgeCount"`
	Centrality []models.CentralityRow `json:"centrality"`
	Edges      []models.EdgeRow       `json:"edges"`
}

// BuildGraph lee el dataset completo y arma el grafo.
func (s *AnalysisService) BuildGraph(ctx context.Context) (*graph.ActorGraph, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := dataset.Open(s.datasetPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return graph.Build(dataset.Records(f))
}

// Centrality corre el pipeline del grafo y devuelve centralidad + aristas completas.
func (s *AnalysisService) Centrality(ctx context.Context) (*GraphReport, error) {
	start := time.Now()

	g, err := s.BuildGraph(ctx)
	if err != nil {
		return nil, err
	}

	rep := &GraphReport{
		NodeCount:  g.NodeCount(),
		EdgeCount:  g.EdgeCount(),
		Centrality: g.DegreeCentrality(),
		Edges:      g.Edges(),
	}
	elapsed := time.Since(start)

	log.Info().Str("component", "graph").
		Int("nodes", rep.NodeCount).Int("edges", rep.EdgeCount).
		Dur("elapsed", elapsed).Msg("grafo construido")

	if s.runs != nil {
		stored := rep.Centrality
		if len(stored) > storedCentralityRows {
			stored = stored[:storedCentralityRows]
		}
		run := &models.AnalysisRun{
			Kind:       models.RunKindCentrality,
			Dataset:    s.datasetPath,
			Params:     map[string]any{"storedRows": len(stored)},
			Nodes:      rep.NodeCount,
			Edges:      rep.EdgeCount,
			Centrality: stored,
			ElapsedMs:  elapsed.Milliseconds(),
		}
		// no rompemos el resultado si falla el historial
		if err := s.runs.Insert(ctx, run); err != nil {
			log.Warn().Str("component", "mongo").Err(err).Msg("error guardando corrida de centralidad")
		}
	}

	return rep, nil
}

// ====== Similitud por géneros ======

// BuildMatrix lee el dataset completo y arma la matriz actor x género.
func (s *AnalysisService) BuildMatrix(ctx context.Context) (*genre.Matrix, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := dataset.Open(s.datasetPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return genre.Build(dataset.Records(f))
}

type SimilarRequest struct {
	ActorID string
	Metric  string
	K       int
	Refresh bool
}

func (req *SimilarRequest) normalize() (similarity.Metric, error) {
	if req.ActorID == "" {
		return "", apperr.InvalidArgument("actor id is required")
	}
	if req.Metric == "" {
		req.Metric = string(similarity.Cosine)
	}
	metric, err := similarity.ParseMetric(req.Metric)
	if err != nil {
		return "", err
	}
	req.Metric = string(metric)
	if req.K <= 0 {
		req.K = similarity.DefaultK
	} else if req.K > MaxK {
		req.K = MaxK
	}
	return metric, nil
}

func cacheKey(req SimilarRequest) string {
	// refresh no entra en la key, solo decide si se usa el cache
	return fmt.Sprintf("sim:actor:%s:metric:%s:k:%d", req.ActorID, req.Metric, req.K)
}

// Similar devuelve los k actores más parecidos a req.ActorID.
func (s *AnalysisService) Similar(ctx context.Context, req SimilarRequest) (models.SimilarityResult, error) {
	metric, err := req.normalize()
	if err != nil {
		return models.SimilarityResult{}, err
	}

	// 1) Cache Redis (solo si refresh = false)
	if !req.Refresh {
		var cached models.SimilarityResult
		if ok, err := cache.GetJSON(ctx, cacheKey(req), &cached); err == nil && ok {
			return cached, nil
		}
	}

	// 2) Matriz desde el dataset
	m, err := s.BuildMatrix(ctx)
	if err != nil {
		return models.SimilarityResult{}, err
	}

	return s.similarFromMatrix(ctx, m, req, metric)
}

func (s *AnalysisService) similarFromMatrix(ctx context.Context, m *genre.Matrix, req SimilarRequest, metric similarity.Metric) (models.SimilarityResult, error) {
	start := time.Now()
	res, err := similarity.MostSimilar(m, req.ActorID, metric, req.K)
	if err != nil {
		return models.SimilarityResult{}, err
	}
	elapsed := time.Since(start)

	log.Info().Str("component", "similarity").
		Str("actor", req.ActorID).Str("metric", req.Metric).
		Int("actors", m.Len()).Int("genres", len(m.Genres())).
		Dur("elapsed", elapsed).Msg("vecinos calculados")

	// 3) Exportar a Mongo (no rompemos la respuesta si falla)
	if s.neighbors != nil {
		if err := s.neighbors.Upsert(ctx, res); err != nil {
			log.Warn().Str("component", "mongo").Err(err).Msg("error guardando vecinos")
		}
	}
	if s.runs != nil {
		run := &models.AnalysisRun{
			Kind:       models.RunKindSimilarity,
			Dataset:    s.datasetPath,
			Params:     map[string]any{"actorId": req.ActorID, "metric": req.Metric, "k": req.K, "refresh": req.Refresh},
			Nodes:      m.Len(),
			Similarity: &res,
			ElapsedMs:  elapsed.Milliseconds(),
		}
		if err := s.runs.Insert(ctx, run); err != nil {
			log.Warn().Str("component", "mongo").Err(err).Msg("error guardando corrida de similitud")
		}
	}

	// 4) Cachear en Redis
	if err := cache.SetJSON(ctx, cacheKey(req), res, s.cacheTTL); err != nil {
		log.Warn().Str("component", "redis").Err(err).Msg("error cacheando vecinos")
	}

	return res, nil
}

// ====== Comparación coseno vs euclidiana ======

type CompareReport struct {
	Cosine     models.SimilarityResult `json:"cosine"`
	Euclidean  models.SimilarityResult `json:"euclidean"`
	Comparison models.MetricComparison `json:"comparison"`
	Narrative  string                  `json:"narrative"`
}

// Compare arma la matriz una sola vez y consulta las dos métricas.
func (s *AnalysisService) Compare(ctx context.Context, actorID string, k int, refresh bool) (*CompareReport, error) {
	m, err := s.BuildMatrix(ctx)
	if err != nil {
		return nil, err
	}

	results := make(map[similarity.Metric]models.SimilarityResult, len(similarity.Metrics))
	for _, metric := range similarity.Metrics {
		req := SimilarRequest{ActorID: actorID, Metric: string(metric), K: k, Refresh: refresh}
		if _, err := req.normalize(); err != nil {
			return nil, err
		}
		res, err := s.similarFromMatrix(ctx, m, req, metric)
		if err != nil {
			return nil, err
		}
		results[metric] = res
	}

	cmp := similarity.Compare(results[similarity.Cosine], results[similarity.Euclidean])
	return &CompareReport{
		Cosine:     results[similarity.Cosine],
		Euclidean:  results[similarity.Euclidean],
		Comparison: cmp,
		Narrative:  similarity.Narrative(cmp),
	}, nil
}

// ====== Historial ======

var errNoHistory = errors.New("run history requires MONGO_URI")

func (s *AnalysisService) Runs(ctx context.Context, kind string, limit int64) ([]models.AnalysisRun, error) {
	if s.runs == nil {
		return nil, apperr.IO("run history", errNoHistory)
	}
	switch kind {
	case "", models.RunKindCentrality, models.RunKindSimilarity:
	default:
		return nil, apperr.InvalidArgument("unknown run kind %q", kind)
	}
	if limit <= 0 {
		limit = 20
	}
	return s.runs.FindRecent(ctx, kind, limit)
}
