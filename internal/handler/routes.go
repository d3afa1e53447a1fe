package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ibukun5588/problem-set-1/internal/service"
)

// NewRouter monta todas las rutas sobre un router chi.
func NewRouter(svc *service.AnalysisService) http.Handler {
	centralityH := NewCentralityHandler(svc)
	similarityH := NewSimilarityHandler(svc)
	runH := NewRunHandler(svc)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", Health)

	r.Route("/actors", func(r chi.Router) {
		r.Get("/centrality", centralityH.GetCentrality)
		r.Get("/edges", centralityH.GetEdges)
		r.Get("/{id}/similar", similarityH.GetSimilar)
		r.Get("/{id}/compare", similarityH.GetCompare)
	})

	// WebSocket
	r.Get("/ws/actors/{id}/similar", similarityH.StreamSimilar)

	r.Get("/runs", runH.ListRuns)

	return r
}
