package handler

import (
	"net/http"

	"github.com/ibukun5588/problem-set-1/internal/service"
)

type CentralityHandler struct {
	svc *service.AnalysisService
}

func NewCentralityHandler(s *service.AnalysisService) *CentralityHandler {
	return &CentralityHandler{svc: s}
}

// GET /actors/centrality?limit=10
func (h *CentralityHandler) GetCentrality(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 10)

	rep, err := h.svc.Centrality(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	rows := rep.Centrality
	if len(rows) > limit {
		rows = rows[:limit]
	}
	writeJSON(w, http.StatusOK, rows)
}

// GET /actors/edges?limit=10
func (h *CentralityHandler) GetEdges(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 10)

	rep, err := h.svc.Centrality(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	edges := rep.Edges
	if len(edges) > limit {
		edges = edges[:limit]
	}
	writeJSON(w, http.StatusOK, edges)
}
