package handler

import (
	"net/http"

	"github.com/ibukun5588/problem-set-1/internal/service"
)

type RunHandler struct {
	svc *service.AnalysisService
}

func NewRunHandler(s *service.AnalysisService) *RunHandler {
	return &RunHandler{svc: s}
}

// GET /runs?kind=similarity&limit=20
func (h *RunHandler) ListRuns(w http.ResponseWriter, r *http.Request) {
	runs, err := h.svc.Runs(r.Context(), r.URL.Query().Get("kind"), int64(queryInt(r, "limit", 20)))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, runs)
}
