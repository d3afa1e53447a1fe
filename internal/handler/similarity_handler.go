package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/ibukun5588/problem-set-1/internal/apperr"
	"github.com/ibukun5588/problem-set-1/internal/models"
	"github.com/ibukun5588/problem-set-1/internal/service"
	"github.com/ibukun5588/problem-set-1/internal/similarity"
)

type SimilarityHandler struct {
	svc *service.AnalysisService
}

func NewSimilarityHandler(s *service.AnalysisService) *SimilarityHandler {
	return &SimilarityHandler{svc: s}
}

// GET /actors/{id}/similar?metric=cosine&k=10&refresh=true
func (h *SimilarityHandler) GetSimilar(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Similar(r.Context(), service.SimilarRequest{
		ActorID: chi.URLParam(r, "id"),
		Metric:  r.URL.Query().Get("metric"),
		K:       queryInt(r, "k", similarity.DefaultK),
		Refresh: r.URL.Query().Get("refresh") == "true",
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// GET /actors/{id}/compare?k=10
func (h *SimilarityHandler) GetCompare(w http.ResponseWriter, r *http.Request) {
	rep, err := h.svc.Compare(r.Context(), chi.URLParam(r, "id"), queryInt(r, "k", similarity.DefaultK), r.URL.Query().Get("refresh") == "true")
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

// upgrader global
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsMessage es lo que viaja por el WebSocket.
type wsMessage struct {
	Type       string                   `json:"type"`
	Msg        string                   `json:"msg,omitempty"`
	Metric     string                   `json:"metric,omitempty"`
	Result     *models.SimilarityResult `json:"result,omitempty"`
	Comparison *models.MetricComparison `json:"comparison,omitempty"`
	Narrative  string                   `json:"narrative,omitempty"`
	Error      string                   `json:"error,omitempty"`
	Status     int                      `json:"status,omitempty"`
	At         time.Time                `json:"at"`
}

// GET /ws/actors/{id}/similar?k=10
// Manda "start", un "result" por métrica, "comparison" al final (o "error").
func (h *SimilarityHandler) StreamSimilar(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade ya respondió con el error HTTP
		return
	}
	defer conn.Close()

	actorID := chi.URLParam(r, "id")
	k := queryInt(r, "k", similarity.DefaultK)
	refresh := r.URL.Query().Get("refresh") == "true"

	send := func(m wsMessage) bool {
		m.At = time.Now()
		if err := conn.WriteJSON(m); err != nil {
			log.Warn().Str("component", "ws").Err(err).Msg("no se pudo escribir en el WebSocket")
			return false
		}
		return true
	}
	fail := func(err error) {
		send(wsMessage{Type: "error", Error: err.Error(), Status: apperr.HTTPStatus(err)})
	}

	if !send(wsMessage{Type: "start", Msg: "calculando vecinos para " + actorID}) {
		return
	}

	// una sola lectura del dataset para las dos métricas
	rep, err := h.svc.Compare(r.Context(), actorID, k, refresh)
	if err != nil {
		fail(err)
		return
	}
	for _, res := range []models.SimilarityResult{rep.Cosine, rep.Euclidean} {
		if !send(wsMessage{Type: "result", Metric: res.Metric, Result: &res}) {
			return
		}
	}

	send(wsMessage{Type: "comparison", Comparison: &rep.Comparison, Narrative: rep.Narrative})
}
