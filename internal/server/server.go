package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mattn/sexpcalc"
)

// maxBody caps request bodies in addition to the evaluator's own length
// limit.
const maxBody = 4 << 20

type EvaluateRequest struct {
	Expression string `json:"expression"`
}

type EvaluateResponse struct {
	Result string `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

type handler struct {
	ev     *sexpcalc.Evaluator
	logger *slog.Logger
}

// NewHandler serves POST /evaluate, GET /healthz and, when gatherer is not
// nil, GET /metrics.
func NewHandler(ev *sexpcalc.Evaluator, logger *slog.Logger, gatherer prometheus.Gatherer) http.Handler {
	h := &handler{ev: ev, logger: logger}
	r := chi.NewRouter()
	r.Post("/evaluate", h.evaluate)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})
	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

func (h *handler) evaluate(w http.ResponseWriter, r *http.Request) {
	var req EvaluateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, EvaluateResponse{Error: "malformed request: " + err.Error()})
		return
	}

	v, err := h.ev.Evaluate(req.Expression)
	if err != nil {
		h.logger.Info("rejected expression", "error", err, "limit", errors.Is(err, sexpcalc.ErrLimitExceeded))
		writeJSON(w, http.StatusUnprocessableEntity, EvaluateResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, EvaluateResponse{Result: v.String()})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
