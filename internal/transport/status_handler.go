// Package transport exposes the HTTP handlers of the ingester.
package transport

import (
	"encoding/json"
	"net/http"

	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/chainweb-ingester/internal/chainweb/model"
)

// StatusSource provides the latest status of every chain worker.
type StatusSource interface {
	Snapshot() []model.ChainStatus
}

// StatusHandler serves chain worker statuses as a JSON array.
type StatusHandler struct {
	source StatusSource
	logger *zap.Logger
}

// NewStatusHandler returns a StatusHandler instance.
func NewStatusHandler(source StatusSource, logger *zap.Logger) *StatusHandler {
	return &StatusHandler{source: source, logger: logger}
}

func (h *StatusHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	statuses := h.source.Snapshot()
	if statuses == nil {
		statuses = []model.ChainStatus{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	if r.Method == http.MethodHead {
		return
	}
	if err := json.NewEncoder(w).Encode(statuses); err != nil {
		h.logger.Warn("failed to write status response", zap.Error(err))
	}
}

// NewHandler routes /metrics and /status behind permissive CORS.
func NewHandler(status StatusSource, metrics http.Handler, logger *zap.Logger) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics)
	mux.Handle("/status", NewStatusHandler(status, logger))
	return cors.Default().Handler(mux)
}
