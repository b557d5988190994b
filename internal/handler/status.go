package handler

import (
	"net/http"

	"jenny-wellness/internal/metrics"
)

// StatusHandler отдает служебные эндпоинты
type StatusHandler struct {
	metrics *metrics.Metrics
}

func NewStatusHandler(m *metrics.Metrics) *StatusHandler {
	return &StatusHandler{metrics: m}
}

func (h *StatusHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *StatusHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.metrics.GetSnapshot())
}
