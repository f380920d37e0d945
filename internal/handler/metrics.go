package handler

import (
	"fmt"
	"net/http"

	"github.com/polystack/polystack/internal/metrics"
)

// MetricsHandler exposes in-memory metrics.
type MetricsHandler struct {
	snapshotter metrics.Snapshotter
}

// NewMetricsHandler creates a new MetricsHandler.
func NewMetricsHandler(snapshotter metrics.Snapshotter) *MetricsHandler {
	return &MetricsHandler{snapshotter: snapshotter}
}

// Metrics returns counters in Prometheus exposition format.
//
// GET /metrics
func (h *MetricsHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	if h.snapshotter == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	snap := h.snapshotter.Snapshot()

	w.Header().Set("Content-Type", "text/plain; version=0.0.4")

	writeMetric(w, "polystack_users_created_total %d\n", snap.UsersCreated)
	writeMetric(w, "polystack_products_created_total %d\n", snap.ProductsCreated)
	writeMetric(w, "polystack_users_listed_total %d\n", snap.UsersListed)
	writeMetric(w, "polystack_products_listed_total %d\n", snap.ProductsListed)
	writeMetric(w, "polystack_store_errors_total %d\n", snap.StoreErrors)
}

func writeMetric(w http.ResponseWriter, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
