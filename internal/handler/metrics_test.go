package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/polystack/polystack/internal/metrics"
)

func TestMetrics(t *testing.T) {
	rec := metrics.NewInMemory()
	rec.IncUserCreated()
	rec.IncUserCreated()
	rec.IncProductsListed()
	rec.IncStoreError()

	h := NewMetricsHandler(rec)

	w := httptest.NewRecorder()
	h.Metrics(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("Content-Type = %q, want text/plain", ct)
	}

	body := w.Body.String()
	for _, want := range []string{
		"polystack_users_created_total 2",
		"polystack_products_listed_total 1",
		"polystack_store_errors_total 1",
		"polystack_products_created_total 0",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q:\n%s", want, body)
		}
	}
}

func TestMetrics_NoSnapshotter(t *testing.T) {
	h := NewMetricsHandler(nil)

	w := httptest.NewRecorder()
	h.Metrics(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", w.Code)
	}
}
