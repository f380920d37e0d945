package handler

import (
	"context"
	"net/http"
	"time"
)

// Version is the reported service version.
const Version = "1.0.0"

// StoreClock is the minimal store surface health checks need: a liveness
// ping plus a real query round-trip for the database clock.
type StoreClock interface {
	Ping(ctx context.Context) error
	Now(ctx context.Context) (time.Time, error)
}

// Pinger checks connectivity of a dependency.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports process and dependency liveness.
type HealthHandler struct {
	service string
	db      StoreClock
	cache   Pinger
	started time.Time
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(service string, db StoreClock, cache Pinger) *HealthHandler {
	return &HealthHandler{
		service: service,
		db:      db,
		cache:   cache,
		started: time.Now(),
	}
}

// HealthResponse represents the basic health check response.
type HealthResponse struct {
	Service   string     `json:"service"`
	Status    string     `json:"status"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
	Database  string     `json:"database,omitempty"`
	Error     string     `json:"error,omitempty"`
}

// Health reports whether the store answers a trivial query.
// The timestamp is the database clock, proving a full round-trip rather
// than a cached connection.
//
// GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	now, err := h.db.Now(ctx)
	if err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Service: h.service,
			Status:  "unhealthy",
			Error:   err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Service:   h.service,
		Status:    "healthy",
		Timestamp: &now,
		Database:  "connected",
	})
}

// DependencyStatus describes one dependency in the detailed health report.
type DependencyStatus struct {
	Status         string  `json:"status"`
	ResponseTimeMs float64 `json:"response_time_ms,omitempty"`
	Error          string  `json:"error,omitempty"`
}

// DetailedHealthResponse represents the detailed health check response.
type DetailedHealthResponse struct {
	Service       string                      `json:"service"`
	Status        string                      `json:"status"`
	Version       string                      `json:"version"`
	UptimeSeconds float64                     `json:"uptime_seconds"`
	Timestamp     time.Time                   `json:"timestamp"`
	Dependencies  map[string]DependencyStatus `json:"dependencies"`
}

// Detailed reports per-dependency health with response times.
// A dead database makes the service unhealthy (503); a dead cache only
// degrades it, since no data path uses Redis.
//
// GET /health/detailed
func (h *HealthHandler) Detailed(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	response := DetailedHealthResponse{
		Service:       h.service,
		Status:        "healthy",
		Version:       Version,
		UptimeSeconds: time.Since(h.started).Seconds(),
		Timestamp:     time.Now().UTC(),
		Dependencies:  make(map[string]DependencyStatus),
	}
	statusCode := http.StatusOK

	response.Dependencies["postgres"] = checkDependency(ctx, h.db)
	if response.Dependencies["postgres"].Status != "healthy" {
		response.Status = "unhealthy"
		statusCode = http.StatusServiceUnavailable
	}

	if h.cache != nil {
		response.Dependencies["redis"] = checkDependency(ctx, h.cache)
		if response.Dependencies["redis"].Status != "healthy" && response.Status == "healthy" {
			response.Status = "degraded"
		}
	}

	writeJSON(w, statusCode, response)
}

func checkDependency(ctx context.Context, dep Pinger) DependencyStatus {
	start := time.Now()
	if err := dep.Ping(ctx); err != nil {
		return DependencyStatus{Status: "unhealthy", Error: err.Error()}
	}
	elapsed := time.Since(start)
	return DependencyStatus{
		Status:         "healthy",
		ResponseTimeMs: float64(elapsed.Microseconds()) / 1000,
	}
}
