package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type fakeStoreClock struct {
	pingErr error
	now     time.Time
	nowErr  error
}

func (f *fakeStoreClock) Ping(ctx context.Context) error { return f.pingErr }

func (f *fakeStoreClock) Now(ctx context.Context) (time.Time, error) {
	if f.nowErr != nil {
		return time.Time{}, f.nowErr
	}
	return f.now, nil
}

type fakePinger struct {
	err error
}

func (f *fakePinger) Ping(ctx context.Context) error { return f.err }

func TestHealth_Healthy(t *testing.T) {
	dbNow := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	h := NewHealthHandler("usersvc", &fakeStoreClock{now: dbNow}, nil)

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Service != "usersvc" {
		t.Errorf("service = %q, want usersvc", resp.Service)
	}
	if resp.Status != "healthy" {
		t.Errorf("status = %q, want healthy", resp.Status)
	}
	if resp.Database != "connected" {
		t.Errorf("database = %q, want connected", resp.Database)
	}
	if resp.Timestamp == nil || !resp.Timestamp.Equal(dbNow) {
		t.Errorf("timestamp = %v, want %v", resp.Timestamp, dbNow)
	}
}

func TestHealth_StoreDown(t *testing.T) {
	h := NewHealthHandler("usersvc", &fakeStoreClock{nowErr: errors.New("dial refused")}, nil)

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}

	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "unhealthy" {
		t.Errorf("status = %q, want unhealthy", resp.Status)
	}
	if resp.Error == "" {
		t.Error("expected error message in response")
	}
}

func TestDetailed_AllHealthy(t *testing.T) {
	h := NewHealthHandler("productsvc", &fakeStoreClock{now: time.Now()}, &fakePinger{})

	rec := httptest.NewRecorder()
	h.Detailed(rec, httptest.NewRequest(http.MethodGet, "/health/detailed", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp DetailedHealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "healthy" {
		t.Errorf("status = %q, want healthy", resp.Status)
	}
	if resp.Version != Version {
		t.Errorf("version = %q, want %q", resp.Version, Version)
	}
	if resp.Dependencies["postgres"].Status != "healthy" {
		t.Errorf("postgres = %q, want healthy", resp.Dependencies["postgres"].Status)
	}
	if resp.Dependencies["redis"].Status != "healthy" {
		t.Errorf("redis = %q, want healthy", resp.Dependencies["redis"].Status)
	}
}

func TestDetailed_CacheDownDegrades(t *testing.T) {
	h := NewHealthHandler("productsvc", &fakeStoreClock{now: time.Now()}, &fakePinger{err: errors.New("redis down")})

	rec := httptest.NewRecorder()
	h.Detailed(rec, httptest.NewRequest(http.MethodGet, "/health/detailed", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: a dead cache must not fail the service", rec.Code)
	}

	var resp DetailedHealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "degraded" {
		t.Errorf("status = %q, want degraded", resp.Status)
	}
	if resp.Dependencies["redis"].Error == "" {
		t.Error("expected redis error detail")
	}
}

func TestDetailed_StoreDownIsUnhealthy(t *testing.T) {
	h := NewHealthHandler("usersvc", &fakeStoreClock{pingErr: errors.New("pool closed")}, &fakePinger{})

	rec := httptest.NewRecorder()
	h.Detailed(rec, httptest.NewRequest(http.MethodGet, "/health/detailed", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}

	var resp DetailedHealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "unhealthy" {
		t.Errorf("status = %q, want unhealthy", resp.Status)
	}
}
