// Package gateway builds the reverse proxy router that fronts the CRUD
// backends and the frontend.
package gateway

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/http/httputil"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/polystack/polystack/internal/config"
	"github.com/polystack/polystack/internal/middleware"
)

// Config holds everything needed to assemble the gateway router.
type Config struct {
	Routes       []config.Route
	FrontendURL  string
	ProxyTimeout time.Duration
	Logger       *slog.Logger
}

// New builds the gateway router: one proxy per configured prefix, a local
// health endpoint, and an optional frontend catch-all.
func New(cfg Config) (*chi.Mux, error) {
	if len(cfg.Routes) == 0 {
		return nil, fmt.Errorf("gateway needs at least one route")
	}

	transport := newTransport(cfg.ProxyTimeout)

	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestIDULID)
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.Recoverer(cfg.Logger))
	r.Use(denyDotfiles)

	// The gateway's own liveness. Upstream health lives behind the
	// routed prefixes, e.g. /api/users/health.
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"gateway","status":"healthy"}`))
	})

	for _, route := range cfg.Routes {
		proxy, err := newPrefixProxy(route, transport, cfg.Logger)
		if err != nil {
			return nil, fmt.Errorf("route %s: %w", route.Prefix, err)
		}

		stripped := http.StripPrefix(route.Prefix, proxy)
		r.Handle(route.Prefix, stripped)
		r.Handle(route.Prefix+"/*", stripped)
	}

	if cfg.FrontendURL != "" {
		front, err := newUpstreamProxy(cfg.FrontendURL, transport, cfg.Logger)
		if err != nil {
			return nil, fmt.Errorf("frontend: %w", err)
		}
		r.Handle("/*", assetCacheHeaders(front))
	}

	return r, nil
}

// newPrefixProxy proxies requests to one upstream after the prefix has
// been stripped.
func newPrefixProxy(route config.Route, transport http.RoundTripper, logger *slog.Logger) (*httputil.ReverseProxy, error) {
	return newUpstreamProxy(route.Upstream, transport, logger)
}

func newUpstreamProxy(upstream string, transport http.RoundTripper, logger *slog.Logger) (*httputil.ReverseProxy, error) {
	target, err := url.Parse(upstream)
	if err != nil {
		return nil, fmt.Errorf("parse upstream %q: %w", upstream, err)
	}
	if target.Scheme == "" || target.Host == "" {
		return nil, fmt.Errorf("upstream %q needs scheme and host", upstream)
	}

	proxy := httputil.NewSingleHostReverseProxy(target)
	proxy.Transport = transport

	director := proxy.Director
	proxy.Director = func(req *http.Request) {
		director(req)
		setForwardedHeaders(req)
	}

	proxy.ErrorHandler = upstreamErrorHandler(target, logger)

	return proxy, nil
}

// setForwardedHeaders records the original client and scheme for the
// upstream. X-Forwarded-For is appended by ReverseProxy itself.
func setForwardedHeaders(req *http.Request) {
	if host, _, err := net.SplitHostPort(req.RemoteAddr); err == nil {
		req.Header.Set("X-Real-IP", host)
	}

	proto := "http"
	if req.TLS != nil {
		proto = "https"
	}
	req.Header.Set("X-Forwarded-Proto", proto)
	req.Header.Set("X-Forwarded-Host", req.Host)
}

func upstreamErrorHandler(target *url.URL, logger *slog.Logger) func(http.ResponseWriter, *http.Request, error) {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		logger.Error("upstream unreachable",
			"upstream", target.Host,
			"path", r.URL.Path,
			"error", err,
		)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"error":"upstream unreachable","code":"BAD_GATEWAY"}`))
	}
}

// newTransport bounds how long the gateway waits on an upstream before
// giving up and answering 502.
func newTransport(proxyTimeout time.Duration) *http.Transport {
	return &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ResponseHeaderTimeout: proxyTimeout,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   16,
		IdleConnTimeout:       90 * time.Second,
	}
}

// denyDotfiles rejects paths with dot-prefixed segments (.env, .git)
// before they reach any upstream.
func denyDotfiles(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, segment := range strings.Split(r.URL.Path, "/") {
			if strings.HasPrefix(segment, ".") {
				http.NotFound(w, r)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

// Immutable content-addressed assets; everything else stays uncached.
var cacheableExt = map[string]bool{
	".js":    true,
	".css":   true,
	".png":   true,
	".jpg":   true,
	".jpeg":  true,
	".gif":   true,
	".svg":   true,
	".ico":   true,
	".woff":  true,
	".woff2": true,
}

func assetCacheHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if cacheableExt[path.Ext(r.URL.Path)] {
			w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		}
		next.ServeHTTP(w, r)
	})
}
