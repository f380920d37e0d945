// Package config provides application configuration management.
// Configuration is loaded from environment variables following 12-factor principles.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds configuration for a CRUD backend process.
// All fields are populated from environment variables.
type Config struct {
	// Identity reported by the health endpoints. Each binary sets its own
	// fallback when the variable is unset.
	ServiceName string `env:"SERVICE_NAME"`

	// Application settings
	AppEnv  string `env:"APP_ENV" envDefault:"development"`
	AppPort int    `env:"APP_PORT" envDefault:"8080"`

	// Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required"`

	// Cache (Redis). Provisioned and health-checked only; no data path
	// reads or writes it.
	RedisURL string `env:"REDIS_URL,required"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Server timeouts
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`

	// Request body size limit in bytes (default 1MB)
	MaxRequestBodySize int64 `env:"MAX_REQUEST_BODY_SIZE" envDefault:"1048576"`
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Load parses environment variables and returns a Config.
// Returns an error if required variables are missing.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Route maps a URL path prefix to exactly one upstream base URL.
type Route struct {
	Prefix   string
	Upstream string
}

// GatewayConfig holds configuration for the reverse proxy process.
type GatewayConfig struct {
	AppEnv  string `env:"APP_ENV" envDefault:"development"`
	AppPort int    `env:"APP_PORT" envDefault:"8090"`

	// Routes is a comma-separated list of prefix=upstream pairs. The
	// upstream set is fixed at configuration time, not runtime-discovered.
	Routes string `env:"GATEWAY_ROUTES" envDefault:"/api/users=http://localhost:8081,/api/products=http://localhost:8082"`

	// FrontendURL receives all traffic not matched by a route prefix.
	// Empty disables the catch-all.
	FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`

	// ProxyTimeout bounds connect and response-header wait per upstream call.
	ProxyTimeout time.Duration `env:"PROXY_TIMEOUT" envDefault:"300s"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Server timeouts. Write must outlast the proxy budget or long upstream
	// responses get cut off at the listener.
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"30s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"310s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// ParseRoutes expands the Routes string into an ordered route table.
func (c *GatewayConfig) ParseRoutes() ([]Route, error) {
	if strings.TrimSpace(c.Routes) == "" {
		return nil, fmt.Errorf("no gateway routes configured")
	}

	pairs := strings.Split(c.Routes, ",")
	routes := make([]Route, 0, len(pairs))

	for _, pair := range pairs {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		prefix, upstream, found := strings.Cut(pair, "=")
		if !found {
			return nil, fmt.Errorf("malformed route %q: want prefix=upstream", pair)
		}

		prefix = strings.TrimSpace(prefix)
		upstream = strings.TrimSpace(upstream)

		if !strings.HasPrefix(prefix, "/") || prefix == "/" {
			return nil, fmt.Errorf("route prefix %q must start with / and not be the root", prefix)
		}
		if upstream == "" {
			return nil, fmt.Errorf("route %q has an empty upstream", pair)
		}

		routes = append(routes, Route{
			Prefix:   strings.TrimSuffix(prefix, "/"),
			Upstream: upstream,
		})
	}

	if len(routes) == 0 {
		return nil, fmt.Errorf("no gateway routes configured")
	}

	return routes, nil
}

// LoadGateway parses environment variables for the gateway process.
func LoadGateway() (*GatewayConfig, error) {
	cfg := &GatewayConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse gateway config: %w", err)
	}
	return cfg, nil
}
