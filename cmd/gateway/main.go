// Package main is the entrypoint for the reverse proxy gateway.
package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/polystack/polystack/internal/config"
	"github.com/polystack/polystack/internal/gateway"
	"github.com/polystack/polystack/internal/logging"
	"github.com/polystack/polystack/internal/server"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadGateway()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)

	routes, err := cfg.ParseRoutes()
	if err != nil {
		logger.Error("invalid route table", "error", err)
		os.Exit(1)
	}

	r, err := gateway.New(gateway.Config{
		Routes:       routes,
		FrontendURL:  cfg.FrontendURL,
		ProxyTimeout: cfg.ProxyTimeout,
		Logger:       logger,
	})
	if err != nil {
		logger.Error("failed to build gateway", "error", err)
		os.Exit(1)
	}

	for _, route := range routes {
		logger.Info("route registered", "prefix", route.Prefix, "upstream", route.Upstream)
	}

	srv := server.New(r, cfg.AppPort, cfg.ReadTimeout, cfg.WriteTimeout, cfg.ShutdownTimeout, logger)

	logger.Info("starting gateway",
		"port", cfg.AppPort,
		"routes", len(routes),
		"env", cfg.AppEnv,
	)

	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
