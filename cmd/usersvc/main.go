// Package main is the entrypoint for the users CRUD backend.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/polystack/polystack/internal/cache"
	"github.com/polystack/polystack/internal/config"
	"github.com/polystack/polystack/internal/handler"
	"github.com/polystack/polystack/internal/logging"
	"github.com/polystack/polystack/internal/metrics"
	"github.com/polystack/polystack/internal/middleware"
	"github.com/polystack/polystack/internal/repository"
	"github.com/polystack/polystack/internal/server"
	"github.com/polystack/polystack/internal/service"
)

func main() {
	ctx := context.Background()

	// Best effort; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = "usersvc"
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)

	// Schema and seed rows are applied on every boot; both are idempotent.
	if err := repository.MigrateUsers(cfg.DatabaseURL); err != nil {
		logger.Error("migration failed",
			slog.String("error", logging.SanitizeError(err, cfg.DatabaseURL)),
			slog.String("database_url", logging.RedactURL(cfg.DatabaseURL)),
		)
		os.Exit(1)
	}
	logger.Info("migrations applied")

	repo, err := repository.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to connect to database",
			slog.String("error", logging.SanitizeError(err, cfg.DatabaseURL)),
			slog.String("database_url", logging.RedactURL(cfg.DatabaseURL)),
		)
		os.Exit(1)
	}
	logger.Info("connected to database")

	cacheClient, err := cache.New(ctx, cfg.RedisURL)
	if err != nil {
		logger.Error("failed to connect to Redis",
			slog.String("error", logging.SanitizeError(err, cfg.RedisURL)),
			slog.String("redis_url", logging.RedactURL(cfg.RedisURL)),
		)
		os.Exit(1)
	}
	logger.Info("connected to Redis")

	recorder := metrics.NewInMemory()
	userService := service.NewUserService(repo, recorder)

	healthHandler := handler.NewHealthHandler(cfg.ServiceName, repo, cacheClient)
	userHandler := handler.NewUserHandler(userService, logger)
	metricsHandler := handler.NewMetricsHandler(recorder)

	r := setupRouter(cfg, logger, healthHandler, userHandler, metricsHandler)

	srv := server.New(r, cfg.AppPort, cfg.ReadTimeout, cfg.WriteTimeout, cfg.ShutdownTimeout, logger)
	srv.OnShutdown("database", func(context.Context) error {
		repo.Close()
		return nil
	})
	srv.OnShutdown("redis", func(context.Context) error {
		return cacheClient.Close()
	})

	logger.Info("starting service",
		"service", cfg.ServiceName,
		"port", cfg.AppPort,
		"env", cfg.AppEnv,
	)

	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

func setupRouter(
	cfg *config.Config,
	logger *slog.Logger,
	healthHandler *handler.HealthHandler,
	userHandler *handler.UserHandler,
	metricsHandler *handler.MetricsHandler,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger))
	r.Use(middleware.Security(middleware.SecurityConfig{IsDevelopment: cfg.IsDevelopment()}))
	r.Use(middleware.MaxBodySize(cfg.MaxRequestBodySize))

	r.Get("/health", healthHandler.Health)
	r.Get("/health/detailed", healthHandler.Detailed)
	r.Get("/metrics", metricsHandler.Metrics)

	r.Get("/users", userHandler.List)
	r.Post("/users", userHandler.Create)

	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	return r
}
