// Package main is the entrypoint for the FitLog API server.
package main

import (
	"context"
	"log/slog"
	"net/url"
	"os"
	"regexp"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fitlog/fitlog/internal/cache"
	"github.com/fitlog/fitlog/internal/config"
	"github.com/fitlog/fitlog/internal/events"
	"github.com/fitlog/fitlog/internal/handler"
	"github.com/fitlog/fitlog/internal/metrics"
	"github.com/fitlog/fitlog/internal/middleware"
	"github.com/fitlog/fitlog/internal/repository"
	"github.com/fitlog/fitlog/internal/server"
	"github.com/fitlog/fitlog/internal/service"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := initLogger(cfg)

	// Primary record store (pgx pool)
	repo, err := repository.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error(
			"failed to connect to database",
			slog.String("error", sanitizeError(err, cfg.DatabaseURL)),
			slog.String("database_url", redactURL(cfg.DatabaseURL)),
		)
		os.Exit(1)
	}
	defer repo.Close()
	logger.Info("connected to database")

	// User cache and event stream (Redis)
	cacheClient, err := cache.New(ctx, cfg.RedisURL, cfg.UserCacheTTL)
	if err != nil {
		logger.Error(
			"failed to connect to Redis",
			slog.String("error", sanitizeError(err, cfg.RedisURL)),
			slog.String("redis_url", redactURL(cfg.RedisURL)),
		)
		os.Exit(1)
	}
	defer cacheClient.Close()
	logger.Info("connected to Redis")

	// Event persistence (database/sql handle, separate from the pgx pool)
	eventsDB, err := events.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error(
			"failed to open event store connection",
			slog.String("error", sanitizeError(err, cfg.DatabaseURL)),
		)
		os.Exit(1)
	}
	defer eventsDB.Close()
	eventStore := events.NewStore(eventsDB)

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	recorder := metrics.NewPrometheus(registry)

	// Event pipeline
	publisher := events.NewPublisher(cacheClient.Client(), logger, recorder)
	worker := events.NewWorker(cacheClient.Client(), eventStore, logger, events.NewConsumerID(), recorder)

	// Core service
	tracker := service.NewTracker(repo, cacheClient, publisher, recorder)

	// Handlers
	h := handler.New()
	healthHandler := handler.NewHealthHandler(repo, cacheClient)
	userHandler := handler.NewUserHandler(tracker, logger)
	exerciseHandler := handler.NewExerciseHandler(tracker, logger)
	statsHandler := handler.NewStatsHandler(tracker, eventStore, logger)

	r := setupRouter(routerDeps{
		base:     h,
		health:   healthHandler,
		users:    userHandler,
		exercise: exerciseHandler,
		stats:    statsHandler,
		registry: registry,
		cfg:      cfg,
		logger:   logger,
	})

	srv := server.New(r, server.Options{
		Port:            cfg.AppPort,
		ReadTimeout:     cfg.ReadTimeout,
		WriteTimeout:    cfg.WriteTimeout,
		ShutdownTimeout: cfg.ShutdownTimeout,
	}, logger)

	if cfg.EventWorkerEnabled {
		workerCtx, cancelWorker := context.WithCancel(ctx)
		go func() {
			if err := worker.Run(workerCtx); err != nil && err != context.Canceled {
				logger.Error("event worker exited", "error", err)
			}
		}()
		srv.OnShutdown("event worker", worker.Shutdown)
		defer cancelWorker()
	} else {
		logger.Info("event worker disabled")
	}

	logger.Info("starting server",
		"port", cfg.AppPort,
		"env", cfg.AppEnv,
		"worker_enabled", cfg.EventWorkerEnabled,
	)

	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}

	var h slog.Handler
	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)

	return logger
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type routerDeps struct {
	base     *handler.Handler
	health   *handler.HealthHandler
	users    *handler.UserHandler
	exercise *handler.ExerciseHandler
	stats    *handler.StatsHandler
	registry *prometheus.Registry
	cfg      *config.Config
	logger   *slog.Logger
}

// setupRouter configures the chi router with all routes and middleware.
func setupRouter(deps routerDeps) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(deps.logger))
	r.Use(middleware.Recoverer(deps.logger))
	r.Use(middleware.BodyLimit(deps.cfg.MaxRequestBodySize))

	// Health and info endpoints
	r.Get("/healthz", deps.health.Healthz)
	r.Get("/readyz", deps.health.Readyz)
	r.Get("/", deps.base.Hello)

	// Prometheus exposition
	r.Method("GET", "/metrics", promhttp.HandlerFor(deps.registry, promhttp.HandlerOpts{}))

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Post("/", deps.users.Create)
			r.Get("/", deps.users.List)
			r.Post("/{id}/exercises", deps.exercise.Add)
			r.Get("/{id}/logs", deps.exercise.GetLog)
			r.Get("/{id}/stats/daily", deps.stats.Daily)
		})
	})

	// 404 and 405 handlers
	r.NotFound(deps.base.NotFound)
	r.MethodNotAllowed(deps.base.MethodNotAllowed)

	return r
}

var passwordPattern = regexp.MustCompile(`(?i)password=[^\s]+`)

func redactURL(raw string) string {
	if raw == "" {
		return ""
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "[redacted]"
	}

	if parsed.User != nil {
		username := parsed.User.Username()
		if username == "" {
			parsed.User = url.User("redacted")
		} else {
			parsed.User = url.User(username)
		}
	}

	return parsed.String()
}

func sanitizeError(err error, secrets ...string) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	for _, secret := range secrets {
		if secret == "" {
			continue
		}
		redacted := redactURL(secret)
		if redacted == "" {
			redacted = "[redacted]"
		}
		msg = strings.ReplaceAll(msg, secret, redacted)
	}

	return passwordPattern.ReplaceAllString(msg, "password=redacted")
}
