package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ifct-tools/explorer-api/internal/config"
	"github.com/ifct-tools/explorer-api/internal/dataset"
	"github.com/ifct-tools/explorer-api/internal/handlers"
	"github.com/ifct-tools/explorer-api/internal/middleware"
	"github.com/ifct-tools/explorer-api/internal/service"
	"github.com/ifct-tools/explorer-api/pkg/logger"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting food composition explorer api",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"dataset_path", cfg.Dataset.Path,
		"log_level", cfg.LogLevel,
	)

	// Initialize the dataset loader and warm the cache. A missing file
	// is not fatal: the server starts degraded and reports the error on
	// every browse request until the file appears.
	loader := dataset.NewLoader(log)
	catalogService := service.NewCatalogService(loader, cfg.Dataset.Path)

	if ds, err := loader.Load(cfg.Dataset.Path); err != nil {
		log.Warn("starting without dataset", "path", cfg.Dataset.Path, "error", err)
	} else {
		log.Info("dataset ready", "records", ds.Len(), "snapshot_id", ds.SnapshotID())
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(catalogService, log)
	catalogHandler := handlers.NewCatalogHandler(catalogService, log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(middleware.Metrics)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "api_key"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Register health check and metrics endpoints
	r.Get("/health", healthHandler.ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.APIKeyAuth(cfg.Auth))

		r.Get("/categories", catalogHandler.ListCategories)
		r.Get("/items", catalogHandler.ListItems)
		r.Get("/items/{name}", catalogHandler.GetItem)
		r.Get("/items/{name}/profile", catalogHandler.GetProfile)
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}
