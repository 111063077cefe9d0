package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"healthai/internal/config"
	"healthai/internal/db"
	"healthai/internal/jobs"
	"healthai/internal/metrics"
	"healthai/internal/server"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	if problems := cfg.Validate(); len(problems) > 0 {
		log.Fatalf("Invalid configuration: %s", strings.Join(problems, "; "))
	}

	catalog, err := config.LoadYAMLConfig()
	if err != nil {
		log.Fatalf("Failed to load config file: %v", err)
	}
	cfg.Catalog = catalog

	// Lookup statistics go to Postgres when configured, memory otherwise
	var store metrics.Store
	if cfg.DatabaseURL != "" {
		database, err := db.New(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer database.Close()

		if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		slog.Info("migrations completed successfully")
		store = database
	} else {
		slog.Info("DATABASE_URL not set, keeping lookup stats in memory")
		store = metrics.NewMemoryStore()
	}

	recorder := metrics.NewRecorder(store)

	jobCtx, cancelJobs := context.WithCancel(ctx)
	flusherDone := make(chan struct{})
	go func() {
		defer close(flusherDone)
		jobs.NewStatsFlusher(recorder, cfg.StatsFlushInterval).Start(jobCtx)
	}()

	srv := server.New(cfg)
	srv.RegisterRoutes(store, recorder)

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
	}

	cancelJobs()
	<-flusherDone
	slog.Info("server exited")
}
