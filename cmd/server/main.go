package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/anonto42/blogsphere/backend/internal/handlers"
	"github.com/anonto42/blogsphere/backend/internal/repositories"
	"github.com/anonto42/blogsphere/backend/internal/router"
	"github.com/anonto42/blogsphere/backend/pkg/config"
	"github.com/anonto42/blogsphere/backend/pkg/logger"
	"github.com/anonto42/blogsphere/backend/pkg/telemetry"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tp, err := telemetry.InitTracer(ctx, cfg.OtelEndpoint, cfg.Env)
	if err != nil {
		log.Error("Failed to init tracer", "err", err)
	} else if tp != nil {
		defer func() { _ = tp.Shutdown(context.Background()) }()
	}

	// Initialize the store
	cols, pinger, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	e := router.New(cfg, log, cols, pinger)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Blogs server listening", "port", cfg.Port, "store", cfg.StoreDriver)
		if err := e.StartServer(srv); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "err", err)
	}
	log.Info("Server exited")
	return nil
}

// openStore selects the collection backend named by STORE_DRIVER
func openStore(ctx context.Context, cfg *config.Config) (repositories.Collections, handlers.Pinger, func(), error) {
	if cfg.StoreDriver == config.StoreDriverMemory {
		slog.Warn("Using in-memory store; data is lost on exit.")
		return repositories.NewMemoryCollections(), nil, func() {}, nil
	}

	db, err := config.InitDB(ctx, cfg)
	if err != nil {
		return repositories.Collections{}, nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	if err := repositories.EnsureIndexes(ctx, db.Database); err != nil {
		db.CloseDB()
		return repositories.Collections{}, nil, nil, err
	}
	return repositories.NewMongoCollections(db.Database), db, db.CloseDB, nil
}
