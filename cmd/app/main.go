package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/TavstalDev/MineCoreLib/internal/config"
	"github.com/TavstalDev/MineCoreLib/internal/database"
	"github.com/TavstalDev/MineCoreLib/internal/database/postgres"
	"github.com/TavstalDev/MineCoreLib/internal/database/schema"
	"github.com/TavstalDev/MineCoreLib/internal/item"
	"github.com/TavstalDev/MineCoreLib/internal/registry"
	"github.com/TavstalDev/MineCoreLib/internal/server"
	"github.com/TavstalDev/MineCoreLib/internal/snapshot"
	"github.com/TavstalDev/MineCoreLib/internal/version"
)

const shutdownTimeout = 10 * time.Second

// @title MineCoreLib API
// @version 1.0
// @description Item metadata serialization service: converts items with variant metadata between YAML documents and binary blobs, with named snapshot storage.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	initLogger(cfg)

	pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	ctx := context.Background()
	if _, err := pool.Exec(ctx, schema.SchemaSQL); err != nil {
		slog.Error("Failed to initialize database schema", "error", err)
		os.Exit(1)
	}

	reg := registry.NewDefault()
	versions, err := version.NewService(cfg.EngineVersion)
	if err != nil {
		slog.Error("Invalid ENGINE_VERSION", "value", cfg.EngineVersion, "error", err)
		os.Exit(1)
	}
	codec := item.NewCodec(reg, versions)

	snapshotRepo := postgres.NewSnapshotRepository(pool)
	snapshotService := snapshot.NewService(snapshotRepo, codec)

	srv := server.NewServer(cfg.Port, cfg.APIKey, nil, pool, codec, snapshotService)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-stop:
		slog.Info("Shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		slog.Error("Server forced to shut down", "error", err)
	}
}
