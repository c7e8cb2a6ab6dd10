package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/couchcryptid/zone-load-map/internal/adapter/boundary"
	httpadapter "github.com/couchcryptid/zone-load-map/internal/adapter/http"
	"github.com/couchcryptid/zone-load-map/internal/adapter/leaflet"
	"github.com/couchcryptid/zone-load-map/internal/adapter/tabular"
	"github.com/couchcryptid/zone-load-map/internal/config"
	"github.com/couchcryptid/zone-load-map/internal/observability"
	"github.com/couchcryptid/zone-load-map/internal/pipeline"
	"github.com/couchcryptid/zone-load-map/internal/render"
)

func main() {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	records := tabular.NewReader(cfg.RecordsPath, cfg.RecordsZoneColumn, cfg.RecordsSheet)
	geometries := boundary.NewLoader(cfg.GeometryPath, cfg.GeometryNameProperty)
	p := pipeline.New(records, geometries, cfg.Aliases, logger, metrics)

	tiles := leaflet.OpenStreetMapTiles()
	if cfg.MapboxToken != "" {
		tiles = leaflet.MapboxTiles(cfg.MapboxToken)
		logger.Info("mapbox base tiles enabled")
	}
	page := leaflet.NewMap(cfg.MapTitle, render.LatLng{cfg.MapCenterLat, cfg.MapCenterLon}, cfg.MapZoom, tiles)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("building map",
		"records", cfg.RecordsPath,
		"geometry", cfg.GeometryPath,
		"aliases", cfg.Aliases.Len(),
	)
	result, err := p.Run(ctx, page)
	if err != nil {
		logger.Error("map build failed", "error", err)
		os.Exit(1)
	}

	if cfg.OutputPath != "" {
		if err := writeOutput(cfg.OutputPath, result.HTML); err != nil {
			logger.Error("write map page failed", "path", cfg.OutputPath, "error", err)
			os.Exit(1)
		}
		logger.Info("map page written", "path", cfg.OutputPath, "bytes", len(result.HTML))
	}

	srv := httpadapter.NewServer(cfg.HTTPAddr, p, p, logger)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}

func writeOutput(path string, page []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, page, 0o644)
}
