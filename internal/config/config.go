package config

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
	"github.com/couchcryptid/zone-load-map/internal/domain"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	RecordsPath          string
	RecordsZoneColumn    string
	RecordsSheet         string
	GeometryPath         string
	GeometryNameProperty string
	AliasFile            string
	Aliases              domain.AliasTable

	MapTitle     string
	MapCenterLat float64
	MapCenterLon float64
	MapZoom      int
	MapboxToken  string
	OutputPath   string

	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	centerLat, err := parseFloat("MAP_CENTER_LAT", "48.5", -90, 90)
	if err != nil {
		return nil, err
	}
	centerLon, err := parseFloat("MAP_CENTER_LON", "7.5", -180, 180)
	if err != nil {
		return nil, err
	}
	zoom, err := strconv.Atoi(sharedcfg.EnvOrDefault("MAP_ZOOM", "8"))
	if err != nil || zoom < 0 || zoom > 22 {
		return nil, errors.New("invalid MAP_ZOOM: must be an integer between 0 and 22")
	}

	cfg := &Config{
		RecordsPath:          sharedcfg.EnvOrDefault("RECORDS_PATH", "data_med_icp.csv"),
		RecordsZoneColumn:    sharedcfg.EnvOrDefault("RECORDS_ZONE_COLUMN", "UT_x"),
		RecordsSheet:         sharedcfg.EnvOrDefault("RECORDS_SHEET", ""),
		GeometryPath:         sharedcfg.EnvOrDefault("GEOMETRY_PATH", "alsace_map.geojson"),
		GeometryNameProperty: sharedcfg.EnvOrDefault("GEOMETRY_NAME_PROPERTY", "nom"),
		AliasFile:            sharedcfg.EnvOrDefault("ALIAS_FILE", ""),

		MapTitle:     sharedcfg.EnvOrDefault("MAP_TITLE", "Carte interactive de l'Alsace"),
		MapCenterLat: centerLat,
		MapCenterLon: centerLon,
		MapZoom:      zoom,
		MapboxToken:  sharedcfg.EnvOrDefault("MAPBOX_TOKEN", ""),
		OutputPath:   sharedcfg.EnvOrDefault("OUTPUT_PATH", ""),

		HTTPAddr:        sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:       sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,
	}

	if cfg.RecordsPath == "" {
		return nil, errors.New("RECORDS_PATH is required")
	}
	if cfg.RecordsZoneColumn == "" {
		return nil, errors.New("RECORDS_ZONE_COLUMN is required")
	}
	if cfg.GeometryPath == "" {
		return nil, errors.New("GEOMETRY_PATH is required")
	}

	cfg.Aliases = DefaultAliases()
	if cfg.AliasFile != "" {
		aliases, err := LoadAliases(cfg.AliasFile)
		if err != nil {
			return nil, err
		}
		cfg.Aliases = aliases
	}

	return cfg, nil
}

func parseFloat(key, def string, lo, hi float64) (float64, error) {
	v, err := strconv.ParseFloat(sharedcfg.EnvOrDefault(key, def), 64)
	if err != nil || v < lo || v > hi {
		return 0, fmt.Errorf("invalid %s: must be a number between %g and %g", key, lo, hi)
	}
	return v, nil
}
