package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"weather-task-tracker/config"
	_ "weather-task-tracker/docs" // Swagger docs
	"weather-task-tracker/internal/httpserver"
	"weather-task-tracker/internal/session"
	"weather-task-tracker/pkg/log"
	"weather-task-tracker/pkg/nominatim"
	"weather-task-tracker/pkg/openmeteo"
)

// @title       Weather Task Tracker API
// @description Personal task tracking with weather-stamped tasks, mood-aware activity suggestions and cookie sessions.
// @version     1
// @host        localhost:8080
// @BasePath    /
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Weather Task Tracker...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Database
	db, err := openDB(cfg.Database.DSN)
	if err != nil {
		logger.Fatalf(ctx, "Failed to open database: %v", err)
	}

	// 4. Sessions
	sessions := session.NewManager(cfg.Session.MaxSessions, cfg.Session.TTL)

	// 5. Upstream clients
	meteo := openmeteo.New()
	if cfg.Weather.ForecastBaseURL != "" {
		meteo = meteo.WithForecastBaseURL(cfg.Weather.ForecastBaseURL)
	}
	if cfg.Weather.GeocodingBaseURL != "" {
		meteo = meteo.WithGeocodingBaseURL(cfg.Weather.GeocodingBaseURL)
	}
	reverse := nominatim.New()
	if cfg.Weather.ReverseBaseURL != "" {
		reverse = reverse.WithBaseURL(cfg.Weather.ReverseBaseURL)
	}

	// 6. HTTP server
	srv, err := httpserver.New(httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		DB:       db,
		Sessions: sessions,

		Meteo:     meteo,
		Nominatim: reverse,

		CookieSecure:     cfg.Session.CookieSecure,
		SessionTTL:       cfg.Session.TTL,
		LoginRatePerMin:  cfg.Auth.LoginRatePerMin,
		BcryptCost:       cfg.Auth.BcryptCost,
		MoodCookieMaxAge: cfg.Mood.CookieMaxAge,
		DefaultLocation:  cfg.Weather.DefaultLocation,
		WeatherCacheTTL:  cfg.Weather.CacheTTL,
		WeatherCacheSize: cfg.Weather.CacheSize,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to create HTTP server: %v", err)
	}

	if err := srv.Run(ctx); err != nil {
		logger.Fatalf(ctx, "HTTP server stopped: %v", err)
	}

	logger.Info(ctx, "Shutdown complete")
}

// openDB opens the SQLite database, creating the parent directory for
// file-backed DSNs first.
func openDB(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		dsn = "data/app.db"
	}
	if !strings.HasPrefix(dsn, "file:") && !strings.Contains(dsn, ":memory:") {
		if dir := filepath.Dir(dsn); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create database directory: %w", err)
			}
		}
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	return db, nil
}
