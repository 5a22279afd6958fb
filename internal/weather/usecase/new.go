package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"weather-task-tracker/internal/model"
	"weather-task-tracker/pkg/log"
	"weather-task-tracker/pkg/nominatim"
	"weather-task-tracker/pkg/openmeteo"
)

// Config tunes the weather usecase.
type Config struct {
	// DefaultLocation is the place used when neither a preferred name nor
	// device coordinates are available.
	DefaultLocation string

	// CacheTTL bounds how long a fetched condition is reused for nearby
	// requests. CacheSize caps distinct cached points.
	CacheTTL  time.Duration
	CacheSize int
}

type implUseCase struct {
	l               log.Logger
	meteo           openmeteo.IOpenMeteo
	nominatim       nominatim.INominatim
	defaultLocation string

	// conditions caches classified conditions keyed by rounded coordinates
	// so bursts of requests from the same place share one upstream call.
	conditions *expirable.LRU[string, model.WeatherCondition]
}

// New creates a new weather UseCase implementation.
func New(l log.Logger, meteo openmeteo.IOpenMeteo, nom nominatim.INominatim, cfg Config) *implUseCase {
	if cfg.DefaultLocation == "" {
		cfg.DefaultLocation = "Mexico City"
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 10 * time.Minute
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = 512
	}
	return &implUseCase{
		l:               l,
		meteo:           meteo,
		nominatim:       nom,
		defaultLocation: cfg.DefaultLocation,
		conditions:      expirable.NewLRU[string, model.WeatherCondition](cfg.CacheSize, nil, cfg.CacheTTL),
	}
}
