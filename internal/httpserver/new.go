package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"weather-task-tracker/internal/session"
	"weather-task-tracker/pkg/log"
	"weather-task-tracker/pkg/nominatim"
	"weather-task-tracker/pkg/openmeteo"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Shared infrastructure
	db       *gorm.DB
	sessions *session.Manager

	// Upstream clients
	meteo     openmeteo.IOpenMeteo
	nominatim nominatim.INominatim

	// Behavior knobs
	cookieSecure     bool
	sessionTTL       time.Duration
	loginRatePerMin  int
	bcryptCost       int
	moodCookieMaxAge time.Duration
	defaultLocation  string
	weatherCacheTTL  time.Duration
	weatherCacheSize int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	DB       *gorm.DB
	Sessions *session.Manager

	Meteo     openmeteo.IOpenMeteo
	Nominatim nominatim.INominatim

	CookieSecure     bool
	SessionTTL       time.Duration
	LoginRatePerMin  int
	BcryptCost       int
	MoodCookieMaxAge time.Duration
	DefaultLocation  string
	WeatherCacheTTL  time.Duration
	WeatherCacheSize int
}

// New creates a new HTTPServer instance.
func New(cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                cfg.Logger,
		gin:              gin.Default(),
		port:             cfg.Port,
		mode:             cfg.Mode,
		environment:      cfg.Environment,
		db:               cfg.DB,
		sessions:         cfg.Sessions,
		meteo:            cfg.Meteo,
		nominatim:        cfg.Nominatim,
		cookieSecure:     cfg.CookieSecure,
		sessionTTL:       cfg.SessionTTL,
		loginRatePerMin:  cfg.LoginRatePerMin,
		bcryptCost:       cfg.BcryptCost,
		moodCookieMaxAge: cfg.MoodCookieMaxAge,
		defaultLocation:  cfg.DefaultLocation,
		weatherCacheTTL:  cfg.WeatherCacheTTL,
		weatherCacheSize: cfg.WeatherCacheSize,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	if srv.sessions == nil {
		return errors.New("session manager is required")
	}
	if srv.meteo == nil {
		return errors.New("weather client is required")
	}
	if srv.nominatim == nil {
		return errors.New("reverse geocoding client is required")
	}
	return nil
}
