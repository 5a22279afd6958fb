package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	Database   DatabaseConfig
	Session    SessionConfig
	Weather    WeatherConfig
	Auth       AuthConfig
	Mood       MoodConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type DatabaseConfig struct {
	DSN string
}

type SessionConfig struct {
	TTL          time.Duration
	MaxSessions  int
	CookieSecure bool
}

type WeatherConfig struct {
	ForecastBaseURL  string
	GeocodingBaseURL string
	ReverseBaseURL   string
	DefaultLocation  string
	CacheTTL         time.Duration
	CacheSize        int
}

type AuthConfig struct {
	LoginRatePerMin int
	BcryptCost      int
}

type MoodConfig struct {
	CookieMaxAge time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Database.DSN = viper.GetString("database.dsn")
	if dsn := viper.GetString("database_dsn"); dsn != "" {
		cfg.Database.DSN = dsn
	}

	cfg.Session.TTL = viper.GetDuration("session.ttl")
	cfg.Session.MaxSessions = viper.GetInt("session.max_sessions")
	cfg.Session.CookieSecure = viper.GetBool("session.cookie_secure")
	if cfg.Environment.Name == "production" {
		cfg.Session.CookieSecure = true
	}

	cfg.Weather.ForecastBaseURL = viper.GetString("weather.forecast_base_url")
	cfg.Weather.GeocodingBaseURL = viper.GetString("weather.geocoding_base_url")
	cfg.Weather.ReverseBaseURL = viper.GetString("weather.reverse_base_url")
	cfg.Weather.DefaultLocation = viper.GetString("weather.default_location")
	cfg.Weather.CacheTTL = viper.GetDuration("weather.cache_ttl")
	cfg.Weather.CacheSize = viper.GetInt("weather.cache_size")

	cfg.Auth.LoginRatePerMin = viper.GetInt("auth.login_rate_per_min")
	cfg.Auth.BcryptCost = viper.GetInt("auth.bcrypt_cost")

	cfg.Mood.CookieMaxAge = viper.GetDuration("mood.cookie_max_age")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("database.dsn", "weather_tasks.db")

	viper.SetDefault("session.ttl", "24h")
	viper.SetDefault("session.max_sessions", 4096)
	viper.SetDefault("session.cookie_secure", false)

	viper.SetDefault("weather.forecast_base_url", "https://api.open-meteo.com/v1")
	viper.SetDefault("weather.geocoding_base_url", "https://geocoding-api.open-meteo.com/v1")
	viper.SetDefault("weather.reverse_base_url", "https://nominatim.openstreetmap.org")
	viper.SetDefault("weather.default_location", "Mexico City")
	viper.SetDefault("weather.cache_ttl", "10m")
	viper.SetDefault("weather.cache_size", 256)

	viper.SetDefault("auth.login_rate_per_min", 10)
	viper.SetDefault("auth.bcrypt_cost", 10)

	// Mood cookie expires after one day, matching the slider behavior.
	viper.SetDefault("mood.cookie_max_age", "24h")
}
