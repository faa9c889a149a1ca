package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP       HTTPConfig       `yaml:"http"`
	Weather    WeatherConfig    `yaml:"weather"`
	Places     PlacesConfig     `yaml:"places"`
	LocalStore LocalStoreConfig `yaml:"localStore"`
	Guide      GuideConfig      `yaml:"guide"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address        string          `yaml:"address"`
	ReadTimeout    time.Duration   `yaml:"readTimeout"`
	WriteTimeout   time.Duration   `yaml:"writeTimeout"`
	AllowedOrigins []string        `yaml:"allowedOrigins"`
	RateLimit      RateLimitConfig `yaml:"rateLimit"`
	Retry          RetryConfig     `yaml:"retry"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// RetryConfig configures best-effort retries for idempotent requests.
type RetryConfig struct {
	Enabled     bool          `yaml:"enabled"`
	MaxAttempts int           `yaml:"maxAttempts"`
	BaseBackoff time.Duration `yaml:"baseBackoff"`
	Exclude     []string      `yaml:"exclude"`
}

// WeatherConfig controls the forecast domain and its cache.
type WeatherConfig struct {
	BaseURL      string        `yaml:"baseUrl"`
	PastDays     int           `yaml:"pastDays"`
	ForecastDays int           `yaml:"forecastDays"`
	CacheTTL     time.Duration `yaml:"cacheTtl"`
	RefreshCron  string        `yaml:"refreshCron"`
	Valkey       ValkeyConfig  `yaml:"valkey"`
}

// ValkeyConfig contains connection information for cache storage.
type ValkeyConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// PlacesConfig contains Geoapify settings.
type PlacesConfig struct {
	APIKey        string `yaml:"apiKey"`
	PlacesURL     string `yaml:"placesUrl"`
	GeocodeURL    string `yaml:"geocodeUrl"`
	DefaultLimit  int    `yaml:"defaultLimit"`
	DefaultRadius int    `yaml:"defaultRadius"`
}

// LocalStoreConfig points at the durable local store database file.
// An empty path keeps sessions in process memory only.
type LocalStoreConfig struct {
	Path string `yaml:"path"`
}

// GuideConfig controls the curated catalog repository.
type GuideConfig struct {
	Postgres PostgresConfig `yaml:"postgres"`
}

// PostgresConfig contains DSN and pooling settings.
type PostgresConfig struct {
	DSN      string `yaml:"dsn"`
	MaxConns int32  `yaml:"maxConns"`
	MinConns int32  `yaml:"minConns"`
}

// Load reads configuration from .env, a YAML file and environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = splitAndTrim(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = isTruthy(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
	if v := os.Getenv("HTTP_RETRY_ENABLED"); v != "" {
		cfg.HTTP.Retry.Enabled = isTruthy(v)
	}
	if v := os.Getenv("HTTP_RETRY_MAX_ATTEMPTS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.Retry.MaxAttempts = parsed
		}
	}
	if v := os.Getenv("HTTP_RETRY_BASE_BACKOFF"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.HTTP.Retry.BaseBackoff = parsed
		}
	}
	if v := os.Getenv("WEATHER_BASE_URL"); v != "" {
		cfg.Weather.BaseURL = v
	}
	if v := os.Getenv("WEATHER_CACHE_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Weather.CacheTTL = parsed
		}
	}
	if v := os.Getenv("WEATHER_REFRESH_CRON"); v != "" {
		cfg.Weather.RefreshCron = v
	}
	if v := os.Getenv("WEATHER_VALKEY_ENABLED"); v != "" {
		cfg.Weather.Valkey.Enabled = isTruthy(v)
	}
	if v := os.Getenv("WEATHER_VALKEY_ADDR"); v != "" {
		cfg.Weather.Valkey.Addr = v
	}
	if v := os.Getenv("GEOAPIFY_API_KEY"); v != "" {
		cfg.Places.APIKey = v
	}
	if v := os.Getenv("GEOAPIFY_PLACES_URL"); v != "" {
		cfg.Places.PlacesURL = v
	}
	if v := os.Getenv("GEOAPIFY_GEOCODE_URL"); v != "" {
		cfg.Places.GeocodeURL = v
	}
	if v := os.Getenv("PLACES_DEFAULT_LIMIT"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Places.DefaultLimit = parsed
		}
	}
	if v := os.Getenv("PLACES_DEFAULT_RADIUS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Places.DefaultRadius = parsed
		}
	}
	if v := os.Getenv("LOCAL_STORE_PATH"); v != "" {
		cfg.LocalStore.Path = v
	}
	if v := os.Getenv("GUIDE_POSTGRES_DSN"); v != "" {
		cfg.Guide.Postgres.DSN = v
	}
	if v := os.Getenv("GUIDE_POSTGRES_MAX_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Guide.Postgres.MaxConns = int32(parsed)
		}
	}
	if v := os.Getenv("GUIDE_POSTGRES_MIN_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Guide.Postgres.MinConns = int32(parsed)
		}
	}
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 15 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 60,
				Burst:             20,
			},
			Retry: RetryConfig{
				Enabled:     true,
				MaxAttempts: 3,
				BaseBackoff: 150 * time.Millisecond,
			},
		},
		Weather: WeatherConfig{
			BaseURL:      "https://api.open-meteo.com/v1/forecast",
			PastDays:     7,
			ForecastDays: 7,
			CacheTTL:     30 * time.Minute,
			RefreshCron:  "0 */6 * * *",
		},
		Places: PlacesConfig{
			PlacesURL:     "https://api.geoapify.com/v2/places",
			GeocodeURL:    "https://api.geoapify.com/v1/geocode/autocomplete",
			DefaultLimit:  20,
			DefaultRadius: 5000,
		},
		LocalStore: LocalStoreConfig{
			Path: "coastally.db",
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.Weather.BaseURL == "" {
		return errors.New("weather.baseUrl cannot be empty")
	}
	if c.Weather.PastDays < 0 || c.Weather.ForecastDays <= 0 {
		return errors.New("weather day windows must be positive")
	}
	if c.Weather.CacheTTL < 0 {
		return errors.New("weather.cacheTtl cannot be negative")
	}
	if c.Weather.Valkey.Enabled && strings.TrimSpace(c.Weather.Valkey.Addr) == "" {
		return errors.New("weather.valkey.addr cannot be empty when the valkey cache is enabled")
	}
	if c.Places.PlacesURL == "" || c.Places.GeocodeURL == "" {
		return errors.New("places endpoints cannot be empty")
	}
	if c.Places.DefaultLimit <= 0 {
		return errors.New("places.defaultLimit must be positive")
	}
	if c.Places.DefaultRadius <= 0 {
		return errors.New("places.defaultRadius must be positive")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	if c.HTTP.Retry.Enabled {
		if c.HTTP.Retry.MaxAttempts <= 0 {
			return errors.New("http.retry.maxAttempts must be positive")
		}
		if c.HTTP.Retry.BaseBackoff <= 0 {
			return errors.New("http.retry.baseBackoff must be positive")
		}
	}
	return nil
}

func isTruthy(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}

func splitAndTrim(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
