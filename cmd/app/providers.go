package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/coastally/coastally-api/internal/domain/auth"
	"github.com/coastally/coastally-api/internal/domain/guide"
	"github.com/coastally/coastally-api/internal/domain/places"
	"github.com/coastally/coastally-api/internal/domain/weather"
	"github.com/coastally/coastally-api/internal/infra/config"
	"github.com/coastally/coastally-api/internal/infra/forecastcache"
	"github.com/coastally/coastally-api/internal/infra/guiderepo"
	"github.com/coastally/coastally-api/internal/infra/localstore"
	"github.com/coastally/coastally-api/internal/infra/places/geoapify"
	"github.com/coastally/coastally-api/internal/infra/refresh"
	"github.com/coastally/coastally-api/internal/infra/weather/openmeteo"
	"github.com/coastally/coastally-api/pkg/metrics"
)

func provideWeatherConfig(cfg *config.Config) weather.Config {
	return weather.Config{
		PastDays:     cfg.Weather.PastDays,
		ForecastDays: cfg.Weather.ForecastDays,
		CacheTTL:     cfg.Weather.CacheTTL,
	}
}

func providePlacesConfig(cfg *config.Config) places.Config {
	return places.Config{
		DefaultLimit:  cfg.Places.DefaultLimit,
		DefaultRadius: cfg.Places.DefaultRadius,
	}
}

func provideMetricsRegistry() *metrics.Registry {
	return metrics.NewRegistry()
}

func provideWeatherClient(cfg *config.Config, registry *metrics.Registry) *openmeteo.Client {
	return openmeteo.NewClient(cfg.Weather.BaseURL, cfg.Weather.PastDays, cfg.Weather.ForecastDays, &registry.Weather)
}

// provideForecastCache prefers Valkey so degraded mode survives restarts,
// with a memory fallback when the server is unreachable.
func provideForecastCache(cfg *config.Config, logger *slog.Logger) weather.CacheStore {
	if cfg.Weather.Valkey.Enabled {
		opt, err := buildValkeyOptions(cfg.Weather.Valkey.Addr)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to memory cache", "error", err)
			return forecastcache.NewMemoryStore()
		}
		client, err := valkey.NewClient(opt)
		if err != nil {
			logger.Error("failed to create valkey client, falling back to memory cache", "error", err)
			return forecastcache.NewMemoryStore()
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			logger.Error("valkey ping failed, falling back to memory cache", "error", err)
		} else {
			logger.Info("valkey forecast cache enabled", "addr", cfg.Weather.Valkey.Addr)
			return forecastcache.NewValkeyStore(client, "coastally")
		}
	}
	return forecastcache.NewMemoryStore()
}

func buildValkeyOptions(addr string) (valkey.ClientOption, error) {
	if strings.Contains(addr, "://") {
		return valkey.ParseURL(addr)
	}
	return valkey.ClientOption{InitAddress: []string{addr}}, nil
}

// localStore is the durable local storage behind both the session and the
// saved API key.
type localStore interface {
	auth.SessionStore
	localstore.KeyStore
}

func provideLocalStore(cfg *config.Config, logger *slog.Logger) localStore {
	path := strings.TrimSpace(cfg.LocalStore.Path)
	if path == "" {
		logger.Info("local store path not set, keeping sessions in memory")
		return localstore.NewMemoryStore()
	}
	store, err := localstore.OpenSQLite(path)
	if err != nil {
		logger.Error("failed to open local store, keeping sessions in memory", "path", path, "error", err)
		return localstore.NewMemoryStore()
	}
	logger.Info("local store opened", "path", path)
	return store
}

func provideSessionStore(store localStore) auth.SessionStore {
	return store
}

func provideKeyStore(store localStore) localstore.KeyStore {
	return store
}

// providePlacesClient resolves the effective API key: the configured key
// wins, otherwise the key the user saved through the settings endpoint is
// picked up here, at start.
func providePlacesClient(cfg *config.Config, keyStore localstore.KeyStore, registry *metrics.Registry, logger *slog.Logger) *geoapify.Client {
	apiKey := strings.TrimSpace(cfg.Places.APIKey)
	if apiKey == "" {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if saved, ok, err := keyStore.LoadAPIKey(ctx); err == nil && ok {
			apiKey = saved
			logger.Info("using saved places API key from local store")
		}
	}
	if apiKey == "" {
		logger.Warn("no places API key configured, place search will serve curated data only")
	}
	return geoapify.NewClient(apiKey, cfg.Places.PlacesURL, cfg.Places.GeocodeURL, &registry.Places)
}

func provideGuideRepository(cfg *config.Config, logger *slog.Logger) (guide.Repository, error) {
	fallback, err := guiderepo.NewMemoryRepository()
	if err != nil {
		return nil, err
	}
	dsn := strings.TrimSpace(cfg.Guide.Postgres.DSN)
	if dsn == "" {
		logger.Info("guide postgres dsn not set, using embedded catalog")
		return fallback, nil
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, using embedded catalog", "error", err)
		return fallback, nil
	}
	if cfg.Guide.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.Guide.Postgres.MaxConns
	}
	if cfg.Guide.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.Guide.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using embedded catalog", "error", err)
		return fallback, nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using embedded catalog", "error", err)
		pool.Close()
		return fallback, nil
	}
	logger.Info("guide postgres repository enabled")
	return guiderepo.NewPostgresRepository(pool), nil
}

func provideRefresher(weatherSvc weather.Service, catalog guide.Repository, cfg *config.Config, logger *slog.Logger) *refresh.Refresher {
	return refresh.New(weatherSvc, catalog, cfg.Weather.RefreshCron, logger)
}
