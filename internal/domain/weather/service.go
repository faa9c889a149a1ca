package weather

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	apperrors "github.com/coastally/coastally-api/pkg/errors"
)

// Service exposes forecast and safety capabilities. Safety returns the
// forecast it evaluated so callers need only one fetch.
type Service interface {
	Forecast(ctx context.Context, lat, lon float64) (Forecast, error)
	Safety(ctx context.Context, lat, lon float64) (Forecast, Report, error)
}

// ForecastClient fetches the daily aggregate window from the provider.
type ForecastClient interface {
	FetchDaily(ctx context.Context, lat, lon float64) (Forecast, error)
}

// CacheStore keeps the last good forecast per coordinate bucket.
type CacheStore interface {
	Get(ctx context.Context, key string) (Forecast, bool, error)
	Set(ctx context.Context, key string, forecast Forecast, ttl time.Duration) error
}

type service struct {
	cfg    Config
	client ForecastClient
	cache  CacheStore
	logger *slog.Logger
	now    func() time.Time
}

// NewService wires up the forecast domain.
func NewService(cfg Config, client ForecastClient, cache CacheStore, logger *slog.Logger) Service {
	return &service{
		cfg:    cfg,
		client: client,
		cache:  cache,
		logger: logger.With("component", "weather.service"),
		now:    time.Now,
	}
}

func (s *service) Forecast(ctx context.Context, lat, lon float64) (Forecast, error) {
	if err := validateCoordinates(lat, lon); err != nil {
		return Forecast{}, err
	}

	key := cacheKey(lat, lon)
	forecast, err := s.client.FetchDaily(ctx, lat, lon)
	if err == nil {
		forecast.Source = SourceProvider
		if cacheErr := s.cache.Set(ctx, key, forecast, s.cfg.CacheTTL); cacheErr != nil {
			s.logger.Warn("forecast cache write failed", "key", key, "error", cacheErr)
		}
		return forecast, nil
	}

	s.logger.Warn("forecast fetch failed, entering degraded mode", "lat", lat, "lon", lon, "error", err)

	if cached, ok, cacheErr := s.cache.Get(ctx, key); cacheErr == nil && ok {
		cached.Degraded = true
		cached.Source = SourceCache
		return cached, nil
	} else if cacheErr != nil {
		s.logger.Warn("forecast cache read failed", "key", key, "error", cacheErr)
	}

	return s.syntheticForecast(lat, lon), nil
}

func (s *service) Safety(ctx context.Context, lat, lon float64) (Forecast, Report, error) {
	forecast, err := s.Forecast(ctx, lat, lon)
	if err != nil {
		return Forecast{}, UnavailableReport(), err
	}
	idx, err := SelectToday(forecast.Daily, s.now())
	if err != nil {
		s.logger.Warn("no record for today, reporting safety unavailable", "lat", lat, "lon", lon, "error", err)
		return forecast, UnavailableReport(), nil
	}
	return forecast, EvaluateSafety(forecast.Daily[idx]), nil
}

func validateCoordinates(lat, lon float64) error {
	if lat < -90 || lat > 90 {
		return apperrors.Wrap("invalid_input", "latitude must be between -90 and 90", nil)
	}
	if lon < -180 || lon > 180 {
		return apperrors.Wrap("invalid_input", "longitude must be between -180 and 180", nil)
	}
	return nil
}

// cacheKey buckets coordinates to two decimal places (~1 km) so nearby
// lookups share one entry.
func cacheKey(lat, lon float64) string {
	return fmt.Sprintf("forecast:%.2f:%.2f", lat, lon)
}

// Nominal day cycles used when neither the provider nor the cache can serve.
// The window stays dated and sequenced exactly like a live response so the
// safety engine and clients keep working; Degraded/Source label it clearly.
var syntheticCycles = struct {
	tempMax, tempMin, wind, gust, precip, uv, sunshineHours []float64
	code                                                    []int
}{
	tempMax:       []float64{30, 29, 31, 28, 32, 30, 29, 28, 30, 31, 29, 32, 30, 28},
	tempMin:       []float64{22, 21, 23, 20, 24, 22, 21, 20, 22, 23, 21, 24, 22, 20},
	wind:          []float64{15, 18, 12, 20, 16, 14, 13, 17, 15, 19, 16, 14, 15, 13},
	gust:          []float64{25, 28, 22, 30, 26, 24, 23, 27, 25, 29, 26, 24, 25, 23},
	precip:        []float64{0, 2, 0, 5, 0, 1, 0, 3, 0, 4, 1, 0, 2, 0},
	uv:            []float64{7, 6, 8, 5, 9, 7, 8, 6, 7, 5, 6, 8, 7, 8},
	sunshineHours: []float64{8, 6, 9, 4, 10, 8, 9, 6, 8, 4, 6, 9, 8, 9},
	code:          []int{1, 2, 1, 3, 1, 2, 1, 2, 1, 3, 2, 1, 2, 1},
}

func (s *service) syntheticForecast(lat, lon float64) Forecast {
	total := s.cfg.PastDays + s.cfg.ForecastDays
	start := s.now().Truncate(24 * time.Hour).AddDate(0, 0, -s.cfg.PastDays)

	daily := make([]DailyConditions, 0, total)
	for i := 0; i < total; i++ {
		n := i % len(syntheticCycles.tempMax)
		daily = append(daily, DailyConditions{
			Date:             start.AddDate(0, 0, i),
			TempMax:          syntheticCycles.tempMax[n],
			TempMin:          syntheticCycles.tempMin[n],
			WindSpeedMax:     syntheticCycles.wind[n],
			WindGustMax:      syntheticCycles.gust[n],
			PrecipitationSum: syntheticCycles.precip[n],
			UVIndexMax:       syntheticCycles.uv[n],
			SunshineSeconds:  syntheticCycles.sunshineHours[n] * 3600,
			WeatherCode:      syntheticCycles.code[n],
		})
	}

	return Forecast{
		Location: Location{Latitude: lat, Longitude: lon, Timezone: "UTC"},
		Daily:    daily,
		Degraded: true,
		Source:   SourceSynthetic,
	}
}
