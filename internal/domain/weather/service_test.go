package weather

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestService(client ForecastClient, cache CacheStore) *service {
	return &service{
		cfg:    Config{PastDays: 7, ForecastDays: 7, CacheTTL: time.Minute},
		client: client,
		cache:  cache,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    func() time.Time { return mustDate("2024-07-01").Add(9 * time.Hour) },
	}
}

func TestForecastSuccessCachesResult(t *testing.T) {
	upstream := Forecast{
		Location: Location{Latitude: 15.55, Longitude: 73.75, Timezone: "Asia/Kolkata"},
		Daily:    []DailyConditions{{Date: mustDate("2024-07-01"), TempMax: 31}},
	}
	client := &stubForecastClient{forecast: upstream}
	cache := newStubCache()

	svc := newTestService(client, cache)
	got, err := svc.Forecast(context.Background(), 15.55, 73.75)

	require.NoError(t, err)
	require.Equal(t, SourceProvider, got.Source)
	require.False(t, got.Degraded)
	require.Equal(t, 1, cache.sets)
	require.Contains(t, cache.entries, "forecast:15.55:73.75")
}

func TestForecastFailureServesCachedCopy(t *testing.T) {
	client := &stubForecastClient{err: errors.New("connection refused")}
	cache := newStubCache()
	cache.entries["forecast:15.55:73.75"] = Forecast{
		Daily:  []DailyConditions{{Date: mustDate("2024-06-30"), TempMax: 29}},
		Source: SourceProvider,
	}

	svc := newTestService(client, cache)
	got, err := svc.Forecast(context.Background(), 15.55, 73.75)

	require.NoError(t, err)
	require.True(t, got.Degraded)
	require.Equal(t, SourceCache, got.Source)
	require.Len(t, got.Daily, 1)
}

func TestForecastFailureFallsBackToSyntheticWindow(t *testing.T) {
	client := &stubForecastClient{err: errors.New("status 502")}
	svc := newTestService(client, newStubCache())

	got, err := svc.Forecast(context.Background(), 8.4, 76.97)

	require.NoError(t, err)
	require.True(t, got.Degraded)
	require.Equal(t, SourceSynthetic, got.Source)
	require.Len(t, got.Daily, 14)

	// Dated and sequenced like a live response: today-7 .. today+6, one day apart.
	for i := 1; i < len(got.Daily); i++ {
		require.Equal(t, 24*time.Hour, got.Daily[i].Date.Sub(got.Daily[i-1].Date))
	}
	idx, err := SelectToday(got.Daily, svc.now())
	require.NoError(t, err)
	require.Equal(t, 7, idx)
}

func TestForecastRejectsBadCoordinates(t *testing.T) {
	svc := newTestService(&stubForecastClient{}, newStubCache())

	_, err := svc.Forecast(context.Background(), 95, 0)
	require.Error(t, err)
	require.Contains(t, err.Error(), "latitude")

	_, err = svc.Forecast(context.Background(), 0, -181)
	require.Error(t, err)
	require.Contains(t, err.Error(), "longitude")
}

func TestSafetyUsesClosestDay(t *testing.T) {
	client := &stubForecastClient{forecast: Forecast{
		Daily: []DailyConditions{
			{Date: mustDate("2024-06-30"), WindSpeedMax: 10},
			{Date: mustDate("2024-07-01"), WindSpeedMax: 30},
			{Date: mustDate("2024-07-02"), WindSpeedMax: 10},
		},
	}}

	svc := newTestService(client, newStubCache())
	forecast, report, err := svc.Safety(context.Background(), 15.55, 73.75)

	require.NoError(t, err)
	require.Len(t, forecast.Daily, 3)
	require.Equal(t, 1, client.calls)
	require.Equal(t, LevelCaution, report.Level)
	require.Contains(t, report.Warnings, "High wind speeds detected")
}

func TestSafetyReportsUnavailableWithoutRecords(t *testing.T) {
	client := &stubForecastClient{forecast: Forecast{Daily: []DailyConditions{}}}

	svc := newTestService(client, newStubCache())
	forecast, report, err := svc.Safety(context.Background(), 15.55, 73.75)

	require.NoError(t, err)
	require.Empty(t, forecast.Daily)
	require.Equal(t, LevelUnknown, report.Level)
	require.Equal(t, []string{"Weather data unavailable"}, report.Warnings)
}

func TestSafetyPropagatesForecastErrors(t *testing.T) {
	svc := newTestService(&stubForecastClient{}, newStubCache())

	_, report, err := svc.Safety(context.Background(), 95, 0)
	require.Error(t, err)
	require.Equal(t, LevelUnknown, report.Level)
}

type stubForecastClient struct {
	forecast Forecast
	err      error
	calls    int
}

func (s *stubForecastClient) FetchDaily(ctx context.Context, lat, lon float64) (Forecast, error) {
	s.calls++
	if s.err != nil {
		return Forecast{}, s.err
	}
	return s.forecast, nil
}

type stubCache struct {
	entries map[string]Forecast
	sets    int
}

func newStubCache() *stubCache {
	return &stubCache{entries: make(map[string]Forecast)}
}

func (s *stubCache) Get(_ context.Context, key string) (Forecast, bool, error) {
	f, ok := s.entries[key]
	return f, ok, nil
}

func (s *stubCache) Set(_ context.Context, key string, forecast Forecast, _ time.Duration) error {
	s.entries[key] = forecast
	s.sets++
	return nil
}
