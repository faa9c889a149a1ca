package refresh

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coastally/coastally-api/internal/domain/guide"
	"github.com/coastally/coastally-api/internal/domain/weather"
)

type stubCatalog struct {
	guide.Repository
	destinations []guide.Destination
}

func (s *stubCatalog) Destinations(_ context.Context) ([]guide.Destination, error) {
	return s.destinations, nil
}

type recordingWeather struct {
	mu       sync.Mutex
	coords   [][2]float64
	degraded map[[2]float64]bool
}

func (r *recordingWeather) Forecast(_ context.Context, lat, lon float64) (weather.Forecast, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := [2]float64{lat, lon}
	r.coords = append(r.coords, key)
	return weather.Forecast{Degraded: r.degraded[key], Source: weather.SourceProvider}, nil
}

func (r *recordingWeather) Safety(_ context.Context, lat, lon float64) (weather.Forecast, weather.Report, error) {
	return weather.Forecast{}, weather.Report{}, nil
}

func TestRunOnceWarmsEveryDestination(t *testing.T) {
	catalog := &stubCatalog{destinations: []guide.Destination{
		{Key: "miami", Latitude: 25.79, Longitude: -80.13},
		{Key: "malibu", Latitude: 34.03, Longitude: -118.78},
	}}
	svc := &recordingWeather{degraded: map[[2]float64]bool{}}
	r := New(svc, catalog, "", slog.Default())

	r.RunOnce(context.Background())

	require.Len(t, svc.coords, 2)
	assert.Equal(t, [2]float64{25.79, -80.13}, svc.coords[0])
	assert.Equal(t, [2]float64{34.03, -118.78}, svc.coords[1])
}

func TestRunOnceStopsOnCancelledContext(t *testing.T) {
	catalog := &stubCatalog{destinations: []guide.Destination{
		{Key: "miami", Latitude: 25.79, Longitude: -80.13},
	}}
	svc := &recordingWeather{degraded: map[[2]float64]bool{}}
	r := New(svc, catalog, "", slog.Default())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r.RunOnce(ctx)

	assert.Empty(t, svc.coords)
}

func TestStartRunsImmediateWarmup(t *testing.T) {
	catalog := &stubCatalog{destinations: []guide.Destination{
		{Key: "miami", Latitude: 25.79, Longitude: -80.13},
	}}
	svc := &recordingWeather{degraded: map[[2]float64]bool{}}
	r := New(svc, catalog, "0 */6 * * *", slog.Default())

	require.NoError(t, r.Start(context.Background()))
	defer r.Stop()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		svc.mu.Lock()
		n := len(svc.coords)
		svc.mu.Unlock()
		if n > 0 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("immediate warm-up never ran")
}
