package forecastcache

import (
	"context"
	"sync"
	"time"

	"github.com/coastally/coastally-api/internal/domain/weather"
)

type cachedForecast struct {
	payload   weather.Forecast
	expiresAt time.Time
}

// MemoryStore is an in-memory forecast cache for tests/dev and single-node runs.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]cachedForecast
}

// NewMemoryStore constructs a cache backed by process memory.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]cachedForecast)}
}

// Get implements weather.CacheStore.
func (s *MemoryStore) Get(_ context.Context, key string) (weather.Forecast, bool, error) {
	s.mu.RLock()
	entry, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return weather.Forecast{}, false, nil
	}
	if hasExpired(entry.expiresAt) {
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		return weather.Forecast{}, false, nil
	}
	return entry.payload, true, nil
}

// Set caches the forecast with optional TTL.
func (s *MemoryStore) Set(_ context.Context, key string, forecast weather.Forecast, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	exp := time.Time{}
	if ttl > 0 {
		exp = time.Now().Add(ttl)
	}
	s.entries[key] = cachedForecast{payload: forecast, expiresAt: exp}
	return nil
}

func hasExpired(ts time.Time) bool {
	if ts.IsZero() {
		return false
	}
	return ts.Before(time.Now())
}

var _ weather.CacheStore = (*MemoryStore)(nil)
