package forecastcache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/coastally/coastally-api/internal/domain/weather"
)

// ValkeyStore persists forecasts in a Valkey-compatible database so degraded
// mode survives process restarts and is shared across replicas.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs a new store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "coastally"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

func (s *ValkeyStore) Get(ctx context.Context, key string) (weather.Forecast, bool, error) {
	cmd := s.client.B().Get().Key(s.entryKey(key)).Build()
	payload, err := s.client.Do(ctx, cmd).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return weather.Forecast{}, false, nil
		}
		return weather.Forecast{}, false, err
	}
	var forecast weather.Forecast
	if err := json.Unmarshal([]byte(payload), &forecast); err != nil {
		return weather.Forecast{}, false, err
	}
	return forecast, true, nil
}

func (s *ValkeyStore) Set(ctx context.Context, key string, forecast weather.Forecast, ttl time.Duration) error {
	payload, err := json.Marshal(forecast)
	if err != nil {
		return err
	}
	builder := s.client.B().Set().Key(s.entryKey(key)).Value(string(payload))
	var cmd valkey.Completed
	if ttl > 0 {
		if ttl < time.Second {
			ttl = time.Second
		}
		cmd = builder.Ex(ttl).Build()
	} else {
		cmd = builder.Build()
	}
	return s.client.Do(ctx, cmd).Error()
}

func (s *ValkeyStore) entryKey(key string) string {
	return s.prefix + ":" + key
}

var _ weather.CacheStore = (*ValkeyStore)(nil)
