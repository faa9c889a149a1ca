package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/coastally/coastally-api/internal/domain/weather"
	apperrors "github.com/coastally/coastally-api/pkg/errors"
	"github.com/coastally/coastally-api/pkg/metrics"
)

const defaultBaseURL = "https://api.open-meteo.com/v1/forecast"

// The daily aggregates requested from the provider, order matters only for
// readability of the outgoing URL.
var dailyMetrics = []string{
	"temperature_2m_max",
	"temperature_2m_min",
	"weather_code",
	"wind_speed_10m_max",
	"wind_gusts_10m_max",
	"precipitation_sum",
	"uv_index_max",
	"sunshine_duration",
}

// Neutral fill-ins for days the provider leaves short, null or misaligned.
const (
	defaultTempMax = 25
	defaultTempMin = 20
	defaultWind    = 10
	defaultGust    = 15
	defaultPrecip  = 0
	defaultUV      = 5
	defaultCode    = 1
)

// Client fetches daily forecast windows from Open-Meteo.
type Client struct {
	baseURL      string
	pastDays     int
	forecastDays int
	httpClient   *http.Client
	counters     *metrics.UpstreamCounters
}

// NewClient builds an API client.
func NewClient(baseURL string, pastDays, forecastDays int, counters *metrics.UpstreamCounters) *Client {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	return &Client{
		baseURL:      strings.TrimRight(trimmed, "/"),
		pastDays:     pastDays,
		forecastDays: forecastDays,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		counters: counters,
	}
}

// FetchDaily retrieves the trailing+forward daily window for the coordinates,
// in the location's local timezone.
func (c *Client) FetchDaily(ctx context.Context, lat, lon float64) (weather.Forecast, error) {
	forecast, err := c.fetchDaily(ctx, lat, lon)
	c.counters.Record(err)
	return forecast, err
}

func (c *Client) fetchDaily(ctx context.Context, lat, lon float64) (weather.Forecast, error) {
	params := url.Values{}
	params.Set("latitude", fmt.Sprintf("%.4f", lat))
	params.Set("longitude", fmt.Sprintf("%.4f", lon))
	params.Set("daily", strings.Join(dailyMetrics, ","))
	params.Set("past_days", fmt.Sprintf("%d", c.pastDays))
	params.Set("forecast_days", fmt.Sprintf("%d", c.forecastDays))
	params.Set("timezone", "auto")
	params.Set("temperature_unit", "celsius")
	params.Set("wind_speed_unit", "kmh")
	params.Set("precipitation_unit", "mm")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return weather.Forecast{}, apperrors.Wrap("upstream_unavailable", "build forecast request", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return weather.Forecast{}, apperrors.Wrap("upstream_unavailable", "forecast request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return weather.Forecast{}, apperrors.Wrap("upstream_unavailable",
			fmt.Sprintf("forecast request error: status=%d body=%s", resp.StatusCode, string(payload)), nil)
	}

	var raw apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return weather.Forecast{}, apperrors.Wrap("upstream_unavailable", "decode forecast response", err)
	}
	if len(raw.Daily.Time) == 0 {
		return weather.Forecast{}, apperrors.Wrap("upstream_unavailable", "provider returned an empty daily window", nil)
	}

	return normalizeDaily(raw), nil
}

type apiResponse struct {
	Latitude         float64    `json:"latitude"`
	Longitude        float64    `json:"longitude"`
	Timezone         string     `json:"timezone"`
	UTCOffsetSeconds int        `json:"utc_offset_seconds"`
	Daily            dailyBlock `json:"daily"`
}

// dailyBlock mirrors the provider's columnar layout: one array per metric,
// aligned by index to the time array. Pointers keep null entries decodable.
type dailyBlock struct {
	Time             []string   `json:"time"`
	TemperatureMax   []*float64 `json:"temperature_2m_max"`
	TemperatureMin   []*float64 `json:"temperature_2m_min"`
	WeatherCode      []*float64 `json:"weather_code"`
	WindSpeedMax     []*float64 `json:"wind_speed_10m_max"`
	WindGustMax      []*float64 `json:"wind_gusts_10m_max"`
	PrecipitationSum []*float64 `json:"precipitation_sum"`
	UVIndexMax       []*float64 `json:"uv_index_max"`
	SunshineDuration []*float64 `json:"sunshine_duration"`
}

// normalizeDaily reshapes the columnar arrays into per-day records,
// index-for-index. Every metric sequence is padded to the date sequence with
// neutral defaults so a short provider payload can never misalign records.
func normalizeDaily(raw apiResponse) weather.Forecast {
	loc := resolveLocation(raw.Timezone, raw.UTCOffsetSeconds)

	daily := make([]weather.DailyConditions, 0, len(raw.Daily.Time))
	for i, day := range raw.Daily.Time {
		date, err := time.ParseInLocation("2006-01-02", day, loc)
		if err != nil {
			continue
		}
		daily = append(daily, weather.DailyConditions{
			Date:             date,
			TempMax:          valueAt(raw.Daily.TemperatureMax, i, defaultTempMax),
			TempMin:          valueAt(raw.Daily.TemperatureMin, i, defaultTempMin),
			WindSpeedMax:     valueAt(raw.Daily.WindSpeedMax, i, defaultWind),
			WindGustMax:      valueAt(raw.Daily.WindGustMax, i, defaultGust),
			PrecipitationSum: valueAt(raw.Daily.PrecipitationSum, i, defaultPrecip),
			UVIndexMax:       valueAt(raw.Daily.UVIndexMax, i, defaultUV),
			SunshineSeconds:  valueAt(raw.Daily.SunshineDuration, i, 0),
			WeatherCode:      int(valueAt(raw.Daily.WeatherCode, i, defaultCode)),
		})
	}

	return weather.Forecast{
		Location: weather.Location{
			Latitude:  raw.Latitude,
			Longitude: raw.Longitude,
			Timezone:  raw.Timezone,
		},
		Daily: daily,
	}
}

func resolveLocation(name string, offsetSeconds int) *time.Location {
	if name != "" {
		if loc, err := time.LoadLocation(name); err == nil {
			return loc
		}
	}
	if offsetSeconds != 0 {
		return time.FixedZone("UTC-offset", offsetSeconds)
	}
	return time.UTC
}

func valueAt(values []*float64, i int, fallback float64) float64 {
	if i >= len(values) || values[i] == nil {
		return fallback
	}
	return *values[i]
}
