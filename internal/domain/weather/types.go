package weather

import "time"

// DailyConditions is one calendar day of provider aggregates, in the
// location's local timezone. Values use °C, km/h and mm.
type DailyConditions struct {
	Date             time.Time `json:"date"`
	TempMax          float64   `json:"tempMax"`
	TempMin          float64   `json:"tempMin"`
	WindSpeedMax     float64   `json:"windSpeedMax"`
	WindGustMax      float64   `json:"windGustMax"`
	PrecipitationSum float64   `json:"precipitationSum"`
	UVIndexMax       float64   `json:"uvIndexMax"`
	SunshineSeconds  float64   `json:"sunshineSeconds"`
	WeatherCode      int       `json:"weatherCode"`
}

// Location echoes the coordinates and timezone the provider resolved.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`
}

// Forecast is a contiguous window of daily records, oldest first.
// Degraded marks data served from cache or the synthetic fallback after an
// upstream failure.
type Forecast struct {
	Location Location          `json:"location"`
	Daily    []DailyConditions `json:"daily"`
	Degraded bool              `json:"degraded"`
	Source   string            `json:"source"`
}

// Data source labels carried on Forecast.Source.
const (
	SourceProvider  = "open-meteo"
	SourceCache     = "cache"
	SourceSynthetic = "synthetic"
)

// Config wires runtime settings for the forecast domain.
type Config struct {
	PastDays     int
	ForecastDays int
	CacheTTL     time.Duration
}
