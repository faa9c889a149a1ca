package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/coastally/coastally-api/internal/domain/weather"
	"github.com/coastally/coastally-api/pkg/metrics"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	weatherSvc weather.Service
	registry   *metrics.Registry
	logger     *slog.Logger
	started    time.Time
}

// NewHandler constructs the weather and status handler.
func NewHandler(weatherSvc weather.Service, registry *metrics.Registry, logger *slog.Logger) *Handler {
	return &Handler{
		weatherSvc: weatherSvc,
		registry:   registry,
		logger:     logger.With("component", "http.handler"),
		started:    time.Now(),
	}
}

// Forecast serves the daily window for a coordinate pair.
func (h *Handler) Forecast(c *gin.Context) {
	lat, lon, ok := coordinateParams(c)
	if !ok {
		return
	}

	forecast, err := h.weatherSvc.Forecast(c.Request.Context(), lat, lon)
	if err != nil {
		abortDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, forecast)
}

// Safety serves the forecast plus the safety assessment for today.
func (h *Handler) Safety(c *gin.Context) {
	lat, lon, ok := coordinateParams(c)
	if !ok {
		return
	}

	forecast, report, err := h.weatherSvc.Safety(c.Request.Context(), lat, lon)
	if err != nil {
		abortDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"forecast": forecast,
		"safety":   report,
	})
}

// Status reports liveness plus upstream call counters.
func (h *Handler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":         "ok",
		"uptime_seconds": int64(time.Since(h.started).Seconds()),
		"upstreams": gin.H{
			"weather": h.registry.Weather.Snapshot(),
			"places":  h.registry.Places.Snapshot(),
		},
	})
}

func coordinateParams(c *gin.Context) (lat, lon float64, ok bool) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lon, lonErr := strconv.ParseFloat(c.Query("lon"), 64)
	if latErr != nil || lonErr != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "lat and lon must be decimal coordinates", nil))
		return 0, 0, false
	}
	return lat, lon, true
}
