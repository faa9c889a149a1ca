package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/coastally/coastally-api/internal/domain/places"
)

// PlacesHandler serves place search endpoints.
type PlacesHandler struct {
	svc    places.Service
	logger *slog.Logger
}

// NewPlacesHandler constructs the handler.
func NewPlacesHandler(svc places.Service, logger *slog.Logger) *PlacesHandler {
	return &PlacesHandler{
		svc:    svc,
		logger: logger.With("component", "http.places"),
	}
}

// Autocomplete suggests places for partial text input.
func (h *PlacesHandler) Autocomplete(c *gin.Context) {
	limit, ok := optionalIntParam(c, "limit")
	if !ok {
		return
	}

	results, err := h.svc.Autocomplete(c.Request.Context(), c.Query("text"), limit)
	if err != nil {
		abortDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"places": results})
}

// Search looks up places by category and area filter.
func (h *PlacesHandler) Search(c *gin.Context) {
	limit, ok := optionalIntParam(c, "limit")
	if !ok {
		return
	}
	radius, ok := optionalIntParam(c, "radius")
	if !ok {
		return
	}

	query := places.SearchQuery{
		Category:     c.Query("category"),
		Region:       c.Query("region"),
		PlaceID:      c.Query("place"),
		RadiusMeters: radius,
		Limit:        limit,
	}

	latRaw, lonRaw := c.Query("lat"), c.Query("lon")
	if latRaw != "" || lonRaw != "" {
		lat, latErr := strconv.ParseFloat(latRaw, 64)
		lon, lonErr := strconv.ParseFloat(lonRaw, 64)
		if latErr != nil || lonErr != nil {
			abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "lat and lon must both be decimal coordinates", nil))
			return
		}
		query.Coordinates = &places.Coordinate{Lon: lon, Lat: lat}
	}

	results, err := h.svc.Search(c.Request.Context(), query)
	if err != nil {
		abortDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"places": results})
}

// Regions lists the selectable coastal regions.
func (h *PlacesHandler) Regions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"regions": h.svc.Regions()})
}

func optionalIntParam(c *gin.Context, name string) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", name+" must be a non-negative integer", err))
		return 0, false
	}
	return value, true
}
