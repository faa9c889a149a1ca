package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/coastally/coastally-api/internal/domain/guide"
)

// GuideHandler serves the curated catalog endpoints.
type GuideHandler struct {
	svc    guide.Service
	logger *slog.Logger
}

// NewGuideHandler constructs the handler.
func NewGuideHandler(svc guide.Service, logger *slog.Logger) *GuideHandler {
	return &GuideHandler{
		svc:    svc,
		logger: logger.With("component", "http.guide"),
	}
}

// Destinations lists every supported destination.
func (h *GuideHandler) Destinations(c *gin.Context) {
	destinations, err := h.svc.Destinations(c.Request.Context())
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"destinations": destinations})
}

// Hotels filters the hotel list by location and optional price band.
func (h *GuideHandler) Hotels(c *gin.Context) {
	hotels, err := h.svc.Hotels(c.Request.Context(), c.Query("location"), c.Query("priceRange"))
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"hotels": hotels})
}

// Restaurants filters the dining list by location and optional cuisine.
func (h *GuideHandler) Restaurants(c *gin.Context) {
	restaurants, err := h.svc.Restaurants(c.Request.Context(), c.Query("location"), c.Query("cuisine"))
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurants": restaurants})
}

// Transport returns the guide for a (location, mode) pair.
func (h *GuideHandler) Transport(c *gin.Context) {
	entry, err := h.svc.Transport(c.Request.Context(), c.Query("location"), c.Query("mode"))
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// Sentiment returns visitor sentiment for a location.
func (h *GuideHandler) Sentiment(c *gin.Context) {
	summary, err := h.svc.Sentiment(c.Request.Context(), c.Query("location"))
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// SafetyHistory returns incident summaries for a year (latest by default).
func (h *GuideHandler) SafetyHistory(c *gin.Context) {
	year := 0
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "year must be an integer", err))
			return
		}
		year = parsed
	}

	records, years, err := h.svc.SafetyHistory(c.Request.Context(), year)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": records, "years": years})
}

// Itineraries returns the curated plan for a (location, duration) pair.
func (h *GuideHandler) Itineraries(c *gin.Context) {
	plan, err := h.svc.Plan(c.Request.Context(), c.Query("location"), c.Query("duration"))
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}
