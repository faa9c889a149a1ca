package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coastally/coastally-api/internal/infra/config"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, logger *slog.Logger, handler *Handler, placesHandler *PlacesHandler, authHandler *AuthHandler, guideHandler *GuideHandler) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestIDMiddleware(),
		requestLogger(logger),
		corsMiddleware(cfg.HTTP.AllowedOrigins),
		rateLimitMiddleware(cfg.HTTP.RateLimit, logger),
		errorHandlingMiddleware(logger),
	)

	api := router.Group("/api/v1")
	{
		api.GET("/weather", handler.Forecast)
		api.GET("/weather/safety", handler.Safety)

		api.GET("/places/autocomplete", placesHandler.Autocomplete)
		api.GET("/places/search", placesHandler.Search)
		api.GET("/places/regions", placesHandler.Regions)

		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/signup", authHandler.Signup)
		api.POST("/auth/logout", authHandler.Logout)
		api.GET("/auth/profile", authHandler.Profile)

		api.POST("/profile/favorites", authHandler.AddFavorite)
		api.DELETE("/profile/favorites/:name", authHandler.RemoveFavorite)
		api.POST("/profile/plans", authHandler.SavePlan)

		api.PUT("/settings/places-key", authHandler.SavePlacesKey)

		api.GET("/guide/destinations", guideHandler.Destinations)
		api.GET("/guide/hotels", guideHandler.Hotels)
		api.GET("/guide/restaurants", guideHandler.Restaurants)
		api.GET("/guide/transport", guideHandler.Transport)
		api.GET("/guide/sentiment", guideHandler.Sentiment)
		api.GET("/guide/safety-history", guideHandler.SafetyHistory)
		api.GET("/guide/itineraries", guideHandler.Itineraries)

		api.GET("/status", handler.Status)
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        withRetry(router, cfg.HTTP.Retry, logger),
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}
