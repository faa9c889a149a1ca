package http

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/coastally/coastally-api/internal/domain/auth"
	"github.com/coastally/coastally-api/internal/infra/localstore"
)

// AuthHandler serves the stub auth flow, profile preferences and settings.
type AuthHandler struct {
	svc      auth.Service
	keyStore localstore.KeyStore
	logger   *slog.Logger
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(svc auth.Service, keyStore localstore.KeyStore, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		svc:      svc,
		keyStore: keyStore,
		logger:   logger.With("component", "http.auth"),
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login starts a session from any non-empty credentials.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	session, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		abortDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

type signupRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Signup creates the profile after form-style validation.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	session, err := h.svc.Signup(c.Request.Context(), req.Name, req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		abortDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, session)
}

// Logout deletes the stored session.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.svc.Logout(c.Request.Context()); err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Profile returns the stored profile, or 401 when no session exists.
func (h *AuthHandler) Profile(c *gin.Context) {
	profile, err := h.svc.Current(c.Request.Context())
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

type favoriteRequest struct {
	Location string `json:"location"`
}

// AddFavorite appends a favorite location to the profile.
func (h *AuthHandler) AddFavorite(c *gin.Context) {
	var req favoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	profile, err := h.svc.AddFavorite(c.Request.Context(), req.Location)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// RemoveFavorite drops a favorite location by name.
func (h *AuthHandler) RemoveFavorite(c *gin.Context) {
	profile, err := h.svc.RemoveFavorite(c.Request.Context(), c.Param("name"))
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

type planRequest struct {
	Title    string `json:"title"`
	Location string `json:"location"`
	Notes    string `json:"notes"`
}

// SavePlan stores a trip plan on the profile.
func (h *AuthHandler) SavePlan(c *gin.Context) {
	var req planRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	profile, err := h.svc.SavePlan(c.Request.Context(), req.Title, req.Location, req.Notes)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, profile)
}

type placesKeyRequest struct {
	APIKey string `json:"apiKey"`
}

// SavePlacesKey persists the user-provided places API key. The running
// process keeps its configured key; the saved one is picked up at the next
// start.
func (h *AuthHandler) SavePlacesKey(c *gin.Context) {
	var req placesKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	key := strings.TrimSpace(req.APIKey)
	if key == "" {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "apiKey cannot be empty", nil))
		return
	}

	if err := h.keyStore.SaveAPIKey(c.Request.Context(), key); err != nil {
		abortDomainError(c, err)
		return
	}
	h.logger.Info("places API key saved, applied at next start")
	c.JSON(http.StatusOK, gin.H{"message": "API key saved. It will be used the next time the service starts."})
}
