package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/digiration/digiration/internal/pkg/middleware"
	"github.com/digiration/digiration/internal/pkg/models"
	"github.com/digiration/digiration/services/auth/handler/http"
)

// Handler coordinates the HTTP handlers for the auth service
type Handler struct {
	authHandler *http.AuthHandler
	cfg         *models.Config
}

// NewHandler creates and initializes the auth handlers
func NewHandler(authHandler *http.AuthHandler, cfg *models.Config) *Handler {
	return &Handler{
		authHandler: authHandler,
		cfg:         cfg,
	}
}

// RegisterRoutes registers the authentication routes. Everything under
// /auth is public except logout, which needs the issued token.
func (h *Handler) RegisterRoutes(e *echo.Echo, extra ...echo.MiddlewareFunc) {
	authGroup := e.Group("/auth", extra...)
	authGroup.POST("/initiate", h.authHandler.Initiate)
	authGroup.POST("/verify-otp", h.authHandler.VerifyOTP)
	authGroup.POST("/select-member", h.authHandler.SelectMember)
	authGroup.POST("/verify-aadhaar", h.authHandler.VerifyAadhaar)
	authGroup.POST("/resend-otp", h.authHandler.ResendOTP)
	authGroup.POST("/logout", h.authHandler.Logout, middleware.JWTAuthMiddleware(h.cfg.JWT))
}
