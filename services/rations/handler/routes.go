package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/digiration/digiration/internal/pkg/middleware"
	"github.com/digiration/digiration/internal/pkg/models"
	"github.com/digiration/digiration/services/rations/handler/http"
)

// Handler coordinates the HTTP handlers for the rations service
type Handler struct {
	rationHandler *http.RationHandler
	cfg           *models.Config
}

// NewHandler creates and initializes the ration handlers
func NewHandler(rationHandler *http.RationHandler, cfg *models.Config) *Handler {
	return &Handler{
		rationHandler: rationHandler,
		cfg:           cfg,
	}
}

// RegisterRoutes registers the ration routes. Everything under /rations
// requires an issued token.
func (h *Handler) RegisterRoutes(e *echo.Echo, extra ...echo.MiddlewareFunc) {
	mws := append([]echo.MiddlewareFunc{middleware.JWTAuthMiddleware(h.cfg.JWT)}, extra...)

	rationGroup := e.Group("/rations", mws...)
	rationGroup.GET("/items", h.rationHandler.ListItems)
	rationGroup.GET("/shops", h.rationHandler.ListShops)
	rationGroup.GET("/quota/:memberId", h.rationHandler.GetMemberQuota)
	rationGroup.GET("/stock/:shopId", h.rationHandler.GetShopStock)
	rationGroup.GET("/availability", h.rationHandler.CheckAvailability)
	rationGroup.POST("/purchase", h.rationHandler.Purchase)
}
