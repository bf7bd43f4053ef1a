package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/prasetyadi/nebeng/internal/pkg/middleware"
	"github.com/prasetyadi/nebeng/internal/pkg/models"
	"github.com/prasetyadi/nebeng/services/rides/handler/http"
)

// Handler coordinates the ride service's HTTP handlers
type Handler struct {
	rideHandler *http.RideHandler
	cfg         *models.Config
}

// NewHandler creates and initializes the ride handlers
func NewHandler(rideHandler *http.RideHandler, cfg *models.Config) *Handler {
	return &Handler{
		rideHandler: rideHandler,
		cfg:         cfg,
	}
}

// RegisterRoutes registers the ride routes. Search is public; publishing and
// editing rides require authentication.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	rideGroup := e.Group("/rides")
	rideGroup.GET("/search", h.rideHandler.SearchRides)

	protected := rideGroup.Group("", middleware.JWTAuthMiddleware(h.cfg.JWT))
	protected.POST("", h.rideHandler.CreateRide)
	protected.PUT("/:rideId", h.rideHandler.UpdateRide)
}
