package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/prasetyadi/nebeng/internal/pkg/middleware"
	"github.com/prasetyadi/nebeng/internal/pkg/models"
	"github.com/prasetyadi/nebeng/services/requests/handler/http"
)

// Handler coordinates the request service's HTTP handlers
type Handler struct {
	requestHandler *http.RequestHandler
	cfg            *models.Config
}

// NewHandler creates and initializes the request handlers
func NewHandler(requestHandler *http.RequestHandler, cfg *models.Config) *Handler {
	return &Handler{
		requestHandler: requestHandler,
		cfg:            cfg,
	}
}

// RegisterRoutes registers the request lifecycle routes. All of them require
// authentication.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	group := e.Group("/requests", middleware.JWTAuthMiddleware(h.cfg.JWT))
	group.POST("", h.requestHandler.CreateRequest)
	group.GET("/my-requests", h.requestHandler.ListMyRequests)
	group.GET("/ride/:rideId", h.requestHandler.ListRideRequests)
	group.POST("/:requestId/accept", h.requestHandler.AcceptRequest)
	group.POST("/:requestId/revoke", h.requestHandler.RevokeRequest)
}
