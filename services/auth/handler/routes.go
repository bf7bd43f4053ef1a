package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/prasetyadi/nebeng/internal/pkg/middleware"
	"github.com/prasetyadi/nebeng/internal/pkg/models"
	"github.com/prasetyadi/nebeng/services/auth/handler/http"
)

// Handler coordinates the auth service's HTTP handlers
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

// RegisterRoutes registers the authentication routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	authGroup := e.Group("/auth")
	authGroup.POST("/register", h.authHandler.Register)
	authGroup.POST("/login", h.authHandler.Login)
	authGroup.GET("/me", h.authHandler.Profile, middleware.JWTAuthMiddleware(h.cfg.JWT))
}
