package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/prasetyadi/nebeng/internal/pkg/logger"
	"github.com/prasetyadi/nebeng/internal/pkg/middleware"
	"github.com/prasetyadi/nebeng/internal/pkg/models"
	"github.com/prasetyadi/nebeng/internal/utils"
	"github.com/prasetyadi/nebeng/services/auth"
)

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	authUC auth.AuthUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUC auth.AuthUC) *AuthHandler {
	return &AuthHandler{authUC: authUC}
}

// Register handles account registration
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("invalid registration payload", logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.authUC.Register(c.Request().Context(), &req)
	if err != nil {
		logger.Error("failed to register user", logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "User registered successfully", resp)
}

// Login handles credential login
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("invalid login payload", logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.authUC.Login(c.Request().Context(), &req)
	if err != nil {
		logger.Warn("login failed", logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}

// Profile returns the authenticated caller's account
func (h *AuthHandler) Profile(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	user, err := h.authUC.Profile(c.Request().Context(), userID)
	if err != nil {
		logger.Error("failed to load user profile",
			logger.String("user_id", userID.String()),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Profile retrieved successfully", user)
}
