package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	jwtpkg "github.com/prasetyadi/nebeng/internal/pkg/jwt"
	"github.com/prasetyadi/nebeng/internal/pkg/models"
	"github.com/prasetyadi/nebeng/internal/utils"
)

// ContextKeyUserID is the echo context key carrying the authenticated caller
const ContextKeyUserID = "user_id"

// JWTAuthMiddleware creates a middleware for JWT authentication. On success
// the caller's user id (uuid.UUID) is set into the context under user_id.
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid or expired token")
			}

			userID, err := jwtpkg.UserIDFromClaims(claims)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token: missing user_id claim")
			}

			c.Set(ContextKeyUserID, userID)
			return next(c)
		}
	}
}
