package middleware

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prasetyadi/nebeng/internal/pkg/logger"
)

// RequestLoggerMiddleware creates a middleware that logs every request with
// latency, status and caller identity when available.
func RequestLoggerMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path
			raw := c.Request().URL.RawQuery

			err := next(c)

			latency := time.Since(start)
			statusCode := c.Response().Status
			if raw != "" {
				path = path + "?" + raw
			}

			userIDStr := "anonymous"
			if userID := c.Get(ContextKeyUserID); userID != nil {
				userIDStr = fmt.Sprintf("%v", userID)
			}

			fields := []logger.Field{
				logger.Int("status", statusCode),
				logger.Duration("latency", latency),
				logger.String("client_ip", c.RealIP()),
				logger.String("method", c.Request().Method),
				logger.String("path", path),
				logger.String("user_id", userIDStr),
			}

			switch {
			case statusCode >= 500:
				zapLogger.Error("Server error", fields...)
			case statusCode >= 400:
				zapLogger.Warn("Client error", fields...)
			default:
				zapLogger.Info("Request processed", fields...)
			}

			return err
		}
	}
}
