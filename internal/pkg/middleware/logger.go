package middleware

import (
	"time"

	"github.com/Juankcba/choapp-back/internal/pkg/logger"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// LoggerMiddleware writes one access log line per request. Handler errors are
// resolved through echo's error handler first so the logged status is final.
func LoggerMiddleware(log *logrus.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			status := c.Response().Status
			userID := UserID(c)
			if userID == "" {
				userID = "anonymous"
			}

			entry := log.WithFields(logrus.Fields{
				"status":     status,
				"latency":    time.Since(start).String(),
				"client_ip":  c.RealIP(),
				"method":     req.Method,
				"path":       req.URL.Path,
				"route":      c.Path(),
				"user_id":    userID,
				"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
			})
			if err != nil && status >= 500 {
				entry = entry.WithError(err)
			}

			level, msg := accessLevel(status)
			entry.Log(level, msg)
			return nil
		}
	}
}

func accessLevel(status int) (logrus.Level, string) {
	switch {
	case status >= 500:
		return logrus.ErrorLevel, "Server error"
	case status >= 400:
		return logrus.WarnLevel, "Client error"
	default:
		return logrus.InfoLevel, "Request processed"
	}
}

// RequestIDMiddleware adds a unique request ID to each request and to its context
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
			}

			c.Response().Header().Set(echo.HeaderXRequestID, requestID)
			c.Set("request_id", requestID)
			c.SetRequest(c.Request().WithContext(logger.ContextWithRequestID(c.Request().Context(), requestID)))

			return next(c)
		}
	}
}
