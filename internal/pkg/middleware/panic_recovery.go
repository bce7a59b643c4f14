package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/Juankcba/choapp-back/internal/pkg/logger"
	"github.com/labstack/echo/v4"
)

// PanicRecoveryMiddleware recovers from handler panics, logs them with a stack
// trace and answers 500
func PanicRecoveryMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					handlePanic(c, r)
					err = nil
				}
			}()

			return next(c)
		}
	}
}

func handlePanic(c echo.Context, r interface{}) {
	requestID := c.Response().Header().Get(echo.HeaderXRequestID)

	userID := UserID(c)
	if userID == "" {
		userID = "anonymous"
	}

	logger.Error("Panic recovered during request processing",
		logger.Any("panic_value", r),
		logger.String("panic_type", fmt.Sprintf("%T", r)),
		logger.String("stack_trace", string(debug.Stack())),
		logger.String("method", c.Request().Method),
		logger.String("path", c.Request().URL.Path),
		logger.String("client_ip", c.RealIP()),
		logger.UserID(userID),
		logger.String("request_id", requestID),
	)

	if !c.Response().Committed {
		if err := c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"success":    false,
			"error":      "Internal Server Error",
			"request_id": requestID,
		}); err != nil {
			_ = c.String(http.StatusInternalServerError, "Internal Server Error")
		}
	}
}
