package middleware

import (
	"strings"

	jwtpkg "github.com/Juankcba/choapp-back/internal/pkg/jwt"
	"github.com/Juankcba/choapp-back/internal/pkg/models"
	"github.com/Juankcba/choapp-back/internal/utils"
	"github.com/labstack/echo/v4"
)

// Context keys set by JWTAuthMiddleware
const (
	ContextUserID    = "user_id"
	ContextUserRole  = "user_role"
	ContextUserEmail = "user_email"
)

// JWTAuthMiddleware creates a middleware for JWT authentication
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret, config.Issuer)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			c.Set(ContextUserID, claims.UserID)
			c.Set(ContextUserRole, claims.Role)
			c.Set(ContextUserEmail, claims.Email)

			return next(c)
		}
	}
}

// RequireRole rejects requests whose token role is not one of roles
func RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(ContextUserRole).(string)
			for _, r := range roles {
				if role == r {
					return next(c)
				}
			}
			return utils.ForbiddenResponse(c, "Insufficient role")
		}
	}
}

// UserID returns the authenticated user id
func UserID(c echo.Context) string {
	id, _ := c.Get(ContextUserID).(string)
	return id
}

// UserRole returns the authenticated user role
func UserRole(c echo.Context) string {
	role, _ := c.Get(ContextUserRole).(string)
	return role
}

// UserEmail returns the email carried in the token, if any
func UserEmail(c echo.Context) string {
	email, _ := c.Get(ContextUserEmail).(string)
	return email
}
