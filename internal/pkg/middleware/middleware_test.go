package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jwtpkg "github.com/Juankcba/choapp-back/internal/pkg/jwt"
	"github.com/Juankcba/choapp-back/internal/pkg/logger"
	"github.com/Juankcba/choapp-back/internal/pkg/models"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testJWT = models.JWTConfig{Secret: "mw-secret", Issuer: "choapp"}

func token(t *testing.T, userID, role string) string {
	tok, err := jwtpkg.GenerateToken(userID, "u@x.io", role, testJWT.Secret, testJWT.Issuer, time.Hour)
	require.NoError(t, err)
	return tok
}

func TestJWTAuthMiddleware(t *testing.T) {
	e := echo.New()
	e.GET("/me", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"user_id": UserID(c),
			"role":    UserRole(c),
			"email":   UserEmail(c),
		})
	}, JWTAuthMiddleware(testJWT))

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"bad token", "Bearer nope", http.StatusUnauthorized},
		{"valid", "Bearer " + token(t, "user-1", "family"), http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusOK {
				var body map[string]string
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, "user-1", body["user_id"])
				assert.Equal(t, "family", body["role"])
				assert.Equal(t, "u@x.io", body["email"])
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	e := echo.New()
	e.GET("/admin", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) },
		JWTAuthMiddleware(testJWT), RequireRole("admin"))

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token(t, "u1", "family"))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token(t, "u1", "admin"))
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRequestIDAndLogger(t *testing.T) {
	var buf bytes.Buffer
	e := echo.New()
	e.Use(RequestIDMiddleware(), LoggerMiddleware(logger.NewAccessLogger("info", &buf)))

	var seen string
	e.GET("/ping", func(c echo.Context) error {
		seen = logger.RequestIDFromContext(c.Request().Context())
		return c.String(http.StatusOK, "pong")
	})
	e.GET("/missing", func(c echo.Context) error { return echo.ErrNotFound })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(echo.HeaderXRequestID, "req-42")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "req-42", rec.Header().Get(echo.HeaderXRequestID))
	assert.Equal(t, "req-42", seen)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.Split(buf.Bytes(), []byte("\n"))[0], &entry))
	assert.Equal(t, "Request processed", entry["message"])
	assert.Equal(t, float64(200), entry["status"])

	buf.Reset()
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
	assert.Contains(t, buf.String(), "Client error")
}

func TestPanicRecoveryMiddleware(t *testing.T) {
	logger.SetGlobalLogger(logger.NewNopLogger())

	e := echo.New()
	e.Use(PanicRecoveryMiddleware())
	e.GET("/boom", func(c echo.Context) error { panic("test panic message") })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Internal Server Error")
}
