package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Juankcba/choapp-back/internal/pkg/models"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSuccessResponse(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, SuccessResponse(c, http.StatusCreated, "Resource created", map[string]string{"id": "123"}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Resource created", resp.Message)
}

func TestErrorHelpers(t *testing.T) {
	tests := []struct {
		name   string
		call   func(echo.Context) error
		status int
		msg    string
	}{
		{"bad request", func(c echo.Context) error { return BadRequestResponse(c, "bad") }, http.StatusBadRequest, "bad"},
		{"unauthorized default", func(c echo.Context) error { return UnauthorizedResponse(c, "") }, http.StatusUnauthorized, "Unauthorized"},
		{"forbidden default", func(c echo.Context) error { return ForbiddenResponse(c, "") }, http.StatusForbidden, "Forbidden"},
		{"domain not found", func(c echo.Context) error { return DomainErrorResponse(c, models.ErrServiceNotFound) }, http.StatusNotFound, models.ErrServiceNotFound.Error()},
		{"unmapped error", func(c echo.Context) error { return DomainErrorResponse(c, errors.New("boom")) }, http.StatusInternalServerError, "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()
			require.NoError(t, tt.call(c))

			assert.Equal(t, tt.status, rec.Code)
			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.Equal(t, tt.msg, resp.Error)
			assert.Equal(t, tt.status, resp.Code)
		})
	}
}

func TestStatusForError(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, StatusForError(fmt.Errorf("get: %w", models.ErrServiceNotFound)))
	assert.Equal(t, http.StatusForbidden, StatusForError(models.ErrNotYourService))
	assert.Equal(t, http.StatusConflict, StatusForError(models.ErrConflict))
	assert.Equal(t, http.StatusConflict, StatusForError(models.ErrServiceNotMatched))
	assert.Equal(t, http.StatusBadRequest, StatusForError(models.ErrValidation))
	assert.Equal(t, http.StatusInternalServerError, StatusForError(errors.New("db down")))
}

func TestDomainErrorResponse_HidesInternalErrors(t *testing.T) {
	c, rec := newContext()
	require.NoError(t, DomainErrorResponse(c, errors.New("pq: connection refused")))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}
