package utils

import (
	"errors"
	"net/http"

	"github.com/Juankcba/choapp-back/internal/pkg/models"
	"github.com/labstack/echo/v4"
)

// Response is the envelope of every successful API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is the envelope of every failed API response
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    int    `json:"code"`
}

// SuccessResponse sends data inside the success envelope
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{Success: true, Message: message, Data: data})
}

// BadRequestResponse rejects malformed input
func BadRequestResponse(c echo.Context, msg string) error {
	return errorJSON(c, http.StatusBadRequest, msg)
}

// UnauthorizedResponse rejects a missing or invalid token
func UnauthorizedResponse(c echo.Context, msg string) error {
	return errorJSON(c, http.StatusUnauthorized, msg)
}

// ForbiddenResponse rejects an authenticated caller lacking the required role
func ForbiddenResponse(c echo.Context, msg string) error {
	return errorJSON(c, http.StatusForbidden, msg)
}

var statusByError = []struct {
	err    error
	status int
}{
	{models.ErrNotFound, http.StatusNotFound},
	{models.ErrForbidden, http.StatusForbidden},
	{models.ErrValidation, http.StatusBadRequest},
	{models.ErrConflict, http.StatusConflict},
	{models.ErrInvalidState, http.StatusConflict},
}

// StatusForError maps a domain error to its HTTP status code
func StatusForError(err error) int {
	for _, m := range statusByError {
		if errors.Is(err, m.err) {
			return m.status
		}
	}
	return http.StatusInternalServerError
}

// DomainErrorResponse writes err with the status its domain error maps to.
// Anything unmapped is reported as a bare 500 so internals never leak.
func DomainErrorResponse(c echo.Context, err error) error {
	status := StatusForError(err)
	if status == http.StatusInternalServerError {
		return errorJSON(c, status, "")
	}
	return errorJSON(c, status, err.Error())
}

// errorJSON falls back to the status text when msg is empty
func errorJSON(c echo.Context, status int, msg string) error {
	if msg == "" {
		msg = http.StatusText(status)
	}
	return c.JSON(status, ErrorResponse{Success: false, Error: msg, Code: status})
}
