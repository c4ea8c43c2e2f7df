// Package response defines the unified API response envelope.
package response

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Envelope wraps every successful response body.
type Envelope struct {
	Success   bool      `json:"success"`
	Data      any       `json:"data"`
	Timestamp time.Time `json:"timestamp"`
}

// ErrorEnvelope wraps every error response body. Path and Method echo the
// request so clients can correlate failures without extra context.
type ErrorEnvelope struct {
	Success    bool      `json:"success"`
	StatusCode int       `json:"statusCode"`
	ErrorCode  string    `json:"errorCode,omitempty"`
	Message    string    `json:"message"`
	Details    string    `json:"details,omitempty"`
	Path       string    `json:"path"`
	Method     string    `json:"method"`
	Timestamp  time.Time `json:"timestamp"`
}

// Success writes a 200 envelope around data.
func Success(c echo.Context, data any) error {
	return SuccessWithStatus(c, http.StatusOK, data)
}

// Created writes a 201 envelope around data.
func Created(c echo.Context, data any) error {
	return SuccessWithStatus(c, http.StatusCreated, data)
}

// SuccessWithStatus writes an envelope around data with an explicit status.
func SuccessWithStatus(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, Envelope{
		Success:   true,
		Data:      data,
		Timestamp: time.Now().UTC(),
	})
}

// Error writes the error envelope. The central error middleware is the
// usual caller; handlers only use this for early header-level rejections.
func Error(c echo.Context, statusCode int, errorCode, message, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, ErrorEnvelope{
		Success:    false,
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
		Details:    details,
		Path:       c.Request().URL.Path,
		Method:     c.Request().Method,
		Timestamp:  time.Now().UTC(),
	})
}
