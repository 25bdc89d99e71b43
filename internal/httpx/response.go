// Package httpx shapes the uniform JSON envelope used by every response:
// {status, data?, message?, errors?, meta?}.
package httpx

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Envelope struct {
	Status  string       `json:"status"`
	Message string       `json:"message,omitempty"`
	Data    any          `json:"data,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
	Meta    any          `json:"meta,omitempty"`
}

// FieldError is one (field-path, message) pair from schema validation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// OK writes a success envelope with the given status code.
func OK(c echo.Context, status int, data any) error {
	return c.JSON(status, Envelope{Status: "success", Data: data})
}

// OKMessage writes a success envelope with a human-readable message.
func OKMessage(c echo.Context, status int, data any, message string) error {
	return c.JSON(status, Envelope{Status: "success", Data: data, Message: message})
}

// OKMeta writes a success envelope with pagination metadata.
func OKMeta(c echo.Context, status int, data any, meta any) error {
	return c.JSON(status, Envelope{Status: "success", Data: data, Meta: meta})
}

// Err writes an error envelope.
func Err(c echo.Context, status int, message string, errs []FieldError) error {
	return c.JSON(status, Envelope{Status: "error", Message: message, Errors: errs})
}

// NoContent writes an empty 204 response; deletes return no body.
func NoContent(c echo.Context) error { return c.NoContent(http.StatusNoContent) }
