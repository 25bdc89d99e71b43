package server

import (
	"errors"
	"fmt"
	"net/http"
	"sort"

	"github.com/atakand/todo-api/internal/apperr"
	"github.com/atakand/todo-api/internal/httpx"
	"github.com/labstack/echo/v4"
)

// errorHandler classifies every error escaping a handler and renders the
// envelope. In dev mode unclassified errors echo their detail; in
// production the client sees a generic message only.
func errorHandler(dev bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var valErr *apperr.ValidationError
		var appErr *apperr.Error
		var echoErr *echo.HTTPError
		switch {
		case errors.As(err, &valErr):
			_ = httpx.Err(c, http.StatusUnprocessableEntity, "Validation error", fieldErrors(valErr))
		case errors.As(err, &appErr):
			_ = httpx.Err(c, appErr.Status, appErr.Message, nil)
		case errors.As(err, &echoErr):
			message := fmt.Sprintf("%v", echoErr.Message)
			if echoErr.Code == http.StatusNotFound {
				message = fmt.Sprintf("Route %s not found", c.Request().URL.Path)
			}
			_ = httpx.Err(c, echoErr.Code, message, nil)
		default:
			c.Logger().Error(err)
			message := "Internal server error"
			if dev {
				message = err.Error()
			}
			_ = httpx.Err(c, http.StatusInternalServerError, message, nil)
		}
	}
}

// fieldErrors renders violations in a stable order.
func fieldErrors(err *apperr.ValidationError) []httpx.FieldError {
	fields := make([]string, 0, len(err.Fields))
	for field := range err.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	out := make([]httpx.FieldError, 0, len(fields))
	for _, field := range fields {
		out = append(out, httpx.FieldError{Field: field, Message: err.Fields[field]})
	}
	return out
}
