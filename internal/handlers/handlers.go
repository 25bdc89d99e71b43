// Package handlers binds HTTP verbs and paths to services. Handlers parse
// and validate input, call a service with the caller's identity passed
// explicitly, and shape the uniform envelope; they never classify errors
// themselves.
package handlers

import (
	"strconv"
	"strings"

	"github.com/atakand/todo-api/internal/apperr"
	"github.com/atakand/todo-api/internal/middleware"
	"github.com/atakand/todo-api/internal/models"
	"github.com/atakand/todo-api/internal/repository"
	"github.com/atakand/todo-api/internal/validation"
	"github.com/labstack/echo/v4"
)

// pathID validates an identifier path parameter as a positive integer
// before any handler logic runs.
func pathID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, apperr.Validation(map[string]string{name: name + " must be a positive integer"})
	}
	return uint(id), nil
}

// identity returns the authenticated caller. Routes using it are always
// behind the Authenticate middleware.
func identity(c echo.Context) (middleware.Identity, error) {
	ident, ok := middleware.Current(c)
	if !ok {
		return middleware.Identity{}, apperr.Unauthorized("Authentication required")
	}
	return ident, nil
}

// listOptions parses pagination, sorting and filter query parameters.
// Non-numeric or out-of-range page/limit values are clamped by the
// repository; unknown sort fields and enum values are rejected here.
func listOptions(c echo.Context) (repository.ListOptions, error) {
	var opts repository.ListOptions
	opts.Page, _ = strconv.Atoi(c.QueryParam("page"))
	opts.Limit, _ = strconv.Atoi(c.QueryParam("limit"))

	v := make(validation.Violations)
	if sort := c.QueryParam("sort"); sort != "" {
		validation.OneOf("sort", sort, repository.SortableTodoFields(), v)
		opts.Sort = sort
	}
	if order := c.QueryParam("order"); order != "" {
		validation.OneOf("order", strings.ToLower(order), []string{"asc", "desc"}, v)
		opts.Order = strings.ToLower(order)
	}
	if status := c.QueryParam("status"); status != "" {
		validation.OneOf("status", status, statusValues(), v)
		opts.Status = models.Status(status)
	}
	if priority := c.QueryParam("priority"); priority != "" {
		validation.OneOf("priority", priority, priorityValues(), v)
		opts.Priority = models.Priority(priority)
	}
	if !v.Empty() {
		return opts, apperr.Validation(v)
	}
	return opts, nil
}

func statusValues() []string {
	values := make([]string, 0, 4)
	for _, s := range models.Statuses() {
		values = append(values, string(s))
	}
	return values
}

func priorityValues() []string {
	values := make([]string, 0, 3)
	for _, p := range models.Priorities() {
		values = append(values, string(p))
	}
	return values
}
