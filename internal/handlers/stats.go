package handlers

import (
	"net/http"

	"github.com/atakand/todo-api/internal/httpx"
	"github.com/atakand/todo-api/internal/services"
	"github.com/labstack/echo/v4"
)

type StatsHandler struct {
	todos *services.TodoService
}

func NewStatsHandler(todos *services.TodoService) *StatsHandler {
	return &StatsHandler{todos: todos}
}

func (h *StatsHandler) Todos(c echo.Context) error {
	ident, err := identity(c)
	if err != nil {
		return err
	}
	stats, err := h.todos.Stats(ident.ID)
	if err != nil {
		return err
	}
	return httpx.OK(c, http.StatusOK, stats)
}

func (h *StatsHandler) Priorities(c echo.Context) error {
	ident, err := identity(c)
	if err != nil {
		return err
	}
	stats, err := h.todos.PriorityStats(ident.ID)
	if err != nil {
		return err
	}
	return httpx.OK(c, http.StatusOK, stats)
}
