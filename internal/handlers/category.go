package handlers

import (
	"net/http"

	"github.com/atakand/todo-api/internal/apperr"
	"github.com/atakand/todo-api/internal/httpx"
	"github.com/atakand/todo-api/internal/services"
	"github.com/atakand/todo-api/internal/validation"
	"github.com/labstack/echo/v4"
)

type CategoryHandler struct {
	svc *services.CategoryService
}

func NewCategoryHandler(svc *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

type createCategoryRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

type updateCategoryRequest struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
}

func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.svc.List()
	if err != nil {
		return err
	}
	return httpx.OK(c, http.StatusOK, categories)
}

func (h *CategoryHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	category, err := h.svc.Get(id)
	if err != nil {
		return err
	}
	return httpx.OK(c, http.StatusOK, category)
}

func (h *CategoryHandler) Todos(c echo.Context) error {
	ident, err := identity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	todos, err := h.svc.Todos(id, ident.ID)
	if err != nil {
		return err
	}
	return httpx.OK(c, http.StatusOK, todos)
}

func (h *CategoryHandler) Create(c echo.Context) error {
	var req createCategoryRequest
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}

	v := make(validation.Violations)
	validation.Required("name", req.Name, v)
	validation.MaxLen("name", req.Name, 100, v)
	validation.HexColor("color", req.Color, v)
	if !v.Empty() {
		return apperr.Validation(v)
	}

	category, err := h.svc.Create(req.Name, req.Color)
	if err != nil {
		return err
	}
	return httpx.OKMessage(c, http.StatusCreated, category, "Category created successfully")
}

func (h *CategoryHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req updateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}

	v := make(validation.Violations)
	validation.AtLeastOne(v, req.Name != nil, req.Color != nil)
	if req.Name != nil {
		validation.Required("name", *req.Name, v)
		validation.MaxLen("name", *req.Name, 100, v)
	}
	if req.Color != nil {
		validation.HexColor("color", *req.Color, v)
	}
	if !v.Empty() {
		return apperr.Validation(v)
	}

	category, err := h.svc.Update(id, services.UpdateCategoryInput{Name: req.Name, Color: req.Color})
	if err != nil {
		return err
	}
	return httpx.OKMessage(c, http.StatusOK, category, "Category updated successfully")
}

func (h *CategoryHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.Delete(id); err != nil {
		return err
	}
	return httpx.NoContent(c)
}
