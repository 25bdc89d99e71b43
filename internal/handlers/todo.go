package handlers

import (
	"net/http"
	"time"

	"github.com/atakand/todo-api/internal/apperr"
	"github.com/atakand/todo-api/internal/httpx"
	"github.com/atakand/todo-api/internal/models"
	"github.com/atakand/todo-api/internal/services"
	"github.com/atakand/todo-api/internal/validation"
	"github.com/labstack/echo/v4"
)

type TodoHandler struct {
	svc *services.TodoService
}

func NewTodoHandler(svc *services.TodoService) *TodoHandler {
	return &TodoHandler{svc: svc}
}

type createTodoRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    string    `json:"priority"`
	DueDate     time.Time `json:"due_date"`
	CategoryIDs []uint    `json:"category_ids"`
}

type updateTodoRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Status      *string    `json:"status"`
	Priority    *string    `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type assignCategoryRequest struct {
	CategoryID uint `json:"category_id"`
}

func (h *TodoHandler) List(c echo.Context) error {
	ident, err := identity(c)
	if err != nil {
		return err
	}
	opts, err := listOptions(c)
	if err != nil {
		return err
	}
	todos, meta, err := h.svc.List(ident.ID, opts)
	if err != nil {
		return err
	}
	return httpx.OKMeta(c, http.StatusOK, todos, meta)
}

func (h *TodoHandler) Search(c echo.Context) error {
	ident, err := identity(c)
	if err != nil {
		return err
	}
	query := c.QueryParam("q")
	if query == "" {
		return apperr.BadRequest("Search query is required")
	}
	opts, err := listOptions(c)
	if err != nil {
		return err
	}
	todos, meta, err := h.svc.Search(ident.ID, query, opts)
	if err != nil {
		return err
	}
	return httpx.OKMeta(c, http.StatusOK, todos, meta)
}

func (h *TodoHandler) Get(c echo.Context) error {
	ident, err := identity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	todo, err := h.svc.Get(id, ident.ID)
	if err != nil {
		return err
	}
	return httpx.OK(c, http.StatusOK, todo)
}

func (h *TodoHandler) Create(c echo.Context) error {
	ident, err := identity(c)
	if err != nil {
		return err
	}
	var req createTodoRequest
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}

	v := make(validation.Violations)
	validation.Required("title", req.Title, v)
	validation.MaxLen("title", req.Title, 100, v)
	validation.Required("description", req.Description, v)
	validation.MaxLen("description", req.Description, 500, v)
	validation.OneOf("priority", req.Priority, priorityValues(), v)
	validation.Future("due_date", req.DueDate, time.Now(), v)
	if len(req.CategoryIDs) == 0 {
		v.Add("category_ids", "at least one category is required")
	}
	if !v.Empty() {
		return apperr.Validation(v)
	}

	todo, err := h.svc.Create(ident.ID, services.CreateTodoInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    models.Priority(req.Priority),
		DueDate:     req.DueDate,
		CategoryIDs: req.CategoryIDs,
	})
	if err != nil {
		return err
	}
	return httpx.OKMessage(c, http.StatusCreated, todo, "Todo created successfully")
}

func (h *TodoHandler) Update(c echo.Context) error {
	ident, err := identity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req updateTodoRequest
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}

	v := make(validation.Violations)
	validation.AtLeastOne(v,
		req.Title != nil, req.Description != nil, req.Status != nil,
		req.Priority != nil, req.DueDate != nil)
	if req.Title != nil {
		validation.Required("title", *req.Title, v)
		validation.MaxLen("title", *req.Title, 100, v)
	}
	if req.Description != nil {
		validation.Required("description", *req.Description, v)
		validation.MaxLen("description", *req.Description, 500, v)
	}
	if req.Status != nil {
		validation.OneOf("status", *req.Status, statusValues(), v)
	}
	if req.Priority != nil {
		validation.OneOf("priority", *req.Priority, priorityValues(), v)
	}
	if req.DueDate != nil {
		validation.Future("due_date", *req.DueDate, time.Now(), v)
	}
	if !v.Empty() {
		return apperr.Validation(v)
	}

	in := services.UpdateTodoInput{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
	}
	if req.Status != nil {
		status := models.Status(*req.Status)
		in.Status = &status
	}
	if req.Priority != nil {
		priority := models.Priority(*req.Priority)
		in.Priority = &priority
	}
	todo, err := h.svc.Update(id, ident.ID, in)
	if err != nil {
		return err
	}
	return httpx.OKMessage(c, http.StatusOK, todo, "Todo updated successfully")
}

func (h *TodoHandler) UpdateStatus(c echo.Context) error {
	ident, err := identity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}
	todo, err := h.svc.UpdateStatus(id, ident.ID, models.Status(req.Status))
	if err != nil {
		return err
	}
	return httpx.OKMessage(c, http.StatusOK, todo, "Todo status updated successfully")
}

func (h *TodoHandler) Delete(c echo.Context) error {
	ident, err := identity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.Delete(id, ident.ID); err != nil {
		return err
	}
	return httpx.NoContent(c)
}

func (h *TodoHandler) Categories(c echo.Context) error {
	ident, err := identity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	categories, err := h.svc.Categories(id, ident.ID)
	if err != nil {
		return err
	}
	return httpx.OK(c, http.StatusOK, categories)
}

func (h *TodoHandler) AssignCategory(c echo.Context) error {
	ident, err := identity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req assignCategoryRequest
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}
	if req.CategoryID == 0 {
		return apperr.Validation(map[string]string{"category_id": "category_id is required"})
	}
	if err := h.svc.AssignCategory(ident.ID, id, req.CategoryID); err != nil {
		return err
	}
	return httpx.OKMessage(c, http.StatusCreated, nil, "Category assigned successfully")
}

func (h *TodoHandler) RemoveCategory(c echo.Context) error {
	ident, err := identity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	categoryID, err := pathID(c, "categoryId")
	if err != nil {
		return err
	}
	if err := h.svc.RemoveCategory(ident.ID, id, categoryID); err != nil {
		return err
	}
	return httpx.NoContent(c)
}
