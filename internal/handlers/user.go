package handlers

import (
	"net/http"

	"github.com/atakand/todo-api/internal/apperr"
	"github.com/atakand/todo-api/internal/httpx"
	"github.com/atakand/todo-api/internal/models"
	"github.com/atakand/todo-api/internal/services"
	"github.com/atakand/todo-api/internal/validation"
	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	svc *services.UserService
}

func NewUserHandler(svc *services.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

type updateUserRequest struct {
	Name     *string `json:"name"`
	Username *string `json:"username"`
}

type adminCreateUserRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (h *UserHandler) Me(c echo.Context) error {
	ident, err := identity(c)
	if err != nil {
		return err
	}
	user, err := h.svc.Get(ident.ID)
	if err != nil {
		return err
	}
	return httpx.OK(c, http.StatusOK, user)
}

func (h *UserHandler) UpdateMe(c echo.Context) error {
	ident, err := identity(c)
	if err != nil {
		return err
	}
	return h.update(c, ident.ID)
}

func (h *UserHandler) DeleteMe(c echo.Context) error {
	ident, err := identity(c)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(ident.ID); err != nil {
		return err
	}
	return httpx.NoContent(c)
}

// Admin variants

func (h *UserHandler) List(c echo.Context) error {
	users, err := h.svc.List()
	if err != nil {
		return err
	}
	return httpx.OK(c, http.StatusOK, users)
}

func (h *UserHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	user, err := h.svc.Get(id)
	if err != nil {
		return err
	}
	return httpx.OK(c, http.StatusOK, user)
}

func (h *UserHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	return h.update(c, id)
}

func (h *UserHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.Delete(id); err != nil {
		return err
	}
	return httpx.NoContent(c)
}

func (h *UserHandler) Create(c echo.Context) error {
	var req adminCreateUserRequest
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}

	v := make(validation.Violations)
	validation.Required("name", req.Name, v)
	validation.MaxLen("name", req.Name, 100, v)
	validation.Required("username", req.Username, v)
	validation.MaxLen("username", req.Username, 100, v)
	validation.MinLen("password", req.Password, 8, v)
	validation.MaxLen("password", req.Password, 16, v)
	validation.OneOf("role", req.Role, []string{string(models.RoleAdmin), string(models.RoleUser)}, v)
	if !v.Empty() {
		return apperr.Validation(v)
	}

	user, err := h.svc.AdminCreate(req.Name, req.Username, req.Password, models.Role(req.Role))
	if err != nil {
		return err
	}
	return httpx.OKMessage(c, http.StatusCreated, user, "User created successfully")
}

func (h *UserHandler) update(c echo.Context, id uint) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}

	v := make(validation.Violations)
	validation.AtLeastOne(v, req.Name != nil, req.Username != nil)
	if req.Name != nil {
		validation.Required("name", *req.Name, v)
		validation.MaxLen("name", *req.Name, 100, v)
	}
	if req.Username != nil {
		validation.Required("username", *req.Username, v)
		validation.MaxLen("username", *req.Username, 100, v)
	}
	if !v.Empty() {
		return apperr.Validation(v)
	}

	user, err := h.svc.Update(id, services.UpdateUserInput{Name: req.Name, Username: req.Username})
	if err != nil {
		return err
	}
	return httpx.OKMessage(c, http.StatusOK, user, "User updated successfully")
}
