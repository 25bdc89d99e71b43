package handlers

import (
	"net/http"

	"github.com/atakand/todo-api/internal/apperr"
	"github.com/atakand/todo-api/internal/httpx"
	"github.com/atakand/todo-api/internal/services"
	"github.com/atakand/todo-api/internal/validation"
	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	svc *services.AuthService
}

func NewAuthHandler(svc *services.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

type signupRequest struct {
	Name           string `json:"name"`
	Username       string `json:"username"`
	Password       string `json:"password"`
	VerifyPassword string `json:"verify_password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
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
	if req.Password != req.VerifyPassword {
		v.Add("verify_password", "passwords don't match")
	}
	if !v.Empty() {
		return apperr.Validation(v)
	}

	user, token, err := h.svc.Signup(req.Name, req.Username, req.Password)
	if err != nil {
		return err
	}
	data := map[string]any{"user": user, "token": token}
	return httpx.OKMessage(c, http.StatusCreated, data, "User created successfully")
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}

	v := make(validation.Violations)
	validation.Required("username", req.Username, v)
	validation.MinLen("password", req.Password, 8, v)
	validation.MaxLen("password", req.Password, 16, v)
	if !v.Empty() {
		return apperr.Validation(v)
	}

	user, token, err := h.svc.Login(req.Username, req.Password)
	if err != nil {
		return err
	}
	data := map[string]any{"user": user, "token": token}
	return httpx.OKMessage(c, http.StatusOK, data, "User signed in successfully")
}
