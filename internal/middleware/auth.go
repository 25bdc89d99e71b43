// Package middleware carries the access-control layer: bearer-token
// authentication and the admin-only guard. Handlers never read the token
// themselves; they receive the resolved identity from the request context.
package middleware

import (
	"errors"
	"strings"

	"github.com/atakand/todo-api/internal/apperr"
	"github.com/atakand/todo-api/internal/auth"
	"github.com/atakand/todo-api/internal/models"
	"github.com/atakand/todo-api/internal/repository"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// Identity is the minimal projection of the authenticated user attached to
// each request.
type Identity struct {
	ID       uint
	Username string
	Name     string
	Role     models.Role
}

const identityKey = "identity"

// Current returns the identity attached by Authenticate.
func Current(c echo.Context) (Identity, bool) {
	ident, ok := c.Get(identityKey).(Identity)
	return ident, ok
}

// Authenticate verifies the Authorization bearer token, resolves its
// subject to a live user and attaches the identity projection. Every
// failure mode is a 401 with a message naming what went wrong; the status
// never varies.
func Authenticate(users *repository.UserRepository, secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return apperr.Unauthorized("Authorization token required")
			}
			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
				return apperr.Unauthorized("Valid token format: Bearer <token>")
			}
			userID, err := auth.Parse(parts[1], secret)
			if err != nil {
				if errors.Is(err, auth.ErrTokenExpired) {
					return apperr.Unauthorized("Token expired")
				}
				return apperr.Unauthorized("Invalid token")
			}
			// Soft-deleted subjects fail the same way as missing ones.
			user, err := users.Find(userID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperr.Unauthorized("User not found")
				}
				return err
			}
			c.Set(identityKey, Identity{
				ID:       user.ID,
				Username: user.Username,
				Name:     user.Name,
				Role:     user.Role,
			})
			return next(c)
		}
	}
}

// RequireAdmin must be composed after Authenticate; without an identity it
// fails as unauthenticated, with a non-admin identity as forbidden.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ident, ok := Current(c)
		if !ok {
			return apperr.Unauthorized("Authentication required")
		}
		if ident.Role != models.RoleAdmin {
			return apperr.Forbidden("Admin privileges required for this operation")
		}
		return next(c)
	}
}
