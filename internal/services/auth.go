// Package services enforces the business invariants: ownership and
// existence checks, referential checks between todos and categories, and
// credential handling. Services receive the caller's identity explicitly
// and translate storage-layer absence into domain "not found" errors.
package services

import (
	"errors"
	"time"

	"github.com/atakand/todo-api/internal/apperr"
	"github.com/atakand/todo-api/internal/auth"
	"github.com/atakand/todo-api/internal/models"
	"github.com/atakand/todo-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	users  *repository.UserRepository
	secret string
	ttl    time.Duration
}

func NewAuthService(users *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{users: users, secret: secret, ttl: ttl}
}

// Signup creates a user with a hashed credential and returns it together
// with a fresh token. A duplicate username surfaces as 400 via the store's
// uniqueness constraint.
func (s *AuthService) Signup(name, username, password string) (*models.User, string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}
	user := models.User{
		Name:     name,
		Username: username,
		Password: string(hashed),
		Role:     models.RoleUser,
	}
	if err := s.users.Create(&user); err != nil {
		return nil, "", apperr.FromDB(err)
	}
	token, err := auth.Sign(user.ID, s.secret, s.ttl)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// Login validates the credential and returns the user with a fresh token.
// Unknown username and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(username, password string) (*models.User, string, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperr.Unauthorized("Invalid username or password")
		}
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", apperr.Unauthorized("Invalid username or password")
	}
	token, err := auth.Sign(user.ID, s.secret, s.ttl)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}
