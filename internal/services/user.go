package services

import (
	"errors"

	"github.com/atakand/todo-api/internal/apperr"
	"github.com/atakand/todo-api/internal/models"
	"github.com/atakand/todo-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	users *repository.UserRepository
}

func NewUserService(users *repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// UpdateUserInput carries a partial profile update; nil means "not
// supplied".
type UpdateUserInput struct {
	Name     *string
	Username *string
}

func (s *UserService) List() ([]models.User, error) {
	return s.users.List()
}

func (s *UserService) Get(id uint) (*models.User, error) {
	user, err := s.users.Find(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) Update(id uint, in UpdateUserInput) (*models.User, error) {
	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Username != nil {
		user.Username = *in.Username
	}
	if err := s.users.Save(user); err != nil {
		return nil, apperr.FromDB(err)
	}
	return user, nil
}

// Delete soft-deletes the user; their row remains at the storage layer.
func (s *UserService) Delete(id uint) error {
	deleted, err := s.users.SoftDelete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperr.NotFound("User not found")
	}
	return nil
}

// AdminCreate creates a user with an explicit role; admin-only at the
// route level.
func (s *UserService) AdminCreate(name, username, password string, role models.Role) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := models.User{Name: name, Username: username, Password: string(hashed), Role: role}
	if err := s.users.Create(&user); err != nil {
		return nil, apperr.FromDB(err)
	}
	return &user, nil
}
