package services

import (
	"errors"

	"github.com/atakand/todo-api/internal/apperr"
	"github.com/atakand/todo-api/internal/models"
	"github.com/atakand/todo-api/internal/repository"
	"gorm.io/gorm"
)

type CategoryService struct {
	categories *repository.CategoryRepository
}

func NewCategoryService(categories *repository.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

// UpdateCategoryInput carries a partial update; nil means "not supplied".
type UpdateCategoryInput struct {
	Name  *string
	Color *string
}

func (s *CategoryService) List() ([]models.Category, error) {
	return s.categories.List()
}

func (s *CategoryService) Get(id uint) (*models.Category, error) {
	category, err := s.categories.Find(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Category not found")
		}
		return nil, err
	}
	return category, nil
}

// Create inserts a category; a duplicate name trips the uniqueness
// constraint and surfaces as 400.
func (s *CategoryService) Create(name, color string) (*models.Category, error) {
	category := models.Category{Name: name, Color: color}
	if err := s.categories.Create(&category); err != nil {
		return nil, apperr.FromDB(err)
	}
	return &category, nil
}

func (s *CategoryService) Update(id uint, in UpdateCategoryInput) (*models.Category, error) {
	category, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		category.Name = *in.Name
	}
	if in.Color != nil {
		category.Color = *in.Color
	}
	if err := s.categories.Save(category); err != nil {
		return nil, apperr.FromDB(err)
	}
	return category, nil
}

// Delete hard-deletes the category and its join rows.
func (s *CategoryService) Delete(id uint) error {
	deleted, err := s.categories.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperr.NotFound("Category not found")
	}
	return nil
}

// Todos returns the caller's todos assigned to the category.
func (s *CategoryService) Todos(categoryID, userID uint) ([]models.Todo, error) {
	if _, err := s.Get(categoryID); err != nil {
		return nil, err
	}
	return s.categories.TodosOf(categoryID, userID)
}
