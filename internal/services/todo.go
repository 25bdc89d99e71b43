package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atakand/todo-api/internal/apperr"
	"github.com/atakand/todo-api/internal/models"
	"github.com/atakand/todo-api/internal/repository"
	"gorm.io/gorm"
)

type TodoService struct {
	todos      *repository.TodoRepository
	categories *repository.CategoryRepository
}

func NewTodoService(todos *repository.TodoRepository, categories *repository.CategoryRepository) *TodoService {
	return &TodoService{todos: todos, categories: categories}
}

// CreateTodoInput is the validated payload for a new todo.
type CreateTodoInput struct {
	Title       string
	Description string
	Priority    models.Priority
	DueDate     time.Time
	CategoryIDs []uint
}

// UpdateTodoInput carries a partial update; nil means "not supplied".
type UpdateTodoInput struct {
	Title       *string
	Description *string
	Status      *models.Status
	Priority    *models.Priority
	DueDate     *time.Time
}

func (s *TodoService) List(userID uint, opts repository.ListOptions) ([]models.Todo, repository.Meta, error) {
	return s.todos.List(userID, opts)
}

func (s *TodoService) Search(userID uint, query string, opts repository.ListOptions) ([]models.Todo, repository.Meta, error) {
	return s.todos.Search(userID, query, opts)
}

// Get loads a todo scoped to the caller. A todo that exists but belongs to
// someone else is reported as not found, never as forbidden.
func (s *TodoService) Get(id, userID uint) (*models.Todo, error) {
	todo, err := s.todos.FindOwned(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Todo not found")
		}
		return nil, err
	}
	return todo, nil
}

// Create validates that every referenced category exists; the first missing
// id aborts the whole creation. Todo and join rows are written in one
// transaction.
func (s *TodoService) Create(userID uint, in CreateTodoInput) (*models.Todo, error) {
	for _, cid := range in.CategoryIDs {
		if _, err := s.categories.Find(cid); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.NotFound(fmt.Sprintf("Category with id %d not found", cid))
			}
			return nil, err
		}
	}
	todo := models.Todo{
		UserID:      userID,
		Title:       in.Title,
		Description: in.Description,
		Status:      models.StatusPending,
		Priority:    in.Priority,
		DueDate:     in.DueDate,
	}
	if err := s.todos.Create(&todo, in.CategoryIDs); err != nil {
		return nil, apperr.FromDB(err)
	}
	return &todo, nil
}

// Update applies a partial update to the caller's todo.
func (s *TodoService) Update(id, userID uint, in UpdateTodoInput) (*models.Todo, error) {
	todo, err := s.Get(id, userID)
	if err != nil {
		return nil, err
	}
	if in.Title != nil {
		todo.Title = *in.Title
	}
	if in.Description != nil {
		todo.Description = *in.Description
	}
	if in.Status != nil {
		todo.Status = *in.Status
	}
	if in.Priority != nil {
		todo.Priority = *in.Priority
	}
	if in.DueDate != nil {
		todo.DueDate = *in.DueDate
	}
	if err := s.todos.Save(todo); err != nil {
		return nil, apperr.FromDB(err)
	}
	return todo, nil
}

// UpdateStatus validates enum membership only; any status may transition to
// any other (a deliberate simplification, not an omission).
func (s *TodoService) UpdateStatus(id, userID uint, status models.Status) (*models.Todo, error) {
	if !models.ValidStatus(status) {
		allowed := make([]string, 0, 4)
		for _, st := range models.Statuses() {
			allowed = append(allowed, string(st))
		}
		return nil, apperr.BadRequest("Invalid status. Allowed values are: " + strings.Join(allowed, ", "))
	}
	todo, err := s.Get(id, userID)
	if err != nil {
		return nil, err
	}
	todo.Status = status
	if err := s.todos.Save(todo); err != nil {
		return nil, apperr.FromDB(err)
	}
	return todo, nil
}

// Delete soft-deletes the caller's todo.
func (s *TodoService) Delete(id, userID uint) error {
	deleted, err := s.todos.SoftDelete(id, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return apperr.NotFound("Todo not found")
	}
	return nil
}

// Categories returns the categories assigned to the caller's todo.
func (s *TodoService) Categories(todoID, userID uint) ([]models.Category, error) {
	if _, err := s.Get(todoID, userID); err != nil {
		return nil, err
	}
	return s.todos.CategoriesOf(todoID)
}

// AssignCategory links a category to the caller's todo. An existing join
// row is reported as a domain conflict before the uniqueness constraint
// would fire.
func (s *TodoService) AssignCategory(userID, todoID, categoryID uint) error {
	if _, err := s.Get(todoID, userID); err != nil {
		return err
	}
	if _, err := s.categories.Find(categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Category not found")
		}
		return err
	}
	assigned, err := s.todos.HasCategory(todoID, categoryID)
	if err != nil {
		return err
	}
	if assigned {
		return apperr.BadRequest("This category is already assigned to the todo")
	}
	return apperr.FromDB(s.todos.AssignCategory(todoID, categoryID))
}

// RemoveCategory unlinks a category from the caller's todo.
func (s *TodoService) RemoveCategory(userID, todoID, categoryID uint) error {
	if _, err := s.Get(todoID, userID); err != nil {
		return err
	}
	assigned, err := s.todos.HasCategory(todoID, categoryID)
	if err != nil {
		return err
	}
	if !assigned {
		return apperr.NotFound("This category is not assigned to the todo")
	}
	return s.todos.RemoveCategory(todoID, categoryID)
}

// Stats groups the caller's todos by status, zero-filled.
func (s *TodoService) Stats(userID uint) (repository.TodoStats, error) {
	return s.todos.StatusStats(userID, time.Now())
}

// PriorityStats groups the caller's todos by priority, zero-filled.
func (s *TodoService) PriorityStats(userID uint) (repository.PriorityStats, error) {
	return s.todos.PriorityStatsOf(userID)
}
