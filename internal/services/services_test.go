package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/atakand/todo-api/internal/models"
	"github.com/atakand/todo-api/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := conn.SetupJoinTable(&models.Todo{}, "Categories", &models.TodoCategory{}); err != nil {
		t.Fatalf("failed to set up join table: %v", err)
	}
	if err := conn.AutoMigrate(&models.User{}, &models.Category{}, &models.Todo{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return conn
}

func newTodoService(t *testing.T) (*TodoService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	return NewTodoService(repository.NewTodoRepository(db), repository.NewCategoryRepository(db)), db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := models.User{Username: username, Name: username, Password: "x"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return &user
}

func seedCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()
	category := models.Category{Name: name, Color: "#FF0000"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("failed to seed category: %v", err)
	}
	return &category
}

func createTodo(t *testing.T, svc *TodoService, userID uint, title string, categoryIDs ...uint) *models.Todo {
	t.Helper()
	todo, err := svc.Create(userID, CreateTodoInput{
		Title:       title,
		Description: "about " + title,
		Priority:    models.PriorityMedium,
		DueDate:     time.Now().Add(24 * time.Hour),
		CategoryIDs: categoryIDs,
	})
	if err != nil {
		t.Fatalf("failed to create todo %q: %v", title, err)
	}
	return todo
}
