package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/atakand/todo-api/internal/models"
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

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := models.User{Username: username, Name: username, Password: "x"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return &user
}

func seedTodo(t *testing.T, db *gorm.DB, userID uint, title string, status models.Status, priority models.Priority, due time.Time) *models.Todo {
	t.Helper()
	todo := models.Todo{
		UserID:      userID,
		Title:       title,
		Description: "about " + title,
		Status:      status,
		Priority:    priority,
		DueDate:     due,
	}
	if err := db.Create(&todo).Error; err != nil {
		t.Fatalf("failed to seed todo %q: %v", title, err)
	}
	return &todo
}

func seedCategory(t *testing.T, db *gorm.DB, name, color string) *models.Category {
	t.Helper()
	category := models.Category{Name: name, Color: color}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("failed to seed category %q: %v", name, err)
	}
	return &category
}
