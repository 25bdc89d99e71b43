package repository

import (
	"github.com/atakand/todo-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// List returns all categories ordered by name.
func (r *CategoryRepository) List() ([]models.Category, error) {
	categories := []models.Category{}
	err := r.db.Order("name").Find(&categories).Error
	return categories, err
}

func (r *CategoryRepository) Find(id uint) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) Create(category *models.Category) error {
	return r.db.Omit(clause.Associations).Create(category).Error
}

func (r *CategoryRepository) Save(category *models.Category) error {
	return r.db.Omit(clause.Associations).Save(category).Error
}

// Delete hard-deletes a category together with its join rows, in one
// transaction. Returns false when the category does not exist.
func (r *CategoryRepository) Delete(id uint) (bool, error) {
	deleted := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", id).Delete(&models.TodoCategory{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Category{}, id)
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	return deleted, err
}

// TodosOf returns the non-deleted todos assigned to a category, scoped to
// the caller's ownership like every other todo read.
func (r *CategoryRepository) TodosOf(categoryID, ownerID uint) ([]models.Todo, error) {
	todos := []models.Todo{}
	err := r.db.Model(&models.Todo{}).
		Joins("JOIN todo_categories tc ON tc.todo_id = todos.id").
		Where("tc.category_id = ? AND todos.user_id = ?", categoryID, ownerID).
		Preload("Categories").
		Find(&todos).Error
	return todos, err
}
