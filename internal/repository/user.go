package repository

import (
	"github.com/atakand/todo-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// List returns all non-deleted users.
func (r *UserRepository) List() ([]models.User, error) {
	users := []models.User{}
	err := r.db.Find(&users).Error
	return users, err
}

// Find loads one non-deleted user.
func (r *UserRepository) Find(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Create(user *models.User) error {
	return r.db.Omit(clause.Associations).Create(user).Error
}

func (r *UserRepository) Save(user *models.User) error {
	return r.db.Omit(clause.Associations).Save(user).Error
}

// SoftDelete stamps deleted_at; the row stays retrievable at the storage
// layer. Returns false when no live user matched.
func (r *UserRepository) SoftDelete(id uint) (bool, error) {
	res := r.db.Delete(&models.User{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
