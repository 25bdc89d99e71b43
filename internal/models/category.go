package models

import "time"

// Category is a named, colored tag shared across users. Categories are hard
// deleted; their join rows are removed in the same transaction.
type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `gorm:"uniqueIndex;size:100;not null" json:"name"`
	Color     string    `gorm:"size:7;not null" json:"color"`
	Todos     []Todo    `gorm:"many2many:todo_categories" json:"todos,omitempty"`
}

// TodoCategory is the join row pairing one todo with one category. The pair
// is the primary key, so a category cannot be assigned to a todo twice.
type TodoCategory struct {
	TodoID     uint `gorm:"primaryKey" json:"todo_id"`
	CategoryID uint `gorm:"primaryKey" json:"category_id"`
}

// TableName keeps the join table name aligned with the many2many tag on
// Todo.Categories.
func (TodoCategory) TableName() string { return "todo_categories" }
