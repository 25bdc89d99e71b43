package models

import (
	"time"

	"gorm.io/gorm"
)

// Role determines what a user is allowed to do. There are only two levels:
// regular users own their todos, admins additionally manage categories and
// other user accounts.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// User represents an authenticated user in the system.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
	Username  string         `gorm:"uniqueIndex;size:100;not null" json:"username"`
	Name      string         `gorm:"size:100" json:"name,omitempty"`
	Password  string         `gorm:"size:255;not null" json:"-"` // Hashed, never exposed in JSON
	Role      Role           `gorm:"size:20;not null;default:USER" json:"role"`
	Todos     []Todo         `gorm:"foreignKey:UserID" json:"todos,omitempty"`
}

// IsAdmin reports whether the user holds the privileged role.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
