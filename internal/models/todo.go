package models

import (
	"time"

	"gorm.io/gorm"
)

// Status of a todo. Membership is the only rule: any status may transition
// to any other.
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusCancelled  Status = "CANCELLED"
)

// Statuses lists every legal status value, in the order they are reported.
func Statuses() []Status {
	return []Status{StatusPending, StatusInProgress, StatusCompleted, StatusCancelled}
}

// ValidStatus reports whether s is one of the legal enum values.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Priority of a todo.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// Priorities lists every legal priority value.
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// ValidPriority reports whether p is one of the legal enum values.
func ValidPriority(p Priority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Todo is a task owned by exactly one user. A non-null DeletedAt makes it
// logically absent from every normal query (GORM applies the filter on all
// reads through this model).
type Todo struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
	UserID      uint           `gorm:"index;not null" json:"user_id"`
	Title       string         `gorm:"size:100;not null" json:"title"`
	Description string         `gorm:"size:500;not null" json:"description"`
	Status      Status         `gorm:"size:20;not null;default:PENDING" json:"status"`
	Priority    Priority       `gorm:"size:20;not null" json:"priority"`
	DueDate     time.Time      `gorm:"not null" json:"due_date"`
	Categories  []Category     `gorm:"many2many:todo_categories" json:"categories"`
}

// Overdue reports whether the todo is past due and still actionable.
// Completed and cancelled work is never overdue.
func (t *Todo) Overdue(now time.Time) bool {
	if t.Status == StatusCompleted || t.Status == StatusCancelled {
		return false
	}
	return t.DueDate.Before(now)
}
