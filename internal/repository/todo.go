// Package repository translates typed query parameters into storage
// operations. Every read through the Todo and User models carries the soft
// delete filter automatically; ownership scoping is explicit in each query.
package repository

import (
	"strings"
	"time"

	"github.com/atakand/todo-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	// DefaultPageSize applies when the caller requests no limit.
	DefaultPageSize = 10
	// MaxPageSize caps the page size regardless of what the caller asks
	// for, to bound response size and query cost.
	MaxPageSize = 50
)

// sortableTodoColumns whitelists the fields a caller may sort by; anything
// else is rejected upstream before reaching the query builder.
var sortableTodoColumns = map[string]bool{
	"created_at": true,
	"updated_at": true,
	"due_date":   true,
	"title":      true,
	"status":     true,
	"priority":   true,
}

// SortableTodoFields returns the whitelist for validation messages.
func SortableTodoFields() []string {
	return []string{"created_at", "updated_at", "due_date", "title", "status", "priority"}
}

// ListOptions are the pagination, sorting and filtering knobs of a todo
// list query. Zero values mean "not supplied".
type ListOptions struct {
	Page     int
	Limit    int
	Sort     string
	Order    string // "asc" or "desc"
	Status   models.Status
	Priority models.Priority
}

// Meta describes the full result set of a paginated query, independent of
// the requested window.
type Meta struct {
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	Limit    int   `json:"limit"`
	LastPage int   `json:"last_page"`
}

// normalize clamps page and limit into their legal ranges. Out-of-range
// values are clamped rather than rejected; the source never returned 400
// for them.
func (o *ListOptions) normalize() {
	if o.Page < 1 {
		o.Page = 1
	}
	if o.Limit < 1 {
		o.Limit = DefaultPageSize
	}
	if o.Limit > MaxPageSize {
		o.Limit = MaxPageSize
	}
}

type TodoRepository struct {
	db *gorm.DB
}

func NewTodoRepository(db *gorm.DB) *TodoRepository {
	return &TodoRepository{db: db}
}

// List returns the caller's non-deleted todos narrowed by the present
// filters (logical AND), with the total count computed in the same scope.
// Categories are preloaded to avoid an N+1 fetch.
func (r *TodoRepository) List(ownerID uint, opts ListOptions) ([]models.Todo, Meta, error) {
	return r.page(r.scope(ownerID, opts), opts)
}

// Search matches todos whose title or description contains query,
// case-insensitively (LOWER(col) LIKE LOWER(pattern), byte-wise; collation
// quirks of the store are deliberately not relied on). Ownership,
// soft-delete and pagination behave exactly as in List.
func (r *TodoRepository) Search(ownerID uint, query string, opts ListOptions) ([]models.Todo, Meta, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	q := r.scope(ownerID, opts).Where(
		r.db.Where("LOWER(title) LIKE ?", pattern).Or("LOWER(description) LIKE ?", pattern),
	)
	return r.page(q, opts)
}

func (r *TodoRepository) scope(ownerID uint, opts ListOptions) *gorm.DB {
	q := r.db.Model(&models.Todo{}).Where("user_id = ?", ownerID)
	if opts.Status != "" {
		q = q.Where("status = ?", opts.Status)
	}
	if opts.Priority != "" {
		q = q.Where("priority = ?", opts.Priority)
	}
	return q
}

func (r *TodoRepository) page(q *gorm.DB, opts ListOptions) ([]models.Todo, Meta, error) {
	opts.normalize()
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, Meta{}, err
	}

	find := q.Limit(opts.Limit).Offset((opts.Page - 1) * opts.Limit).Preload("Categories")
	if opts.Sort != "" && sortableTodoColumns[opts.Sort] {
		dir := "asc"
		if strings.EqualFold(opts.Order, "desc") {
			dir = "desc"
		}
		// id tie-break keeps pages stable when the sort key has duplicates.
		find = find.Order(opts.Sort + " " + dir).Order("id asc")
	}

	todos := []models.Todo{}
	if err := find.Find(&todos).Error; err != nil {
		return nil, Meta{}, err
	}

	lastPage := int((total + int64(opts.Limit) - 1) / int64(opts.Limit))
	return todos, Meta{Total: total, Page: opts.Page, Limit: opts.Limit, LastPage: lastPage}, nil
}

// FindOwned loads one non-deleted todo scoped to its owner, categories
// included. Absence and "belongs to someone else" are indistinguishable by
// design; both surface as gorm.ErrRecordNotFound.
func (r *TodoRepository) FindOwned(id, ownerID uint) (*models.Todo, error) {
	var todo models.Todo
	err := r.db.Preload("Categories").
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&todo).Error
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

// Create inserts the todo and its category join rows in one transaction so
// a failure partway through leaves no orphaned todo behind.
func (r *TodoRepository) Create(todo *models.Todo, categoryIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(todo).Error; err != nil {
			return err
		}
		for _, cid := range categoryIDs {
			join := models.TodoCategory{TodoID: todo.ID, CategoryID: cid}
			if err := tx.Create(&join).Error; err != nil {
				return err
			}
		}
		return tx.Preload("Categories").First(todo, todo.ID).Error
	})
}

// Save persists field changes on an already-loaded todo. Associations are
// managed through the join-row operations, never implicitly here.
func (r *TodoRepository) Save(todo *models.Todo) error {
	return r.db.Omit(clause.Associations).Save(todo).Error
}

// SoftDelete stamps deleted_at on the owner's todo. Returns false when the
// scoped lookup matches nothing.
func (r *TodoRepository) SoftDelete(id, ownerID uint) (bool, error) {
	res := r.db.Where("id = ? AND user_id = ?", id, ownerID).Delete(&models.Todo{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// HasCategory reports whether the join row (todoID, categoryID) exists.
func (r *TodoRepository) HasCategory(todoID, categoryID uint) (bool, error) {
	var join models.TodoCategory
	err := r.db.Where("todo_id = ? AND category_id = ?", todoID, categoryID).First(&join).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// AssignCategory inserts a join row.
func (r *TodoRepository) AssignCategory(todoID, categoryID uint) error {
	return r.db.Create(&models.TodoCategory{TodoID: todoID, CategoryID: categoryID}).Error
}

// RemoveCategory hard-deletes a join row; join rows are the only thing the
// service layer ever removes physically.
func (r *TodoRepository) RemoveCategory(todoID, categoryID uint) error {
	return r.db.Where("todo_id = ? AND category_id = ?", todoID, categoryID).
		Delete(&models.TodoCategory{}).Error
}

// CategoriesOf returns the categories assigned to a todo.
func (r *TodoRepository) CategoriesOf(todoID uint) ([]models.Category, error) {
	categories := []models.Category{}
	err := r.db.Model(&models.Category{}).
		Joins("JOIN todo_categories tc ON tc.category_id = categories.id").
		Where("tc.todo_id = ?", todoID).
		Find(&categories).Error
	return categories, err
}

// TodoStats are the caller's non-deleted todos grouped by status. Counts
// are always zero-filled, never absent. Overdue compares due_date to "now"
// at query time; completed and cancelled work is never overdue.
type TodoStats struct {
	Total      int64 `json:"total"`
	Pending    int64 `json:"pending"`
	InProgress int64 `json:"in_progress"`
	Completed  int64 `json:"completed"`
	Cancelled  int64 `json:"cancelled"`
	Overdue    int64 `json:"overdue"`
}

// StatusStats groups the owner's todos by status.
func (r *TodoRepository) StatusStats(ownerID uint, now time.Time) (TodoStats, error) {
	var rows []struct {
		Status models.Status
		Count  int64
	}
	err := r.db.Model(&models.Todo{}).
		Select("status, COUNT(*) AS count").
		Where("user_id = ?", ownerID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return TodoStats{}, err
	}

	var stats TodoStats
	for _, row := range rows {
		stats.Total += row.Count
		switch row.Status {
		case models.StatusPending:
			stats.Pending = row.Count
		case models.StatusInProgress:
			stats.InProgress = row.Count
		case models.StatusCompleted:
			stats.Completed = row.Count
		case models.StatusCancelled:
			stats.Cancelled = row.Count
		}
	}

	err = r.db.Model(&models.Todo{}).
		Where("user_id = ? AND due_date < ? AND status IN ?", ownerID, now,
			[]models.Status{models.StatusPending, models.StatusInProgress}).
		Count(&stats.Overdue).Error
	if err != nil {
		return TodoStats{}, err
	}
	return stats, nil
}

// PriorityStats are the caller's non-deleted todos grouped by priority,
// zero-filled like TodoStats.
type PriorityStats struct {
	Total  int64 `json:"total"`
	Low    int64 `json:"low"`
	Medium int64 `json:"medium"`
	High   int64 `json:"high"`
}

// PriorityStatsOf groups the owner's todos by priority.
func (r *TodoRepository) PriorityStatsOf(ownerID uint) (PriorityStats, error) {
	var rows []struct {
		Priority models.Priority
		Count    int64
	}
	err := r.db.Model(&models.Todo{}).
		Select("priority, COUNT(*) AS count").
		Where("user_id = ?", ownerID).
		Group("priority").
		Scan(&rows).Error
	if err != nil {
		return PriorityStats{}, err
	}

	var stats PriorityStats
	for _, row := range rows {
		stats.Total += row.Count
		switch row.Priority {
		case models.PriorityLow:
			stats.Low = row.Count
		case models.PriorityMedium:
			stats.Medium = row.Count
		case models.PriorityHigh:
			stats.High = row.Count
		}
	}
	return stats, nil
}
