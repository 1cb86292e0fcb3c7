package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	errs "todo-service.com/todo-service/internal/errors"
	model "todo-service.com/todo-service/internal/models"
)

// TodoRepository maps TodoItem entities to rows in the todo_items
// table. Not-found conditions surface as errs.ErrTodoNotFound so
// callers never see gorm sentinels.
type TodoRepository struct {
	db *gorm.DB
}

func NewTodoRepository(db *gorm.DB) *TodoRepository {
	return &TodoRepository{db: db}
}

// FindAll returns every item, most recently created first. The slice
// is non-nil even when the table is empty.
func (r *TodoRepository) FindAll(ctx context.Context) ([]model.TodoItem, error) {
	items := make([]model.TodoItem, 0)
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&items).Error
	return items, err
}

func (r *TodoRepository) FindByID(ctx context.Context, id uint) (*model.TodoItem, error) {
	var item model.TodoItem
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrTodoNotFound
		}
		return nil, err
	}
	return &item, nil
}

// Insert persists a new item as given. The store assigns the id; all
// other fields, timestamps included, are the caller's responsibility.
func (r *TodoRepository) Insert(ctx context.Context, item *model.TodoItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// Save overwrites the mutable columns of an existing row. A column map
// is used so false and NULL values are written rather than skipped.
func (r *TodoRepository) Save(ctx context.Context, item *model.TodoItem) error {
	res := r.db.WithContext(ctx).Model(&model.TodoItem{}).
		Where("id = ?", item.ID).
		Updates(map[string]interface{}{
			"title":        item.Title,
			"description":  item.Description,
			"is_completed": item.IsCompleted,
			"completed_at": item.CompletedAt,
		})

	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return errs.ErrTodoNotFound
	}

	return nil
}

func (r *TodoRepository) Delete(ctx context.Context, item *model.TodoItem) error {
	res := r.db.WithContext(ctx).Delete(&model.TodoItem{}, item.ID)

	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return errs.ErrTodoNotFound
	}

	return nil
}
