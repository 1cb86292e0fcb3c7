package services

import (
	"context"
	"time"

	errs "todo-service.com/todo-service/internal/errors"
	model "todo-service.com/todo-service/internal/models"
	repository "todo-service.com/todo-service/internal/repositories"
)

const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 1000
)

type TodoService struct {
	repo *repository.TodoRepository
}

func NewTodoService(repo *repository.TodoRepository) *TodoService {
	return &TodoService{repo: repo}
}

func (s *TodoService) ListTodos(ctx context.Context) ([]model.TodoItem, error) {
	return s.repo.FindAll(ctx)
}

func (s *TodoService) GetTodo(ctx context.Context, id uint) (*model.TodoItem, error) {
	return s.repo.FindByID(ctx, id)
}

// CreateTodo stamps CreatedAt and persists the item. A caller-supplied
// completed flag is stored as-is: this path does not set CompletedAt,
// so an item created with completed=true carries a nil timestamp until
// its completion state next changes through UpdateTodo.
func (s *TodoService) CreateTodo(ctx context.Context, title, description string, completed bool) (*model.TodoItem, error) {
	if err := validateLengths(title, description); err != nil {
		return nil, err
	}

	item := &model.TodoItem{
		Title:       title,
		Description: description,
		IsCompleted: completed,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// UpdateTodo replaces title, description and the completed flag
// wholesale. CompletedAt follows the completion transition: stamped on
// false→true, cleared on true→false, untouched when the flag does not
// change. Id and CreatedAt are immutable.
func (s *TodoService) UpdateTodo(ctx context.Context, id uint, title, description string, completed bool) (*model.TodoItem, error) {
	if err := validateLengths(title, description); err != nil {
		return nil, err
	}

	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if completed && !item.IsCompleted {
		now := time.Now().UTC()
		item.CompletedAt = &now
	} else if !completed && item.IsCompleted {
		item.CompletedAt = nil
	}

	item.Title = title
	item.Description = description
	item.IsCompleted = completed

	if err := s.repo.Save(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

func (s *TodoService) DeleteTodo(ctx context.Context, id uint) error {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	return s.repo.Delete(ctx, item)
}

// sqlite ignores varchar sizes, so the column limits are enforced here
// rather than left to the schema.
func validateLengths(title, description string) error {
	if len(title) > MaxTitleLength {
		return errs.ErrTitleTooLong
	}
	if len(description) > MaxDescriptionLength {
		return errs.ErrDescriptionTooLong
	}
	return nil
}
