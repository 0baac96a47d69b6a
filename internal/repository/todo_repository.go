package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"todoboard/internal/model"
)

// TodoContent is the editable part of a todo.
type TodoContent struct {
	Title       string
	Date        *string
	Description string
}

type TodoRepositoryInterface interface {
	Create(ctx context.Context, todo *model.Todo) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Todo, error)
	ListByBoard(ctx context.Context, boardID uuid.UUID, isError bool) ([]model.Todo, error)
	UpdateContent(ctx context.Context, id uuid.UUID, content TodoContent) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	SetComment(ctx context.Context, id uuid.UUID, comment string) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteMany(ctx context.Context, boardID uuid.UUID, ids []uuid.UUID) (int64, error)
	MarkError(ctx context.Context, boardID uuid.UUID, ids []uuid.UUID) (int64, error)
}

var _ TodoRepositoryInterface = (*TodoRepository)(nil)

type TodoRepository struct {
	db *gorm.DB
}

func NewTodoRepository(db *gorm.DB) *TodoRepository {
	return &TodoRepository{db: db}
}

// Create adds a new todo to the database
func (r *TodoRepository) Create(ctx context.Context, todo *model.Todo) error {
	return r.db.WithContext(ctx).Create(todo).Error
}

// GetByID retrieves a todo by its ID
func (r *TodoRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Todo, error) {
	var todo model.Todo
	result := r.db.WithContext(ctx).First(&todo, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrTodoNotFound
		}
		return nil, result.Error
	}
	return &todo, nil
}

// ListByBoard retrieves either the kanban todos or the error room todos of a
// board. Kanban todos come oldest first, error room todos newest first.
func (r *TodoRepository) ListByBoard(ctx context.Context, boardID uuid.UUID, isError bool) ([]model.Todo, error) {
	order := "created_at ASC, id ASC"
	if isError {
		order = "created_at DESC, id DESC"
	}

	var todos []model.Todo
	result := r.db.WithContext(ctx).
		Where("board_id = ? AND is_error = ?", boardID, isError).
		Order(order).
		Find(&todos)
	if result.Error != nil {
		return nil, result.Error
	}
	return todos, nil
}

// UpdateContent replaces title, date range and description. Status and the
// error flag are left alone.
func (r *TodoRepository) UpdateContent(ctx context.Context, id uuid.UUID, content TodoContent) error {
	result := r.db.WithContext(ctx).Model(&model.Todo{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"title":       content.Title,
			"date":        content.Date,
			"description": content.Description,
		})
	return rowsOrNotFound(result, ErrTodoNotFound)
}

// UpdateStatus moves a todo into the column with the given status
func (r *TodoRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	result := r.db.WithContext(ctx).Model(&model.Todo{}).
		Where("id = ?", id).
		Update("status", status)
	return rowsOrNotFound(result, ErrTodoNotFound)
}

// SetComment stores the error room comment of a todo
func (r *TodoRepository) SetComment(ctx context.Context, id uuid.UUID, comment string) error {
	result := r.db.WithContext(ctx).Model(&model.Todo{}).
		Where("id = ?", id).
		Update("comment", comment)
	return rowsOrNotFound(result, ErrTodoNotFound)
}

// Delete removes a todo by its ID
func (r *TodoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Todo{}, "id = ?", id)
	return rowsOrNotFound(result, ErrTodoNotFound)
}

// DeleteMany removes the given todos of a board in one statement and reports
// how many rows went away. Ids belonging to other boards are ignored.
func (r *TodoRepository) DeleteMany(ctx context.Context, boardID uuid.UUID, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := r.db.WithContext(ctx).
		Where("board_id = ? AND id IN ?", boardID, ids).
		Delete(&model.Todo{})
	return result.RowsAffected, result.Error
}

// MarkError flags the given todos of a board into the error room.
func (r *TodoRepository) MarkError(ctx context.Context, boardID uuid.UUID, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := r.db.WithContext(ctx).Model(&model.Todo{}).
		Where("board_id = ? AND id IN ?", boardID, ids).
		Update("is_error", true)
	return result.RowsAffected, result.Error
}

func rowsOrNotFound(result *gorm.DB, notFound error) error {
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return notFound
	}
	return nil
}
