package kanban

import (
	"context"

	"github.com/google/uuid"

	"todoboard/internal/model"
	"todoboard/internal/repository"
)

// Store is the backend a Session reads from and writes through.
type Store interface {
	Board(ctx context.Context, boardID uuid.UUID) (*model.Board, error)
	// Columns returns the board's columns, creating the defaults when it has none.
	Columns(ctx context.Context, boardID uuid.UUID) ([]model.Column, error)
	Todos(ctx context.Context, boardID uuid.UUID, isError bool) ([]model.Todo, error)

	CreateTodo(ctx context.Context, todo *model.Todo) error
	UpdateTodo(ctx context.Context, id uuid.UUID, content repository.TodoContent) error
	UpdateTodoStatus(ctx context.Context, id uuid.UUID, status string) error
	DeleteTodos(ctx context.Context, boardID uuid.UUID, ids []uuid.UUID) error
	MarkTodosError(ctx context.Context, boardID uuid.UUID, ids []uuid.UUID) error
	CommentTodo(ctx context.Context, id uuid.UUID, comment string) error

	CreateColumn(ctx context.Context, column *model.Column) error
	UpdateColumn(ctx context.Context, column *model.Column) error
	DeleteColumn(ctx context.Context, id uuid.UUID) error
	UpdateColumnOrder(ctx context.Context, id uuid.UUID, order int) error
}

var _ Store = (*RepositoryStore)(nil)

// RepositoryStore implements Store on top of the gorm repositories.
type RepositoryStore struct {
	boards  repository.BoardRepositoryInterface
	columns repository.ColumnRepositoryInterface
	todos   repository.TodoRepositoryInterface
}

func NewRepositoryStore(
	boards repository.BoardRepositoryInterface,
	columns repository.ColumnRepositoryInterface,
	todos repository.TodoRepositoryInterface,
) *RepositoryStore {
	return &RepositoryStore{boards: boards, columns: columns, todos: todos}
}

func (s *RepositoryStore) Board(ctx context.Context, boardID uuid.UUID) (*model.Board, error) {
	return s.boards.GetByID(ctx, boardID)
}

func (s *RepositoryStore) Columns(ctx context.Context, boardID uuid.UUID) ([]model.Column, error) {
	return s.columns.EnsureDefaults(ctx, boardID)
}

func (s *RepositoryStore) Todos(ctx context.Context, boardID uuid.UUID, isError bool) ([]model.Todo, error) {
	return s.todos.ListByBoard(ctx, boardID, isError)
}

func (s *RepositoryStore) CreateTodo(ctx context.Context, todo *model.Todo) error {
	return s.todos.Create(ctx, todo)
}

func (s *RepositoryStore) UpdateTodo(ctx context.Context, id uuid.UUID, content repository.TodoContent) error {
	return s.todos.UpdateContent(ctx, id, content)
}

func (s *RepositoryStore) UpdateTodoStatus(ctx context.Context, id uuid.UUID, status string) error {
	return s.todos.UpdateStatus(ctx, id, status)
}

func (s *RepositoryStore) DeleteTodos(ctx context.Context, boardID uuid.UUID, ids []uuid.UUID) error {
	_, err := s.todos.DeleteMany(ctx, boardID, ids)
	return err
}

func (s *RepositoryStore) MarkTodosError(ctx context.Context, boardID uuid.UUID, ids []uuid.UUID) error {
	_, err := s.todos.MarkError(ctx, boardID, ids)
	return err
}

func (s *RepositoryStore) CommentTodo(ctx context.Context, id uuid.UUID, comment string) error {
	return s.todos.SetComment(ctx, id, comment)
}

func (s *RepositoryStore) CreateColumn(ctx context.Context, column *model.Column) error {
	return s.columns.Create(ctx, column)
}

func (s *RepositoryStore) UpdateColumn(ctx context.Context, column *model.Column) error {
	return s.columns.Update(ctx, column)
}

func (s *RepositoryStore) DeleteColumn(ctx context.Context, id uuid.UUID) error {
	return s.columns.Delete(ctx, id)
}

func (s *RepositoryStore) UpdateColumnOrder(ctx context.Context, id uuid.UUID, order int) error {
	return s.columns.UpdateOrder(ctx, id, order)
}
