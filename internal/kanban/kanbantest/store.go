// Package kanbantest provides an in-memory kanban.Store for tests.
package kanbantest

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"todoboard/internal/kanban"
	"todoboard/internal/model"
	"todoboard/internal/repository"
)

// ErrBackend is returned by every write while Fail is set.
var ErrBackend = errors.New("backend unavailable")

var _ kanban.Store = (*Store)(nil)

// Store keeps a single board in memory. Setting Fail makes every write
// return ErrBackend; FailOrderFor limits that to the order update of one
// column.
type Store struct {
	mu sync.Mutex

	board   model.Board
	columns []model.Column
	todos   []model.Todo

	Fail         bool
	FailOrderFor uuid.UUID
	OrderCalls   map[uuid.UUID]int
	Deleted      []uuid.UUID
	Flagged      []uuid.UUID
}

// New returns a store holding one board with the default columns.
func New(name string) *Store {
	boardID := uuid.New()
	columns := model.DefaultColumns(boardID)
	for i := range columns {
		columns[i].ID = uuid.New()
	}
	return &Store{
		board:      model.Board{ID: boardID, Name: name, CreatedAt: time.Now()},
		columns:    columns,
		OrderCalls: make(map[uuid.UUID]int),
	}
}

func (s *Store) BoardID() uuid.UUID { return s.board.ID }

// Column returns the i-th stored column.
func (s *Store) Column(i int) model.Column {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.columns[i]
}

// AddTodo stores a todo created age ago.
func (s *Store) AddTodo(title, status string, isError bool, age time.Duration) model.Todo {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := model.Todo{
		ID:        uuid.New(),
		BoardID:   s.board.ID,
		UserName:  "mina",
		Title:     title,
		Status:    status,
		IsError:   isError,
		CreatedAt: time.Now().Add(-age),
	}
	s.todos = append(s.todos, t)
	return t
}

func (s *Store) Board(ctx context.Context, boardID uuid.UUID) (*model.Board, error) {
	if boardID != s.board.ID {
		return nil, repository.ErrBoardNotFound
	}
	b := s.board
	return &b, nil
}

func (s *Store) Columns(ctx context.Context, boardID uuid.UUID) ([]model.Column, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.columns), nil
}

func (s *Store) Todos(ctx context.Context, boardID uuid.UUID, isError bool) ([]model.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Todo
	for _, t := range s.todos {
		if t.IsError == isError {
			out = append(out, t)
		}
	}
	if isError {
		slices.SortStableFunc(out, func(a, b model.Todo) int { return b.CreatedAt.Compare(a.CreatedAt) })
	}
	return out, nil
}

func (s *Store) CreateTodo(ctx context.Context, todo *model.Todo) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fail {
		return ErrBackend
	}
	todo.ID = uuid.New()
	todo.CreatedAt = time.Now()
	s.todos = append(s.todos, *todo)
	return nil
}

func (s *Store) UpdateTodo(ctx context.Context, id uuid.UUID, content repository.TodoContent) error {
	return s.write()
}

func (s *Store) UpdateTodoStatus(ctx context.Context, id uuid.UUID, status string) error {
	return s.write()
}

func (s *Store) DeleteTodos(ctx context.Context, boardID uuid.UUID, ids []uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fail {
		return ErrBackend
	}
	s.Deleted = append(s.Deleted, ids...)
	return nil
}

func (s *Store) MarkTodosError(ctx context.Context, boardID uuid.UUID, ids []uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fail {
		return ErrBackend
	}
	s.Flagged = append(s.Flagged, ids...)
	return nil
}

func (s *Store) CommentTodo(ctx context.Context, id uuid.UUID, comment string) error {
	return s.write()
}

func (s *Store) CreateColumn(ctx context.Context, column *model.Column) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fail {
		return ErrBackend
	}
	column.ID = uuid.New()
	return nil
}

func (s *Store) UpdateColumn(ctx context.Context, column *model.Column) error {
	return s.write()
}

func (s *Store) DeleteColumn(ctx context.Context, id uuid.UUID) error {
	return s.write()
}

func (s *Store) UpdateColumnOrder(ctx context.Context, id uuid.UUID, order int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.OrderCalls[id] = order
	if s.Fail || id == s.FailOrderFor {
		return ErrBackend
	}
	return nil
}

func (s *Store) write() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fail {
		return ErrBackend
	}
	return nil
}
