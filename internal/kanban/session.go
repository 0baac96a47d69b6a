// Package kanban holds the view state of an open board: its columns and
// todos, the active interaction mode and the per-mode selections. Writes are
// applied locally first and rolled back when the backend rejects them.
//
// A Session is not safe for concurrent use; callers serialize access.
package kanban

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"todoboard/internal/model"
	"todoboard/internal/repository"
	"todoboard/internal/validation"
)

var (
	ErrUnknownMode     = errors.New("unknown mode")
	ErrNoSelectionMode = errors.New("selection is only possible in delete or error mode")
	ErrWrongMode       = errors.New("action not allowed in the current mode")
	ErrNotLoaded       = errors.New("board view is not loaded")
	ErrEmptyComment    = errors.New("comment must not be empty")
	ErrEmptyTitle      = errors.New("column title must not be empty")
	ErrPosition        = errors.New("position out of range")
	ErrUnknownStatus   = errors.New("no column with this status")
)

// TodoInput is the editable content of a todo.
type TodoInput struct {
	Title       string `json:"title" validate:"required,max=100"`
	Date        string `json:"date" validate:"daterange"`
	Description string `json:"description"`
}

// columnInput carries the rules the column routes bind with.
type columnInput struct {
	Title string `json:"title" validate:"required,max=50"`
	Color string `json:"color" validate:"omitempty,hexcolor"`
}

func (in TodoInput) content() repository.TodoContent {
	var date *string
	if in.Date != "" {
		d := in.Date
		date = &d
	}
	return repository.TodoContent{Title: in.Title, Date: date, Description: in.Description}
}

type Session struct {
	store  Store
	logger *slog.Logger

	boardID   uuid.UUID
	boardName string
	loaded    bool

	columns    []model.Column
	todos      []model.Todo
	errorTodos []model.Todo

	mode      Mode
	editing   uuid.UUID
	deleteSel map[uuid.UUID]struct{}
	errorSel  map[uuid.UUID]struct{}
}

func NewSession(store Store, boardID uuid.UUID, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		store:     store,
		logger:    logger.With("board_id", boardID),
		boardID:   boardID,
		mode:      ModeIdle,
		deleteSel: make(map[uuid.UUID]struct{}),
		errorSel:  make(map[uuid.UUID]struct{}),
	}
}

func (s *Session) BoardID() uuid.UUID { return s.boardID }

func (s *Session) Mode() Mode { return s.mode }

// Load fetches the board, its columns and both todo lists in parallel and
// resets the view to idle.
func (s *Session) Load(ctx context.Context) error {
	var (
		board      *model.Board
		columns    []model.Column
		todos      []model.Todo
		errorTodos []model.Todo
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		board, err = s.store.Board(gctx, s.boardID)
		return err
	})
	g.Go(func() (err error) {
		columns, err = s.store.Columns(gctx, s.boardID)
		return err
	})
	g.Go(func() (err error) {
		todos, err = s.store.Todos(gctx, s.boardID, false)
		return err
	})
	g.Go(func() (err error) {
		errorTodos, err = s.store.Todos(gctx, s.boardID, true)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("load board view", "error", err)
		return fmt.Errorf("load board view: %w", err)
	}

	s.boardName = board.Name
	s.columns = columns
	s.todos = todos
	s.errorTodos = errorTodos
	s.loaded = true
	s.reset()
	return nil
}

// ToggleMode switches the given mode on, replacing whatever was active, or
// back off to idle when it is already active.
func (s *Session) ToggleMode(mode Mode) error {
	if _, err := ParseMode(string(mode)); err != nil {
		return err
	}
	if s.mode == mode {
		s.reset()
		return nil
	}
	s.reset()
	s.mode = mode
	return nil
}

// Cancel leaves any mode and drops its selection.
func (s *Session) Cancel() {
	s.reset()
}

func (s *Session) reset() {
	s.mode = ModeIdle
	s.editing = uuid.Nil
	clear(s.deleteSel)
	clear(s.errorSel)
}

func (s *Session) selection() map[uuid.UUID]struct{} {
	switch s.mode {
	case ModeDelete:
		return s.deleteSel
	case ModeError:
		return s.errorSel
	default:
		return nil
	}
}

// ToggleSelect adds or removes a kanban todo from the current mode's
// selection and reports whether it is selected afterwards.
func (s *Session) ToggleSelect(todoID uuid.UUID) (bool, error) {
	sel := s.selection()
	if sel == nil {
		return false, ErrNoSelectionMode
	}
	if s.todoIndex(todoID) < 0 {
		return false, repository.ErrTodoNotFound
	}
	if _, ok := sel[todoID]; ok {
		delete(sel, todoID)
		return false, nil
	}
	sel[todoID] = struct{}{}
	return true, nil
}

// Confirm applies the delete or error selection. An empty selection only
// closes the mode. When the backend fails, mode and selection stay as they
// were.
func (s *Session) Confirm(ctx context.Context) error {
	if !s.mode.selects() {
		return ErrNoSelectionMode
	}

	ids := s.selectedIDs()
	if len(ids) == 0 {
		s.reset()
		return nil
	}

	if s.mode == ModeDelete {
		if err := s.store.DeleteTodos(ctx, s.boardID, ids); err != nil {
			s.logger.Error("delete todos", "count", len(ids), "error", err)
			return fmt.Errorf("delete todos: %w", err)
		}
		s.todos = slices.DeleteFunc(s.todos, func(t model.Todo) bool {
			_, ok := s.deleteSel[t.ID]
			return ok
		})
		s.reset()
		return nil
	}

	if err := s.store.MarkTodosError(ctx, s.boardID, ids); err != nil {
		s.logger.Error("flag todos as error", "count", len(ids), "error", err)
		return fmt.Errorf("flag todos as error: %w", err)
	}
	var flagged []model.Todo
	s.todos = slices.DeleteFunc(s.todos, func(t model.Todo) bool {
		if _, ok := s.errorSel[t.ID]; ok {
			t.IsError = true
			flagged = append(flagged, t)
			return true
		}
		return false
	})
	// The error room lists newest first.
	s.errorTodos = append(flagged, s.errorTodos...)
	slices.SortStableFunc(s.errorTodos, func(a, b model.Todo) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	s.reset()
	return nil
}

// selectedIDs lists the current selection in board order.
func (s *Session) selectedIDs() []uuid.UUID {
	sel := s.selection()
	ids := make([]uuid.UUID, 0, len(sel))
	for _, t := range s.todos {
		if _, ok := sel[t.ID]; ok {
			ids = append(ids, t.ID)
		}
	}
	return ids
}

// AddTodo creates a todo in the column with the given status.
func (s *Session) AddTodo(ctx context.Context, status string, in TodoInput, userName string) (model.Todo, error) {
	if err := s.ensureLoaded(); err != nil {
		return model.Todo{}, err
	}
	if err := validation.Struct(in); err != nil {
		return model.Todo{}, err
	}
	if s.columnByStatus(status) < 0 {
		return model.Todo{}, ErrUnknownStatus
	}

	content := in.content()
	todo := model.Todo{
		BoardID:     s.boardID,
		UserName:    userName,
		Title:       content.Title,
		Status:      status,
		Date:        content.Date,
		Description: content.Description,
	}
	if err := s.store.CreateTodo(ctx, &todo); err != nil {
		s.logger.Error("create todo", "status", status, "error", err)
		return model.Todo{}, fmt.Errorf("create todo: %w", err)
	}
	s.todos = append(s.todos, todo)
	return todo, nil
}

// BeginEdit picks the todo to edit. Requires edit mode.
func (s *Session) BeginEdit(todoID uuid.UUID) error {
	if s.mode != ModeEdit {
		return ErrWrongMode
	}
	if s.todoIndex(todoID) < 0 {
		return repository.ErrTodoNotFound
	}
	s.editing = todoID
	return nil
}

// UpdateTodo saves new content for a todo and closes edit mode.
func (s *Session) UpdateTodo(ctx context.Context, todoID uuid.UUID, in TodoInput) (model.Todo, error) {
	if s.mode != ModeEdit {
		return model.Todo{}, ErrWrongMode
	}
	i := s.todoIndex(todoID)
	if i < 0 {
		return model.Todo{}, repository.ErrTodoNotFound
	}
	if err := validation.Struct(in); err != nil {
		return model.Todo{}, err
	}

	content := in.content()
	if err := s.store.UpdateTodo(ctx, todoID, content); err != nil {
		s.logger.Error("update todo", "todo_id", todoID, "error", err)
		return model.Todo{}, fmt.Errorf("update todo: %w", err)
	}
	s.todos[i].Title = content.Title
	s.todos[i].Date = content.Date
	s.todos[i].Description = content.Description
	s.reset()
	return s.todos[i], nil
}

// DropTodo moves a todo into another column. The move shows immediately and
// is undone when persisting it fails.
func (s *Session) DropTodo(ctx context.Context, todoID uuid.UUID, status string) error {
	i := s.todoIndex(todoID)
	if i < 0 {
		return repository.ErrTodoNotFound
	}
	if s.columnByStatus(status) < 0 {
		return ErrUnknownStatus
	}
	previous := s.todos[i].Status
	if previous == status {
		return nil
	}

	s.todos[i].Status = status
	if err := s.store.UpdateTodoStatus(ctx, todoID, status); err != nil {
		s.logger.Error("move todo", "todo_id", todoID, "from", previous, "to", status, "error", err)
		if j := s.todoIndex(todoID); j >= 0 {
			s.todos[j].Status = previous
		}
		return fmt.Errorf("move todo: %w", err)
	}
	return nil
}

// MoveTodo reorders the visible todos of one column. Nothing is persisted.
func (s *Session) MoveTodo(status string, from, to int) error {
	if s.columnByStatus(status) < 0 {
		return ErrUnknownStatus
	}

	var slots []int
	for i, t := range s.todos {
		if t.Status == status {
			slots = append(slots, i)
		}
	}
	if from < 0 || from >= len(slots) || to < 0 || to >= len(slots) {
		return ErrPosition
	}

	visible := make([]model.Todo, len(slots))
	for i, slot := range slots {
		visible[i] = s.todos[slot]
	}
	visible = move(visible, from, to)
	for i, slot := range slots {
		s.todos[slot] = visible[i]
	}
	return nil
}

// CommentTodo stores the review comment of an error room todo.
func (s *Session) CommentTodo(ctx context.Context, todoID uuid.UUID, comment string) (model.Todo, error) {
	i := slices.IndexFunc(s.errorTodos, func(t model.Todo) bool { return t.ID == todoID })
	if i < 0 {
		return model.Todo{}, repository.ErrTodoNotFound
	}
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return model.Todo{}, ErrEmptyComment
	}

	if err := s.store.CommentTodo(ctx, todoID, comment); err != nil {
		s.logger.Error("comment todo", "todo_id", todoID, "error", err)
		return model.Todo{}, fmt.Errorf("comment todo: %w", err)
	}
	s.errorTodos[i].Comment = &comment
	return s.errorTodos[i], nil
}

// AddColumn appends a column. A placeholder is shown while the insert runs
// and removed again if it fails.
func (s *Session) AddColumn(ctx context.Context, title, color string) (model.Column, error) {
	if s.mode != ModeColumnEdit {
		return model.Column{}, ErrWrongMode
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return model.Column{}, ErrEmptyTitle
	}
	if err := validation.Struct(columnInput{Title: title, Color: color}); err != nil {
		return model.Column{}, err
	}
	status := validation.Slug(title)
	if s.columnByStatus(status) >= 0 {
		return model.Column{}, repository.ErrColumnStatusTaken
	}
	if color == "" {
		color = model.DefaultColumnColor
	}

	order := 1
	for _, c := range s.columns {
		order = max(order, c.Order+1)
	}
	tempID := uuid.New()
	s.columns = append(s.columns, model.Column{
		ID:      tempID,
		BoardID: s.boardID,
		Title:   title,
		Status:  status,
		Color:   color,
		Order:   order,
	})

	column := model.Column{BoardID: s.boardID, Title: title, Status: status, Color: color, Order: order}
	err := s.store.CreateColumn(ctx, &column)
	i := s.columnIndex(tempID)
	if err != nil {
		s.logger.Error("create column", "status", status, "error", err)
		if i >= 0 {
			s.columns = slices.Delete(s.columns, i, i+1)
		}
		return model.Column{}, fmt.Errorf("create column: %w", err)
	}
	if i >= 0 {
		s.columns[i] = column
	}
	return column, nil
}

// EditColumn renames or recolours a column. Its status stays put so the
// todos inside keep rendering.
func (s *Session) EditColumn(ctx context.Context, columnID uuid.UUID, title, color string) (model.Column, error) {
	if s.mode != ModeColumnEdit {
		return model.Column{}, ErrWrongMode
	}
	i := s.columnIndex(columnID)
	if i < 0 {
		return model.Column{}, repository.ErrColumnNotFound
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return model.Column{}, ErrEmptyTitle
	}
	if err := validation.Struct(columnInput{Title: title, Color: color}); err != nil {
		return model.Column{}, err
	}
	if color == "" {
		color = s.columns[i].Color
	}

	updated := s.columns[i]
	updated.Title = title
	updated.Color = color
	if err := s.store.UpdateColumn(ctx, &updated); err != nil {
		s.logger.Error("update column", "column_id", columnID, "error", err)
		return model.Column{}, fmt.Errorf("update column: %w", err)
	}
	s.columns[i] = updated
	return updated, nil
}

// RemoveColumn deletes a column. The default todo column stays. Todos with
// the removed status are kept but no longer rendered.
func (s *Session) RemoveColumn(ctx context.Context, columnID uuid.UUID) error {
	if s.mode != ModeColumnEdit {
		return ErrWrongMode
	}
	i := s.columnIndex(columnID)
	if i < 0 {
		return repository.ErrColumnNotFound
	}
	if s.columns[i].Status == model.StatusTodo {
		return repository.ErrDefaultColumn
	}

	if err := s.store.DeleteColumn(ctx, columnID); err != nil {
		s.logger.Error("delete column", "column_id", columnID, "error", err)
		return fmt.Errorf("delete column: %w", err)
	}
	s.columns = slices.Delete(s.columns, i, i+1)
	return nil
}

// ReorderColumns moves the column at index from to index to, renumbers every
// column 1..n and persists all orders concurrently. Any failure restores the
// column list as it was before the move.
func (s *Session) ReorderColumns(ctx context.Context, from, to int) error {
	if s.mode != ModeColumnEdit {
		return ErrWrongMode
	}
	if from < 0 || from >= len(s.columns) || to < 0 || to >= len(s.columns) {
		return ErrPosition
	}
	if from == to {
		return nil
	}

	previous := slices.Clone(s.columns)
	s.columns = move(slices.Clone(s.columns), from, to)
	for i := range s.columns {
		s.columns[i].Order = i + 1
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, c := range s.columns {
		g.Go(func() error {
			return s.store.UpdateColumnOrder(gctx, c.ID, c.Order)
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Error("persist column order", "from", from, "to", to, "error", err)
		s.columns = previous
		return fmt.Errorf("persist column order: %w", err)
	}
	return nil
}

func (s *Session) ensureLoaded() error {
	if !s.loaded {
		return ErrNotLoaded
	}
	return nil
}

func (s *Session) todoIndex(id uuid.UUID) int {
	return slices.IndexFunc(s.todos, func(t model.Todo) bool { return t.ID == id })
}

func (s *Session) columnIndex(id uuid.UUID) int {
	return slices.IndexFunc(s.columns, func(c model.Column) bool { return c.ID == id })
}

func (s *Session) columnByStatus(status string) int {
	return slices.IndexFunc(s.columns, func(c model.Column) bool { return c.Status == status })
}

// move returns items with the element at from relocated to index to.
func move[T any](items []T, from, to int) []T {
	item := items[from]
	items = slices.Delete(items, from, from+1)
	return slices.Insert(items, to, item)
}
