package kanban

import (
	"time"

	"github.com/google/uuid"

	"todoboard/internal/model"
)

// Snapshot is a copy of a session's state, ready to be rendered as JSON.
type Snapshot struct {
	BoardID       uuid.UUID    `json:"board_id"`
	BoardName     string       `json:"board_name"`
	Mode          Mode         `json:"mode"`
	EditingTodoID *uuid.UUID   `json:"editing_todo_id,omitempty"`
	Selected      []uuid.UUID  `json:"selected"`
	Columns       []ColumnView `json:"columns"`
	ErrorRoom     []TodoView   `json:"error_room"`
}

type ColumnView struct {
	ID     uuid.UUID  `json:"id"`
	Title  string     `json:"title"`
	Status string     `json:"status"`
	Color  string     `json:"color"`
	Order  int        `json:"order"`
	Todos  []TodoView `json:"todos"`
}

type TodoView struct {
	ID          uuid.UUID `json:"id"`
	UserName    string    `json:"user_name"`
	Title       string    `json:"title"`
	Status      string    `json:"status"`
	Date        *string   `json:"date"`
	Description string    `json:"description"`
	IsError     bool      `json:"is_error"`
	Comment     *string   `json:"comment"`
	CreatedAt   time.Time `json:"created_at"`
	Selected    bool      `json:"selected,omitempty"`
}

// Snapshot copies the current state. Todos whose status matches no column
// are left out of the columns.
func (s *Session) Snapshot() Snapshot {
	sel := s.selection()
	snap := Snapshot{
		BoardID:   s.boardID,
		BoardName: s.boardName,
		Mode:      s.mode,
		Selected:  s.selectedIDs(),
		Columns:   make([]ColumnView, 0, len(s.columns)),
		ErrorRoom: make([]TodoView, 0, len(s.errorTodos)),
	}
	if s.editing != uuid.Nil {
		id := s.editing
		snap.EditingTodoID = &id
	}

	for _, c := range s.columns {
		view := ColumnView{
			ID:     c.ID,
			Title:  c.Title,
			Status: c.Status,
			Color:  c.Color,
			Order:  c.Order,
			Todos:  []TodoView{},
		}
		for _, t := range s.todos {
			if t.Status != c.Status {
				continue
			}
			_, selected := sel[t.ID]
			view.Todos = append(view.Todos, todoView(t, selected))
		}
		snap.Columns = append(snap.Columns, view)
	}
	for _, t := range s.errorTodos {
		snap.ErrorRoom = append(snap.ErrorRoom, todoView(t, false))
	}
	return snap
}

func todoView(t model.Todo, selected bool) TodoView {
	return TodoView{
		ID:          t.ID,
		UserName:    t.UserName,
		Title:       t.Title,
		Status:      t.Status,
		Date:        cloneString(t.Date),
		Description: t.Description,
		IsError:     t.IsError,
		Comment:     cloneString(t.Comment),
		CreatedAt:   t.CreatedAt,
		Selected:    selected,
	}
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
