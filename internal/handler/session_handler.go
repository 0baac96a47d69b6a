package handler

import (
	"context"
	"net/http"
	"strings"

	"todoboard/internal/events"
	"todoboard/internal/kanban"
	"todoboard/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionHandler exposes server side kanban views. Every action answers
// with the full view state so the client can render it as is.
type SessionHandler struct {
	sessions *session.Manager
	events   events.Publisher
}

func NewSessionHandler(sessions *session.Manager, publisher events.Publisher) *SessionHandler {
	return &SessionHandler{
		sessions: sessions,
		events:   publisher,
	}
}

type OpenSessionResponse struct {
	SessionID string          `json:"session_id"`
	State     kanban.Snapshot `json:"state"`
}

type SessionStateResponse struct {
	State kanban.Snapshot `json:"state"`
}

type SelectTodoRequest struct {
	TodoID string `json:"todo_id" binding:"required,uuid"`
}

type SelectTodoResponse struct {
	Selected bool            `json:"selected"`
	State    kanban.Snapshot `json:"state"`
}

type SessionTodoRequest struct {
	Status      string `json:"status" binding:"required"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Description string `json:"description"`
	UserName    string `json:"user_name"`
}

type DropTodoRequest struct {
	Status string `json:"status" binding:"required"`
}

type MoveRequest struct {
	From *int `json:"from" binding:"required"`
	To   *int `json:"to" binding:"required"`
}

type SessionColumnRequest struct {
	Title string `json:"title"`
	Color string `json:"color" binding:"omitempty,hexcolor"`
}

// do runs action on the session named in the path and answers with the
// resulting state. A non-empty change is published for the board after a
// successful action.
func (h *SessionHandler) do(c *gin.Context, change events.Type, failure string, action func(ctx context.Context, s *kanban.Session) error) {
	sessionID, ok := paramID(c, "sid", "session")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	var (
		state   kanban.Snapshot
		boardID uuid.UUID
	)
	err := h.sessions.Do(sessionID, func(s *kanban.Session) error {
		if err := action(ctx, s); err != nil {
			return err
		}
		state = s.Snapshot()
		boardID = s.BoardID()
		return nil
	})
	if err != nil {
		respondError(c, err, failure)
		return
	}

	if change != "" {
		publish(ctx, h.events, change, boardID)
	}
	c.JSON(http.StatusOK, SessionStateResponse{State: state})
}

// Open godoc
// @Summary  Open a kanban view of a board
// @Tags     Sessions
// @Produce  json
// @Param    id path string true "Board ID"
// @Success  201 {object} OpenSessionResponse
// @Router   /boards/{id}/sessions [post]
func (h *SessionHandler) Open(c *gin.Context) {
	boardID, ok := paramID(c, "id", "board")
	if !ok {
		return
	}

	sessionID, state, err := h.sessions.Open(c.Request.Context(), boardID)
	if err != nil {
		respondError(c, err, "Failed to open board view")
		return
	}

	c.JSON(http.StatusCreated, OpenSessionResponse{SessionID: sessionID.String(), State: state})
}

// Get godoc
// @Summary  Current state of a kanban view
// @Tags     Sessions
// @Produce  json
// @Param    sid path string true "Session ID"
// @Success  200 {object} SessionStateResponse
// @Router   /sessions/{sid} [get]
func (h *SessionHandler) Get(c *gin.Context) {
	h.do(c, "", "Failed to read board view", func(context.Context, *kanban.Session) error {
		return nil
	})
}

// Reload godoc
// @Summary  Refetch a kanban view from the database
// @Tags     Sessions
// @Produce  json
// @Param    sid path string true "Session ID"
// @Success  200 {object} SessionStateResponse
// @Router   /sessions/{sid}/reload [post]
func (h *SessionHandler) Reload(c *gin.Context) {
	h.do(c, "", "Failed to reload board view", func(ctx context.Context, s *kanban.Session) error {
		return s.Load(ctx)
	})
}

// Close godoc
// @Summary  Close a kanban view
// @Tags     Sessions
// @Param    sid path string true "Session ID"
// @Success  200 {object} map[string]string
// @Router   /sessions/{sid} [delete]
func (h *SessionHandler) Close(c *gin.Context) {
	sessionID, ok := paramID(c, "sid", "session")
	if !ok {
		return
	}
	if err := h.sessions.Close(sessionID); err != nil {
		respondError(c, err, "Failed to close board view")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session closed"})
}

// ToggleMode godoc
// @Summary  Toggle edit, delete, error or column-edit mode
// @Tags     Sessions
// @Produce  json
// @Param    sid  path string true "Session ID"
// @Param    mode path string true "Mode" Enums(edit, delete, error, column-edit)
// @Success  200 {object} SessionStateResponse
// @Router   /sessions/{sid}/modes/{mode} [post]
func (h *SessionHandler) ToggleMode(c *gin.Context) {
	mode, err := kanban.ParseMode(c.Param("mode"))
	if err != nil {
		respondError(c, err, "")
		return
	}
	h.do(c, "", "Failed to toggle mode", func(_ context.Context, s *kanban.Session) error {
		return s.ToggleMode(mode)
	})
}

// Select godoc
// @Summary  Toggle a todo in the delete or error selection
// @Tags     Sessions
// @Accept   json
// @Produce  json
// @Param    sid     path string            true "Session ID"
// @Param    request body SelectTodoRequest true "Todo"
// @Success  200 {object} SelectTodoResponse
// @Router   /sessions/{sid}/select [post]
func (h *SessionHandler) Select(c *gin.Context) {
	sessionID, ok := paramID(c, "sid", "session")
	if !ok {
		return
	}
	var req SelectTodoRequest
	if !bindJSON(c, &req) {
		return
	}
	todoID, err := uuid.Parse(req.TodoID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid todo ID format"})
		return
	}

	var response SelectTodoResponse
	err = h.sessions.Do(sessionID, func(s *kanban.Session) error {
		selected, err := s.ToggleSelect(todoID)
		if err != nil {
			return err
		}
		response = SelectTodoResponse{Selected: selected, State: s.Snapshot()}
		return nil
	})
	if err != nil {
		respondError(c, err, "Failed to select todo")
		return
	}
	c.JSON(http.StatusOK, response)
}

// Confirm godoc
// @Summary  Delete or flag the selected todos and leave the mode
// @Tags     Sessions
// @Produce  json
// @Param    sid path string true "Session ID"
// @Success  200 {object} SessionStateResponse
// @Router   /sessions/{sid}/confirm [post]
func (h *SessionHandler) Confirm(c *gin.Context) {
	h.do(c, events.TodosChanged, "Failed to apply selection", func(ctx context.Context, s *kanban.Session) error {
		return s.Confirm(ctx)
	})
}

// Cancel godoc
// @Summary  Leave the current mode and drop its selection
// @Tags     Sessions
// @Produce  json
// @Param    sid path string true "Session ID"
// @Success  200 {object} SessionStateResponse
// @Router   /sessions/{sid}/cancel [post]
func (h *SessionHandler) Cancel(c *gin.Context) {
	h.do(c, "", "Failed to cancel", func(_ context.Context, s *kanban.Session) error {
		s.Cancel()
		return nil
	})
}

// AddTodo godoc
// @Summary  Create a todo in a column of the view
// @Tags     Sessions
// @Accept   json
// @Produce  json
// @Param    sid     path string             true "Session ID"
// @Param    request body SessionTodoRequest true "Todo"
// @Success  200 {object} SessionStateResponse
// @Router   /sessions/{sid}/todos [post]
func (h *SessionHandler) AddTodo(c *gin.Context) {
	var req SessionTodoRequest
	if !bindJSON(c, &req) {
		return
	}
	input := kanban.TodoInput{Title: req.Title, Date: req.Date, Description: req.Description}
	h.do(c, events.TodosChanged, "Failed to create todo", func(ctx context.Context, s *kanban.Session) error {
		userName := actorName(c, s.BoardID(), strings.TrimSpace(req.UserName))
		_, err := s.AddTodo(ctx, req.Status, input, userName)
		return err
	})
}

// BeginEdit godoc
// @Summary  Pick the todo to edit while in edit mode
// @Tags     Sessions
// @Produce  json
// @Param    sid     path string true "Session ID"
// @Param    todo_id path string true "Todo ID"
// @Success  200 {object} SessionStateResponse
// @Router   /sessions/{sid}/todos/{todo_id}/edit [post]
func (h *SessionHandler) BeginEdit(c *gin.Context) {
	todoID, ok := paramID(c, "todo_id", "todo")
	if !ok {
		return
	}
	h.do(c, "", "Failed to edit todo", func(_ context.Context, s *kanban.Session) error {
		return s.BeginEdit(todoID)
	})
}

// UpdateTodo godoc
// @Summary  Save a todo edited in edit mode
// @Tags     Sessions
// @Accept   json
// @Produce  json
// @Param    sid     path string           true "Session ID"
// @Param    todo_id path string           true "Todo ID"
// @Param    request body kanban.TodoInput true "Todo"
// @Success  200 {object} SessionStateResponse
// @Router   /sessions/{sid}/todos/{todo_id} [put]
func (h *SessionHandler) UpdateTodo(c *gin.Context) {
	todoID, ok := paramID(c, "todo_id", "todo")
	if !ok {
		return
	}
	var input kanban.TodoInput
	if !bindJSON(c, &input) {
		return
	}
	h.do(c, events.TodosChanged, "Failed to update todo", func(ctx context.Context, s *kanban.Session) error {
		_, err := s.UpdateTodo(ctx, todoID, input)
		return err
	})
}

// DropTodo godoc
// @Summary  Drop a todo into another column
// @Tags     Sessions
// @Accept   json
// @Produce  json
// @Param    sid     path string          true "Session ID"
// @Param    todo_id path string          true "Todo ID"
// @Param    request body DropTodoRequest true "Target status"
// @Success  200 {object} SessionStateResponse
// @Router   /sessions/{sid}/todos/{todo_id}/drop [post]
func (h *SessionHandler) DropTodo(c *gin.Context) {
	todoID, ok := paramID(c, "todo_id", "todo")
	if !ok {
		return
	}
	var req DropTodoRequest
	if !bindJSON(c, &req) {
		return
	}
	h.do(c, events.TodosChanged, "Failed to move todo", func(ctx context.Context, s *kanban.Session) error {
		return s.DropTodo(ctx, todoID, req.Status)
	})
}

// CommentTodo godoc
// @Summary  Comment on an error room todo
// @Tags     Sessions
// @Accept   json
// @Produce  json
// @Param    sid     path string         true "Session ID"
// @Param    todo_id path string         true "Todo ID"
// @Param    request body CommentRequest true "Comment"
// @Success  200 {object} SessionStateResponse
// @Router   /sessions/{sid}/todos/{todo_id}/comment [post]
func (h *SessionHandler) CommentTodo(c *gin.Context) {
	todoID, ok := paramID(c, "todo_id", "todo")
	if !ok {
		return
	}
	var req CommentRequest
	if !bindJSON(c, &req) {
		return
	}
	h.do(c, events.TodosChanged, "Failed to save comment", func(ctx context.Context, s *kanban.Session) error {
		_, err := s.CommentTodo(ctx, todoID, req.Comment)
		return err
	})
}

// MoveTodo godoc
// @Summary  Reorder the todos shown in one column
// @Tags     Sessions
// @Accept   json
// @Produce  json
// @Param    sid     path string      true "Session ID"
// @Param    status  path string      true "Column status"
// @Param    request body MoveRequest true "Positions"
// @Success  200 {object} SessionStateResponse
// @Router   /sessions/{sid}/columns/{status}/move [post]
func (h *SessionHandler) MoveTodo(c *gin.Context) {
	var req MoveRequest
	if !bindJSON(c, &req) {
		return
	}
	status := c.Param("status")
	h.do(c, "", "Failed to reorder todos", func(_ context.Context, s *kanban.Session) error {
		return s.MoveTodo(status, *req.From, *req.To)
	})
}

// AddColumn godoc
// @Summary  Add a column while in column-edit mode
// @Tags     Sessions
// @Accept   json
// @Produce  json
// @Param    sid     path string               true "Session ID"
// @Param    request body SessionColumnRequest true "Column"
// @Success  200 {object} SessionStateResponse
// @Router   /sessions/{sid}/columns [post]
func (h *SessionHandler) AddColumn(c *gin.Context) {
	var req SessionColumnRequest
	if !bindJSON(c, &req) {
		return
	}
	h.do(c, events.ColumnsChanged, "Failed to create column", func(ctx context.Context, s *kanban.Session) error {
		_, err := s.AddColumn(ctx, req.Title, req.Color)
		return err
	})
}

// EditColumn godoc
// @Summary  Rename or recolour a column while in column-edit mode
// @Tags     Sessions
// @Accept   json
// @Produce  json
// @Param    sid       path string               true "Session ID"
// @Param    column_id path string               true "Column ID"
// @Param    request   body SessionColumnRequest true "Column"
// @Success  200 {object} SessionStateResponse
// @Router   /sessions/{sid}/columns/{column_id} [put]
func (h *SessionHandler) EditColumn(c *gin.Context) {
	columnID, ok := paramID(c, "column_id", "column")
	if !ok {
		return
	}
	var req SessionColumnRequest
	if !bindJSON(c, &req) {
		return
	}
	h.do(c, events.ColumnsChanged, "Failed to update column", func(ctx context.Context, s *kanban.Session) error {
		_, err := s.EditColumn(ctx, columnID, req.Title, req.Color)
		return err
	})
}

// RemoveColumn godoc
// @Summary  Delete a column while in column-edit mode
// @Tags     Sessions
// @Produce  json
// @Param    sid       path string true "Session ID"
// @Param    column_id path string true "Column ID"
// @Success  200 {object} SessionStateResponse
// @Router   /sessions/{sid}/columns/{column_id} [delete]
func (h *SessionHandler) RemoveColumn(c *gin.Context) {
	columnID, ok := paramID(c, "column_id", "column")
	if !ok {
		return
	}
	h.do(c, events.ColumnsChanged, "Failed to delete column", func(ctx context.Context, s *kanban.Session) error {
		return s.RemoveColumn(ctx, columnID)
	})
}

// ReorderColumns godoc
// @Summary  Drag a column to a new position while in column-edit mode
// @Tags     Sessions
// @Accept   json
// @Produce  json
// @Param    sid     path string      true "Session ID"
// @Param    request body MoveRequest true "Positions"
// @Success  200 {object} SessionStateResponse
// @Router   /sessions/{sid}/columns/reorder [post]
func (h *SessionHandler) ReorderColumns(c *gin.Context) {
	var req MoveRequest
	if !bindJSON(c, &req) {
		return
	}
	h.do(c, events.ColumnsChanged, "Failed to reorder columns", func(ctx context.Context, s *kanban.Session) error {
		return s.ReorderColumns(ctx, *req.From, *req.To)
	})
}
