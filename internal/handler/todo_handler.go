package handler

import (
	"context"
	"net/http"
	"slices"
	"strings"
	"time"

	"todoboard/internal/events"
	"todoboard/internal/model"
	"todoboard/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TodoHandler struct {
	todoRepo   repository.TodoRepositoryInterface
	columnRepo repository.ColumnRepositoryInterface
	boardRepo  repository.BoardRepositoryInterface
	events     events.Publisher
}

func NewTodoHandler(todoRepo repository.TodoRepositoryInterface, columnRepo repository.ColumnRepositoryInterface, boardRepo repository.BoardRepositoryInterface, publisher events.Publisher) *TodoHandler {
	return &TodoHandler{
		todoRepo:   todoRepo,
		columnRepo: columnRepo,
		boardRepo:  boardRepo,
		events:     publisher,
	}
}

type CreateTodoRequest struct {
	Title       string `json:"title" binding:"required,max=100"`
	Status      string `json:"status" binding:"required"`
	Date        string `json:"date" binding:"omitempty,daterange"`
	Description string `json:"description"`
	UserName    string `json:"user_name"`
}

type UpdateTodoRequest struct {
	Title       string `json:"title" binding:"required,max=100"`
	Date        string `json:"date" binding:"omitempty,daterange"`
	Description string `json:"description"`
}

type MoveTodoRequest struct {
	Status string `json:"status" binding:"required"`
}

type CommentRequest struct {
	Comment string `json:"comment" binding:"required"`
}

type BatchTodosRequest struct {
	IDs []string `json:"ids" binding:"required,dive,uuid"`
}

type BatchTodosResponse struct {
	Affected int64 `json:"affected"`
}

type TodoResponse struct {
	ID          string  `json:"id"`
	BoardID     string  `json:"board_id"`
	UserName    string  `json:"user_name"`
	Title       string  `json:"title"`
	Status      string  `json:"status"`
	Date        *string `json:"date"`
	Description string  `json:"description"`
	IsError     bool    `json:"is_error"`
	Comment     *string `json:"comment"`
	CreatedAt   string  `json:"created_at"`
}

func newTodoResponse(todo model.Todo) TodoResponse {
	return TodoResponse{
		ID:          todo.ID.String(),
		BoardID:     todo.BoardID.String(),
		UserName:    todo.UserName,
		Title:       todo.Title,
		Status:      todo.Status,
		Date:        todo.Date,
		Description: todo.Description,
		IsError:     todo.IsError,
		Comment:     todo.Comment,
		CreatedAt:   todo.CreatedAt.Format(time.RFC3339),
	}
}

func newTodoResponses(todos []model.Todo) []TodoResponse {
	response := make([]TodoResponse, len(todos))
	for i, todo := range todos {
		response[i] = newTodoResponse(todo)
	}
	return response
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// hasColumn reports whether the board has a column with the given status.
func (h *TodoHandler) hasColumn(c *gin.Context, boardID uuid.UUID, status string) (bool, error) {
	columns, err := h.columnRepo.ListByBoard(c.Request.Context(), boardID)
	if err != nil {
		return false, err
	}
	return slices.ContainsFunc(columns, func(col model.Column) bool { return col.Status == status }), nil
}

// List godoc
// @Summary  List the kanban todos of a board, oldest first
// @Tags     Todos
// @Produce  json
// @Param    id path string true "Board ID"
// @Success  200 {array} TodoResponse
// @Router   /boards/{id}/todos [get]
func (h *TodoHandler) List(c *gin.Context) {
	h.list(c, false)
}

// ErrorRoom godoc
// @Summary  List the todos flagged into the error room, newest first
// @Tags     Error room
// @Produce  json
// @Param    id path string true "Board ID"
// @Success  200 {array} TodoResponse
// @Router   /boards/{id}/error-room [get]
func (h *TodoHandler) ErrorRoom(c *gin.Context) {
	h.list(c, true)
}

func (h *TodoHandler) list(c *gin.Context, isError bool) {
	boardID, ok := paramID(c, "id", "board")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if _, err := h.boardRepo.GetByID(ctx, boardID); err != nil {
		respondError(c, err, "Failed to retrieve board")
		return
	}
	todos, err := h.todoRepo.ListByBoard(ctx, boardID, isError)
	if err != nil {
		respondError(c, err, "Failed to retrieve todos")
		return
	}

	c.JSON(http.StatusOK, newTodoResponses(todos))
}

// Create godoc
// @Summary  Create a todo in a column
// @Tags     Todos
// @Accept   json
// @Produce  json
// @Param    id      path string            true "Board ID"
// @Param    request body CreateTodoRequest true "Todo"
// @Success  201 {object} TodoResponse
// @Router   /boards/{id}/todos [post]
func (h *TodoHandler) Create(c *gin.Context) {
	boardID, ok := paramID(c, "id", "board")
	if !ok {
		return
	}
	var req CreateTodoRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	if _, err := h.boardRepo.GetByID(ctx, boardID); err != nil {
		respondError(c, err, "Failed to retrieve board")
		return
	}
	found, err := h.hasColumn(c, boardID, req.Status)
	if err != nil {
		respondError(c, err, "Failed to retrieve columns")
		return
	}
	if !found {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No column with status " + req.Status})
		return
	}

	userName := actorName(c, boardID, strings.TrimSpace(req.UserName))

	todo := &model.Todo{
		BoardID:     boardID,
		UserName:    userName,
		Title:       req.Title,
		Status:      req.Status,
		Date:        optional(req.Date),
		Description: req.Description,
	}
	if err := h.todoRepo.Create(ctx, todo); err != nil {
		respondError(c, err, "Failed to create todo")
		return
	}

	publish(ctx, h.events, events.TodosChanged, boardID)
	c.JSON(http.StatusCreated, newTodoResponse(*todo))
}

// GetByID godoc
// @Summary  Get a todo
// @Tags     Todos
// @Produce  json
// @Param    id path string true "Todo ID"
// @Success  200 {object} TodoResponse
// @Router   /todos/{id} [get]
func (h *TodoHandler) GetByID(c *gin.Context) {
	todoID, ok := paramID(c, "id", "todo")
	if !ok {
		return
	}

	todo, err := h.todoRepo.GetByID(c.Request.Context(), todoID)
	if err != nil {
		respondError(c, err, "Failed to retrieve todo")
		return
	}

	c.JSON(http.StatusOK, newTodoResponse(*todo))
}

// Update godoc
// @Summary  Edit the title, date range and description of a todo
// @Tags     Todos
// @Accept   json
// @Produce  json
// @Param    id      path string            true "Todo ID"
// @Param    request body UpdateTodoRequest true "Todo"
// @Success  200 {object} TodoResponse
// @Router   /todos/{id} [put]
func (h *TodoHandler) Update(c *gin.Context) {
	todoID, ok := paramID(c, "id", "todo")
	if !ok {
		return
	}
	var req UpdateTodoRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	content := repository.TodoContent{Title: req.Title, Date: optional(req.Date), Description: req.Description}
	if err := h.todoRepo.UpdateContent(ctx, todoID, content); err != nil {
		respondError(c, err, "Failed to update todo")
		return
	}
	todo, err := h.todoRepo.GetByID(ctx, todoID)
	if err != nil {
		respondError(c, err, "Failed to retrieve todo")
		return
	}

	publish(ctx, h.events, events.TodosChanged, todo.BoardID)
	c.JSON(http.StatusOK, newTodoResponse(*todo))
}

// Move godoc
// @Summary  Move a todo to another column
// @Tags     Todos
// @Accept   json
// @Produce  json
// @Param    id      path string          true "Todo ID"
// @Param    request body MoveTodoRequest true "Target status"
// @Success  200 {object} TodoResponse
// @Router   /todos/{id}/move [post]
func (h *TodoHandler) Move(c *gin.Context) {
	todoID, ok := paramID(c, "id", "todo")
	if !ok {
		return
	}
	var req MoveTodoRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	todo, err := h.todoRepo.GetByID(ctx, todoID)
	if err != nil {
		respondError(c, err, "Failed to retrieve todo")
		return
	}
	found, err := h.hasColumn(c, todo.BoardID, req.Status)
	if err != nil {
		respondError(c, err, "Failed to retrieve columns")
		return
	}
	if !found {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No column with status " + req.Status})
		return
	}

	if err := h.todoRepo.UpdateStatus(ctx, todoID, req.Status); err != nil {
		respondError(c, err, "Failed to move todo")
		return
	}
	todo.Status = req.Status

	publish(ctx, h.events, events.TodosChanged, todo.BoardID)
	c.JSON(http.StatusOK, newTodoResponse(*todo))
}

// Delete godoc
// @Summary  Delete a todo
// @Tags     Todos
// @Param    id path string true "Todo ID"
// @Success  200 {object} map[string]string
// @Router   /todos/{id} [delete]
func (h *TodoHandler) Delete(c *gin.Context) {
	todoID, ok := paramID(c, "id", "todo")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	todo, err := h.todoRepo.GetByID(ctx, todoID)
	if err != nil {
		respondError(c, err, "Failed to retrieve todo")
		return
	}
	if err := h.todoRepo.Delete(ctx, todoID); err != nil {
		respondError(c, err, "Failed to delete todo")
		return
	}

	publish(ctx, h.events, events.TodosChanged, todo.BoardID)
	c.JSON(http.StatusOK, gin.H{"message": "Todo deleted successfully"})
}

// DeleteMany godoc
// @Summary  Delete several todos of a board at once
// @Tags     Todos
// @Accept   json
// @Produce  json
// @Param    id      path string            true "Board ID"
// @Param    request body BatchTodosRequest true "Todo IDs"
// @Success  200 {object} BatchTodosResponse
// @Router   /boards/{id}/todos/delete [post]
func (h *TodoHandler) DeleteMany(c *gin.Context) {
	h.batch(c, h.todoRepo.DeleteMany, "Failed to delete todos")
}

// MarkError godoc
// @Summary  Flag several todos of a board into the error room
// @Tags     Error room
// @Accept   json
// @Produce  json
// @Param    id      path string            true "Board ID"
// @Param    request body BatchTodosRequest true "Todo IDs"
// @Success  200 {object} BatchTodosResponse
// @Router   /boards/{id}/todos/error [post]
func (h *TodoHandler) MarkError(c *gin.Context) {
	h.batch(c, h.todoRepo.MarkError, "Failed to flag todos")
}

type batchFunc func(ctx context.Context, boardID uuid.UUID, ids []uuid.UUID) (int64, error)

func (h *TodoHandler) batch(c *gin.Context, apply batchFunc, failure string) {
	boardID, ok := paramID(c, "id", "board")
	if !ok {
		return
	}
	var req BatchTodosRequest
	if !bindJSON(c, &req) {
		return
	}
	ids, err := parseIDs(req.IDs)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid todo ID format"})
		return
	}

	ctx := c.Request.Context()
	affected, err := apply(ctx, boardID, ids)
	if err != nil {
		respondError(c, err, failure)
		return
	}

	if affected > 0 {
		publish(ctx, h.events, events.TodosChanged, boardID)
	}
	c.JSON(http.StatusOK, BatchTodosResponse{Affected: affected})
}

// Comment godoc
// @Summary  Save the review comment of an error room todo
// @Tags     Error room
// @Accept   json
// @Produce  json
// @Param    id      path string         true "Todo ID"
// @Param    request body CommentRequest true "Comment"
// @Success  200 {object} TodoResponse
// @Failure  409 {object} map[string]string
// @Router   /todos/{id}/comment [put]
func (h *TodoHandler) Comment(c *gin.Context) {
	todoID, ok := paramID(c, "id", "todo")
	if !ok {
		return
	}
	var req CommentRequest
	if !bindJSON(c, &req) {
		return
	}
	comment := strings.TrimSpace(req.Comment)
	if comment == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Comment must not be empty"})
		return
	}

	ctx := c.Request.Context()
	todo, err := h.todoRepo.GetByID(ctx, todoID)
	if err != nil {
		respondError(c, err, "Failed to retrieve todo")
		return
	}
	if !todo.IsError {
		respondError(c, errNotInErrorRoom, "")
		return
	}
	if err := h.todoRepo.SetComment(ctx, todoID, comment); err != nil {
		respondError(c, err, "Failed to save comment")
		return
	}
	todo.Comment = &comment

	publish(ctx, h.events, events.TodosChanged, todo.BoardID)
	c.JSON(http.StatusOK, newTodoResponse(*todo))
}
