package handler

import (
	"net/http"
	"strings"
	"time"

	"todoboard/internal/events"
	"todoboard/internal/model"
	"todoboard/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BoardHandler struct {
	boardRepo repository.BoardRepositoryInterface
	events    events.Publisher
}

func NewBoardHandler(boardRepo repository.BoardRepositoryInterface, publisher events.Publisher) *BoardHandler {
	return &BoardHandler{
		boardRepo: boardRepo,
		events:    publisher,
	}
}

type CreateBoardRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateBoardRequest struct {
	Name string `json:"name" binding:"required"`
}

type BoardStatsResponse struct {
	Total     int64 `json:"total"`
	TodoCount int64 `json:"todo_count"`
}

type BoardResponse struct {
	ID        string              `json:"id"`
	Name      string              `json:"name"`
	CreatedAt string              `json:"created_at"`
	Stats     *BoardStatsResponse `json:"stats,omitempty"`
}

func newBoardResponse(board model.Board) BoardResponse {
	return BoardResponse{
		ID:        board.ID.String(),
		Name:      board.Name,
		CreatedAt: board.CreatedAt.Format(time.RFC3339),
	}
}

// Create godoc
// @Summary  Create a board
// @Tags     Boards
// @Accept   json
// @Produce  json
// @Param    request body CreateBoardRequest true "Board"
// @Success  201 {object} BoardResponse
// @Failure  400 {object} map[string]string
// @Router   /boards [post]
func (h *BoardHandler) Create(c *gin.Context) {
	var req CreateBoardRequest
	if !bindJSON(c, &req) {
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Board name is required"})
		return
	}

	board := &model.Board{Name: name}
	if err := h.boardRepo.Create(c.Request.Context(), board); err != nil {
		respondError(c, err, "Failed to create board")
		return
	}

	c.JSON(http.StatusCreated, newBoardResponse(*board))
}

// List godoc
// @Summary  List boards with their todo counts
// @Tags     Boards
// @Produce  json
// @Success  200 {array} BoardResponse
// @Router   /boards [get]
func (h *BoardHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	boards, err := h.boardRepo.List(ctx)
	if err != nil {
		respondError(c, err, "Failed to retrieve boards")
		return
	}

	response := make([]BoardResponse, len(boards))
	if len(boards) == 0 {
		c.JSON(http.StatusOK, response)
		return
	}

	ids := make([]uuid.UUID, len(boards))
	for i, board := range boards {
		ids[i] = board.ID
	}
	stats, err := h.boardRepo.Stats(ctx, ids...)
	if err != nil {
		respondError(c, err, "Failed to retrieve board stats")
		return
	}

	for i, board := range boards {
		response[i] = newBoardResponse(board)
		s := stats[board.ID]
		response[i].Stats = &BoardStatsResponse{Total: s.Total, TodoCount: s.TodoCount}
	}

	c.JSON(http.StatusOK, response)
}

// GetByID godoc
// @Summary  Get a board
// @Tags     Boards
// @Produce  json
// @Param    id path string true "Board ID"
// @Success  200 {object} BoardResponse
// @Failure  404 {object} map[string]string
// @Router   /boards/{id} [get]
func (h *BoardHandler) GetByID(c *gin.Context) {
	boardID, ok := paramID(c, "id", "board")
	if !ok {
		return
	}

	board, err := h.boardRepo.GetByID(c.Request.Context(), boardID)
	if err != nil {
		respondError(c, err, "Failed to retrieve board")
		return
	}

	c.JSON(http.StatusOK, newBoardResponse(*board))
}

// Update godoc
// @Summary  Rename a board
// @Tags     Boards
// @Accept   json
// @Produce  json
// @Param    id      path string             true "Board ID"
// @Param    request body UpdateBoardRequest true "Board"
// @Success  200 {object} BoardResponse
// @Router   /boards/{id} [put]
func (h *BoardHandler) Update(c *gin.Context) {
	boardID, ok := paramID(c, "id", "board")
	if !ok {
		return
	}

	var req UpdateBoardRequest
	if !bindJSON(c, &req) {
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Board name is required"})
		return
	}

	ctx := c.Request.Context()
	if err := h.boardRepo.Update(ctx, &model.Board{ID: boardID, Name: name}); err != nil {
		respondError(c, err, "Failed to update board")
		return
	}
	board, err := h.boardRepo.GetByID(ctx, boardID)
	if err != nil {
		respondError(c, err, "Failed to retrieve board")
		return
	}

	publish(ctx, h.events, events.BoardUpdated, boardID)
	c.JSON(http.StatusOK, newBoardResponse(*board))
}

// Delete godoc
// @Summary  Delete a board with its members, columns and todos
// @Tags     Boards
// @Param    id path string true "Board ID"
// @Success  200 {object} map[string]string
// @Router   /boards/{id} [delete]
func (h *BoardHandler) Delete(c *gin.Context) {
	boardID, ok := paramID(c, "id", "board")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if err := h.boardRepo.Delete(ctx, boardID); err != nil {
		respondError(c, err, "Failed to delete board")
		return
	}

	publish(ctx, h.events, events.BoardDeleted, boardID)
	c.JSON(http.StatusOK, gin.H{"message": "Board deleted successfully"})
}

// Stats godoc
// @Summary  Todo counts of a board
// @Tags     Boards
// @Produce  json
// @Param    id path string true "Board ID"
// @Success  200 {object} BoardStatsResponse
// @Router   /boards/{id}/stats [get]
func (h *BoardHandler) Stats(c *gin.Context) {
	boardID, ok := paramID(c, "id", "board")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if _, err := h.boardRepo.GetByID(ctx, boardID); err != nil {
		respondError(c, err, "Failed to retrieve board")
		return
	}
	stats, err := h.boardRepo.Stats(ctx, boardID)
	if err != nil {
		respondError(c, err, "Failed to retrieve board stats")
		return
	}

	s := stats[boardID]
	c.JSON(http.StatusOK, BoardStatsResponse{Total: s.Total, TodoCount: s.TodoCount})
}
