package handler

import (
	"net/http"
	"strings"

	"todoboard/internal/events"
	"todoboard/internal/model"
	"todoboard/internal/repository"
	"todoboard/internal/validation"

	"github.com/gin-gonic/gin"
)

type ColumnHandler struct {
	columnRepo repository.ColumnRepositoryInterface
	boardRepo  repository.BoardRepositoryInterface
	events     events.Publisher
}

func NewColumnHandler(columnRepo repository.ColumnRepositoryInterface, boardRepo repository.BoardRepositoryInterface, publisher events.Publisher) *ColumnHandler {
	return &ColumnHandler{
		columnRepo: columnRepo,
		boardRepo:  boardRepo,
		events:     publisher,
	}
}

type CreateColumnRequest struct {
	Title string `json:"title" binding:"required,max=50"`
	Color string `json:"color" binding:"omitempty,hexcolor"`
}

type UpdateColumnRequest struct {
	Title string `json:"title" binding:"omitempty,max=50"`
	Color string `json:"color" binding:"omitempty,hexcolor"`
}

type ReorderColumnsRequest struct {
	ColumnIDs []string `json:"column_ids" binding:"required,min=1,dive,uuid"`
}

type ColumnResponse struct {
	ID      string `json:"id"`
	BoardID string `json:"board_id"`
	Title   string `json:"title"`
	Status  string `json:"status"`
	Color   string `json:"color"`
	Order   int    `json:"order"`
}

func newColumnResponse(column model.Column) ColumnResponse {
	return ColumnResponse{
		ID:      column.ID.String(),
		BoardID: column.BoardID.String(),
		Title:   column.Title,
		Status:  column.Status,
		Color:   column.Color,
		Order:   column.Order,
	}
}

// List godoc
// @Summary  List the columns of a board, creating the defaults if it has none
// @Tags     Columns
// @Produce  json
// @Param    id path string true "Board ID"
// @Success  200 {array} ColumnResponse
// @Router   /boards/{id}/columns [get]
func (h *ColumnHandler) List(c *gin.Context) {
	boardID, ok := paramID(c, "id", "board")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if _, err := h.boardRepo.GetByID(ctx, boardID); err != nil {
		respondError(c, err, "Failed to retrieve board")
		return
	}
	columns, err := h.columnRepo.EnsureDefaults(ctx, boardID)
	if err != nil {
		respondError(c, err, "Failed to retrieve columns")
		return
	}

	response := make([]ColumnResponse, len(columns))
	for i, column := range columns {
		response[i] = newColumnResponse(column)
	}
	c.JSON(http.StatusOK, response)
}

// Create godoc
// @Summary  Add a column; its status is derived from the title
// @Tags     Columns
// @Accept   json
// @Produce  json
// @Param    id      path string              true "Board ID"
// @Param    request body CreateColumnRequest true "Column"
// @Success  201 {object} ColumnResponse
// @Failure  409 {object} map[string]string
// @Router   /boards/{id}/columns [post]
func (h *ColumnHandler) Create(c *gin.Context) {
	boardID, ok := paramID(c, "id", "board")
	if !ok {
		return
	}
	var req CreateColumnRequest
	if !bindJSON(c, &req) {
		return
	}
	title := strings.TrimSpace(req.Title)
	status := validation.Slug(title)
	if status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Column title is required"})
		return
	}
	color := req.Color
	if color == "" {
		color = model.DefaultColumnColor
	}

	ctx := c.Request.Context()
	if _, err := h.boardRepo.GetByID(ctx, boardID); err != nil {
		respondError(c, err, "Failed to retrieve board")
		return
	}
	maxOrder, err := h.columnRepo.MaxOrder(ctx, boardID)
	if err != nil {
		respondError(c, err, "Failed to determine column order")
		return
	}

	column := &model.Column{
		BoardID: boardID,
		Title:   title,
		Status:  status,
		Color:   color,
		Order:   maxOrder + 1,
	}
	if err := h.columnRepo.Create(ctx, column); err != nil {
		respondError(c, err, "Failed to create column")
		return
	}

	publish(ctx, h.events, events.ColumnsChanged, boardID)
	c.JSON(http.StatusCreated, newColumnResponse(*column))
}

// Update godoc
// @Summary  Rename or recolour a column
// @Tags     Columns
// @Accept   json
// @Produce  json
// @Param    id      path string              true "Column ID"
// @Param    request body UpdateColumnRequest true "Column"
// @Success  200 {object} ColumnResponse
// @Router   /columns/{id} [put]
func (h *ColumnHandler) Update(c *gin.Context) {
	columnID, ok := paramID(c, "id", "column")
	if !ok {
		return
	}
	var req UpdateColumnRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	column, err := h.columnRepo.GetByID(ctx, columnID)
	if err != nil {
		respondError(c, err, "Failed to retrieve column")
		return
	}

	if title := strings.TrimSpace(req.Title); title != "" {
		column.Title = title
	}
	if req.Color != "" {
		column.Color = req.Color
	}

	if err := h.columnRepo.Update(ctx, column); err != nil {
		respondError(c, err, "Failed to update column")
		return
	}

	publish(ctx, h.events, events.ColumnsChanged, column.BoardID)
	c.JSON(http.StatusOK, newColumnResponse(*column))
}

// Delete godoc
// @Summary  Delete a column; the default todo column cannot be deleted
// @Tags     Columns
// @Param    id path string true "Column ID"
// @Success  200 {object} map[string]string
// @Failure  403 {object} map[string]string
// @Router   /columns/{id} [delete]
func (h *ColumnHandler) Delete(c *gin.Context) {
	columnID, ok := paramID(c, "id", "column")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	column, err := h.columnRepo.GetByID(ctx, columnID)
	if err != nil {
		respondError(c, err, "Failed to retrieve column")
		return
	}
	if err := h.columnRepo.Delete(ctx, columnID); err != nil {
		respondError(c, err, "Failed to delete column")
		return
	}

	publish(ctx, h.events, events.ColumnsChanged, column.BoardID)
	c.JSON(http.StatusOK, gin.H{"message": "Column deleted successfully"})
}

// Reorder godoc
// @Summary  Set the column order of a board
// @Tags     Columns
// @Accept   json
// @Produce  json
// @Param    id      path string                true "Board ID"
// @Param    request body ReorderColumnsRequest true "Column IDs in display order"
// @Success  200 {array} ColumnResponse
// @Router   /boards/{id}/columns/reorder [post]
func (h *ColumnHandler) Reorder(c *gin.Context) {
	boardID, ok := paramID(c, "id", "board")
	if !ok {
		return
	}
	var req ReorderColumnsRequest
	if !bindJSON(c, &req) {
		return
	}
	ids, err := parseIDs(req.ColumnIDs)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid column ID format"})
		return
	}

	ctx := c.Request.Context()
	if err := h.columnRepo.Reorder(ctx, boardID, ids); err != nil {
		respondError(c, err, "Failed to reorder columns")
		return
	}
	columns, err := h.columnRepo.ListByBoard(ctx, boardID)
	if err != nil {
		respondError(c, err, "Failed to retrieve columns")
		return
	}

	publish(ctx, h.events, events.ColumnsChanged, boardID)
	response := make([]ColumnResponse, len(columns))
	for i, column := range columns {
		response[i] = newColumnResponse(column)
	}
	c.JSON(http.StatusOK, response)
}
