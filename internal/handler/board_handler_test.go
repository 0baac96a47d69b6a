package handler_test

import (
	"net/http"
	"testing"
	"time"

	"todoboard/internal/events"
	"todoboard/internal/handler"
	"todoboard/internal/model"
	"todoboard/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupBoardTest(t *testing.T) (*gin.Engine, *MockBoardRepository, *recordingPublisher) {
	r := newRouter(t)
	boardRepo := new(MockBoardRepository)
	publisher := new(recordingPublisher)
	h := handler.NewBoardHandler(boardRepo, publisher)

	r.POST("/boards", h.Create)
	r.GET("/boards", h.List)
	r.GET("/boards/:id", h.GetByID)
	r.PUT("/boards/:id", h.Update)
	r.DELETE("/boards/:id", h.Delete)
	r.GET("/boards/:id/stats", h.Stats)
	return r, boardRepo, publisher
}

func TestBoardCreate_Success(t *testing.T) {
	// Arrange
	router, boardRepo, _ := setupBoardTest(t)
	boardID := uuid.New()
	boardRepo.On("Create", mock.Anything, mock.MatchedBy(func(b *model.Board) bool {
		return b.Name == "Release 1.2"
	})).Run(func(args mock.Arguments) {
		b := args.Get(1).(*model.Board)
		b.ID = boardID
		b.CreatedAt = time.Now()
	}).Return(nil)

	// Act
	resp := doJSON(router, http.MethodPost, "/boards", handler.CreateBoardRequest{Name: "  Release 1.2 "})

	// Assert
	assert.Equal(t, http.StatusCreated, resp.Code)
	body := decode[handler.BoardResponse](t, resp)
	assert.Equal(t, boardID.String(), body.ID)
	assert.Equal(t, "Release 1.2", body.Name)
	boardRepo.AssertExpectations(t)
}

func TestBoardCreate_EmptyName(t *testing.T) {
	router, boardRepo, _ := setupBoardTest(t)

	resp := doJSON(router, http.MethodPost, "/boards", handler.CreateBoardRequest{Name: "   "})
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = doJSON(router, http.MethodPost, "/boards", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	body := decode[map[string]any](t, resp)
	assert.Equal(t, []any{"name is required"}, body["details"])

	boardRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBoardList_WithStats(t *testing.T) {
	// Arrange
	router, boardRepo, _ := setupBoardTest(t)
	first, second := uuid.New(), uuid.New()
	boardRepo.On("List", mock.Anything).Return([]model.Board{
		{ID: first, Name: "A"},
		{ID: second, Name: "B"},
	}, nil)
	boardRepo.On("Stats", mock.Anything, []uuid.UUID{first, second}).Return(map[uuid.UUID]model.BoardStats{
		first: {BoardID: first, Total: 4, TodoCount: 1},
	}, nil)

	// Act
	resp := doJSON(router, http.MethodGet, "/boards", nil)

	// Assert
	require.Equal(t, http.StatusOK, resp.Code)
	body := decode[[]handler.BoardResponse](t, resp)
	require.Len(t, body, 2)
	assert.Equal(t, int64(4), body[0].Stats.Total)
	assert.Equal(t, int64(1), body[0].Stats.TodoCount)
	assert.Equal(t, int64(0), body[1].Stats.Total)
}

func TestBoardList_Empty(t *testing.T) {
	router, boardRepo, _ := setupBoardTest(t)
	boardRepo.On("List", mock.Anything).Return([]model.Board{}, nil)

	resp := doJSON(router, http.MethodGet, "/boards", nil)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `[]`, resp.Body.String())
	boardRepo.AssertNotCalled(t, "Stats", mock.Anything, mock.Anything)
}

func TestBoardGetByID_NotFound(t *testing.T) {
	router, boardRepo, _ := setupBoardTest(t)
	boardID := uuid.New()
	boardRepo.On("GetByID", mock.Anything, boardID).Return(nil, repository.ErrBoardNotFound)

	resp := doJSON(router, http.MethodGet, "/boards/"+boardID.String(), nil)

	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.JSONEq(t, `{"error":"board not found"}`, resp.Body.String())
}

func TestBoardGetByID_BackendError(t *testing.T) {
	router, boardRepo, _ := setupBoardTest(t)
	boardID := uuid.New()
	boardRepo.On("GetByID", mock.Anything, boardID).Return(nil, assert.AnError)

	resp := doJSON(router, http.MethodGet, "/boards/"+boardID.String(), nil)

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.JSONEq(t, `{"error":"Failed to retrieve board"}`, resp.Body.String())
}

func TestBoardUpdate_PublishesEvent(t *testing.T) {
	// Arrange
	router, boardRepo, publisher := setupBoardTest(t)
	boardID := uuid.New()
	boardRepo.On("Update", mock.Anything, &model.Board{ID: boardID, Name: "Renamed"}).Return(nil)
	boardRepo.On("GetByID", mock.Anything, boardID).Return(&model.Board{ID: boardID, Name: "Renamed"}, nil)

	// Act
	resp := doJSON(router, http.MethodPut, "/boards/"+boardID.String(), handler.UpdateBoardRequest{Name: "Renamed"})

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "Renamed", decode[handler.BoardResponse](t, resp).Name)
	assert.Equal(t, []events.Type{events.BoardUpdated}, publisher.types())
}

func TestBoardDelete(t *testing.T) {
	router, boardRepo, publisher := setupBoardTest(t)
	boardID := uuid.New()
	boardRepo.On("Delete", mock.Anything, boardID).Return(nil)

	resp := doJSON(router, http.MethodDelete, "/boards/"+boardID.String(), nil)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, []events.Type{events.BoardDeleted}, publisher.types())
}

func TestBoardStats(t *testing.T) {
	router, boardRepo, _ := setupBoardTest(t)
	boardID := uuid.New()
	boardRepo.On("GetByID", mock.Anything, boardID).Return(&model.Board{ID: boardID}, nil)
	boardRepo.On("Stats", mock.Anything, []uuid.UUID{boardID}).Return(map[uuid.UUID]model.BoardStats{
		boardID: {BoardID: boardID, Total: 7, TodoCount: 3},
	}, nil)

	resp := doJSON(router, http.MethodGet, "/boards/"+boardID.String()+"/stats", nil)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"total":7,"todo_count":3}`, resp.Body.String())
}

func TestBoardGetByID_InvalidID(t *testing.T) {
	router, _, _ := setupBoardTest(t)

	resp := doJSON(router, http.MethodGet, "/boards/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.JSONEq(t, `{"error":"Invalid board ID format"}`, resp.Body.String())
}
