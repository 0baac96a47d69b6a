package handler_test

import (
	"log/slog"
	"net/http"
	"strings"
	"testing"
	"time"

	"todoboard/internal/auth"
	"todoboard/internal/events"
	"todoboard/internal/handler"
	"todoboard/internal/kanban"
	"todoboard/internal/kanban/kanbantest"
	"todoboard/internal/middleware"
	"todoboard/internal/model"
	"todoboard/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sessionTest struct {
	router    *gin.Engine
	store     *kanbantest.Store
	publisher *recordingPublisher
	issuer    *auth.TokenIssuer
}

func setupSessionTest(t *testing.T) sessionTest {
	r := newRouter(t)
	store := kanbantest.New("Release")
	manager := session.NewManager(func(boardID uuid.UUID) *kanban.Session {
		return kanban.NewSession(store, boardID, slog.Default())
	}, time.Hour)
	publisher := new(recordingPublisher)
	issuer := auth.NewTokenIssuer("test-secret", time.Hour)
	h := handler.NewSessionHandler(manager, publisher)

	r.Use(middleware.ActorMiddleware(issuer))

	r.POST("/boards/:id/sessions", h.Open)
	r.GET("/sessions/:sid", h.Get)
	r.DELETE("/sessions/:sid", h.Close)
	r.POST("/sessions/:sid/modes/:mode", h.ToggleMode)
	r.POST("/sessions/:sid/select", h.Select)
	r.POST("/sessions/:sid/confirm", h.Confirm)
	r.POST("/sessions/:sid/cancel", h.Cancel)
	r.POST("/sessions/:sid/todos", h.AddTodo)
	r.POST("/sessions/:sid/todos/:todo_id/drop", h.DropTodo)
	r.POST("/sessions/:sid/columns/:status/move", h.MoveTodo)
	r.POST("/sessions/:sid/columns", h.AddColumn)
	r.POST("/sessions/:sid/columns/reorder", h.ReorderColumns)
	return sessionTest{router: r, store: store, publisher: publisher, issuer: issuer}
}

func (st sessionTest) open(t *testing.T) string {
	t.Helper()
	resp := doJSON(st.router, http.MethodPost, "/boards/"+st.store.BoardID().String()+"/sessions", nil)
	require.Equal(t, http.StatusCreated, resp.Code)
	return decode[handler.OpenSessionResponse](t, resp).SessionID
}

func columnStatuses(state kanban.Snapshot) []string {
	out := make([]string, len(state.Columns))
	for i, col := range state.Columns {
		out[i] = col.Status
	}
	return out
}

func TestSessionOpen(t *testing.T) {
	// Arrange
	st := setupSessionTest(t)
	st.store.AddTodo("Write tests", model.StatusTodo, false, time.Hour)
	st.store.AddTodo("Crashes on save", model.StatusDone, true, time.Minute)

	// Act
	resp := doJSON(st.router, http.MethodPost, "/boards/"+st.store.BoardID().String()+"/sessions", nil)

	// Assert
	require.Equal(t, http.StatusCreated, resp.Code)
	body := decode[handler.OpenSessionResponse](t, resp)
	assert.NotEmpty(t, body.SessionID)
	assert.Equal(t, "Release", body.State.BoardName)
	assert.Equal(t, kanban.ModeIdle, body.State.Mode)
	assert.Equal(t, []string{model.StatusTodo, model.StatusInProgress, model.StatusDone}, columnStatuses(body.State))
	require.Len(t, body.State.Columns[0].Todos, 1)
	assert.Equal(t, "Write tests", body.State.Columns[0].Todos[0].Title)
	require.Len(t, body.State.ErrorRoom, 1)
	assert.Equal(t, "Crashes on save", body.State.ErrorRoom[0].Title)
}

func TestSessionOpen_UnknownBoard(t *testing.T) {
	st := setupSessionTest(t)

	resp := doJSON(st.router, http.MethodPost, "/boards/"+uuid.NewString()+"/sessions", nil)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestSession_UnknownSession(t *testing.T) {
	st := setupSessionTest(t)

	resp := doJSON(st.router, http.MethodGet, "/sessions/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)

	resp = doJSON(st.router, http.MethodGet, "/sessions/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestSessionToggleMode(t *testing.T) {
	st := setupSessionTest(t)
	sid := st.open(t)

	resp := doJSON(st.router, http.MethodPost, "/sessions/"+sid+"/modes/delete", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, kanban.ModeDelete, decode[handler.SessionStateResponse](t, resp).State.Mode)

	resp = doJSON(st.router, http.MethodPost, "/sessions/"+sid+"/modes/delete", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, kanban.ModeIdle, decode[handler.SessionStateResponse](t, resp).State.Mode)

	resp = doJSON(st.router, http.MethodPost, "/sessions/"+sid+"/modes/archive", nil)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestSessionSelectAndConfirm_Delete(t *testing.T) {
	// Arrange
	st := setupSessionTest(t)
	keep := st.store.AddTodo("keep", model.StatusTodo, false, 2*time.Hour)
	gone := st.store.AddTodo("gone", model.StatusTodo, false, time.Hour)
	sid := st.open(t)

	resp := doJSON(st.router, http.MethodPost, "/sessions/"+sid+"/select", handler.SelectTodoRequest{TodoID: gone.ID.String()})
	assert.Equal(t, http.StatusConflict, resp.Code)

	require.Equal(t, http.StatusOK, doJSON(st.router, http.MethodPost, "/sessions/"+sid+"/modes/delete", nil).Code)
	resp = doJSON(st.router, http.MethodPost, "/sessions/"+sid+"/select", handler.SelectTodoRequest{TodoID: gone.ID.String()})
	require.Equal(t, http.StatusOK, resp.Code)
	selected := decode[handler.SelectTodoResponse](t, resp)
	assert.True(t, selected.Selected)
	assert.Equal(t, []uuid.UUID{gone.ID}, selected.State.Selected)

	// Act
	resp = doJSON(st.router, http.MethodPost, "/sessions/"+sid+"/confirm", nil)

	// Assert
	require.Equal(t, http.StatusOK, resp.Code)
	state := decode[handler.SessionStateResponse](t, resp).State
	assert.Equal(t, kanban.ModeIdle, state.Mode)
	assert.Empty(t, state.Selected)
	require.Len(t, state.Columns[0].Todos, 1)
	assert.Equal(t, keep.ID, state.Columns[0].Todos[0].ID)
	assert.Equal(t, []uuid.UUID{gone.ID}, st.store.Deleted)
	assert.Equal(t, []events.Type{events.TodosChanged}, st.publisher.types())
}

func TestSessionConfirm_BackendFailureKeepsSelection(t *testing.T) {
	st := setupSessionTest(t)
	todo := st.store.AddTodo("flaky", model.StatusInProgress, false, time.Hour)
	sid := st.open(t)
	require.Equal(t, http.StatusOK, doJSON(st.router, http.MethodPost, "/sessions/"+sid+"/modes/error", nil).Code)
	require.Equal(t, http.StatusOK, doJSON(st.router, http.MethodPost, "/sessions/"+sid+"/select", handler.SelectTodoRequest{TodoID: todo.ID.String()}).Code)
	st.store.Fail = true

	resp := doJSON(st.router, http.MethodPost, "/sessions/"+sid+"/confirm", nil)
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.JSONEq(t, `{"error":"Failed to apply selection"}`, resp.Body.String())

	resp = doJSON(st.router, http.MethodGet, "/sessions/"+sid, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	state := decode[handler.SessionStateResponse](t, resp).State
	assert.Equal(t, kanban.ModeError, state.Mode)
	assert.Equal(t, []uuid.UUID{todo.ID}, state.Selected)
	assert.Empty(t, st.publisher.types())
}

func TestSessionAddTodo(t *testing.T) {
	st := setupSessionTest(t)
	sid := st.open(t)

	resp := doJSON(st.router, http.MethodPost, "/sessions/"+sid+"/todos", handler.SessionTodoRequest{
		Status:   model.StatusInProgress,
		Title:    "Ship it",
		Date:     "2024-12-23 ~ 2024-12-24",
		UserName: "Alice",
	})

	require.Equal(t, http.StatusOK, resp.Code)
	state := decode[handler.SessionStateResponse](t, resp).State
	require.Len(t, state.Columns[1].Todos, 1)
	assert.Equal(t, "Ship it", state.Columns[1].Todos[0].Title)
	assert.Equal(t, "Alice", state.Columns[1].Todos[0].UserName)

	resp = doJSON(st.router, http.MethodPost, "/sessions/"+sid+"/todos", handler.SessionTodoRequest{Status: model.StatusTodo})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestSessionAddTodo_ActorBoard(t *testing.T) {
	// Arrange
	st := setupSessionTest(t)
	sid := st.open(t)
	foreign, _, err := st.issuer.Issue(auth.Actor{BoardID: uuid.New(), UserID: uuid.New(), UserName: "Mallory"})
	require.NoError(t, err)
	member, _, err := st.issuer.Issue(auth.Actor{BoardID: st.store.BoardID(), UserID: uuid.New(), UserName: "Alice"})
	require.NoError(t, err)
	body := handler.SessionTodoRequest{Status: model.StatusTodo, Title: "Rotate keys", UserName: "Bob"}

	// Act
	foreignResp := doJSONAs(st.router, foreign, http.MethodPost, "/sessions/"+sid+"/todos", body)
	memberResp := doJSONAs(st.router, member, http.MethodPost, "/sessions/"+sid+"/todos", body)

	// Assert
	require.Equal(t, http.StatusOK, foreignResp.Code)
	require.Equal(t, http.StatusOK, memberResp.Code)
	todos := decode[handler.SessionStateResponse](t, memberResp).State.Columns[0].Todos
	require.Len(t, todos, 2)
	assert.Equal(t, "Bob", todos[0].UserName)
	assert.Equal(t, "Alice", todos[1].UserName)
}

func TestSessionDropTodo(t *testing.T) {
	st := setupSessionTest(t)
	todo := st.store.AddTodo("drag me", model.StatusTodo, false, time.Hour)
	sid := st.open(t)

	resp := doJSON(st.router, http.MethodPost, "/sessions/"+sid+"/todos/"+todo.ID.String()+"/drop", handler.DropTodoRequest{Status: model.StatusDone})

	require.Equal(t, http.StatusOK, resp.Code)
	state := decode[handler.SessionStateResponse](t, resp).State
	assert.Empty(t, state.Columns[0].Todos)
	require.Len(t, state.Columns[2].Todos, 1)
	assert.Equal(t, todo.ID, state.Columns[2].Todos[0].ID)
}

func TestSessionMoveTodo(t *testing.T) {
	st := setupSessionTest(t)
	first := st.store.AddTodo("first", model.StatusTodo, false, 2*time.Hour)
	second := st.store.AddTodo("second", model.StatusTodo, false, time.Hour)
	sid := st.open(t)
	from, to := 1, 0

	resp := doJSON(st.router, http.MethodPost, "/sessions/"+sid+"/columns/todo/move", handler.MoveRequest{From: &from, To: &to})

	require.Equal(t, http.StatusOK, resp.Code)
	todos := decode[handler.SessionStateResponse](t, resp).State.Columns[0].Todos
	require.Len(t, todos, 2)
	assert.Equal(t, second.ID, todos[0].ID)
	assert.Equal(t, first.ID, todos[1].ID)

	resp = doJSON(st.router, http.MethodPost, "/sessions/"+sid+"/columns/todo/move", map[string]int{"from": 0})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestSessionAddColumn_RequiresColumnEditMode(t *testing.T) {
	// Arrange
	st := setupSessionTest(t)
	sid := st.open(t)

	// Act
	resp := doJSON(st.router, http.MethodPost, "/sessions/"+sid+"/columns", handler.SessionColumnRequest{Title: "Review"})

	// Assert
	assert.Equal(t, http.StatusConflict, resp.Code)
	assert.Empty(t, st.publisher.types())
}

func TestSessionAddColumn(t *testing.T) {
	st := setupSessionTest(t)
	sid := st.open(t)
	require.Equal(t, http.StatusOK, doJSON(st.router, http.MethodPost, "/sessions/"+sid+"/modes/column-edit", nil).Code)

	resp := doJSON(st.router, http.MethodPost, "/sessions/"+sid+"/columns", handler.SessionColumnRequest{Title: "Code Review", Color: "#FFAA00"})
	require.Equal(t, http.StatusOK, resp.Code)
	state := decode[handler.SessionStateResponse](t, resp).State
	require.Len(t, state.Columns, 4)
	assert.Equal(t, "code-review", state.Columns[3].Status)
	assert.Equal(t, "#FFAA00", state.Columns[3].Color)
	assert.Equal(t, 4, state.Columns[3].Order)
	assert.Equal(t, []events.Type{events.ColumnsChanged}, st.publisher.types())

	resp = doJSON(st.router, http.MethodPost, "/sessions/"+sid+"/columns", handler.SessionColumnRequest{Title: "code review"})
	assert.Equal(t, http.StatusConflict, resp.Code)

	resp = doJSON(st.router, http.MethodPost, "/sessions/"+sid+"/columns", handler.SessionColumnRequest{Title: "QA", Color: "orange"})
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = doJSON(st.router, http.MethodPost, "/sessions/"+sid+"/columns", handler.SessionColumnRequest{Title: strings.Repeat("x", 51)})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestSessionReorderColumns(t *testing.T) {
	// Arrange
	st := setupSessionTest(t)
	sid := st.open(t)
	require.Equal(t, http.StatusOK, doJSON(st.router, http.MethodPost, "/sessions/"+sid+"/modes/column-edit", nil).Code)
	from, to := 2, 0

	// Act
	resp := doJSON(st.router, http.MethodPost, "/sessions/"+sid+"/columns/reorder", handler.MoveRequest{From: &from, To: &to})

	// Assert
	require.Equal(t, http.StatusOK, resp.Code)
	state := decode[handler.SessionStateResponse](t, resp).State
	assert.Equal(t, []string{model.StatusDone, model.StatusTodo, model.StatusInProgress}, columnStatuses(state))
	for i, col := range state.Columns {
		assert.Equal(t, i+1, col.Order)
	}
}

func TestSessionReorderColumns_FailureRollsBack(t *testing.T) {
	st := setupSessionTest(t)
	sid := st.open(t)
	require.Equal(t, http.StatusOK, doJSON(st.router, http.MethodPost, "/sessions/"+sid+"/modes/column-edit", nil).Code)
	st.store.FailOrderFor = st.store.Column(0).ID
	from, to := 0, 2

	resp := doJSON(st.router, http.MethodPost, "/sessions/"+sid+"/columns/reorder", handler.MoveRequest{From: &from, To: &to})
	assert.Equal(t, http.StatusInternalServerError, resp.Code)

	resp = doJSON(st.router, http.MethodGet, "/sessions/"+sid, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	state := decode[handler.SessionStateResponse](t, resp).State
	assert.Equal(t, []string{model.StatusTodo, model.StatusInProgress, model.StatusDone}, columnStatuses(state))
}

func TestSessionClose(t *testing.T) {
	st := setupSessionTest(t)
	sid := st.open(t)

	resp := doJSON(st.router, http.MethodDelete, "/sessions/"+sid, nil)
	require.Equal(t, http.StatusOK, resp.Code)

	resp = doJSON(st.router, http.MethodGet, "/sessions/"+sid, nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}
