package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"todoboard/internal/events"
	"todoboard/internal/kanban"
	"todoboard/internal/middleware"
	"todoboard/internal/repository"
	"todoboard/internal/session"
	"todoboard/internal/validation"
)

var errNotInErrorRoom = errors.New("todo is not in the error room")

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		return http.StatusBadRequest
	case errors.Is(err, repository.ErrBoardNotFound),
		errors.Is(err, repository.ErrUserNotFound),
		errors.Is(err, repository.ErrTodoNotFound),
		errors.Is(err, repository.ErrColumnNotFound),
		errors.Is(err, session.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, repository.ErrColumnStatusTaken),
		errors.Is(err, kanban.ErrWrongMode),
		errors.Is(err, kanban.ErrNoSelectionMode),
		errors.Is(err, errNotInErrorRoom):
		return http.StatusConflict
	case errors.Is(err, repository.ErrDefaultColumn):
		return http.StatusForbidden
	case errors.Is(err, kanban.ErrUnknownMode),
		errors.Is(err, kanban.ErrUnknownStatus),
		errors.Is(err, kanban.ErrEmptyComment),
		errors.Is(err, kanban.ErrEmptyTitle),
		errors.Is(err, kanban.ErrPosition),
		errors.Is(err, kanban.ErrNotLoaded):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as {"error": ...}. Unexpected errors are logged
// and answered with the generic message.
func respondError(c *gin.Context, err error, message string) {
	status := statusFor(err)
	switch status {
	case http.StatusInternalServerError:
		slog.ErrorContext(c.Request.Context(), message, "error", err, "path", c.FullPath())
		c.JSON(status, gin.H{"error": message})
	case http.StatusBadRequest:
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			c.JSON(status, gin.H{"error": "Invalid request", "details": validation.Messages(err)})
			return
		}
		c.JSON(status, gin.H{"error": err.Error()})
	default:
		c.JSON(status, gin.H{"error": err.Error()})
	}
}

// bindJSON binds the request body and answers 400 on failure.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": validation.Messages(err)})
			return false
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return false
	}
	return true
}

// paramID parses a uuid path parameter and answers 400 on failure.
func paramID(c *gin.Context, name, what string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + what + " ID format"})
		return uuid.Nil, false
	}
	return id, true
}

func parseIDs(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// publish announces a change. Failing to notify never fails the request.
func publish(ctx context.Context, p events.Publisher, t events.Type, boardID uuid.UUID) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, events.New(t, boardID)); err != nil {
		slog.WarnContext(ctx, "publish event", "type", t, "board_id", boardID, "error", err)
	}
}

// actorName names the acting member for attribution on boardID. A token
// issued for another board is ignored and fallback is used instead.
func actorName(c *gin.Context, boardID uuid.UUID, fallback string) string {
	actor, ok := middleware.ActorFrom(c)
	if !ok || (actor.BoardID != uuid.Nil && actor.BoardID != boardID) {
		return fallback
	}
	return actor.UserName
}
