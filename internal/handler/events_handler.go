package handler

import (
	"io"
	"net/http"
	"time"

	"todoboard/internal/events"
	"todoboard/internal/repository"

	"github.com/gin-gonic/gin"
)

const keepAliveInterval = 25 * time.Second

type EventsHandler struct {
	hub       *events.Hub
	boardRepo repository.BoardRepositoryInterface
}

func NewEventsHandler(hub *events.Hub, boardRepo repository.BoardRepositoryInterface) *EventsHandler {
	return &EventsHandler{hub: hub, boardRepo: boardRepo}
}

// Stream godoc
// @Summary  Server-sent change notifications of a board
// @Tags     Events
// @Produce  text/event-stream
// @Param    id path string true "Board ID"
// @Success  200 {object} events.Event
// @Router   /boards/{id}/events [get]
func (h *EventsHandler) Stream(c *gin.Context) {
	boardID, ok := paramID(c, "id", "board")
	if !ok {
		return
	}
	if _, err := h.boardRepo.GetByID(c.Request.Context(), boardID); err != nil {
		respondError(c, err, "Failed to retrieve board")
		return
	}

	ch, unsubscribe := h.hub.Subscribe(boardID)
	defer unsubscribe()

	keepAlive := time.NewTicker(keepAliveInterval)
	defer keepAlive.Stop()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	// Send the headers now so clients see the stream open before the first event.
	c.Status(http.StatusOK)
	c.Writer.Flush()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-c.Request.Context().Done():
			return false
		case e, open := <-ch:
			if !open {
				return false
			}
			c.SSEvent(string(e.Type), e)
			return true
		case <-keepAlive.C:
			c.SSEvent("ping", gin.H{"at": time.Now().UTC()})
			return true
		}
	})
}
