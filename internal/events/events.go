// Package events carries board change notifications so that open views know
// when to refresh.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	BoardUpdated   Type = "board.updated"
	BoardDeleted   Type = "board.deleted"
	UsersChanged   Type = "users.changed"
	ColumnsChanged Type = "columns.changed"
	TodosChanged   Type = "todos.changed"
)

type Event struct {
	Type    Type      `json:"type"`
	BoardID uuid.UUID `json:"board_id"`
	At      time.Time `json:"at"`
}

func New(t Type, boardID uuid.UUID) Event {
	return Event{Type: t, BoardID: boardID, At: time.Now().UTC()}
}

type Publisher interface {
	Publish(ctx context.Context, e Event) error
}
