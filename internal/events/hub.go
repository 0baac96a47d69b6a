package events

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

const subscriberBuffer = 16

var _ Publisher = (*Hub)(nil)

// Hub fans events out to in-process subscribers of a board. A subscriber
// that falls behind loses events rather than blocking publishers.
type Hub struct {
	mu     sync.RWMutex
	nextID uint64
	subs   map[uuid.UUID]map[uint64]chan Event
	closed bool
}

func NewHub() *Hub {
	return &Hub{subs: make(map[uuid.UUID]map[uint64]chan Event)}
}

// Subscribe returns a channel with the events of one board and a function
// that unsubscribes and closes it. After Close the channel comes back closed.
func (h *Hub) Subscribe(boardID uuid.UUID) (<-chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Event, subscriberBuffer)
	if h.closed {
		close(ch)
		return ch, func() {}
	}

	h.nextID++
	id := h.nextID
	if h.subs[boardID] == nil {
		h.subs[boardID] = make(map[uint64]chan Event)
	}
	h.subs[boardID][id] = ch

	return ch, func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if _, ok := h.subs[boardID][id]; !ok {
			return
		}
		delete(h.subs[boardID], id)
		if len(h.subs[boardID]) == 0 {
			delete(h.subs, boardID)
		}
		close(ch)
	}
}

// Close closes every subscriber channel, which ends their streams, and
// refuses new subscribers.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for boardID, subs := range h.subs {
		for _, ch := range subs {
			close(ch)
		}
		delete(h.subs, boardID)
	}
}

func (h *Hub) Publish(_ context.Context, e Event) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, ch := range h.subs[e.BoardID] {
		select {
		case ch <- e:
		default:
			slog.Warn("dropping event for slow subscriber", "board_id", e.BoardID, "type", e.Type)
		}
	}
	return nil
}

func (h *Hub) Subscribers(boardID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[boardID])
}
