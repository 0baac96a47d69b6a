package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

var _ Publisher = (*PGNotifier)(nil)

// PGNotifier publishes events on a postgres NOTIFY channel so every server
// instance listening on it sees them.
type PGNotifier struct {
	db      *gorm.DB
	channel string
}

func NewPGNotifier(db *gorm.DB, channel string) *PGNotifier {
	return &PGNotifier{db: db, channel: channel}
}

func (n *PGNotifier) Publish(ctx context.Context, e Event) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	if err := n.db.WithContext(ctx).Exec("SELECT pg_notify(?, ?)", n.channel, string(payload)).Error; err != nil {
		return fmt.Errorf("notify %s: %w", n.channel, err)
	}
	return nil
}

const (
	minReconnect = 10 * time.Second
	maxReconnect = time.Minute
	pingInterval = 90 * time.Second
)

// Listener receives notifications from postgres and hands them to a
// publisher, normally the in-process Hub.
type Listener struct {
	listener *pq.Listener
	target   Publisher
}

func NewListener(dsn, channel string, target Publisher) (*Listener, error) {
	l := pq.NewListener(dsn, minReconnect, maxReconnect, func(ev pq.ListenerEventType, err error) {
		if err != nil {
			slog.Error("event listener", "event", ev, "error", err)
		}
	})
	if err := l.Listen(channel); err != nil {
		_ = l.Close()
		return nil, fmt.Errorf("listen %s: %w", channel, err)
	}
	return &Listener{listener: l, target: target}, nil
}

// Run forwards notifications until ctx is cancelled, then closes the
// connection.
func (l *Listener) Run(ctx context.Context) {
	defer l.listener.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case n := <-l.listener.Notify:
			// nil after a reconnect
			if n == nil {
				continue
			}
			e, err := Decode(n.Extra)
			if err != nil {
				slog.Warn("ignoring malformed event", "channel", n.Channel, "error", err)
				continue
			}
			if err := l.target.Publish(ctx, e); err != nil {
				slog.Error("forward event", "type", e.Type, "error", err)
			}
		case <-time.After(pingInterval):
			go func() {
				if err := l.listener.Ping(); err != nil {
					slog.Warn("event listener ping", "error", err)
				}
			}()
		}
	}
}

// Decode parses a notification payload.
func Decode(payload string) (Event, error) {
	var e Event
	if err := json.Unmarshal([]byte(payload), &e); err != nil {
		return Event{}, fmt.Errorf("decode event: %w", err)
	}
	if e.Type == "" {
		return Event{}, fmt.Errorf("decode event: missing type")
	}
	return e, nil
}
