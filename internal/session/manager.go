// Package session keeps open kanban board views in memory.
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"todoboard/internal/kanban"
)

var ErrSessionNotFound = errors.New("session not found")

// Factory builds an unloaded kanban session for a board.
type Factory func(boardID uuid.UUID) *kanban.Session

type entry struct {
	mu       sync.Mutex
	session  *kanban.Session
	lastUsed time.Time
}

// Manager owns kanban sessions keyed by id. Every action on a session runs
// under that session's lock, one at a time. Sessions idle for longer than
// the TTL are evicted by a janitor goroutine.
type Manager struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*entry
	factory  Factory
	ttl      time.Duration
	now      func() time.Time
}

func NewManager(factory Factory, ttl time.Duration) *Manager {
	return &Manager{
		sessions: make(map[uuid.UUID]*entry),
		factory:  factory,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Open creates and loads a session for a board.
func (m *Manager) Open(ctx context.Context, boardID uuid.UUID) (uuid.UUID, kanban.Snapshot, error) {
	s := m.factory(boardID)
	if err := s.Load(ctx); err != nil {
		return uuid.Nil, kanban.Snapshot{}, err
	}

	id := uuid.New()
	m.mu.Lock()
	m.sessions[id] = &entry{session: s, lastUsed: m.now()}
	m.mu.Unlock()

	slog.Debug("session opened", "session_id", id, "board_id", boardID)
	return id, s.Snapshot(), nil
}

// Do runs fn with exclusive access to the session.
func (m *Manager) Do(id uuid.UUID, fn func(s *kanban.Session) error) error {
	m.mu.Lock()
	e, ok := m.sessions[id]
	m.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.lastUsed = m.now()
	return fn(e.session)
}

func (m *Manager) Close(id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(m.sessions, id)
	return nil
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Sweep evicts sessions idle for longer than the TTL and reports how many
// went away. Sessions busy with an action are skipped.
func (m *Manager) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := m.now().Add(-m.ttl)
	evicted := 0
	for id, e := range m.sessions {
		if !e.mu.TryLock() {
			continue
		}
		if e.lastUsed.Before(cutoff) {
			delete(m.sessions, id)
			evicted++
		}
		e.mu.Unlock()
	}
	return evicted
}

// Run sweeps every interval until ctx is cancelled.
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := m.Sweep(); n > 0 {
				slog.Info("evicted idle sessions", "count", n, "remaining", m.Len())
			}
		}
	}
}

// SetClock replaces the time source. Used by tests.
func (m *Manager) SetClock(now func() time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
}
