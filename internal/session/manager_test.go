package session_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todoboard/internal/kanban"
	"todoboard/internal/kanban/kanbantest"
	"todoboard/internal/repository"
	"todoboard/internal/session"
)

func newManager(ttl time.Duration) (*session.Manager, uuid.UUID) {
	store := kanbantest.New("Ops")
	m := session.NewManager(func(boardID uuid.UUID) *kanban.Session {
		return kanban.NewSession(store, boardID, nil)
	}, ttl)
	return m, store.BoardID()
}

func TestManager_OpenAndDo(t *testing.T) {
	// Arrange
	m, boardID := newManager(time.Minute)

	// Act
	id, snap, err := m.Open(context.Background(), boardID)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Ops", snap.BoardName)
	assert.Len(t, snap.Columns, 3)
	assert.Equal(t, 1, m.Len())

	err = m.Do(id, func(s *kanban.Session) error {
		return s.ToggleMode(kanban.ModeDelete)
	})
	require.NoError(t, err)
	_ = m.Do(id, func(s *kanban.Session) error {
		assert.Equal(t, kanban.ModeDelete, s.Mode())
		return nil
	})
}

func TestManager_OpenUnknownBoard(t *testing.T) {
	m, _ := newManager(time.Minute)

	_, _, err := m.Open(context.Background(), uuid.New())

	assert.ErrorIs(t, err, repository.ErrBoardNotFound)
	assert.Equal(t, 0, m.Len())
}

func TestManager_UnknownSession(t *testing.T) {
	m, _ := newManager(time.Minute)

	err := m.Do(uuid.New(), func(*kanban.Session) error { return nil })

	assert.ErrorIs(t, err, session.ErrSessionNotFound)
	assert.ErrorIs(t, m.Close(uuid.New()), session.ErrSessionNotFound)
}

func TestManager_DoReturnsActionError(t *testing.T) {
	m, boardID := newManager(time.Minute)
	id, _, err := m.Open(context.Background(), boardID)
	require.NoError(t, err)
	boom := errors.New("boom")

	err = m.Do(id, func(*kanban.Session) error { return boom })

	assert.ErrorIs(t, err, boom)
}

func TestManager_Close(t *testing.T) {
	m, boardID := newManager(time.Minute)
	id, _, err := m.Open(context.Background(), boardID)
	require.NoError(t, err)

	require.NoError(t, m.Close(id))

	assert.Equal(t, 0, m.Len())
	assert.ErrorIs(t, m.Do(id, func(*kanban.Session) error { return nil }), session.ErrSessionNotFound)
}

func TestManager_SweepEvictsIdleSessions(t *testing.T) {
	// Arrange
	m, boardID := newManager(time.Minute)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	m.SetClock(func() time.Time { return now })
	idle, _, err := m.Open(context.Background(), boardID)
	require.NoError(t, err)

	now = now.Add(50 * time.Second)
	active, _, err := m.Open(context.Background(), boardID)
	require.NoError(t, err)

	// Act
	now = now.Add(30 * time.Second)
	evicted := m.Sweep()

	// Assert
	assert.Equal(t, 1, evicted)
	assert.ErrorIs(t, m.Do(idle, func(*kanban.Session) error { return nil }), session.ErrSessionNotFound)
	assert.NoError(t, m.Do(active, func(*kanban.Session) error { return nil }))
}

func TestManager_SerializesActions(t *testing.T) {
	m, boardID := newManager(time.Minute)
	id, _, err := m.Open(context.Background(), boardID)
	require.NoError(t, err)

	var (
		wg      sync.WaitGroup
		running int
		maxSeen int
	)
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = m.Do(id, func(s *kanban.Session) error {
				running++
				maxSeen = max(maxSeen, running)
				time.Sleep(time.Millisecond)
				running--
				return s.ToggleMode(kanban.ModeEdit)
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxSeen)
}

func TestManager_RunStopsWithContext(t *testing.T) {
	m, _ := newManager(time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		m.Run(ctx, time.Millisecond)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop")
	}
}
