package cart

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestStore(ttl time.Duration) *Store {
	return NewStore(ttl, func() *Manager { return NewManager("", nil) }, quietLogger())
}

func TestStore_SessionsAreIsolated(t *testing.T) {
	store := newTestStore(time.Hour)

	store.With("s1", func(m *Manager) View { return m.AddItem("a", "A", price("10"), "") })
	view := store.With("s2", func(m *Manager) View { return m.Render() })

	assert.True(t, view.Empty)
	assert.Equal(t, 2, store.Len())
}

func TestStore_SweepDropsIdleSessions(t *testing.T) {
	store := newTestStore(time.Hour)
	now := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	store.With("old", func(m *Manager) View { return m.AddItem("a", "A", price("10"), "") })
	now = now.Add(50 * time.Minute)
	store.With("fresh", func(m *Manager) View { return m.Render() })
	now = now.Add(20 * time.Minute)

	assert.Equal(t, 1, store.Sweep())
	assert.Equal(t, 1, store.Len())

	// the dropped session starts over with an empty cart
	view := store.With("old", func(m *Manager) View { return m.Render() })
	assert.True(t, view.Empty)
}

func TestStore_AddSurvivesSweepDuringAccess(t *testing.T) {
	store := newTestStore(time.Hour)
	now := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	store.With("s1", func(m *Manager) View { return m.Render() })
	now = now.Add(2 * time.Hour)

	// the janitor fires while the next request is reading the clock
	swept := false
	store.now = func() time.Time {
		if !swept {
			swept = true
			store.Sweep()
		}
		return now
	}

	store.With("s1", func(m *Manager) View { return m.AddItem("a", "A", price("10"), "") })
	view := store.With("s1", func(m *Manager) View { return m.Render() })

	assert.Equal(t, 1, view.Count)
	assert.Equal(t, 1, store.Len())
}

func TestStore_SweepKeepsSessionInUse(t *testing.T) {
	store := newTestStore(time.Hour)
	now := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	var dropped int
	store.With("busy", func(m *Manager) View {
		now = now.Add(2 * time.Hour)
		dropped = store.Sweep()
		return m.AddItem("a", "A", price("10"), "")
	})

	assert.Equal(t, 0, dropped)
	view := store.With("busy", func(m *Manager) View { return m.Render() })
	assert.Equal(t, 1, view.Count)
}

func TestStore_Drop(t *testing.T) {
	store := newTestStore(time.Hour)
	store.With("s1", func(m *Manager) View { return m.AddItem("a", "A", price("10"), "") })

	store.Drop("s1")
	store.Drop("never-existed")

	assert.Equal(t, 0, store.Len())
}

func TestStore_SerializesOneSession(t *testing.T) {
	store := newTestStore(time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.With("shared", func(m *Manager) View { return m.AddItem("a", "A", price("1"), "") })
		}()
	}
	wg.Wait()

	view := store.With("shared", func(m *Manager) View { return m.Render() })
	require.Len(t, view.Items, 1)
	assert.Equal(t, 50, view.Items[0].Quantity)
}

func TestStore_RunStopsOnCancel(t *testing.T) {
	store := newTestStore(time.Nanosecond)
	store.With("s1", func(m *Manager) View { return m.Render() })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		store.Run(ctx, time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool { return store.Len() == 0 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
