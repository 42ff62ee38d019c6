// internal/domain/cart/store.go
package cart

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
)

type sessionEntry struct {
	mu       sync.Mutex
	manager  *Manager
	lastSeen atomic.Int64 // unix nanoseconds
}

// Store keeps one Manager per page session in memory.
// Carts are never persisted; idle sessions are dropped by Sweep.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*sessionEntry
	ttl      time.Duration
	factory  func() *Manager
	now      func() time.Time
	log      logrus.FieldLogger
}

// NewStore creates a session store. factory builds the Manager for a new session.
func NewStore(ttl time.Duration, factory func() *Manager, log logrus.FieldLogger) *Store {
	return &Store{
		sessions: make(map[string]*sessionEntry),
		ttl:      ttl,
		factory:  factory,
		now:      time.Now,
		log:      log,
	}
}

// With runs fn against the session's Manager while holding the session lock.
// Operations of one session therefore never overlap.
func (s *Store) With(sessionID string, fn func(*Manager) View) View {
	entry := s.entry(sessionID, s.now().UnixNano())

	entry.mu.Lock()
	defer entry.mu.Unlock()

	return fn(entry.manager)
}

// Drop discards a session's cart
func (s *Store) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

// Len is the number of live sessions
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep drops sessions idle for longer than the TTL and reports how many were dropped.
// Sessions with an operation in flight are kept.
func (s *Store) Sweep() int {
	cutoff := s.now().Add(-s.ttl).UnixNano()

	s.mu.Lock()
	defer s.mu.Unlock()

	dropped := 0
	for id, entry := range s.sessions {
		if entry.lastSeen.Load() >= cutoff || !entry.mu.TryLock() {
			continue
		}
		delete(s.sessions, id)
		entry.mu.Unlock()
		dropped++
	}
	return dropped
}

// Run sweeps idle sessions every interval until ctx is done
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				s.log.WithField("dropped", n).Info("expired cart sessions dropped")
			}
		}
	}
}

// entry returns the session's entry, creating it if needed, and marks it
// seen at ts before the store lock is released so a sweep cannot drop it
// between lookup and use.
func (s *Store) entry(sessionID string, ts int64) *sessionEntry {
	s.mu.RLock()
	entry, ok := s.sessions[sessionID]
	if ok {
		entry.lastSeen.Store(ts)
	}
	s.mu.RUnlock()
	if ok {
		return entry
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if entry, ok := s.sessions[sessionID]; ok {
		entry.lastSeen.Store(ts)
		return entry
	}
	entry = &sessionEntry{manager: s.factory()}
	entry.lastSeen.Store(ts)
	s.sessions[sessionID] = entry
	return entry
}
