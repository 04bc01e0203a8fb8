// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
)

// ErrNotFound is returned when a session ID is unknown, typically because it
// was reaped or the server restarted.
var ErrNotFound = errors.New("session not found")

// Store is the in-memory session registry. Sessions live only for the
// lifetime of the process and are reaped after idling past the TTL.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	done     chan struct{}
	once     sync.Once
}

// NewStore creates a registry whose sessions expire after ttl of inactivity.
// A ttl of zero disables reaping.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		done:     make(chan struct{}),
	}
}

// Create registers and returns a fresh session.
func (st *Store) Create() *Session {
	s := newSession()

	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()

	return s
}

// Get looks up a session by ID.
func (st *Store) Get(id string) (*Session, error) {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

// Delete removes a session. Removing an unknown ID is a no-op.
func (st *Store) Delete(id string) {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
}

// Len reports how many sessions are live.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// StartReaper launches a goroutine that drops idle sessions every interval.
// It returns immediately; Close stops the goroutine.
func (st *Store) StartReaper(interval time.Duration) {
	if st.ttl <= 0 {
		return
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-st.done:
				return
			case <-ticker.C:
				st.reap()
			}
		}
	}()
}

// Close stops the reaper goroutine.
func (st *Store) Close() {
	st.once.Do(func() { close(st.done) })
}

func (st *Store) reap() {
	cutoff := time.Now().Add(-st.ttl)

	type expired struct {
		id   string
		idle time.Time
	}
	var stale []expired

	st.mu.RLock()
	for id, s := range st.sessions {
		if idle := s.idleSince(); idle.Before(cutoff) {
			stale = append(stale, expired{id: id, idle: idle})
		}
	}
	st.mu.RUnlock()

	if len(stale) == 0 {
		return
	}

	st.mu.Lock()
	for _, e := range stale {
		delete(st.sessions, e.id)
	}
	st.mu.Unlock()

	for _, e := range stale {
		slog.Info("session reaped", "session_id", e.id, "last_active", humanize.Time(e.idle))
	}
}
