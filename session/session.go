// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/rapid-raffle/draw"
	"github.com/danielhkuo/rapid-raffle/normalize"
)

var (
	// ErrNothingToDraw is returned when a draw is requested against an
	// empty pool. No state changes.
	ErrNothingToDraw = errors.New("nothing to draw")
	// ErrDrawInProgress is returned by every mutating operation while a
	// begun draw has not been committed.
	ErrDrawInProgress = errors.New("draw in progress")
	// ErrStaleToken is returned when a commit carries a token that does not
	// match the currently held draw lock.
	ErrStaleToken = errors.New("stale draw token")
)

// WinnerRecord is one history entry. All winners of one draw share the same
// DrawnAt timestamp. Records are never modified after creation.
type WinnerRecord struct {
	Name    string    `json:"name"`
	DrawnAt time.Time `json:"drawn_at"`
}

// Snapshot is the read-only view handed to the presentation layer.
type Snapshot struct {
	ID             string         `json:"id"`
	CandidateCount int            `json:"candidate_count"`
	PoolSize       int            `json:"pool_size"`
	WinnerCount    int            `json:"winner_count"`
	Drawing        bool           `json:"drawing"`
	LastWinners    []string       `json:"last_winners"`
	History        []WinnerRecord `json:"history"`
}

// BeginResult is what BeginDraw hands back: the lock token the client must
// present to commit, the pool that was snapshotted at lock time, and the
// winners already sampled from it.
type BeginResult struct {
	Token   string
	Pool    []string
	Winners []string
}

type pendingDraw struct {
	token   string
	winners []string
}

// Session holds all state for one raffle: the raw candidate text, the
// normalization options, the winner history and exclusion set, and the draw
// lock. All methods are safe for concurrent use; the draw lock additionally
// serializes mutations against a client-driven animation that spans the
// begin/commit gap.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu         sync.Mutex
	rawText    string
	opts       normalize.Options
	history    []WinnerRecord
	excluded   map[string]struct{}
	lastDrawn  []string
	pending    *pendingDraw
	lastActive time.Time
}

func newSession() *Session {
	now := time.Now()
	return &Session{
		ID:         uuid.NewString(),
		CreatedAt:  now,
		excluded:   make(map[string]struct{}),
		lastActive: now,
	}
}

// SetCandidates replaces the raw candidate text and options, returning the
// resulting normalized list. Rejected while a draw is in progress.
func (s *Session) SetCandidates(raw string, opts normalize.Options) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending != nil {
		return nil, ErrDrawInProgress
	}

	s.rawText = raw
	s.opts = opts
	s.lastActive = time.Now()
	return normalize.Candidates(s.rawText, s.opts), nil
}

// Candidates returns the current normalized candidate list. The list is
// recomputed from the raw text on every call; there is no incremental state
// to fall out of sync.
func (s *Session) Candidates() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return normalize.Candidates(s.rawText, s.opts)
}

// RawText returns the raw candidate text as last set.
func (s *Session) RawText() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rawText
}

// Shuffle permutes the candidate order and rewrites the raw text in the new
// order. Rejected while a draw is in progress.
func (s *Session) Shuffle(src draw.Source) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending != nil {
		return nil, ErrDrawInProgress
	}

	shuffled := draw.Shuffle(normalize.Candidates(s.rawText, s.opts), src)
	s.rawText = strings.Join(shuffled, "\n")
	s.lastActive = time.Now()
	return shuffled, nil
}

// BeginDraw computes the eligible pool, samples k unique winners from it, and
// locks the session under a fresh token until CommitDraw. The count is
// clamped to [1, pool size]. An empty pool returns ErrNothingToDraw without
// locking or touching any state; a draw already in progress returns
// ErrDrawInProgress.
func (s *Session) BeginDraw(k int, ignoreWinners bool, src draw.Source) (BeginResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending != nil {
		return BeginResult{}, ErrDrawInProgress
	}

	candidates := normalize.Candidates(s.rawText, s.opts)
	pool := draw.ComputePool(candidates, s.excluded, ignoreWinners)
	if len(pool) == 0 {
		return BeginResult{}, ErrNothingToDraw
	}

	winners, err := draw.SampleUnique(pool, k, src)
	if err != nil {
		return BeginResult{}, err
	}

	s.pending = &pendingDraw{
		token:   uuid.NewString(),
		winners: winners,
	}
	s.lastActive = time.Now()

	return BeginResult{Token: s.pending.token, Pool: pool, Winners: winners}, nil
}

// CommitDraw records the winners sampled by the matching BeginDraw: one
// WinnerRecord per winner is appended to the history, every winner's key is
// added to the exclusion set, and the lock is released. The batch shares one
// timestamp and lands atomically; a token that does not match the held lock
// is rejected with ErrStaleToken and changes nothing.
func (s *Session) CommitDraw(token string) ([]WinnerRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending == nil || s.pending.token != token {
		return nil, ErrStaleToken
	}

	now := time.Now()
	records := make([]WinnerRecord, len(s.pending.winners))
	for i, name := range s.pending.winners {
		records[i] = WinnerRecord{Name: name, DrawnAt: now}
		s.excluded[normalize.Key(name)] = struct{}{}
	}
	s.history = append(s.history, records...)
	s.lastDrawn = s.pending.winners
	s.pending = nil
	s.lastActive = now

	return records, nil
}

// Draw runs BeginDraw and CommitDraw in one step, for clients that skip the
// animation phase.
func (s *Session) Draw(k int, ignoreWinners bool, src draw.Source) ([]WinnerRecord, error) {
	begun, err := s.BeginDraw(k, ignoreWinners, src)
	if err != nil {
		return nil, err
	}
	return s.CommitDraw(begun.Token)
}

// ClearWinners empties the winner history and exclusion set but leaves the
// candidate text and options untouched. Rejected while a draw is in progress.
func (s *Session) ClearWinners() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending != nil {
		return ErrDrawInProgress
	}

	s.history = nil
	s.excluded = make(map[string]struct{})
	s.lastDrawn = nil
	s.lastActive = time.Now()
	return nil
}

// ResetAll clears everything: history, exclusion set, and the raw candidate
// text. Rejected while a draw is in progress.
func (s *Session) ResetAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending != nil {
		return ErrDrawInProgress
	}

	s.rawText = ""
	s.opts = normalize.Options{}
	s.history = nil
	s.excluded = make(map[string]struct{})
	s.lastDrawn = nil
	s.lastActive = time.Now()
	return nil
}

// History returns a copy of the winner history, oldest first.
func (s *Session) History() []WinnerRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]WinnerRecord, len(s.history))
	copy(out, s.history)
	return out
}

// Snapshot reports the current counts and history for rendering. PoolSize is
// the candidate count with all recorded winners excluded.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	candidates := normalize.Candidates(s.rawText, s.opts)
	pool := draw.ComputePool(candidates, s.excluded, true)

	history := make([]WinnerRecord, len(s.history))
	copy(history, s.history)
	lastDrawn := make([]string, len(s.lastDrawn))
	copy(lastDrawn, s.lastDrawn)

	return Snapshot{
		ID:             s.ID,
		CandidateCount: len(candidates),
		PoolSize:       len(pool),
		WinnerCount:    len(history),
		Drawing:        s.pending != nil,
		LastWinners:    lastDrawn,
		History:        history,
	}
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}
