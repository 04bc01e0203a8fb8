// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Request types

type UpdateCandidatesRequest struct {
	// Raw multi-line participant text. Capped so a single paste cannot
	// balloon server memory.
	Text         string `json:"text" validate:"max=262144"`
	Dedupe       bool   `json:"dedupe"`
	HandlePrefix bool   `json:"handle_prefix"`
}

type DrawRequest struct {
	// Count below 1 is clamped to 1, above the pool size to the pool size.
	Count         int  `json:"count"`
	IgnoreWinners bool `json:"ignore_winners"`
	// Instant skips the two-phase protocol and commits immediately, for
	// clients that do not run a reveal animation.
	Instant bool `json:"instant"`
}

// Response types

type CreateSessionResponse struct {
	SessionID string `json:"session_id"`
}

type UpdateCandidatesResponse struct {
	Candidates     []string `json:"candidates"`
	CandidateCount int      `json:"candidate_count"`
	PoolSize       int      `json:"pool_size"`
}

type ShuffleResponse struct {
	Candidates []string `json:"candidates"`
}

type BeginDrawResponse struct {
	Token    string   `json:"token"`
	PoolSize int      `json:"pool_size"`
	Winners  []string `json:"winners"`
}

type CommitDrawResponse struct {
	Winners []WinnerEntry `json:"winners"`
}

type HistoryResponse struct {
	Winners  []WinnerEntry `json:"winners"`
	CopyText string        `json:"copy_text"`
}

// WinnerEntry is one history row as rendered to clients. DrawnAgo is a
// human-friendly label ("2 minutes ago") derived from DrawnAt.
type WinnerEntry struct {
	Name     string    `json:"name"`
	DrawnAt  time.Time `json:"drawn_at"`
	DrawnAgo string    `json:"drawn_ago"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
