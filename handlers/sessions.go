// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/danielhkuo/rapid-raffle/draw"
	"github.com/danielhkuo/rapid-raffle/live"
	"github.com/danielhkuo/rapid-raffle/middleware"
	"github.com/danielhkuo/rapid-raffle/models"
	"github.com/danielhkuo/rapid-raffle/normalize"
	"github.com/danielhkuo/rapid-raffle/session"
)

type SessionHandler struct {
	store    *session.Store
	hub      *live.Hub
	validate *validator.Validate
}

func NewSessionHandler(store *session.Store, hub *live.Hub) *SessionHandler {
	return &SessionHandler{
		store:    store,
		hub:      hub,
		validate: validator.New(),
	}
}

// CreateSession handles POST /sessions
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	sess := h.store.Create()

	slog.Info("session created", "session_id", sess.ID)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateSessionResponse{
		SessionID: sess.ID,
	})
}

// GetSession handles GET /sessions/{id}
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.lookup(w, r)
	if !ok {
		return
	}

	middleware.JSONResponse(w, http.StatusOK, sess.Snapshot())
}

// UpdateCandidates handles PUT /sessions/{id}/candidates
func (h *SessionHandler) UpdateCandidates(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var req models.UpdateCandidatesRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "candidate text too large")
		return
	}

	candidates, err := sess.SetCandidates(req.Text, normalize.Options{
		Dedupe:       req.Dedupe,
		HandlePrefix: req.HandlePrefix,
	})
	if err != nil {
		respondSessionError(w, err)
		return
	}

	snap := sess.Snapshot()
	h.hub.Broadcast(sess.ID, snap)

	middleware.JSONResponse(w, http.StatusOK, models.UpdateCandidatesResponse{
		Candidates:     candidates,
		CandidateCount: snap.CandidateCount,
		PoolSize:       snap.PoolSize,
	})
}

// Shuffle handles POST /sessions/{id}/shuffle
func (h *SessionHandler) Shuffle(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.lookup(w, r)
	if !ok {
		return
	}

	candidates, err := sess.Shuffle(nil)
	if err != nil {
		respondSessionError(w, err)
		return
	}

	h.hub.Broadcast(sess.ID, sess.Snapshot())

	middleware.JSONResponse(w, http.StatusOK, models.ShuffleResponse{
		Candidates: candidates,
	})
}

// GetHistory handles GET /sessions/{id}/history
func (h *SessionHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.lookup(w, r)
	if !ok {
		return
	}

	records := sess.History()
	entries := winnerEntries(records)

	// One name per line, ready for the clipboard.
	names := make([]string, len(records))
	for i, rec := range records {
		names[i] = rec.Name
	}

	middleware.JSONResponse(w, http.StatusOK, models.HistoryResponse{
		Winners:  entries,
		CopyText: strings.Join(names, "\n"),
	})
}

// ClearWinners handles POST /sessions/{id}/clear-winners
func (h *SessionHandler) ClearWinners(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.lookup(w, r)
	if !ok {
		return
	}

	if err := sess.ClearWinners(); err != nil {
		respondSessionError(w, err)
		return
	}

	slog.Info("winners cleared", "session_id", sess.ID)

	snap := sess.Snapshot()
	h.hub.Broadcast(sess.ID, snap)
	middleware.JSONResponse(w, http.StatusOK, snap)
}

// ResetAll handles POST /sessions/{id}/reset
func (h *SessionHandler) ResetAll(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.lookup(w, r)
	if !ok {
		return
	}

	if err := sess.ResetAll(); err != nil {
		respondSessionError(w, err)
		return
	}

	slog.Info("session reset", "session_id", sess.ID)

	snap := sess.Snapshot()
	h.hub.Broadcast(sess.ID, snap)
	middleware.JSONResponse(w, http.StatusOK, snap)
}

// Live handles GET /sessions/{id}/live
func (h *SessionHandler) Live(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.lookup(w, r)
	if !ok {
		return
	}

	h.hub.Serve(w, r, sess)
}

// lookup resolves the {id} path parameter to a session, writing the error
// response itself when the session does not exist.
func (h *SessionHandler) lookup(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "session id is required")
		return nil, false
	}

	sess, err := h.store.Get(id)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")
		return nil, false
	}
	return sess, true
}

// respondSessionError maps session errors to HTTP statuses. An empty pool is
// a normal outcome surfaced as a user-facing message, not a server fault.
func respondSessionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, session.ErrNothingToDraw):
		middleware.ErrorResponse(w, http.StatusConflict, "nothing to draw")
	case errors.Is(err, session.ErrDrawInProgress):
		middleware.ErrorResponse(w, http.StatusLocked, "a draw is already in progress")
	case errors.Is(err, session.ErrStaleToken):
		middleware.ErrorResponse(w, http.StatusConflict, "draw token is no longer valid")
	case errors.Is(err, session.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")
	case errors.Is(err, draw.ErrEmptyPool):
		middleware.ErrorResponse(w, http.StatusConflict, "nothing to draw")
	default:
		slog.Error("unexpected session error", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal error")
	}
}
