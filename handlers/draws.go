// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/rapid-raffle/draw"
	"github.com/danielhkuo/rapid-raffle/live"
	"github.com/danielhkuo/rapid-raffle/middleware"
	"github.com/danielhkuo/rapid-raffle/models"
	"github.com/danielhkuo/rapid-raffle/session"
)

type DrawHandler struct {
	store *session.Store
	hub   *live.Hub
	src   draw.Source
}

// NewDrawHandler wires the draw endpoints. src may be nil for the default
// random source; tests inject a seeded one.
func NewDrawHandler(store *session.Store, hub *live.Hub, src draw.Source) *DrawHandler {
	if src == nil {
		src = draw.DefaultSource()
	}
	return &DrawHandler{store: store, hub: hub, src: src}
}

// BeginDraw handles POST /sessions/{id}/draws
//
// Samples winners and locks the session under the returned token. The client
// runs its ticker animation over the winners, then commits. With "instant"
// set the draw commits in the same request.
func (h *DrawHandler) BeginDraw(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.lookupSession(w, r)
	if !ok {
		return
	}

	var req models.DrawRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Instant {
		records, err := sess.Draw(req.Count, req.IgnoreWinners, h.src)
		if err != nil {
			respondSessionError(w, err)
			return
		}

		slog.Info("draw committed", "session_id", sess.ID, "winners", len(records))

		h.hub.Broadcast(sess.ID, sess.Snapshot())
		middleware.JSONResponse(w, http.StatusOK, models.CommitDrawResponse{
			Winners: winnerEntries(records),
		})
		return
	}

	begun, err := sess.BeginDraw(req.Count, req.IgnoreWinners, h.src)
	if err != nil {
		respondSessionError(w, err)
		return
	}

	slog.Info("draw begun",
		"session_id", sess.ID,
		"pool_size", len(begun.Pool),
		"winners", len(begun.Winners),
	)

	h.hub.Broadcast(sess.ID, sess.Snapshot())

	middleware.JSONResponse(w, http.StatusOK, models.BeginDrawResponse{
		Token:    begun.Token,
		PoolSize: len(begun.Pool),
		Winners:  begun.Winners,
	})
}

// CommitDraw handles POST /sessions/{id}/draws/{token}/commit
func (h *DrawHandler) CommitDraw(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.lookupSession(w, r)
	if !ok {
		return
	}

	token := r.PathValue("token")
	if token == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "draw token is required")
		return
	}

	records, err := sess.CommitDraw(token)
	if err != nil {
		respondSessionError(w, err)
		return
	}

	slog.Info("draw committed", "session_id", sess.ID, "winners", len(records))

	h.hub.Broadcast(sess.ID, sess.Snapshot())

	middleware.JSONResponse(w, http.StatusOK, models.CommitDrawResponse{
		Winners: winnerEntries(records),
	})
}

func (h *DrawHandler) lookupSession(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
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

// winnerEntries renders history records for clients, attaching the humanized
// "drawn_ago" label.
func winnerEntries(records []session.WinnerRecord) []models.WinnerEntry {
	entries := make([]models.WinnerEntry, len(records))
	for i, rec := range records {
		entries[i] = models.WinnerEntry{
			Name:     rec.Name,
			DrawnAt:  rec.DrawnAt,
			DrawnAgo: humanize.Time(rec.DrawnAt),
		}
	}
	return entries
}
