// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/rapid-raffle/draw"
	"github.com/danielhkuo/rapid-raffle/handlers"
	"github.com/danielhkuo/rapid-raffle/live"
	"github.com/danielhkuo/rapid-raffle/middleware"
	"github.com/danielhkuo/rapid-raffle/session"
)

func NewRouter(store *session.Store, hub *live.Hub, src draw.Source) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	sessionHandler := handlers.NewSessionHandler(store, hub)
	drawHandler := handlers.NewDrawHandler(store, hub, src)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Session lifecycle
	mux.HandleFunc("POST /sessions", middleware.WithLogging(sessionHandler.CreateSession))
	mux.HandleFunc("GET /sessions/{id}", middleware.WithLogging(sessionHandler.GetSession))
	mux.HandleFunc("PUT /sessions/{id}/candidates", middleware.WithLogging(sessionHandler.UpdateCandidates))
	mux.HandleFunc("POST /sessions/{id}/shuffle", middleware.WithLogging(sessionHandler.Shuffle))
	mux.HandleFunc("GET /sessions/{id}/history", middleware.WithLogging(sessionHandler.GetHistory))
	mux.HandleFunc("POST /sessions/{id}/clear-winners", middleware.WithLogging(sessionHandler.ClearWinners))
	mux.HandleFunc("POST /sessions/{id}/reset", middleware.WithLogging(sessionHandler.ResetAll))

	// Draw protocol
	mux.HandleFunc("POST /sessions/{id}/draws", middleware.WithLogging(drawHandler.BeginDraw))
	mux.HandleFunc("POST /sessions/{id}/draws/{token}/commit", middleware.WithLogging(drawHandler.CommitDraw))

	// Live snapshot feed (no logging wrapper: the connection is long-lived)
	mux.HandleFunc("GET /sessions/{id}/live", sessionHandler.Live)

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("rapid-raffle API v1"))
	})

	return mux
}
