// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP routes for the rapid-raffle API.

# Routes

Built on Go 1.22+ method patterns with http.ServeMux:

	GET  /health                            Liveness check
	POST /sessions                          Create a raffle session
	GET  /sessions/{id}                     Session snapshot
	PUT  /sessions/{id}/candidates          Replace candidate text + options
	POST /sessions/{id}/shuffle             Permute candidate order
	POST /sessions/{id}/draws               Begin (or instantly run) a draw
	POST /sessions/{id}/draws/{token}/commit Commit a begun draw
	GET  /sessions/{id}/history             Winner history + copy text
	POST /sessions/{id}/clear-winners       Clear history, keep candidates
	POST /sessions/{id}/reset               Clear everything
	GET  /sessions/{id}/live                WebSocket snapshot feed

All routes except the WebSocket upgrade are wrapped in request logging.
*/
package router
