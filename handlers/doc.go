// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers implements the HTTP request handlers for the rapid-raffle
API.

# Handler Organization

Handlers are grouped by resource, each a struct with its dependencies
injected:

  - SessionHandler: session lifecycle, candidate text, shuffle, history,
    clears, and the live WebSocket feed
  - DrawHandler: the two-phase draw protocol

# The Draw Flow

	POST /sessions                        → session_id
	PUT  /sessions/{id}/candidates        → normalized candidate list
	POST /sessions/{id}/draws             → token + winners (session locked)
	POST /sessions/{id}/draws/{t}/commit  → winners recorded (lock released)

Between draw and commit the browser runs its ticker animation; every other
mutation is refused with 423 Locked until the commit lands. A draw against an
empty pool returns 409 with "nothing to draw" and changes no state. Passing
"instant": true to the draws endpoint collapses both phases into one request.

# Error Mapping

Session errors map onto HTTP statuses in one place (respondSessionError):

  - nothing to draw      → 409 Conflict
  - draw in progress     → 423 Locked
  - stale draw token     → 409 Conflict
  - unknown session      → 404 Not Found

# Validation

Request structs carry validate tags (go-playground/validator); anything the
tags cannot express is guarded inline. Draw counts are never rejected: the
engine clamps them.
*/
package handlers
