// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the rapid-raffle API server.

rapid-raffle backs a browser raffle tool: paste a list of names, draw one or
more unique winners with a ticker animation, and keep a running history of
who has already won. The browser owns all rendering; this server owns
normalization, sampling, and session state.

# Starting the Server

The server runs with no required configuration:

	go run .

Or with flags / environment variables:

	go run . -p 8080 -ttl 30m
	PORT=8080 SESSION_TTL=30m go run .

A .env file in the working directory is loaded first if present.

# Configuration

Optional settings:

  - PORT (-p): Server port (default: 3319)
  - ALLOWED_ORIGIN (-origin): CORS origin (default: echo the requester)
  - SESSION_TTL (-ttl): idle session lifetime (default: 2h)
  - LOG_LEVEL (-log-level): debug, info, warn, error (default: info)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - normalize: candidate text normalization (trim, collapse, dedupe, sigil)
  - draw: pool filtering and Fisher-Yates unique sampling
  - session: per-raffle state, the two-phase draw lock, winner history
  - handlers: HTTP request handlers (sessions, draws)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - live: WebSocket snapshot feed
  - models: Request/response types
  - cliparse: Configuration parsing

All state is in-memory and per-session; there is no database and nothing
survives a restart. See package documentation for each component.
*/
package main
