// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the request and response types for the rapid-raffle
API.

# Request Types

Request structs carry validate tags checked by the handlers before any work
happens:

  - UpdateCandidatesRequest: raw text plus normalization toggles
  - DrawRequest: winner count and the ignore-winners toggle

DrawRequest.Count is deliberately not validated: out-of-range counts are
clamped by the draw engine, never rejected.

# Response Types

Each endpoint has a matching response struct. WinnerEntry is the rendered
form of a history record and includes both the machine timestamp and a
humanized "drawn_ago" label for display.

# Error Responses

All errors use ErrorResponse with the HTTP status text and a human-readable
message.
*/
package models
