// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package live streams session snapshots to WebSocket subscribers.

# Subscribing

GET /sessions/{id}/live upgrades to a WebSocket. The hub pushes the current
snapshot on connect and again after every committed mutation (candidate
edits, shuffles, committed draws, clears). Subscribers never send messages;
the reader loop exists only to detect disconnects.

# Guarantees

The feed is advisory. It carries the same Snapshot JSON the GET endpoint
returns, and a client that misses a frame can always re-fetch. Subscribers
that stop draining their buffer are dropped so one stuck tab cannot stall a
broadcast.
*/
package live
