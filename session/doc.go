// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session holds per-raffle state and the draw protocol.

# Sessions

A Session owns one raffle: the raw candidate text, normalization options, the
append-only winner history, and the exclusion set of every key that has won.
The candidate list is always recomputed from the raw text, never stored. All
state is in-memory; nothing survives the process.

# The Draw Protocol

A draw is two-phase so the browser can run its ticker animation between
sampling and recording:

	begun, err := sess.BeginDraw(2, true, nil)
	// ... client animates using begun.Winners ...
	records, err := sess.CommitDraw(begun.Token)

BeginDraw snapshots the eligible pool, samples the winners, and locks the
session under a fresh token. While locked, every mutating entry point
(SetCandidates, Shuffle, ClearWinners, ResetAll, another BeginDraw) returns
ErrDrawInProgress, so a concurrent edit can never corrupt the pending draw.
CommitDraw verifies the token, appends the whole batch to history under one
shared timestamp, adds each winner's key to the exclusion set, and releases
the lock. A mismatched token gets ErrStaleToken and mutates nothing.

An empty pool is not a fault: BeginDraw returns ErrNothingToDraw without ever
locking, and the session is left exactly as it was.

Draw combines both phases for clients without an animation.

# Clearing

ClearWinners erases the history and exclusion set but keeps the candidate
text; ResetAll erases everything. Both refuse to run mid-draw.

# Store

Store is the uuid-keyed registry of live sessions. StartReaper launches a
background goroutine that drops sessions idle past the configured TTL, since
abandoned browser tabs would otherwise accumulate state forever.
*/
package session
