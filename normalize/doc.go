// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package normalize turns raw multi-line participant text into clean candidate
lists.

# Normalization

Candidates splits input on line breaks (both bare and CRLF), trims each line,
collapses internal whitespace runs to single spaces, and silently drops lines
that end up empty:

	names := normalize.Candidates("Alice\r\n  Bob   Smith \n\n", normalize.Options{})
	// ["Alice", "Bob Smith"]

# Handle Prefix

With HandlePrefix set, any leading run of "@" is stripped and exactly one is
re-added, so "@alice", "@@alice" and "alice" all normalize to "@alice". A line
that is nothing but sigils is dropped.

# Dedupe

With Dedupe set, lines are deduplicated by their case-insensitive key, keeping
the first occurrence in its original position:

	normalize.Candidates("Alice\nalice\n ALICE ", normalize.Options{Dedupe: true})
	// ["Alice"]

# Keys

Key returns the case-insensitive form used for dedupe and winner-exclusion
matching throughout the service. Two candidates are the same participant
exactly when their keys are equal.

All functions are pure and deterministic; re-normalizing already-normalized
output is a no-op.
*/
package normalize
