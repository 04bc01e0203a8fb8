// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package normalize

import (
	"strings"
	"unicode"
)

// Sigil is the canonical handle prefix re-applied when HandlePrefix is set.
const Sigil = "@"

// Options controls how a raw candidate list is normalized.
type Options struct {
	// Dedupe drops case-insensitive duplicates, keeping the first occurrence.
	Dedupe bool `json:"dedupe"`
	// HandlePrefix strips any leading sigil run and re-adds exactly one.
	HandlePrefix bool `json:"handle_prefix"`
}

// Candidates turns raw multi-line text into an ordered list of clean
// candidate names. Empty lines are dropped silently. The function is pure:
// equal inputs always yield equal output, and re-normalizing its own output
// (joined by newlines) is a no-op.
func Candidates(raw string, opts Options) []string {
	lines := strings.Split(raw, "\n")

	candidates := make([]string, 0, len(lines))
	var seen map[string]struct{}
	if opts.Dedupe {
		seen = make(map[string]struct{}, len(lines))
	}

	for _, line := range lines {
		name := Collapse(strings.TrimSuffix(line, "\r"))
		if name == "" {
			continue
		}

		if opts.HandlePrefix {
			name = strings.TrimLeft(name, Sigil)
			if name == "" {
				continue
			}
			name = Sigil + name
		}

		if opts.Dedupe {
			key := Key(name)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
		}

		candidates = append(candidates, name)
	}

	return candidates
}

// Key returns the case-insensitive form of a candidate used for dedupe and
// winner-exclusion matching.
func Key(name string) string {
	return strings.ToLower(name)
}

// Collapse trims leading and trailing whitespace and collapses every internal
// whitespace run to a single space.
func Collapse(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))
	lastWasSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !lastWasSpace {
				b.WriteRune(' ')
				lastWasSpace = true
			}
		} else {
			b.WriteRune(r)
			lastWasSpace = false
		}
	}
	return b.String()
}
