// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package normalize

import (
	"slices"
	"strings"
	"testing"
)

func TestCandidates(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		opts     Options
		expected []string
	}{
		{
			name:     "blank lines and padding dropped",
			raw:      "A\nB\nB\n\n  C  ",
			opts:     Options{Dedupe: true},
			expected: []string{"A", "B", "C"},
		},
		{
			name:     "duplicates kept without dedupe",
			raw:      "A\nB\nB",
			opts:     Options{},
			expected: []string{"A", "B", "B"},
		},
		{
			name:     "internal whitespace collapsed",
			raw:      "Bob   Smith\nJane\t\tDoe",
			opts:     Options{},
			expected: []string{"Bob Smith", "Jane Doe"},
		},
		{
			name:     "CRLF line endings",
			raw:      "Alice\r\nBob\r\n",
			opts:     Options{},
			expected: []string{"Alice", "Bob"},
		},
		{
			name:     "empty input",
			raw:      "",
			opts:     Options{},
			expected: []string{},
		},
		{
			name:     "whitespace-only input",
			raw:      "  \n\t\n   ",
			opts:     Options{},
			expected: []string{},
		},
		{
			name:     "case-variant dedupe keeps first occurrence",
			raw:      "Alice\nalice\n ALICE ",
			opts:     Options{Dedupe: true},
			expected: []string{"Alice"},
		},
		{
			name:     "dedupe preserves order of first occurrences",
			raw:      "carol\nBob\nCAROL\nbob\nAlice",
			opts:     Options{Dedupe: true},
			expected: []string{"carol", "Bob", "Alice"},
		},
		{
			name:     "handle prefix added",
			raw:      "alice\nbob",
			opts:     Options{HandlePrefix: true},
			expected: []string{"@alice", "@bob"},
		},
		{
			name:     "existing sigil run collapsed to one",
			raw:      "@alice\n@@bob\ncarol",
			opts:     Options{HandlePrefix: true},
			expected: []string{"@alice", "@bob", "@carol"},
		},
		{
			name:     "sigil-only line dropped",
			raw:      "@\n@@\nalice",
			opts:     Options{HandlePrefix: true},
			expected: []string{"@alice"},
		},
		{
			name:     "prefix and dedupe together",
			raw:      "@Alice\nalice\nBob",
			opts:     Options{Dedupe: true, HandlePrefix: true},
			expected: []string{"@Alice", "@Bob"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Candidates(tc.raw, tc.opts)
			if !slices.Equal(got, tc.expected) {
				t.Errorf("Candidates(%q) = %v, expected %v", tc.raw, got, tc.expected)
			}
		})
	}
}

func TestCandidates_Idempotent(t *testing.T) {
	// Re-normalizing already-normalized output must be a no-op
	inputs := []string{
		"A\nB\nB\n\n  C  ",
		"@alice\n@@bob\n  carol   brown ",
		"Alice\nalice\nALICE",
	}
	optsVariants := []Options{
		{},
		{Dedupe: true},
		{HandlePrefix: true},
		{Dedupe: true, HandlePrefix: true},
	}

	for _, raw := range inputs {
		for _, opts := range optsVariants {
			first := Candidates(raw, opts)
			second := Candidates(strings.Join(first, "\n"), opts)
			if !slices.Equal(first, second) {
				t.Errorf("not idempotent for %q with %+v: %v != %v", raw, opts, first, second)
			}
		}
	}
}

func TestKey(t *testing.T) {
	if Key("Alice") != Key("aLiCe") {
		t.Error("keys should be case-insensitive")
	}
	if Key("Alice") == Key("Bob") {
		t.Error("distinct names should have distinct keys")
	}
}

func TestCollapse(t *testing.T) {
	testCases := []struct {
		in       string
		expected string
	}{
		{"  hello  ", "hello"},
		{"a  b\t c", "a b c"},
		{"\t\n ", ""},
		{"one", "one"},
	}

	for _, tc := range testCases {
		if got := Collapse(tc.in); got != tc.expected {
			t.Errorf("Collapse(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}
