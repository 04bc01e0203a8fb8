// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package draw

import (
	"errors"
	"math/rand/v2"

	"github.com/danielhkuo/rapid-raffle/normalize"
)

// ErrEmptyPool is returned when a draw is requested with no eligible
// candidates. It is a normal terminal condition, not a server fault.
var ErrEmptyPool = errors.New("no eligible candidates")

// Source supplies uniform random indexes. *rand.Rand from math/rand/v2
// satisfies it, which makes sampling deterministic under a seeded PCG in
// tests.
type Source interface {
	IntN(n int) int
}

type defaultSource struct{}

func (defaultSource) IntN(n int) int { return rand.IntN(n) }

// DefaultSource returns a Source backed by the shared math/rand/v2 generator.
func DefaultSource() Source { return defaultSource{} }

// ComputePool filters candidates down to the currently eligible pool. When
// ignoreWinners is false the input is returned unchanged; otherwise every
// candidate whose case-insensitive key is in excluded is removed. Order is
// preserved either way.
func ComputePool(candidates []string, excluded map[string]struct{}, ignoreWinners bool) []string {
	if !ignoreWinners {
		return candidates
	}

	pool := make([]string, 0, len(candidates))
	for _, name := range candidates {
		if _, won := excluded[normalize.Key(name)]; won {
			continue
		}
		pool = append(pool, name)
	}
	return pool
}

// SampleUnique draws k distinct winners from pool, uniformly at random.
// k is clamped to [1, len(pool)]: a non-positive count draws one winner and
// an oversized count drains the pool. An empty pool yields ErrEmptyPool.
//
// The draw is a Fisher-Yates permutation over a copy of the pool, so every
// candidate has equal probability of landing in any output position and no
// winner can repeat. The pool itself is never mutated.
func SampleUnique(pool []string, k int, src Source) ([]string, error) {
	if len(pool) == 0 {
		return nil, ErrEmptyPool
	}
	if src == nil {
		src = DefaultSource()
	}

	if k < 1 {
		k = 1
	}
	if k > len(pool) {
		k = len(pool)
	}

	return Shuffle(pool, src)[:k], nil
}

// Shuffle returns a uniform random permutation of list. The input is left
// untouched.
func Shuffle(list []string, src Source) []string {
	if src == nil {
		src = DefaultSource()
	}

	out := make([]string, len(list))
	copy(out, list)
	for i := len(out) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
