// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package draw implements pool computation and unbiased unique sampling.

# Pool Computation

ComputePool narrows a candidate list to the eligible pool for one draw:

	pool := draw.ComputePool(candidates, excluded, true)

With ignoreWinners false it is the identity; with it true, candidates whose
case-insensitive key appears in the exclusion set are filtered out, order
preserved. Note that exclusion matches by key, so with dedupe disabled a
drawn name's case-variant twin stays in the pool only until either twin wins.

# Sampling

SampleUnique performs one draw of k unique winners:

	winners, err := draw.SampleUnique(pool, 3, nil)

The requested count is clamped to [1, len(pool)] rather than rejected, and an
empty pool returns ErrEmptyPool. Internally the pool is Fisher-Yates shuffled
and the first k elements are taken, which gives every candidate the same
chance at every position and makes repeats impossible.

# Randomness

Sampling goes through the Source interface. Production callers pass nil (or
DefaultSource) for math/rand/v2; tests pass a seeded *rand.Rand for
reproducible draws. Fairness here is statistical, not cryptographic.
*/
package draw
