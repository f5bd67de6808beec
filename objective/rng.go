// Package objective - deterministic random sources for runs.
//
// Goals:
//   - Determinism: same seed ⇒ identical runs across platforms.
//   - One factory; no time-based seeding hidden anywhere in the core.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Each run owns its own stream;
//     use DeriveSeed to give concurrent runs independent seeds.
package objective

import "math/rand"

// DefaultSeed is used when callers pass seed == 0.
const DefaultSeed int64 = 1

// NewRand returns a deterministic *rand.Rand.
// Policy: seed == 0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// DeriveSeed mixes a parent seed and a run index into a new seed
// (SplitMix64 finalizer), so that runs 0..k-1 of a benchmark get
// decorrelated streams from one configured seed.
//
// Complexity: O(1).
func DeriveSeed(parent int64, run uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (run + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// RandomPath fills dst (grown if needed) with a uniformly random
// permutation of 1..n using an in-place Fisher–Yates shuffle.
//
// Complexity: O(n) time.
func RandomPath(dst []int, n int, rng *rand.Rand) []int {
	if cap(dst) < n {
		dst = make([]int, n)
	}
	dst = dst[:n]

	var i, j int
	for i = 0; i < n; i++ {
		dst[i] = i + 1
	}
	for i = n - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		dst[i], dst[j] = dst[j], dst[i]
	}

	return dst
}
