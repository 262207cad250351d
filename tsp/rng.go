// Package tsp - RNG utilities shared by the stochastic solvers.
//
// All randomness flows through a seeded *rand.Rand created here; no component
// ever reaches for time-based sources. Same seed ⇒ identical run on every
// platform. math/rand.Rand is not goroutine-safe: concurrent runs must each
// build their own stream (Solve does so per call).
package tsp

import "math/rand"

// defaultRNGSeed is the fixed stream used when callers pass seed==0, keeping
// even "unseeded" runs reproducible.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand for the given seed.
// Policy: seed==0 ⇒ defaultRNGSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream identifier into a fresh 64-bit
// seed using the SplitMix64 finalizer, so derived substreams are uncorrelated.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// deriveRNG creates an independent substream from base. base.Int63() is
// consumed on purpose: reusing the same stream id twice still yields distinct
// children. Call during setup, not in hot loops.
func deriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	parent := defaultRNGSeed
	if base != nil {
		parent = base.Int63()
	}

	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

// shuffleInPlace performs an in-place Fisher–Yates shuffle of a using rng.
func shuffleInPlace(a []int, rng *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// randomPerm returns a permutation of 0..n-1 drawn from rng.
func randomPerm(n int, rng *rand.Rand) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	shuffleInPlace(p, rng)

	return p
}
