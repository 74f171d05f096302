// Package schedule - PRNG adapter for DFSOpt2 (spec.md §9, "PRNG adapter").
//
// DFSOpt2 needs a uniform Fisher-Yates shuffle of the candidate swap list on
// every pass. This file centralizes that shuffle and a small seeded
// constructor, in the same spirit as tsp/rng.go's rngFromSeed/shuffleIntsInPlace:
// a single deterministic source, no time-based entropy hidden anywhere.
package schedule

import "math/rand"

// defaultRNGSeed is the fixed seed substituted when a caller passes seed==0,
// so NewRNG(0) is reproducible rather than accidentally time-seeded.
const defaultRNGSeed int64 = 1

// NewRNG returns a deterministic *rand.Rand for seed (seed==0 substitutes
// defaultRNGSeed). Convenience for callers of DFSOpt2 who only want seeded
// determinism and do not need to construct their own math/rand.Rand.
func NewRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// shuffleSwaps performs an in-place Fisher-Yates shuffle of swaps using rng.
// If rng is nil, a deterministic default stream is used.
func shuffleSwaps[T comparable](swaps []Swap[T], rng *rand.Rand) {
	r := rng
	if r == nil {
		r = NewRNG(0)
	}

	for i := len(swaps) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		swaps[i], swaps[j] = swaps[j], swaps[i]
	}
}
