// Package layout - RNG policy for randomization.
//
// This file centralizes deterministic random generation for Shuffle.
//
// Goals:
//   - Determinism: same seed ⇒ identical permutation across platforms.
//   - Encapsulation: one RNG factory; no time-based sources hidden anywhere.
//   - Safety: no panics; a nil source falls back to a fixed default seed.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand
//     across goroutines; give each caller its own NewRand.
package layout

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0
// or a nil source. The value is arbitrary but stable so that default
// randomization stays reproducible.
const defaultRNGSeed int64 = 1

// NewRand returns a deterministic *rand.Rand for Shuffle.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed is used verbatim.
//
// Complexity: O(1).
func NewRand(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// shuffleWellsInPlace applies a Fisher–Yates shuffle to the well indices
// of l using rng: for i from the last index down to 1, swap with a
// uniformly chosen j ≤ i. Entry order is untouched; only the pairing of
// wells to entries changes. If rng==nil the default deterministic
// stream is used.
//
// Complexity: O(n) time, O(n) extra space for the extracted well list.
func shuffleWellsInPlace(l Layout, rng *rand.Rand) {
	n := len(l)
	if n <= 1 {
		return
	}

	r := rng
	if r == nil {
		r = NewRand(0)
	}

	wells := l.Wells()
	for i := n - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		wells[i], wells[j] = wells[j], wells[i]
	}
	for i := range l {
		l[i].Well = wells[i]
	}
}
