// Package layout: randomized well assignment.
package layout

import "math/rand"

// Shuffle permutes which well each entry occupies, in place, using a
// Fisher–Yates pass over the extracted well list. The multiset of wells
// and the multiset of (group, timepoint, bio, tech) tuples are both
// preserved; only their pairing changes.
//
// rng is the injectable random source; pass layout.NewRand(seed) for a
// reproducible permutation, or nil for the fixed default stream.
//
// Complexity: O(n).
func Shuffle(l Layout, rng *rand.Rand) {
	shuffleWellsInPlace(l, rng)
}
