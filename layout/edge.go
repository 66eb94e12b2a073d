// Package layout: edge-effect correction.
package layout

import "github.com/SnigdhaBhuyan/WellPlatesExperiments/plate"

// CorrectEdgeEffects walks the layout in entry order and, for each
// experimental entry sitting on a perimeter well, swaps wells with the
// first control or blank entry occupying a non-edge well. Only the Well
// fields move; every other field stays with its entry. An experimental
// entry with no remaining interior candidate keeps its edge well — that
// is expected, not an error.
//
// Rationale: controls and blanks are individually less informative, so
// they absorb perimeter artifacts (evaporation, thermal gradients)
// better than experimental samples.
//
// The pass is idempotent: each swap moves a control/blank out of the
// interior pool and never adds one back, so the pass stops exactly when
// every edge experimental is fixed or the pool is empty, and a second
// pass finds nothing to do.
//
// Returns the number of swaps performed. Complexity: O(n²) worst case
// over the layout length n (≤ plate wells).
func CorrectEdgeEffects(l Layout, format plate.Format) int {
	swaps := 0
	for i := range l {
		if l[i].Type != Experimental || !format.IsEdge(l[i].Well) {
			continue
		}
		for j := range l {
			if l[j].Type == Experimental || format.IsEdge(l[j].Well) {
				continue
			}
			l[i].Well, l[j].Well = l[j].Well, l[i].Well
			swaps++
			break
		}
	}
	return swaps
}
