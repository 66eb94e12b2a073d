// Package layout assigns experiment entries to plate wells and
// post-processes the assignment: deterministic allocation, edge-effect
// correction, and seedable randomization.
//
// What:
//
//   - Allocate maps groups × timepoints × bio/tech replicates (plus
//     optional positive/negative controls and blanks) onto wells in a
//     fixed, reproducible order, or fails atomically when the plate is
//     too small.
//   - CorrectEdgeEffects swaps experimental entries off perimeter wells
//     into interior wells occupied by controls/blanks, which tolerate
//     evaporation and thermal-gradient artifacts better.
//   - Shuffle permutes the well assignment with a Fisher–Yates pass over
//     an injectable random source.
//
// Why:
//
//   - Pipetting plans, exports and re-runs must agree well-for-well, so
//     allocation is a pure function of its inputs.
//   - Randomized placement guards against positional bias; a seedable
//     source keeps randomized plates reproducible in protocols.
//
// Allocation order (row-major wells, index 0 first):
//
//  1. experimental block: groups (input order) → timepoints (input
//     order) → bio replicate 1..B → tech replicate 1..T;
//  2. control block (optional): per timepoint × bio × tech, one positive
//     then one negative control well;
//  3. blank block (optional): per timepoint × tech, bio replicate
//     pinned to 1.
//
// Complexity:
//
//   - Allocate, Shuffle: O(wells).
//   - CorrectEdgeEffects: O(wells²) worst case (candidate scan per edge
//     entry); plates are ≤ 384 wells, so this is immaterial.
//
// Errors:
//
//   - ErrCapacityExceeded (via *CapacityError, carrying the required and
//     available counts): the design needs more wells than the plate has.
//   - ErrEmptyDesign: no groups or no timepoints.
//   - ErrBadReplicates: a replicate count below 1.
//
// Determinism: everything except Shuffle is fully deterministic; Shuffle
// is deterministic given the caller's seeded *rand.Rand (nil selects a
// fixed default seed).
package layout
