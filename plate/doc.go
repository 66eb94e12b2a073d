// Package plate defines the immutable catalog of standard multi-well
// plate formats and row-major well addressing.
//
// What:
//
//   - Format describes one plate geometry: well count, rows × cols,
//     row letters, growth surface area, and max/working volumes.
//   - Six fixed catalog entries: 6, 12, 24, 48, 96 and 384 wells.
//   - Wells are addressed either by row-major index 0..WellCount-1 or by
//     the conventional "A1" label (row letter + 1-based column).
//   - IsEdge classifies perimeter wells (outermost row or column), the
//     positions subject to evaporation and thermal-gradient artifacts.
//
// Why:
//
//   - Layout allocation fills wells in a deterministic row-major order,
//     so index arithmetic must live in one place.
//   - Edge-effect correction and exporters need the same label/index
//     mapping the allocator used.
//
// Complexity:
//
//   - Index, Coordinate, InBounds, IsEdge, Label: O(1).
//   - ParseLabel: O(len(label)).
//
// Errors:
//
//   - ErrUnknownFormat: requested well count is not in the catalog.
//   - ErrBadWellLabel: label is malformed or outside the plate.
//
// Catalog values are never mutated; Formats returns a fresh copy.
package plate
