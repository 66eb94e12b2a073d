// Package plate: sentinel errors.
//
// Error policy (matches the rest of the module):
//   - Only package-level sentinels are exposed.
//   - Callers MUST branch with errors.Is(err, ErrX), never string matching.
//   - Implementations attach context with %w wrapping at the call site.
package plate

import "errors"

// ErrUnknownFormat indicates a requested well count with no catalog entry.
// Valid counts are exactly 6, 12, 24, 48, 96 and 384.
// Usage: if errors.Is(err, plate.ErrUnknownFormat) { /* reject input */ }.
var ErrUnknownFormat = errors.New("plate: unknown plate format")

// ErrBadWellLabel indicates a well label that is malformed ("", "7", "A0")
// or addresses a position outside the plate ("Z99" on a 96-well plate).
// Usage: if errors.Is(err, plate.ErrBadWellLabel) { /* reject label */ }.
var ErrBadWellLabel = errors.New("plate: invalid well label")
