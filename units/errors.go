// Package units: sentinel errors.
package units

import "errors"

// ErrUnknownUnit indicates a unit string with no table entry. The value
// is never passed through unchanged: a typo ("µm" for "µM") must surface,
// not masquerade as a no-op conversion.
// Usage: if errors.Is(err, units.ErrUnknownUnit) { /* reject unit */ }.
var ErrUnknownUnit = errors.New("units: unknown unit")

// ErrIncompatibleUnits indicates a conversion between units of different
// physical families (e.g. µL → µg/mL).
// Usage: if errors.Is(err, units.ErrIncompatibleUnits) { /* reject pair */ }.
var ErrIncompatibleUnits = errors.New("units: incompatible unit families")
