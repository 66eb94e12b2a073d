// Package labcalc: sentinel errors.
package labcalc

import "errors"

// ErrInvalidInput indicates a numeric field that failed to parse or is
// outside its domain (non-positive concentration, zero volume, α or
// power outside (0,1), …).
// Usage: if errors.Is(err, labcalc.ErrInvalidInput) { /* reject field */ }.
var ErrInvalidInput = errors.New("labcalc: invalid input")

// ErrConcentrationOrdering indicates a stock concentration at or below
// the target: no dilution can concentrate a sample.
// Usage: if errors.Is(err, labcalc.ErrConcentrationOrdering) { /* swap fields? */ }.
var ErrConcentrationOrdering = errors.New("labcalc: stock concentration must exceed target")
