// Package layout: sentinel errors and the capacity error type.
//
// Error policy:
//   - Branch with errors.Is(err, ErrX); never match strings.
//   - *CapacityError is the one structured error: it carries the counts
//     and unwraps to ErrCapacityExceeded so errors.Is still applies.
package layout

import (
	"errors"
	"fmt"
)

// ErrCapacityExceeded indicates the requested design needs more wells
// than the plate provides. Returned wrapped in a *CapacityError.
// Usage: if errors.Is(err, layout.ErrCapacityExceeded) { /* smaller design */ }.
var ErrCapacityExceeded = errors.New("layout: plate capacity exceeded")

// ErrEmptyDesign indicates an allocation request with no groups or no
// timepoints — there is nothing to place.
var ErrEmptyDesign = errors.New("layout: design has no groups or no timepoints")

// ErrBadReplicates indicates a biological or technical replicate count
// below 1.
var ErrBadReplicates = errors.New("layout: replicate counts must be ≥ 1")

// CapacityError reports how many wells the design needs versus how many
// the plate offers. It unwraps to ErrCapacityExceeded.
type CapacityError struct {
	// Required is the well count the design demands.
	Required int
	// Available is the plate's total well count.
	Available int
}

// Error implements the error interface.
func (e *CapacityError) Error() string {
	return fmt.Sprintf("layout: design needs %d wells but plate has %d", e.Required, e.Available)
}

// Unwrap makes errors.Is(err, ErrCapacityExceeded) hold.
func (e *CapacityError) Unwrap() error {
	return ErrCapacityExceeded
}
