// Package layout: core types, synthetic group labels, and options.
package layout

import "fmt"

// WellType classifies what a well holds.
type WellType int

const (
	// Experimental wells hold a treatment-group sample.
	Experimental WellType = iota
	// Control wells hold a positive or negative control.
	Control
	// Blank wells hold medium only, for background subtraction.
	Blank
)

// String returns the lowercase type name used in exports.
func (t WellType) String() string {
	switch t {
	case Experimental:
		return "experimental"
	case Control:
		return "control"
	case Blank:
		return "blank"
	default:
		return fmt.Sprintf("WellType(%d)", int(t))
	}
}

// Synthetic group labels for non-experimental entries. They take part in
// color assignment exactly like user-supplied group names.
const (
	// GroupPositiveControl labels positive-control wells.
	GroupPositiveControl = "Positive Control"
	// GroupNegativeControl labels negative-control wells.
	GroupNegativeControl = "Negative Control"
	// GroupBlank labels blank wells.
	GroupBlank = "Blank"
)

// Entry assigns one sample to one well. Well is the row-major well index
// on the plate the layout was allocated for (see plate.Format.Label for
// the "A1" rendering).
//
// Invariant: within one Layout no two entries share a Well.
type Entry struct {
	Well          int
	Group         string
	Timepoint     string
	BioReplicate  int
	TechReplicate int
	Type          WellType
	Color         string
}

// Layout is an ordered sequence of entries in allocation order (not
// well-sorted). It is created by Allocate and mutated in place only by
// CorrectEdgeEffects and Shuffle.
type Layout []Entry

// Wells returns the well indices in entry order. The slice is fresh.
func (l Layout) Wells() []int {
	out := make([]int, len(l))
	for i := range l {
		out[i] = l[i].Well
	}
	return out
}

// Options toggles the optional allocation blocks.
type Options struct {
	// IncludeControls adds one positive and one negative control well
	// per timepoint × bio replicate × tech replicate combination.
	IncludeControls bool
	// IncludeBlanks adds one blank well per timepoint × tech replicate
	// (bio replicate pinned to 1).
	IncludeBlanks bool
}

// DefaultOptions returns Options with no controls and no blanks.
func DefaultOptions() Options {
	return Options{}
}
