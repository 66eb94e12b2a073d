// Package layout: the deterministic allocator.
package layout

import (
	"github.com/SnigdhaBhuyan/WellPlatesExperiments/plate"
)

// RequiredWells computes how many wells a design demands before any
// assignment happens:
//
//	groups × timepoints × bioReps × techReps           experimental
//	+ 2 × timepoints × bioReps × techReps              if controls
//	+ timepoints × techReps                            if blanks
//
// Complexity: O(1).
func RequiredWells(groups, timepoints, bioReps, techReps int, opts Options) int {
	required := groups * timepoints * bioReps * techReps
	if opts.IncludeControls {
		required += 2 * timepoints * bioReps * techReps
	}
	if opts.IncludeBlanks {
		required += timepoints * techReps
	}
	return required
}

// Allocate assigns every design entry to a well on format, filling wells
// row-major from index 0 in the documented block order (experimental,
// then controls, then blanks). The call is atomic: on any failure no
// partial layout is returned.
//
// Returns ErrEmptyDesign, ErrBadReplicates, or a *CapacityError
// (unwrapping to ErrCapacityExceeded) carrying the required and
// available well counts.
//
// Complexity: O(wells) time and memory.
func Allocate(groups, timepoints []string, bioReps, techReps int, format plate.Format, opts Options) (Layout, error) {
	if len(groups) == 0 || len(timepoints) == 0 {
		return nil, ErrEmptyDesign
	}
	if bioReps < 1 || techReps < 1 {
		return nil, ErrBadReplicates
	}

	required := RequiredWells(len(groups), len(timepoints), bioReps, techReps, opts)
	if required > format.WellCount {
		return nil, &CapacityError{Required: required, Available: format.WellCount}
	}

	colors := newColorAssigner()
	l := make(Layout, 0, required)
	next := 0 // next free row-major well index

	place := func(group, timepoint string, bio, tech int, typ WellType) {
		l = append(l, Entry{
			Well:          next,
			Group:         group,
			Timepoint:     timepoint,
			BioReplicate:  bio,
			TechReplicate: tech,
			Type:          typ,
			Color:         colors.color(group),
		})
		next++
	}

	// Experimental block: groups → timepoints → bio → tech.
	for _, g := range groups {
		for _, tp := range timepoints {
			for bio := 1; bio <= bioReps; bio++ {
				for tech := 1; tech <= techReps; tech++ {
					place(g, tp, bio, tech, Experimental)
				}
			}
		}
	}

	// Control block: per timepoint × bio × tech, positive then negative.
	if opts.IncludeControls {
		for _, tp := range timepoints {
			for bio := 1; bio <= bioReps; bio++ {
				for tech := 1; tech <= techReps; tech++ {
					place(GroupPositiveControl, tp, bio, tech, Control)
					place(GroupNegativeControl, tp, bio, tech, Control)
				}
			}
		}
	}

	// Blank block: per timepoint × tech, bio replicate pinned to 1.
	if opts.IncludeBlanks {
		for _, tp := range timepoints {
			for tech := 1; tech <= techReps; tech++ {
				place(GroupBlank, tp, 1, tech, Blank)
			}
		}
	}

	return l, nil
}
