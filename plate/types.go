// Package plate core types and well addressing.
package plate

import (
	"fmt"
	"strconv"
	"strings"
)

// Format describes one standard multi-well plate geometry.
// Catalog instances are fixed data; treat every Format as read-only.
// Invariants (held by the catalog, verified in tests):
//
//	Rows*Cols == WellCount
//	len(RowLabels) == Rows
type Format struct {
	// WellCount is the total number of wells (Rows × Cols).
	WellCount int
	// Rows and Cols define the grid dimensions.
	Rows, Cols int
	// RowLabels holds the row letters in top-to-bottom order ("A", "B", …).
	RowLabels []string
	// SurfaceAreaCm2 is the growth surface area of a single well, in cm².
	SurfaceAreaCm2 float64
	// MaxVolumeUL is the physical well capacity, in µL.
	MaxVolumeUL float64
	// WorkingVolumeUL is the recommended working volume, in µL.
	WorkingVolumeUL float64
}

// Index maps (row, col) to the row-major well index: row*Cols + col.
// Complexity: O(1).
func (f Format) Index(row, col int) int {
	return row*f.Cols + col
}

// Coordinate converts a row-major well index back to (row, col).
// Complexity: O(1).
func (f Format) Coordinate(idx int) (row, col int) {
	return idx / f.Cols, idx % f.Cols
}

// InBounds reports whether idx addresses a well on this plate.
// Complexity: O(1).
func (f Format) InBounds(idx int) bool {
	return idx >= 0 && idx < f.WellCount
}

// IsEdge reports whether idx lies on the plate perimeter: first or last
// row, first or last column. Edge wells are the positions most affected
// by evaporation and thermal gradients.
// Complexity: O(1).
func (f Format) IsEdge(idx int) bool {
	row, col := f.Coordinate(idx)
	return row == 0 || row == f.Rows-1 || col == 0 || col == f.Cols-1
}

// Label renders the conventional well name for idx: row letter followed
// by the 1-based column number ("A1", "H12", "P24").
// Out-of-range indices yield "" rather than panicking.
// Complexity: O(1).
func (f Format) Label(idx int) string {
	if !f.InBounds(idx) {
		return ""
	}
	row, col := f.Coordinate(idx)
	return f.RowLabels[row] + strconv.Itoa(col+1)
}

// ParseLabel is the inverse of Label: it maps "A1"-style names back to a
// row-major index. Leading/trailing whitespace is ignored and the row
// letter is case-insensitive. Returns ErrBadWellLabel for malformed
// labels and for positions outside this plate.
// Complexity: O(Rows + len(label)).
func (f Format) ParseLabel(label string) (int, error) {
	s := strings.ToUpper(strings.TrimSpace(label))
	if len(s) < 2 {
		return 0, fmt.Errorf("parse %q: %w", label, ErrBadWellLabel)
	}
	// Split into leading letters and trailing digits.
	split := 0
	for split < len(s) && s[split] >= 'A' && s[split] <= 'Z' {
		split++
	}
	letters, digits := s[:split], s[split:]
	if letters == "" || digits == "" {
		return 0, fmt.Errorf("parse %q: %w", label, ErrBadWellLabel)
	}
	row := -1
	for i, rl := range f.RowLabels {
		if rl == letters {
			row = i
			break
		}
	}
	if row < 0 {
		return 0, fmt.Errorf("parse %q: row %q not on plate: %w", label, letters, ErrBadWellLabel)
	}
	col, err := strconv.Atoi(digits)
	if err != nil || col < 1 || col > f.Cols {
		return 0, fmt.Errorf("parse %q: column %q not on plate: %w", label, digits, ErrBadWellLabel)
	}
	return f.Index(row, col-1), nil
}
