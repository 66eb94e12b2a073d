// Package plate: the fixed format catalog.
//
// Surface areas and volumes follow the commonly published values for
// standard tissue-culture plates. All volumes are in µL, areas in cm².
package plate

import "fmt"

// rowLetters builds the row-label sequence for n rows: "A".."P" covers
// every catalog format (384-well tops out at 16 rows).
func rowLetters(n int) []string {
	labels := make([]string, n)
	for i := 0; i < n; i++ {
		labels[i] = string(rune('A' + i))
	}
	return labels
}

// The six catalog entries. Treat as read-only.
var (
	// Format6 is the 6-well plate: 2 rows × 3 columns.
	Format6 = Format{WellCount: 6, Rows: 2, Cols: 3, RowLabels: rowLetters(2),
		SurfaceAreaCm2: 9.6, MaxVolumeUL: 16800, WorkingVolumeUL: 2000}
	// Format12 is the 12-well plate: 3 rows × 4 columns.
	Format12 = Format{WellCount: 12, Rows: 3, Cols: 4, RowLabels: rowLetters(3),
		SurfaceAreaCm2: 3.8, MaxVolumeUL: 6900, WorkingVolumeUL: 1000}
	// Format24 is the 24-well plate: 4 rows × 6 columns.
	Format24 = Format{WellCount: 24, Rows: 4, Cols: 6, RowLabels: rowLetters(4),
		SurfaceAreaCm2: 1.9, MaxVolumeUL: 3400, WorkingVolumeUL: 500}
	// Format48 is the 48-well plate: 6 rows × 8 columns.
	Format48 = Format{WellCount: 48, Rows: 6, Cols: 8, RowLabels: rowLetters(6),
		SurfaceAreaCm2: 1.1, MaxVolumeUL: 1700, WorkingVolumeUL: 300}
	// Format96 is the 96-well plate: 8 rows × 12 columns.
	Format96 = Format{WellCount: 96, Rows: 8, Cols: 12, RowLabels: rowLetters(8),
		SurfaceAreaCm2: 0.32, MaxVolumeUL: 360, WorkingVolumeUL: 200}
	// Format384 is the 384-well plate: 16 rows × 24 columns.
	Format384 = Format{WellCount: 384, Rows: 16, Cols: 24, RowLabels: rowLetters(16),
		SurfaceAreaCm2: 0.056, MaxVolumeUL: 130, WorkingVolumeUL: 80}
)

// catalog keeps the formats in ascending well-count order.
var catalog = []Format{Format6, Format12, Format24, Format48, Format96, Format384}

// Formats returns the full catalog in ascending well-count order.
// The returned slice is a fresh copy; the catalog itself is never mutated.
// Complexity: O(1) entries, O(n) copy.
func Formats() []Format {
	out := make([]Format, len(catalog))
	copy(out, catalog)
	return out
}

// ByWellCount looks up the catalog entry with the given total well count.
// Returns ErrUnknownFormat for any count other than 6/12/24/48/96/384.
// Complexity: O(len(catalog)).
func ByWellCount(n int) (Format, error) {
	for _, f := range catalog {
		if f.WellCount == n {
			return f, nil
		}
	}
	return Format{}, fmt.Errorf("no %d-well plate: %w", n, ErrUnknownFormat)
}
