// Package layout: the fixed group color palette.
package layout

// palette holds the group colors in assignment order. Distinct group
// labels (including the synthetic control/blank labels) receive colors
// by first-occurrence order, wrapping around once exhausted.
var palette = []string{
	"#e6194b", // red
	"#3cb44b", // green
	"#4363d8", // blue
	"#f58231", // orange
	"#911eb4", // purple
	"#42d4f4", // cyan
	"#f032e6", // magenta
	"#bfef45", // lime
	"#fabed4", // pink
	"#469990", // teal
	"#9a6324", // brown
	"#ffe119", // yellow
}

// Palette returns a copy of the fixed color palette, in assignment order.
func Palette() []string {
	out := make([]string, len(palette))
	copy(out, palette)
	return out
}

// colorAssigner hands each distinct group label a palette color on first
// occurrence. Not safe for concurrent use; one assigner per allocation.
type colorAssigner struct {
	byGroup map[string]string
	next    int
}

func newColorAssigner() *colorAssigner {
	return &colorAssigner{byGroup: make(map[string]string)}
}

// color returns the group's color, assigning the next palette slot
// (modulo palette length) on first sight.
func (c *colorAssigner) color(group string) string {
	if col, ok := c.byGroup[group]; ok {
		return col
	}
	col := palette[c.next%len(palette)]
	c.byGroup[group] = col
	c.next++
	return col
}
