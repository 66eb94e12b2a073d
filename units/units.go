// Package units: the family/scale table and conversion operations.
package units

import (
	"fmt"
	"strings"
)

// Family identifies the physical quantity a unit measures. A unit
// belongs to exactly one family; conversion is defined only within one.
type Family int

const (
	// Molar concentration; canonical unit µM.
	Molar Family = iota
	// Mass concentration; canonical unit µg/mL.
	Mass
	// Biological density; canonical unit CFU/mL.
	Biological
	// Volume; canonical unit µL.
	Volume
)

// String returns the family name.
func (f Family) String() string {
	switch f {
	case Molar:
		return "molar"
	case Mass:
		return "mass"
	case Biological:
		return "biological"
	case Volume:
		return "volume"
	default:
		return fmt.Sprintf("Family(%d)", int(f))
	}
}

// Canonical returns the family's canonical base unit string.
func (f Family) Canonical() string {
	switch f {
	case Molar:
		return "µM"
	case Mass:
		return "µg/mL"
	case Biological:
		return "CFU/mL"
	case Volume:
		return "µL"
	default:
		return ""
	}
}

// entry binds a unit to its family and its scale factor to the family's
// canonical unit: value_canonical = value * factor.
type entry struct {
	family Family
	factor float64
}

// table is the single source of truth for unit resolution. Keys use the
// µ spelling; lookup normalizes ASCII "u" before consulting it.
var table = map[string]entry{
	// Molar, base µM.
	"M":  {Molar, 1e6},
	"mM": {Molar, 1e3},
	"µM": {Molar, 1},
	"nM": {Molar, 1e-3},
	"pM": {Molar, 1e-6},
	// Mass concentration, base µg/mL.
	"g/mL":  {Mass, 1e6},
	"mg/mL": {Mass, 1e3},
	"µg/mL": {Mass, 1},
	"ng/mL": {Mass, 1e-3},
	"pg/mL": {Mass, 1e-6},
	// Biological density, base CFU/mL.
	"CFU/mL": {Biological, 1},
	"CFU/µL": {Biological, 1e3},
	// Volume, base µL.
	"L":  {Volume, 1e6},
	"mL": {Volume, 1e3},
	"µL": {Volume, 1},
	"nL": {Volume, 1e-3},
}

// lookup resolves a unit string, folding the ASCII-µ spelling.
func lookup(unit string) (entry, error) {
	u := strings.TrimSpace(unit)
	if e, ok := table[u]; ok {
		return e, nil
	}
	// "uM" → "µM", "ug/mL" → "µg/mL", "CFU/uL" → "CFU/µL".
	if folded := strings.Replace(u, "u", "µ", 1); folded != u {
		if e, ok := table[folded]; ok {
			return e, nil
		}
	}
	return entry{}, fmt.Errorf("unit %q: %w", unit, ErrUnknownUnit)
}

// FamilyOf reports the family a unit belongs to.
// Returns ErrUnknownUnit for unit strings outside the table.
// Complexity: O(1).
func FamilyOf(unit string) (Family, error) {
	e, err := lookup(unit)
	if err != nil {
		return 0, err
	}
	return e.family, nil
}

// ToCanonical scales value from unit into the unit's family base
// (µM, µg/mL, CFU/mL or µL).
// Complexity: O(1).
func ToCanonical(value float64, unit string) (float64, error) {
	e, err := lookup(unit)
	if err != nil {
		return 0, err
	}
	return value * e.factor, nil
}

// FromCanonical scales a family-base value back into unit, the inverse
// of ToCanonical.
// Complexity: O(1).
func FromCanonical(value float64, unit string) (float64, error) {
	e, err := lookup(unit)
	if err != nil {
		return 0, err
	}
	return value / e.factor, nil
}

// Convert moves value from one unit to another within the same family.
// Cross-family pairs return ErrIncompatibleUnits; unknown units return
// ErrUnknownUnit (the from unit is checked first).
// Complexity: O(1).
func Convert(value float64, fromUnit, toUnit string) (float64, error) {
	from, err := lookup(fromUnit)
	if err != nil {
		return 0, err
	}
	to, err := lookup(toUnit)
	if err != nil {
		return 0, err
	}
	if from.family != to.family {
		return 0, fmt.Errorf("%s (%s) → %s (%s): %w",
			fromUnit, from.family, toUnit, to.family, ErrIncompatibleUnits)
	}
	return value * from.factor / to.factor, nil
}
