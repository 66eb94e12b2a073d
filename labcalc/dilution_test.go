// Package labcalc_test: dilution calculator.
package labcalc_test

import (
	"errors"
	"testing"

	"github.com/SnigdhaBhuyan/WellPlatesExperiments/labcalc"
	"github.com/SnigdhaBhuyan/WellPlatesExperiments/units"
	"github.com/stretchr/testify/require"
)

// TestDilution_Canonical is the textbook worked example: 100 µM stock to
// 10 µM in 1000 µL ⇒ 100 µL stock + 900 µL diluent, 10×.
func TestDilution_Canonical(t *testing.T) {
	t.Parallel()

	r, err := labcalc.Dilution("100", "µM", "10", "µM", "1000", "µL")
	require.NoError(t, err)
	require.InDelta(t, 100, r.StockVolumeUL, 1e-9)
	require.InDelta(t, 900, r.DiluentVolumeUL, 1e-9)
	require.InDelta(t, 10, r.DilutionFactor, 1e-9)
}

// TestDilution_MixedUnits converts both sides to the family base before
// comparing: 1 mM stock to 50 µM in 2 mL.
func TestDilution_MixedUnits(t *testing.T) {
	t.Parallel()

	r, err := labcalc.Dilution("1", "mM", "50", "µM", "2", "mL")
	require.NoError(t, err)
	require.InDelta(t, 100, r.StockVolumeUL, 1e-9) // 50/1000 × 2000
	require.InDelta(t, 1900, r.DiluentVolumeUL, 1e-9)
	require.InDelta(t, 20, r.DilutionFactor, 1e-9)
}

// TestDilution_ScientificNotation accepts power-of-ten fields.
func TestDilution_ScientificNotation(t *testing.T) {
	t.Parallel()

	r, err := labcalc.Dilution("1×10^3", "ng/mL", "1e2", "ng/mL", "5×10^2", "µL")
	require.NoError(t, err)
	require.InDelta(t, 50, r.StockVolumeUL, 1e-9)
	require.InDelta(t, 10, r.DilutionFactor, 1e-9)
}

// TestDilution_Ordering rejects stock ≤ target, including equality and
// cases only visible after unit conversion.
func TestDilution_Ordering(t *testing.T) {
	t.Parallel()

	_, err := labcalc.Dilution("10", "µM", "10", "µM", "100", "µL")
	require.True(t, errors.Is(err, labcalc.ErrConcentrationOrdering))

	_, err = labcalc.Dilution("5", "µM", "100", "µM", "100", "µL")
	require.True(t, errors.Is(err, labcalc.ErrConcentrationOrdering))

	// 0.5 mM = 500 µM < 600 µM even though 0.5 < 600 reads "smaller".
	_, err = labcalc.Dilution("0.5", "mM", "600", "µM", "100", "µL")
	require.True(t, errors.Is(err, labcalc.ErrConcentrationOrdering))

	// …and 2 mM = 2000 µM > 600 µM succeeds despite 2 < 600.
	_, err = labcalc.Dilution("2", "mM", "600", "µM", "100", "µL")
	require.NoError(t, err)
}

// TestDilution_InvalidInput covers unparseable and non-positive fields.
func TestDilution_InvalidInput(t *testing.T) {
	t.Parallel()

	cases := [][6]string{
		{"abc", "µM", "10", "µM", "1000", "µL"},
		{"", "µM", "10", "µM", "1000", "µL"},
		{"100", "µM", "-10", "µM", "1000", "µL"},
		{"100", "µM", "0", "µM", "1000", "µL"},
		{"100", "µM", "10", "µM", "0", "µL"},
		{"100", "µM", "10", "µM", "2+2", "µL"},
	}
	for _, c := range cases {
		_, err := labcalc.Dilution(c[0], c[1], c[2], c[3], c[4], c[5])
		require.Truef(t, errors.Is(err, labcalc.ErrInvalidInput),
			"Dilution(%v) = %v; want ErrInvalidInput", c, err)
	}
}

// TestDilution_UnitFailures covers unknown and cross-family units.
func TestDilution_UnitFailures(t *testing.T) {
	t.Parallel()

	_, err := labcalc.Dilution("100", "µMol", "10", "µM", "1000", "µL")
	require.True(t, errors.Is(err, units.ErrUnknownUnit))

	_, err = labcalc.Dilution("100", "µM", "10", "ng/mL", "1000", "µL")
	require.True(t, errors.Is(err, units.ErrIncompatibleUnits))

	// A concentration unit in the volume slot is incompatible, not unknown.
	_, err = labcalc.Dilution("100", "µM", "10", "µM", "1000", "mM")
	require.True(t, errors.Is(err, units.ErrIncompatibleUnits))
}
