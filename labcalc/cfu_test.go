// Package labcalc_test: CFU distribution calculator.
package labcalc_test

import (
	"errors"
	"testing"

	"github.com/SnigdhaBhuyan/WellPlatesExperiments/labcalc"
	"github.com/SnigdhaBhuyan/WellPlatesExperiments/units"
	"github.com/stretchr/testify/require"
)

// TestCFUDistribution_PerML: 2.5×10^8 CFU/mL stock to 1×10^6 CFU/mL in
// 96 wells of 200 µL.
func TestCFUDistribution_PerML(t *testing.T) {
	t.Parallel()

	r, err := labcalc.CFUDistribution("2.5×10^8", "CFU/mL", "1×10^6", "CFU/mL", 200, 96, 0.32)
	require.NoError(t, err)
	require.InDelta(t, 19200, r.TotalVolumeUL, 1e-9)
	require.InDelta(t, 76.8, r.StockVolumeUL, 1e-9)
	require.InDelta(t, 19123.2, r.DiluentVolumeUL, 1e-9)
	require.InDelta(t, 250, r.DilutionFactor, 1e-9)
	require.InDelta(t, 625000, r.CFUPerCm2, 1e-6) // 1e6 × 0.2 mL ÷ 0.32 cm²
	require.InDelta(t, 30.72, r.TotalSurfaceAreaCm2, 1e-9)
}

// TestCFUDistribution_TargetBases pins each target-unit base conversion
// via the resulting dilution factor (stock 1e8 CFU/mL, 200 µL wells,
// 0.32 cm²).
func TestCFUDistribution_TargetBases(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		target     string
		targetUnit string
		wantFactor float64 // 1e8 ÷ target-as-CFU/mL
	}{
		{"per mL", "1e6", "CFU/mL", 100},
		{"per µL", "1e3", "CFU/µL", 100},              // ×1000 ⇒ 1e6 CFU/mL
		{"per µL ascii", "1e3", "CFU/uL", 100},        // u spelling
		{"per well", "2e5", "CFU/well", 500},          // ÷0.2 mL ⇒ 1e6 CFU/mL
		{"per cm²", "1e5", "CFU/cm²", 100000.0 / 6.4}, // ×0.32×0.2 ⇒ 6400 CFU/mL
		{"per cm2 ascii", "1e5", "CFU/cm2", 100000.0 / 6.4},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			r, err := labcalc.CFUDistribution("1e8", "CFU/mL", tc.target, tc.targetUnit, 200, 24, 0.32)
			require.NoError(t, err)
			require.InDelta(t, tc.wantFactor, r.DilutionFactor, 1e-6)
		})
	}
}

// TestCFUDistribution_Ordering: stock ≤ target fails with
// ErrConcentrationOrdering no matter which units expressed the target.
func TestCFUDistribution_Ordering(t *testing.T) {
	t.Parallel()

	cases := []struct {
		stock, stockUnit, target, targetUnit string
	}{
		{"1e6", "CFU/mL", "1e6", "CFU/mL"},   // equal
		{"1e6", "CFU/mL", "2e6", "CFU/mL"},   // plainly smaller
		{"1e3", "CFU/µL", "2e6", "CFU/mL"},   // 1e6 CFU/mL after ×1000
		{"1e6", "CFU/mL", "2e5", "CFU/well"}, // 2e5/0.2 = 1e6 ⇒ equal
		{"6e3", "CFU/mL", "1e5", "CFU/cm²"},  // 1e5×0.064 = 6.4e3 > 6e3
	}
	for _, c := range cases {
		_, err := labcalc.CFUDistribution(c.stock, c.stockUnit, c.target, c.targetUnit, 200, 24, 0.32)
		require.Truef(t, errors.Is(err, labcalc.ErrConcentrationOrdering),
			"CFUDistribution(%+v) = %v; want ErrConcentrationOrdering", c, err)
	}
}

// TestCFUDistribution_Failures: unit and domain validation.
func TestCFUDistribution_Failures(t *testing.T) {
	t.Parallel()

	_, err := labcalc.CFUDistribution("1e8", "CFU/mL", "1e6", "CFU/acre", 200, 24, 0.32)
	require.True(t, errors.Is(err, units.ErrUnknownUnit))

	_, err = labcalc.CFUDistribution("1e8", "µM", "1e6", "CFU/mL", 200, 24, 0.32)
	require.True(t, errors.Is(err, units.ErrIncompatibleUnits))

	_, err = labcalc.CFUDistribution("garbage", "CFU/mL", "1e6", "CFU/mL", 200, 24, 0.32)
	require.True(t, errors.Is(err, labcalc.ErrInvalidInput))

	_, err = labcalc.CFUDistribution("1e8", "CFU/mL", "1e6", "CFU/mL", 0, 24, 0.32)
	require.True(t, errors.Is(err, labcalc.ErrInvalidInput))

	_, err = labcalc.CFUDistribution("1e8", "CFU/mL", "1e6", "CFU/mL", 200, 0, 0.32)
	require.True(t, errors.Is(err, labcalc.ErrInvalidInput))

	_, err = labcalc.CFUDistribution("1e8", "CFU/mL", "1e6", "CFU/mL", 200, 24, -1)
	require.True(t, errors.Is(err, labcalc.ErrInvalidInput))
}
