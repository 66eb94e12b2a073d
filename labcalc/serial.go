// Package labcalc: serial dilution ladders.
package labcalc

import (
	"fmt"
	"math"
	"strconv"
)

// SerialDilutionSeries produces the ladder obtained by repeatedly
// diluting initial by factor: exactly steps+1 entries, where entry i has
// concentration initial ÷ factor^i and label "Stock" (i = 0) or
// "1:<factor^i>". The slice is computed fresh on every call.
//
// Requires initial > 0, factor > 1 and steps ≥ 0; otherwise
// ErrInvalidInput.
//
// Complexity: O(steps).
func SerialDilutionSeries(initial, factor float64, steps int) ([]SerialDilutionStep, error) {
	if initial <= 0 {
		return nil, fmt.Errorf("initial concentration must be positive, got %v: %w", initial, ErrInvalidInput)
	}
	if factor <= 1 {
		return nil, fmt.Errorf("dilution factor must exceed 1, got %v: %w", factor, ErrInvalidInput)
	}
	if steps < 0 {
		return nil, fmt.Errorf("steps must be ≥ 0, got %d: %w", steps, ErrInvalidInput)
	}

	series := make([]SerialDilutionStep, steps+1)
	for i := 0; i <= steps; i++ {
		cum := math.Pow(factor, float64(i))
		label := "Stock"
		if i > 0 {
			label = "1:" + strconv.FormatFloat(cum, 'f', -1, 64)
		}
		series[i] = SerialDilutionStep{
			Step:          i,
			Label:         label,
			Concentration: initial / cum,
		}
	}
	return series, nil
}
