// Package labcalc: colony-count back-calculation.
package labcalc

import "fmt"

// ColoniesToConcentration back-calculates the original culture density
// (CFU/mL) from a plate count:
//
//	CFU/mL = colonyCount × dilutionFactor ÷ volumePlatedML
//
// Requires colonyCount ≥ 0 (an empty plate is a valid observation),
// volumePlatedML > 0 and dilutionFactor > 0; otherwise ErrInvalidInput.
//
// Complexity: O(1).
func ColoniesToConcentration(colonyCount, volumePlatedML, dilutionFactor float64) (float64, error) {
	if colonyCount < 0 {
		return 0, fmt.Errorf("colony count must be ≥ 0, got %v: %w", colonyCount, ErrInvalidInput)
	}
	if volumePlatedML <= 0 {
		return 0, fmt.Errorf("plated volume must be positive, got %v: %w", volumePlatedML, ErrInvalidInput)
	}
	if dilutionFactor <= 0 {
		return 0, fmt.Errorf("dilution factor must be positive, got %v: %w", dilutionFactor, ErrInvalidInput)
	}
	return colonyCount * dilutionFactor / volumePlatedML, nil
}
