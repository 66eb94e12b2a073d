// Package labcalc: CFU distribution across a plate.
package labcalc

import (
	"fmt"
	"strings"

	"github.com/SnigdhaBhuyan/WellPlatesExperiments/units"
)

// CFU target-unit tokens accepted by CFUDistribution. "u" may be written
// for "µ" and "cm2" for "cm²".
const (
	CFUPerML   = "CFU/mL"
	CFUPerUL   = "CFU/µL"
	CFUPerWell = "CFU/well"
	CFUPerCm2  = "CFU/cm²"
)

// targetToPerML converts a target density in targetUnit to CFU/mL, given
// the per-well volume (µL) and growth area (cm²):
//
//	CFU/mL   → as is
//	CFU/µL   → × 1000
//	CFU/well → ÷ (wellVolumeUL/1000)
//	CFU/cm²  → × surfaceAreaCm2 × wellVolumeUL/1000
func targetToPerML(target float64, targetUnit string, wellVolumeUL, surfaceAreaCm2 float64) (float64, error) {
	u := strings.TrimSpace(targetUnit)
	u = strings.Replace(u, "u", "µ", 1)
	u = strings.Replace(u, "cm2", "cm²", 1)
	switch u {
	case CFUPerML:
		return target, nil
	case CFUPerUL:
		return target * 1e3, nil
	case CFUPerWell:
		return target / (wellVolumeUL / 1000), nil
	case CFUPerCm2:
		return target * surfaceAreaCm2 * wellVolumeUL / 1000, nil
	default:
		return 0, fmt.Errorf("target unit %q: %w", targetUnit, units.ErrUnknownUnit)
	}
}

// CFUDistribution computes how to dilute a bacterial stock so that every
// well of the plate receives the target density. stockUnit must be a
// biological-density unit (CFU/mL or CFU/µL); targetUnit may additionally
// be per-well or per-cm², which are resolved against the supplied well
// volume and growth area. stockCFU and targetCFU are user-typed strings
// accepted by scinum.Parse ("2.5×10^8" etc.).
//
// Fails with ErrInvalidInput (unparseable/non-positive fields, wellCount
// < 1), ErrConcentrationOrdering when the stock density does not exceed
// the target after conversion — whatever units were supplied — plus the
// units sentinels for unit problems.
//
// Complexity: O(1).
func CFUDistribution(stockCFU, stockUnit, targetCFU, targetUnit string, wellVolumeUL float64, wellCount int, surfaceAreaCm2 float64) (CFUResult, error) {
	stock, err := parsePositive("stock density", stockCFU)
	if err != nil {
		return CFUResult{}, err
	}
	target, err := parsePositive("target density", targetCFU)
	if err != nil {
		return CFUResult{}, err
	}
	if wellVolumeUL <= 0 {
		return CFUResult{}, fmt.Errorf("well volume must be positive, got %v: %w", wellVolumeUL, ErrInvalidInput)
	}
	if wellCount < 1 {
		return CFUResult{}, fmt.Errorf("well count must be ≥ 1, got %d: %w", wellCount, ErrInvalidInput)
	}
	if surfaceAreaCm2 <= 0 {
		return CFUResult{}, fmt.Errorf("surface area must be positive, got %v: %w", surfaceAreaCm2, ErrInvalidInput)
	}

	fam, err := units.FamilyOf(stockUnit)
	if err != nil {
		return CFUResult{}, fmt.Errorf("stock density: %w", err)
	}
	if fam != units.Biological {
		return CFUResult{}, fmt.Errorf("stock density: %q is a %s unit: %w",
			stockUnit, fam, units.ErrIncompatibleUnits)
	}
	stockPerML, _ := units.ToCanonical(stock, stockUnit)

	targetPerML, err := targetToPerML(target, targetUnit, wellVolumeUL, surfaceAreaCm2)
	if err != nil {
		return CFUResult{}, err
	}

	if stockPerML <= targetPerML {
		return CFUResult{}, fmt.Errorf("stock %v ≤ target %v CFU/mL: %w",
			stockPerML, targetPerML, ErrConcentrationOrdering)
	}

	totalVolumeUL := wellVolumeUL * float64(wellCount)
	stockVol := targetPerML * totalVolumeUL / stockPerML

	return CFUResult{
		StockVolumeUL:       stockVol,
		DiluentVolumeUL:     totalVolumeUL - stockVol,
		TotalVolumeUL:       totalVolumeUL,
		DilutionFactor:      stockPerML / targetPerML,
		CFUPerCm2:           targetPerML * (wellVolumeUL / 1000) / surfaceAreaCm2,
		TotalSurfaceAreaCm2: surfaceAreaCm2 * float64(wellCount),
	}, nil
}
