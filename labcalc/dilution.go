// Package labcalc: the C1V1 = C2V2 dilution calculator.
package labcalc

import (
	"fmt"

	"github.com/SnigdhaBhuyan/WellPlatesExperiments/scinum"
	"github.com/SnigdhaBhuyan/WellPlatesExperiments/units"
)

// parsePositive parses a user-typed numeric field and requires it to be
// strictly positive. Failures wrap ErrInvalidInput with the field name.
func parsePositive(field, raw string) (float64, error) {
	v, err := scinum.Parse(raw)
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", field, raw, ErrInvalidInput)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %v: %w", field, v, ErrInvalidInput)
	}
	return v, nil
}

// toVolumeUL converts a volume field to µL, insisting the unit really is
// a volume unit.
func toVolumeUL(field string, value float64, unit string) (float64, error) {
	fam, err := units.FamilyOf(unit)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", field, err)
	}
	if fam != units.Volume {
		return 0, fmt.Errorf("%s: %q is a %s unit: %w", field, unit, fam, units.ErrIncompatibleUnits)
	}
	ul, err := units.ToCanonical(value, unit)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", field, err)
	}
	return ul, nil
}

// Dilution solves C1V1 = C2V2: how much stock at stockConc and how much
// diluent produce finalVolume at targetConc. Concentrations must share a
// unit family; all three numeric fields are user-typed strings accepted
// by scinum.Parse.
//
//	StockVolumeUL   = targetConc × finalVolume ÷ stockConc
//	DiluentVolumeUL = finalVolume − StockVolumeUL
//	DilutionFactor  = stockConc ÷ targetConc
//
// Fails with ErrInvalidInput (unparseable/non-positive field),
// ErrConcentrationOrdering (stock ≤ target after conversion),
// units.ErrUnknownUnit, or units.ErrIncompatibleUnits.
//
// Complexity: O(1).
func Dilution(stockConc, stockUnit, targetConc, targetUnit, finalVolume, volumeUnit string) (DilutionResult, error) {
	stock, err := parsePositive("stock concentration", stockConc)
	if err != nil {
		return DilutionResult{}, err
	}
	target, err := parsePositive("target concentration", targetConc)
	if err != nil {
		return DilutionResult{}, err
	}
	volume, err := parsePositive("final volume", finalVolume)
	if err != nil {
		return DilutionResult{}, err
	}

	// Both concentrations into the shared canonical unit.
	famS, err := units.FamilyOf(stockUnit)
	if err != nil {
		return DilutionResult{}, fmt.Errorf("stock concentration: %w", err)
	}
	famT, err := units.FamilyOf(targetUnit)
	if err != nil {
		return DilutionResult{}, fmt.Errorf("target concentration: %w", err)
	}
	if famS != famT {
		return DilutionResult{}, fmt.Errorf("stock in %s, target in %s: %w",
			famS, famT, units.ErrIncompatibleUnits)
	}
	stockBase, _ := units.ToCanonical(stock, stockUnit)
	targetBase, _ := units.ToCanonical(target, targetUnit)

	volumeUL, err := toVolumeUL("final volume", volume, volumeUnit)
	if err != nil {
		return DilutionResult{}, err
	}

	if stockBase <= targetBase {
		return DilutionResult{}, fmt.Errorf("stock %v ≤ target %v %s: %w",
			stockBase, targetBase, famS.Canonical(), ErrConcentrationOrdering)
	}

	stockVol := targetBase * volumeUL / stockBase
	return DilutionResult{
		StockVolumeUL:   stockVol,
		DiluentVolumeUL: volumeUL - stockVol,
		DilutionFactor:  stockBase / targetBase,
	}, nil
}
