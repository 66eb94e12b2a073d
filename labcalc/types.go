// Package labcalc: calculation result types.
package labcalc

// DilutionResult is the answer to a C1V1 = C2V2 problem. Volumes are in µL.
type DilutionResult struct {
	// StockVolumeUL is how much stock to pipette.
	StockVolumeUL float64
	// DiluentVolumeUL is how much diluent tops it up to the final volume.
	DiluentVolumeUL float64
	// DilutionFactor is stock ÷ target concentration.
	DilutionFactor float64
}

// CFUResult describes how to prepare a bacterial working suspension for
// a whole plate. Volumes are in µL.
type CFUResult struct {
	// StockVolumeUL is how much bacterial stock to pipette.
	StockVolumeUL float64
	// DiluentVolumeUL is how much diluent tops it up.
	DiluentVolumeUL float64
	// TotalVolumeUL is well volume × well count.
	TotalVolumeUL float64
	// DilutionFactor is stock ÷ target density.
	DilutionFactor float64
	// CFUPerCm2 is the delivered surface density per well.
	CFUPerCm2 float64
	// TotalSurfaceAreaCm2 is per-well surface area × well count.
	TotalSurfaceAreaCm2 float64
}

// SerialDilutionStep is one rung of a serial dilution ladder.
type SerialDilutionStep struct {
	// Step counts from 0 (the undiluted stock).
	Step int
	// Label is "Stock" at step 0, else "1:<factor^step>".
	Label string
	// Concentration is initial ÷ factor^step, in the caller's unit.
	Concentration float64
}

// PowerAnalysisResult is a two-group sample-size estimate.
type PowerAnalysisResult struct {
	// ZAlpha is the two-sided critical value Φ⁻¹(1−α/2).
	ZAlpha float64
	// ZBeta is Φ⁻¹(power).
	ZBeta float64
	// PerGroupSampleSize is ceil(2(zα+zβ)²/d²).
	PerGroupSampleSize int
	// TotalSampleSize is PerGroupSampleSize × group count.
	TotalSampleSize int
}
