// Package labcalc: statistical power / sample-size analysis.
package labcalc

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// StatisticalPower estimates the per-group sample size for a two-sided
// two-group comparison at the given standardized effect size (Cohen's
// d), significance level α, and desired power:
//
//	zα = Φ⁻¹(1 − α/2)
//	zβ = Φ⁻¹(power)
//	n  = ceil( 2 (zα + zβ)² / d² )
//
// The inverse normal CDF is gonum's continuous quantile, valid for any
// probability in (0,1) — α = 0.03 or power = 0.85 work exactly like the
// textbook values.
//
// Requires effectSize > 0, α and power strictly inside (0,1), and
// groupCount ≥ 1; otherwise ErrInvalidInput.
//
// Complexity: O(1).
func StatisticalPower(effectSize, alpha, power float64, groupCount int) (PowerAnalysisResult, error) {
	if effectSize <= 0 {
		return PowerAnalysisResult{}, fmt.Errorf("effect size must be positive, got %v: %w", effectSize, ErrInvalidInput)
	}
	if alpha <= 0 || alpha >= 1 {
		return PowerAnalysisResult{}, fmt.Errorf("alpha must be in (0,1), got %v: %w", alpha, ErrInvalidInput)
	}
	if power <= 0 || power >= 1 {
		return PowerAnalysisResult{}, fmt.Errorf("power must be in (0,1), got %v: %w", power, ErrInvalidInput)
	}
	if groupCount < 1 {
		return PowerAnalysisResult{}, fmt.Errorf("group count must be ≥ 1, got %d: %w", groupCount, ErrInvalidInput)
	}

	zAlpha := distuv.UnitNormal.Quantile(1 - alpha/2)
	zBeta := distuv.UnitNormal.Quantile(power)

	z := zAlpha + zBeta
	perGroup := int(math.Ceil(2 * z * z / (effectSize * effectSize)))

	return PowerAnalysisResult{
		ZAlpha:             zAlpha,
		ZBeta:              zBeta,
		PerGroupSampleSize: perGroup,
		TotalSampleSize:    perGroup * groupCount,
	}, nil
}
