// Package labcalc implements the stateless bench calculators: dilution,
// CFU distribution, serial dilution series, colony back-calculation, and
// statistical power analysis.
//
// What:
//
//   - Dilution: C1V1 = C2V2 — how much stock and diluent make a target
//     concentration at a final volume.
//   - CFUDistribution: dilute a bacterial stock so each well receives a
//     target density (per mL, per µL, per well, or per cm²).
//   - SerialDilutionSeries: the "Stock, 1:10, 1:100, …" ladder.
//   - ColoniesToConcentration: back-calculate a culture's CFU/mL from a
//     plated colony count.
//   - StatisticalPower: two-sided two-group sample-size estimate from
//     effect size, α, and power.
//
// Why:
//
//   - Concentration fields arrive as user-typed strings in scientific
//     notation; everything funnels through scinum.Parse and the units
//     tables so a typo'd unit or magnitude fails loudly instead of
//     producing a wrong pipetting volume.
//   - The inverse normal CDF comes from gonum's distuv, valid on all of
//     (0,1) — not a lookup table of canonical α values.
//
// Complexity:
//
//   - Everything is O(1) except SerialDilutionSeries, which is O(steps).
//
// Errors:
//
//   - ErrInvalidInput: unparseable or non-positive numeric field.
//   - ErrConcentrationOrdering: stock concentration ≤ target.
//   - units.ErrUnknownUnit / units.ErrIncompatibleUnits propagate from
//     unit resolution, wrapped with field context.
//
// All functions are pure: no state, no I/O, safe for concurrent callers.
package labcalc
