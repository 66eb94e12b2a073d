// Package wellplates is the computation core of WellPlatesExperiments:
// design multi-well-plate experiments and run the supporting lab math,
// entirely in memory and without any I/O.
//
// 🧪 What does it do?
//
//	A small, deterministic library that brings together:
//		• Plate catalog: the six standard formats (6…384 wells) with
//		  geometry, surface area and volume data, plus A1-style addressing
//		• Layout allocation: map treatment groups × timepoints × replicates
//		  onto physical wells, with optional controls and blanks
//		• Edge-effect correction: move experimental samples off perimeter
//		  wells by swapping them with interior controls/blanks
//		• Randomization: seedable Fisher–Yates well permutation
//		• Calculators: dilution (C1V1=C2V2), CFU distribution, serial
//		  dilution series, colony back-calculation, statistical power
//		• Unit handling: scientific-notation parsing and unit conversion
//		  across the molar, mass, biological-density and volume families
//
// ✨ Why this shape?
//
//   - Pure computation – no rendering, storage, or network; callers own I/O
//   - Deterministic – identical inputs give identical layouts; randomness
//     only through an injectable, seedable generator
//   - Typed failures – sentinel errors matched with errors.Is, never panics
//     on user input
//
// Everything is organized under five subpackages:
//
//	plate/   — immutable plate-format catalog and well addressing
//	scinum/  — strict scientific-notation number parsing
//	units/   — family-aware unit conversion (µM, µg/mL, CFU/mL, µL bases)
//	layout/  — allocation, edge-effect correction, randomization
//	labcalc/ — dilution, CFU, serial-dilution and power-analysis math
//
// Quick ASCII example (24-well plate, 4×6):
//
//	   1  2  3  4  5  6
//	A  G1 G1 G1 G2 G2 G2
//	B  G3 G3 G3 P  N  P
//	C  N  P  N  B  B  B
//	D  .  .  .  .  .  .
//
// where G# are group wells, P/N positive/negative controls, B blanks.
//
// See examples/ for complete scenario programs.
//
//	go get github.com/SnigdhaBhuyan/WellPlatesExperiments
package wellplates
