// Package units converts values between named units within one physical
// family, via a fixed scale table to each family's canonical base unit.
//
// What:
//
//   - Four families, each with a canonical unit:
//     Molar → µM, Mass concentration → µg/mL,
//     Biological density → CFU/mL, Volume → µL.
//   - ToCanonical / FromCanonical scale a value to/from the family base.
//   - Convert moves a value between two units of the same family.
//   - FamilyOf reports which family a unit string belongs to.
//
// Why:
//
//   - Dilution and CFU math must compare concentrations, which is only
//     meaningful after both sides are expressed in one base unit.
//   - Cross-family "conversions" (volume↔mass) are user errors and are
//     rejected, not coerced.
//
// Spelling:
//
//   - ASCII "u" is accepted for "µ": "uM", "ug/mL" and "uL" resolve to
//     µM, µg/mL and µL. Lookup is otherwise case-sensitive (m vs M
//     distinguishes milli from molar).
//
// Complexity:
//
//   - All operations: O(1) map lookups.
//
// Errors:
//
//   - ErrUnknownUnit: the unit string is not in the table. A typo'd unit
//     never passes through as a silent no-op conversion.
//   - ErrIncompatibleUnits: the two units belong to different families.
package units
