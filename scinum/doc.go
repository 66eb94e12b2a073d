// Package scinum parses user-typed numeric strings in the notations lab
// users actually write: plain decimals, exponential form, and
// power-of-ten form.
//
// What:
//
//   - Parse("1234.5")   → 1234.5
//   - Parse("3e6")      → 3000000
//   - Parse("3×10^6")   → 3000000 (also "3*10^6", "3 × 10 ** 6", "10^6")
//
// Why:
//
//   - Concentration fields routinely receive "2.5×10^8 CFU/mL"-style
//     magnitudes; forcing plain decimals invites transcription errors.
//   - The match is a constrained grammar (mantissa, optional sign,
//     optional exponent) evaluated arithmetically. Input is NEVER handed
//     to an expression evaluator, so no computation beyond the fixed
//     shape can be smuggled through a form field.
//
// Complexity:
//
//   - Parse: O(len(text)).
//
// Errors:
//
//   - ErrInvalidNumber: empty input, text outside the grammar, or a
//     non-finite result (±Inf, NaN).
package scinum
