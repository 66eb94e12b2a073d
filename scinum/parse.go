// Package scinum: the grammar-based parser.
package scinum

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// The two accepted shapes, matched after normalization (whitespace
// stripped, ×→*, **→^, unicode minus → ASCII minus):
//
//	decimalRe  — <±mantissa>[eE<±exp>]          e.g. "-12.5", "3e6"
//	powTenRe   — [<±mantissa>*]10^<±exp>        e.g. "3*10^6", "10^-3"
//
// Both are anchored: anything outside the fixed shape is rejected.
var (
	decimalRe = regexp.MustCompile(`^[+-]?(?:\d+(?:\.\d*)?|\.\d+)(?:[eE][+-]?\d+)?$`)
	powTenRe  = regexp.MustCompile(`^(?:([+-]?(?:\d+(?:\.\d*)?|\.\d+))\*)?10\^([+-]?\d+)$`)
)

// normalizer folds the notation variants into one canonical spelling.
var normalizer = strings.NewReplacer(
	" ", "", "\t", "",
	"×", "*",
	"**", "^",
	"−", "-", // unicode minus, pasted from documents
)

// Parse converts a numeric string into a float64.
//
// Accepted notations: plain decimals ("1234.5"), exponential form
// ("3e6", "1.2E-4"), and power-of-ten form ("3×10^6", "3*10**6",
// "10^-3" with an implied mantissa of 1). Whitespace anywhere in the
// power-of-ten form is tolerated.
//
// The input is matched against a fixed grammar and assembled
// arithmetically; it is never evaluated as an expression. Empty input,
// text outside the grammar, and non-finite results return
// ErrInvalidNumber.
//
// Complexity: O(len(text)).
func Parse(text string) (float64, error) {
	s := normalizer.Replace(strings.TrimSpace(text))
	if s == "" {
		return 0, fmt.Errorf("parse %q: empty input: %w", text, ErrInvalidNumber)
	}

	if decimalRe.MatchString(s) {
		return finish(text, s)
	}

	if m := powTenRe.FindStringSubmatch(s); m != nil {
		mantissa := m[1]
		if mantissa == "" {
			mantissa = "1"
		}
		// Reassemble as standard exponential form so strconv performs
		// the (exactly rounded) scaling.
		return finish(text, mantissa+"e"+m[2])
	}

	return 0, fmt.Errorf("parse %q: not a number: %w", text, ErrInvalidNumber)
}

// finish runs strconv on an already-validated shape and applies the
// finiteness policy.
func finish(orig, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("parse %q: non-finite value: %w", orig, ErrInvalidNumber)
	}
	return v, nil
}
