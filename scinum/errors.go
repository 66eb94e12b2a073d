// Package scinum: sentinel errors.
package scinum

import "errors"

// ErrInvalidNumber indicates input that is empty, falls outside the
// supported decimal/exponential/power-of-ten grammar, or produces a
// non-finite value.
// Usage: if errors.Is(err, scinum.ErrInvalidNumber) { /* reject field */ }.
var ErrInvalidNumber = errors.New("scinum: invalid number format")
