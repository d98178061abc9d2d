// SPDX-License-Identifier: MIT

package geom

import "math"

// DefaultTol is the default mapping tolerance (Å for distances, unitless
// for matrix entries).
const DefaultTol = 1e-5

// AlmostZero reports whether |x| < tol.
func AlmostZero(x, tol float64) bool {
	return math.Abs(x) < tol
}

// AlmostEqual reports whether |a-b| < tol.
func AlmostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

// IsInteger reports whether x lies within tol of an integer.
func IsInteger(x, tol float64) bool {
	return math.Abs(x-math.Round(x)) < tol
}
