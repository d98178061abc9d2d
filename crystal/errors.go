// SPDX-License-Identifier: MIT

package crystal

import (
	"errors"
	"fmt"
)

var (
	// ErrGeometry indicates a non-integer relationship where an integer is
	// required (transformation matrices, volume ratios).
	ErrGeometry = errors.New("crystal: non-integer geometric relationship")

	// ErrStructureMismatch indicates that a symmetry operation or a
	// supercell/primitive relationship failed to produce a site bijection.
	ErrStructureMismatch = errors.New("crystal: structure mismatch")

	// ErrInvalidState indicates a violated precondition (empty group or
	// basis, index out of range, unknown basis-function kind).
	ErrInvalidState = errors.New("crystal: invalid state")
)

// MismatchError reports a site that could not be matched.
type MismatchError struct {
	Op    string  // operation that failed
	Site  int     // offending basis index, -1 if not site-specific
	SymOp int     // index of the symmetry operation, -1 if none
	Tol   float64 // matching tolerance
	Dist  float64 // closest distance found, NaN if no candidate shared the type
}

// Error implements error.
func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s: site %d, symop %d, tol %g, closest %g: %v",
		e.Op, e.Site, e.SymOp, e.Tol, e.Dist, ErrStructureMismatch)
}

// Unwrap returns ErrStructureMismatch.
func (e *MismatchError) Unwrap() error { return ErrStructureMismatch }

// GeometryError reports a quantity that should be an integer but is not.
type GeometryError struct {
	Op    string
	What  string
	Value float64
	Tol   float64
}

// Error implements error.
func (e *GeometryError) Error() string {
	return fmt.Sprintf("%s: %s = %g (tol %g): %v", e.Op, e.What, e.Value, e.Tol, ErrGeometry)
}

// Unwrap returns ErrGeometry.
func (e *GeometryError) Unwrap() error { return ErrGeometry }
