// SPDX-License-Identifier: MIT

package geom

import "errors"

var (
	// ErrSingular indicates a matrix with (near) zero determinant.
	ErrSingular = errors.New("geom: singular matrix")

	// ErrNonInteger indicates that a matrix required to be integral is not,
	// within the tolerance in effect.
	ErrNonInteger = errors.New("geom: matrix is not integral within tolerance")
)
