// SPDX-License-Identifier: MIT

// Package geom provides the fixed-size linear algebra and periodic geometry
// used by the symmetry engine.
//
// What:
//
//   - Vec3 and Mat3: value types for 3-vectors and 3×3 matrices (row-major).
//   - Tolerance helpers: AlmostZero, AlmostEqual, IsInteger.
//   - Lattice: three basis vectors stored as the columns of a matrix, with
//     fractional ⇄ cartesian conversion, volume, reduced cell, point-group
//     matrices and the supercell test.
//
// Conventions:
//
//   - Cartesian coordinates are cart = L · frac, where L holds the lattice
//     vectors as columns.
//   - A Lattice is immutable once built; share *Lattice freely.
//
// Errors:
//
//   - ErrSingular: a matrix or lattice has (near) zero determinant.
//   - ErrNonInteger: a transformation expected to be integral is not.
package geom
