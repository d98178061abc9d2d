// SPDX-License-Identifier: MIT

// Package crystal models periodic structures with occupational degrees of
// freedom and computes their symmetry.
//
// What:
//
//   - Coordinate: a position kept in both fractional and cartesian form
//     relative to a home Lattice.
//   - Site: a Coordinate plus an occupant DoF over Molecules, selective
//     dynamics flags, basis and neighbor-list indices, and a type ID taken
//     from an explicit TypeRegistry.
//   - PrimGrid: coset representatives of a primitive lattice inside one of
//     its supercells.
//   - Structure: title, lattice and an ordered basis of Sites, with the
//     engine operations: factor group (slow and grid-expanded), tolerance
//     sweep, primitivity test and primitive-cell construction, supercell
//     fill and mapping, and permutation representations.
//
// Every engine operation returns a typed failure instead of guessing:
// GeometryError (non-integer relationships, wraps ErrGeometry) and
// MismatchError (incomplete site bijections, wraps ErrStructureMismatch).
// A failed computation leaves its target (e.g. a previously computed
// factor group) untouched.
//
// The engine is synchronous and not safe for concurrent mutation.
package crystal
