// SPDX-License-Identifier: MIT

// Package symmetry implements space-group operations and the groups they
// form.
//
// What:
//
//   - SymOp: a linear part R (cartesian, orthogonal) plus a translation τ,
//     acting as v ↦ R·v + τ. Each op carries the mapping error recorded
//     when it was derived from an approximate structural match and an eager
//     classification (identity, translation, rotation, screw, inversion,
//     mirror, glide, rotoinversion) with its point-group class label.
//   - Group: an ordered, duplicate-free sequence of ops. When a Group has a
//     lattice, ops are compared modulo lattice translations and their
//     translations are kept inside the cell. Closure is enforced on demand;
//     multiplication table, inverses, conjugacy classes, per-class
//     Cartesian characters and the crystallographic point-group name are
//     derived queries.
//   - MasterGroup: a Group that exclusively owns a registry of
//     representations. A Rep is a parallel array of Actions, one per group
//     element, addressed by the integer ID returned at registration.
//
// Composition (R₁,τ₁)(R₂,τ₂) = (R₁R₂, R₁τ₂ + τ₁); the right operand acts
// first. Permutations follow the same order: (g·h)[i] = g[h[i]].
//
// Errors:
//
//   - ErrEmptyGroup: the group has no elements.
//   - ErrGroupOverflow: closure exceeded MaxGroupSize.
//   - ErrNotGroup: a query that needs closure ran on a non-closed set.
//   - ErrRepSize, ErrRepOwned, ErrUnknownRep, ErrRepKind, ErrFrozen,
//     ErrNotHomomorphism:
//     representation registry violations.
package symmetry
