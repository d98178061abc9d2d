// SPDX-License-Identifier: MIT

// Package dof models site degrees of freedom as a closed set of variants.
//
// What:
//
//   - DoF: the shared base carrying a type name, an ID that ties the DoF to
//     a neighbor-list position, and a write-once lock on that ID.
//   - Occupant[T]: a discrete DoF whose domain is an ordered list of T
//     (molecules on crystal sites) plus the index of the current choice,
//     -1 when unspecified.
//   - Continuous: a bounded real-valued DoF.
//
// Remote bindings are read-only accessor functions onto values owned
// elsewhere (e.g. a configuration's occupation array), used for evaluation
// without copying.
//
// Errors:
//
//   - ErrOutOfDomain: a value outside the domain or bounds.
//   - ErrUnspecified: the current value of an Occupant is -1.
//   - ErrNoRemote: a remote value was requested before registration.
package dof
