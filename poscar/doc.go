// SPDX-License-Identifier: MIT

// Package poscar reads and writes structures in the POSCAR text format.
//
// Layout of a file:
//
//	title
//	scale                 (negative: target cell volume)
//	a1 a2 a3
//	b1 b2 b3
//	c1 c2 c3
//	[El1 El2 ...]         (VASP5 element line)
//	n1 n2 ...             (sites per species)
//	[Selective dynamics]
//	Direct | Cartesian
//	x y z [T|F T|F T|F] [occ1 occ2 ... [:: current]]
//
// Without an element line each site line lists its allowed occupants and,
// after "::", the current one. With an element line the element of the
// count group is the only occupant.
package poscar
