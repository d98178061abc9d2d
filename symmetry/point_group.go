// SPDX-License-Identifier: MIT

package symmetry

import "github.com/katalvlaran/crysym/geom"

// LatticePointGroup returns the point group of lat: every orthogonal
// operation mapping lat onto itself within tol, identity first. The ops
// carry lat as their home lattice; the group itself compares exactly.
func LatticePointGroup(lat *geom.Lattice, tol float64) *Group {
	g := NewGroup(nil, tol)
	for _, m := range lat.PointGroupMatrices(tol) {
		g.ops = append(g.ops, NewSymOp(m, geom.Vec3{}, lat))
	}
	return g
}
