// SPDX-License-Identifier: MIT

package crystal

import (
	"fmt"
	"math"

	"github.com/katalvlaran/crysym/geom"
	"github.com/katalvlaran/crysym/logging"
)

// internalShifts returns every translation basis[0]-basis[i] (i > 0,
// same type) that maps the whole basis onto itself, reduced into the cell.
func (s *Structure) internalShifts(tol float64, first bool) []geom.Vec3 {
	var out []geom.Vec3
	if len(s.basis) == 0 {
		return nil
	}
	ref := s.basis[0]
	for _, b := range s.basis[1:] {
		if !ref.CompareType(b) {
			continue
		}
		shift := s.lat.WithinCart(ref.Cart().Sub(b.Cart()), tol)
		if _, ok := s.mapsOnto(s.basis, shift, tol); ok {
			out = append(out, shift)
			if first {
				return out
			}
		}
	}
	return out
}

// IsPrimitive reports whether no internal translation maps the structure
// onto itself within tol.
func (s *Structure) IsPrimitive(tol float64) bool {
	return len(s.internalShifts(tol, true)) == 0
}

// Primitive returns the primitive cell of the structure and whether the
// structure was already primitive, in which case the result is a copy.
//
// Implementation:
//   - Stage 1: collect internal translations plus the three lattice vectors.
//   - Stage 2: pick the triple with the smallest |a·(b×c)| above the volume
//     bound factor·|V|/n.
//   - Stage 3: reduce that cell, recover the integer matrix T with
//     L = L'·T and rebuild the cell exactly as L·T⁻¹.
//   - Stage 4: map every site into the new cell and drop duplicates.
//
// Returns a GeometryError when T is not integer or the site count is not
// |det T| times the primitive count.
func (s *Structure) Primitive(tol float64) (*Structure, bool, error) {
	shifts := s.internalShifts(tol, false)
	if len(shifts) == 0 {
		return s.Clone(), true, nil
	}
	vecs := s.lat.Vectors()
	pool := append(shifts, vecs[:]...)

	vol := math.Abs(s.lat.Vol())
	bound := s.primVolFactor * vol / float64(len(s.basis))
	minVol := vol
	best := vecs
	for i := 0; i < len(pool); i++ {
		for j := i + 1; j < len(pool); j++ {
			for k := j + 1; k < len(pool); k++ {
				tv := math.Abs(geom.TripleProduct(pool[i], pool[j], pool[k]))
				if tv > bound && tv < minVol-1e-8*vol {
					minVol = tv
					best = [3]geom.Vec3{pool[i], pool[j], pool[k]}
				}
			}
		}
	}

	cand, err := geom.NewLattice(best[0], best[1], best[2])
	if err != nil {
		return nil, false, fmt.Errorf("Primitive: %w", err)
	}
	red := cand.Reduced()
	ok, T := s.lat.IsSupercellOf(red, red.PointGroupMatrices(tol), tol)
	if !ok {
		return nil, false, &GeometryError{Op: "Primitive", What: "transformation matrix", Value: maxFracPart(T), Tol: tol}
	}
	T = T.Round()
	tInv, err := T.Inverse()
	if err != nil {
		return nil, false, &GeometryError{Op: "Primitive", What: "det(T)", Value: T.Det(), Tol: tol}
	}
	primLat, err := geom.LatticeFromMatrix(s.lat.Matrix().Mul(tInv))
	if err != nil {
		return nil, false, fmt.Errorf("Primitive: %w", err)
	}

	prim := s.sibling(primLat)
	for _, site := range s.basis {
		c := site.Clone()
		c.SetLattice(primLat, Cart)
		c.Within()
		if prim.Find(c, tol) < 0 {
			prim.AddSite(c)
		}
	}
	prim.SetSiteInternals()

	det := math.Abs(T.Det())
	if float64(prim.Len())*det != float64(len(s.basis)) {
		return nil, false, &GeometryError{Op: "Primitive", What: "site count ratio", Value: float64(len(s.basis)) / float64(prim.Len()), Tol: tol}
	}
	s.log.Debug("primitive cell found",
		logging.Int("sites", prim.Len()),
		logging.Float64("volume", math.Abs(primLat.Vol())),
		logging.Int("multiplicity", int(det)))
	return prim, false, nil
}
