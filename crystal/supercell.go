// SPDX-License-Identifier: MIT

package crystal

import (
	"fmt"

	"github.com/katalvlaran/crysym/geom"
	"github.com/katalvlaran/crysym/symmetry"
)

// FillSupercell replaces the basis with the images of prim's basis under
// the PrimGrid relating prim's lattice to this structure's lattice. Site
// k is the image of prim site k/n under grid point k%n, n the grid size;
// images that coincide within tol are kept once. The registry and title
// are taken from prim. On error s is left untouched.
func (s *Structure) FillSupercell(prim *Structure, tol float64) error {
	grid, err := NewPrimGrid(prim.lat, s.lat, tol)
	if err != nil {
		return fmt.Errorf("FillSupercell: %w", err)
	}
	tmp := s.sibling(s.lat)
	tmp.types = prim.types
	for _, ps := range prim.basis {
		for i := 0; i < grid.Size(); i++ {
			c := ps.Shifted(grid.Cart(i))
			c.SetLattice(s.lat, Cart)
			c.Within()
			if tmp.Find(c, tol) >= 0 {
				continue
			}
			c.indToPrim = -1
			tmp.AddSite(c)
		}
	}
	s.Title = prim.Title
	s.types = prim.types
	s.basis = tmp.basis
	s.SetSiteInternals()
	return nil
}

// CreateSuperstruc returns a new structure over lat filled from s.
func (s *Structure) CreateSuperstruc(lat *geom.Lattice, tol float64) (*Structure, error) {
	sc := s.sibling(lat)
	if err := sc.FillSupercell(s, tol); err != nil {
		return nil, fmt.Errorf("CreateSuperstruc: %w", err)
	}
	return sc, nil
}

// MapSuperstrucToPrim records, for every site, the prim basis index it is
// an image of. pg, when non-nil, supplies the rotations allowed in the
// supercell test. Returns a GeometryError when the lattice is not a
// supercell of prim's and a MismatchError when some image of a prim site
// is missing. Nothing is recorded unless every image is found.
func (s *Structure) MapSuperstrucToPrim(prim *Structure, pg *symmetry.Group, tol float64) error {
	var mats []geom.Mat3
	if pg != nil {
		mats = pg.Matrices()
	}
	ok, T := s.lat.IsSupercellOf(prim.lat, mats, tol)
	if !ok {
		return &GeometryError{Op: "MapSuperstrucToPrim", What: "transformation matrix", Value: maxFracPart(T), Tol: tol}
	}
	grid, err := NewPrimGrid(prim.lat, s.lat, tol)
	if err != nil {
		return fmt.Errorf("MapSuperstrucToPrim: %w", err)
	}
	assign := make([]int, len(s.basis))
	for k := range assign {
		assign[k] = -1
	}
	for j, ps := range prim.basis {
		for i := 0; i < grid.Size(); i++ {
			c := ps.Shifted(grid.Cart(i))
			c.SetLattice(s.lat, Cart)
			c.SetBasisInd(-1)
			k := s.Find(c, tol)
			if k < 0 {
				return &MismatchError{Op: "MapSuperstrucToPrim", Site: j, SymOp: -1, Tol: tol, Dist: s.closest(c)}
			}
			assign[k] = j
		}
	}
	for k, j := range assign {
		s.basis[k].indToPrim = j
	}
	return nil
}
