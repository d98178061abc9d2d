// SPDX-License-Identifier: MIT

package crystal

import (
	"fmt"

	"github.com/katalvlaran/crysym/geom"
	"github.com/katalvlaran/crysym/logging"
	"github.com/katalvlaran/crysym/symmetry"
)

// ApplySym maps every site through op and back into the cell.
func (s *Structure) ApplySym(op symmetry.SymOp) {
	for _, site := range s.basis {
		site.ApplySym(op)
		site.Within()
	}
}

// Translate shifts every site by the cartesian vector shift and back into
// the cell.
func (s *Structure) Translate(shift geom.Vec3) {
	for _, site := range s.basis {
		site.Translate(shift)
		site.Within()
	}
}

// Symmetrize moves every site to the average of its nearest same-type
// images under the ops of g. Returns ErrInvalidState for an empty group.
func (s *Structure) Symmetrize(g *symmetry.Group) error {
	if g.Len() == 0 {
		return fmt.Errorf("Symmetrize: %w", ErrInvalidState)
	}
	acc := make([]geom.Vec3, len(s.basis))
	for i := 0; i < g.Len(); i++ {
		op := g.At(i)
		images := make([]*Site, len(s.basis))
		for b, site := range s.basis {
			images[b] = site.Transformed(op)
		}
		for b, site := range s.basis {
			var best geom.Vec3
			bestLen := -1.0
			for _, im := range images {
				if !site.CompareType(im) {
					continue
				}
				d := site.MinDisplacement(&im.Coordinate)
				if n := d.Norm(); bestLen < 0 || n < bestLen {
					best, bestLen = d, n
				}
			}
			acc[b] = acc[b].Add(best)
		}
	}
	w := 1 / float64(g.Len())
	for b, site := range s.basis {
		site.SetCart(site.Cart().Add(acc[b].Scale(w)))
		site.Within()
	}
	return nil
}

// SymmetrizeTol symmetrizes over the factor group found at tol.
func (s *Structure) SymmetrizeTol(tol float64) error {
	fg := symmetry.NewMasterGroup(s.lat, tol)
	if err := s.GenerateFactorGroup(fg, tol); err != nil {
		return fmt.Errorf("SymmetrizeTol: %w", err)
	}
	return s.Symmetrize(&fg.Group)
}

// AddVacuum is AddVacuumShift with no shift.
func (s *Structure) AddVacuum(thickness float64) (*Structure, error) {
	return s.AddVacuumShift(thickness, geom.Vec3{}, Frac)
}

// AddVacuumShift returns a copy whose c vector is extended by thickness
// along the unit normal of the ab plane plus shift, interpreted in mode.
// Sites keep their cartesian positions. A shift with a c component is
// logged as a warning.
func (s *Structure) AddVacuumShift(thickness float64, shift geom.Vec3, mode CoordMode) (*Structure, error) {
	cs := NewCoordinate(shift, s.lat, mode)
	if !geom.AlmostZero(cs.Frac()[2], geom.DefaultTol) {
		s.log.Warn("vacuum shift has a c component", logging.Float64("c", cs.Frac()[2]))
	}
	a, b, c := s.lat.Vector(0), s.lat.Vector(1), s.lat.Vector(2)
	n := a.Cross(b).Normalize()
	lat, err := geom.NewLattice(a, b, c.Add(n.Scale(thickness)).Add(cs.Cart()))
	if err != nil {
		return nil, fmt.Errorf("AddVacuumShift: %w", err)
	}
	out := s.Clone()
	out.SetLattice(lat, Cart)
	return out, nil
}
