// SPDX-License-Identifier: MIT

package crystal

import (
	"fmt"

	"github.com/katalvlaran/crysym/geom"
	"github.com/katalvlaran/crysym/logging"
	"github.com/katalvlaran/crysym/symmetry"
)

// GenerateFactorGroupSlow fills target with every operation (P, τ) that
// maps the structure onto itself within tol, by direct search over the
// lattice point group. Intended for primitive structures.
//
// Implementation:
//   - Stage 1: compute the lattice point group.
//   - Stage 2: for each P, transform the basis and try every translation
//     that carries a transformed site of basis[0]'s type onto basis[0].
//   - Stage 3: accept (P, τ) when every transformed site lands on a basis
//     site of its type; record the worst distance as the op's map error.
//   - Stage 4: close the set under composition and sort by class.
//
// A non-empty target is overwritten with a warning. On error target is
// left untouched.
// Complexity: O(|P|·B³) site comparisons.
func (s *Structure) GenerateFactorGroupSlow(target *symmetry.MasterGroup, tol float64) error {
	work, err := s.factorGroupSlow(tol)
	if err != nil {
		return fmt.Errorf("GenerateFactorGroupSlow: %w", err)
	}
	if _, err := work.SortByClass(); err != nil {
		return fmt.Errorf("GenerateFactorGroupSlow: %w", err)
	}
	s.commitGroup(target, work)
	return nil
}

func (s *Structure) factorGroupSlow(tol float64) (*symmetry.Group, error) {
	if len(s.basis) == 0 {
		return nil, fmt.Errorf("empty basis: %w", ErrInvalidState)
	}
	work := s.rawFactorGroup(tol)
	if err := work.EnforceGroup(); err != nil {
		return nil, err
	}
	return work, nil
}

// mapsOnto reports whether every site of sites, translated by shift, lands
// on a basis site of the same type, and returns the largest distance seen.
func (s *Structure) mapsOnto(sites []*Site, shift geom.Vec3, tol float64) (float64, bool) {
	maxErr := 0.0
	for _, t := range sites {
		found := false
		for _, b := range s.basis {
			if !b.CompareType(t) {
				continue
			}
			if d := b.MinDistShift(&t.Coordinate, shift); d < tol {
				maxErr = max(maxErr, d)
				found = true
				break
			}
		}
		if !found {
			return 0, false
		}
	}
	return maxErr, true
}

// GenerateFactorGroup fills target with the factor group of the structure.
// Non-primitive structures are reduced first: the factor group of the
// primitive cell is computed once, filtered to ops whose linear part also
// preserves this lattice, and replicated over the PrimGrid translations.
// A non-empty target is overwritten with a warning. On error target is
// left untouched.
func (s *Structure) GenerateFactorGroup(target *symmetry.MasterGroup, tol float64) error {
	if len(s.basis) == 0 {
		return fmt.Errorf("GenerateFactorGroup: empty basis: %w", ErrInvalidState)
	}
	prim, primitive, err := s.Primitive(tol)
	if err != nil {
		return fmt.Errorf("GenerateFactorGroup: %w", err)
	}
	if primitive {
		return s.GenerateFactorGroupSlow(target, tol)
	}

	primFG, err := prim.factorGroupSlow(tol)
	if err != nil {
		return fmt.Errorf("GenerateFactorGroup: %w", err)
	}
	grid, err := NewPrimGrid(prim.lat, s.lat, tol)
	if err != nil {
		return fmt.Errorf("GenerateFactorGroup: %w", err)
	}
	pg := symmetry.LatticePointGroup(s.lat, tol)
	work := symmetry.NewGroup(s.lat, tol)
	for i := 0; i < primFG.Len(); i++ {
		op := primFG.At(i)
		if pg.FindNoTrans(op.Matrix()) < 0 {
			continue
		}
		op = op.WithLattice(s.lat)
		for j := 0; j < grid.Size(); j++ {
			work.Add(symmetry.Translation(grid.Cart(j), s.lat).Mul(op))
		}
	}
	s.commitGroup(target, work)
	return nil
}

func (s *Structure) commitGroup(target *symmetry.MasterGroup, work *symmetry.Group) {
	if target.Len() > 0 {
		s.log.Warn("overwriting non-empty factor group",
			logging.Int("old_size", target.Len()),
			logging.Int("new_size", work.Len()))
	}
	target.ReplaceWith(work)
}

// ConvergeRow is one tolerance step of FGConverge.
type ConvergeRow struct {
	Tol         float64 `json:"tol" yaml:"tol"`
	NumOps      int     `json:"num_ops" yaml:"num_ops"`
	IsGroup     bool    `json:"is_group" yaml:"is_group"`
	NumEnforced int     `json:"num_enforced" yaml:"num_enforced"`
	Name        string  `json:"name" yaml:"name"`
}

// FGConverge recomputes the factor group at tolerances small, small+inc,
// ... while below large. Each row reports the raw operation count, whether
// the raw set is already closed, the closed count and the point-group name.
// Returns ErrInvalidState when inc ≤ 0 or small ≥ large.
func (s *Structure) FGConverge(small, large, inc float64) ([]ConvergeRow, error) {
	if inc <= 0 || small >= large {
		return nil, fmt.Errorf("FGConverge: range [%g, %g) step %g: %w", small, large, inc, ErrInvalidState)
	}
	if len(s.basis) == 0 {
		return nil, fmt.Errorf("FGConverge: empty basis: %w", ErrInvalidState)
	}
	var rows []ConvergeRow
	for k := 0; ; k++ {
		t := small + float64(k)*inc
		if t >= large {
			break
		}
		raw := s.rawFactorGroup(t)
		row := ConvergeRow{Tol: t, NumOps: raw.Len(), IsGroup: raw.IsGroup()}
		closed := raw.Copy()
		if err := closed.EnforceGroup(); err != nil {
			row.NumEnforced = -1
			row.Name = symmetry.UnknownName
		} else {
			row.NumEnforced = closed.Len()
			row.Name = closed.Name()
		}
		rows = append(rows, row)
		s.log.Debug("fg_converge step",
			logging.Float64("tol", t),
			logging.Int("num_ops", row.NumOps),
			logging.Int("num_enforced", row.NumEnforced))
	}
	return rows, nil
}

// rawFactorGroup is stages 1-3 of GenerateFactorGroupSlow.
func (s *Structure) rawFactorGroup(tol float64) *symmetry.Group {
	pg := symmetry.LatticePointGroup(s.lat, tol)
	raw := symmetry.NewGroup(s.lat, tol)
	ref := s.basis[0]
	for i := 0; i < pg.Len(); i++ {
		P := pg.At(i)
		trans := make([]*Site, len(s.basis))
		for b, site := range s.basis {
			trans[b] = site.Transformed(P)
		}
		for _, t0 := range trans {
			if !ref.CompareType(t0) {
				continue
			}
			shift := s.lat.WithinCart(ref.Cart().Sub(t0.Cart()), tol)
			if maxErr, ok := s.mapsOnto(trans, shift, tol); ok {
				raw.Add(symmetry.NewSymOp(P.Matrix(), shift, s.lat).WithMapError(maxErr))
			}
		}
	}
	return raw
}
