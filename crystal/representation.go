// SPDX-License-Identifier: MIT

package crystal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/crysym/logging"
	"github.com/katalvlaran/crysym/symmetry"
)

// progressEvery is the op interval between progress log lines.
const progressEvery = 100

// GeneratePermutationRepresentation registers on fg the permutation of
// basis sites induced by every op and returns its registry ID. perm[i] = j
// means op maps site i onto site j. The structure is not modified.
//
// Returns ErrInvalidState for an empty group and a MismatchError naming the
// site and op when some image matches no basis site; fg is then unchanged.
func (s *Structure) GeneratePermutationRepresentation(fg *symmetry.MasterGroup, tol float64) (int, error) {
	if fg.Len() == 0 {
		return -1, fmt.Errorf("GeneratePermutationRepresentation: %w", ErrInvalidState)
	}
	actions := make([]symmetry.Action, fg.Len())
	for g := 0; g < fg.Len(); g++ {
		op := fg.At(g)
		perm := make(symmetry.Permutation, len(s.basis))
		for b, site := range s.basis {
			t := site.Transformed(op)
			t.Within()
			j := s.Find(t, tol)
			if j < 0 {
				return -1, &MismatchError{Op: "GeneratePermutationRepresentation", Site: b, SymOp: g, Tol: tol, Dist: s.closest(t)}
			}
			perm[b] = j
		}
		actions[g] = perm
		s.logProgress("permutation representation", g, fg.Len())
	}
	id, err := fg.AddRepresentation(symmetry.NewRep(symmetry.RepPermutation, actions))
	if err != nil {
		return -1, fmt.Errorf("GeneratePermutationRepresentation: %w", err)
	}
	return id, nil
}

// GenerateBasisPermutationRepresentation is GeneratePermutationRepresentation
// with each image recorded as a UnitCellCoord of this structure, so that
// images landing in neighbouring cells keep their offset.
func (s *Structure) GenerateBasisPermutationRepresentation(fg *symmetry.MasterGroup, tol float64) (int, error) {
	if fg.Len() == 0 {
		return -1, fmt.Errorf("GenerateBasisPermutationRepresentation: %w", ErrInvalidState)
	}
	actions := make([]symmetry.Action, fg.Len())
	for g := 0; g < fg.Len(); g++ {
		op := fg.At(g)
		bp := make(BasisPermute, len(s.basis))
		for b, site := range s.basis {
			ucc, err := s.UnitCellCoord(site.Transformed(op), tol)
			if err != nil {
				var me *MismatchError
				if errors.As(err, &me) {
					me.Op, me.Site, me.SymOp = "GenerateBasisPermutationRepresentation", b, g
				}
				return -1, err
			}
			bp[b] = ucc
		}
		actions[g] = bp
		s.logProgress("basis permutation representation", g, fg.Len())
	}
	id, err := fg.AddRepresentation(symmetry.NewRep(symmetry.RepBasisPermutation, actions))
	if err != nil {
		return -1, fmt.Errorf("GenerateBasisPermutationRepresentation: %w", err)
	}
	return id, nil
}

func (s *Structure) logProgress(what string, g, n int) {
	if (g+1)%progressEvery == 0 || g+1 == n {
		s.log.Debug(what, logging.Int("done", g+1), logging.Int("total", n))
	}
}
