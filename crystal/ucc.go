// SPDX-License-Identifier: MIT

package crystal

import (
	"fmt"

	"github.com/katalvlaran/crysym/symmetry"
)

// UnitCellCoord addresses a periodic image of a basis site: basis index
// Sublat translated by Offset lattice vectors.
type UnitCellCoord struct {
	Sublat int    `json:"sublat"`
	Offset [3]int `json:"offset"`
}

// String renders "b : i j k".
func (u UnitCellCoord) String() string {
	return fmt.Sprintf("%d : %d %d %d", u.Sublat, u.Offset[0], u.Offset[1], u.Offset[2])
}

// BasisPermute is the image of every basis site under one operation,
// expressed as UnitCellCoords of the same structure.
type BasisPermute []UnitCellCoord

var _ symmetry.Action = BasisPermute(nil)

// Kind returns symmetry.RepBasisPermutation.
func (BasisPermute) Kind() symmetry.RepKind { return symmetry.RepBasisPermutation }

// Permutation drops the offsets.
func (b BasisPermute) Permutation() symmetry.Permutation {
	p := make(symmetry.Permutation, len(b))
	for i, u := range b {
		p[i] = u.Sublat
	}
	return p
}
