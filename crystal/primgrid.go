// SPDX-License-Identifier: MIT

package crystal

import (
	"fmt"
	"math"

	"github.com/katalvlaran/crysym/geom"
)

// GridMode selects the lattice in which PrimGrid.Coord expresses a point.
type GridMode int

const (
	// GridPrim is fractional coordinates of the primitive lattice.
	GridPrim GridMode = iota
	// GridScel is fractional coordinates of the supercell lattice.
	GridScel
)

// gridTol bounds rounding noise on the rational coordinates T⁻¹·p.
const gridTol = 1e-8

// PrimGrid enumerates the translations of a primitive lattice that are
// inequivalent modulo a supercell lattice: the coset representatives of
// the supercell lattice in the primitive one. Points are integer triples
// in primitive fractional coordinates; the origin is always index 0.
type PrimGrid struct {
	prim, scel *geom.Lattice
	trans      [3][3]int
	transInv   geom.Mat3
	points     [][3]int
	index      map[[3]int]int
}

// NewPrimGrid builds the grid relating prim to scel, where scel = prim·T
// for an integer matrix T. Returns a GeometryError when T is not integral
// within tol or the volume ratio is not an integer.
//
// Implementation:
//   - Stage 1: T = round(prim⁻¹·scel) after checking integrality.
//   - Stage 2: scan the bounding box of the parallelepiped spanned by the
//     columns of T and keep points p with T⁻¹·p in [0,1)³.
//   - Stage 3: check that |det T| points were found.
func NewPrimGrid(prim, scel *geom.Lattice, tol float64) (*PrimGrid, error) {
	ratio := math.Abs(scel.Vol() / prim.Vol())
	if !geom.IsInteger(ratio, tol*ratio+tol) || math.Round(ratio) < 1 {
		return nil, &GeometryError{Op: "NewPrimGrid", What: "volume ratio", Value: ratio, Tol: tol}
	}
	T := prim.InverseMatrix().Mul(scel.Matrix())
	if !T.IsInteger(10 * tol) {
		return nil, &GeometryError{Op: "NewPrimGrid", What: "transformation matrix entry", Value: maxFracPart(T), Tol: tol}
	}
	T = T.Round()
	inv, err := T.Inverse()
	if err != nil {
		return nil, fmt.Errorf("NewPrimGrid: %w", err)
	}

	g := &PrimGrid{prim: prim, scel: scel, trans: T.Ints(), transInv: inv, index: map[[3]int]int{}}
	g.add([3]int{})

	var lo, hi [3]int
	for mask := 0; mask < 8; mask++ {
		for i := 0; i < 3; i++ {
			corner := 0
			for j := 0; j < 3; j++ {
				if mask&(1<<j) != 0 {
					corner += g.trans[i][j]
				}
			}
			lo[i] = min(lo[i], corner)
			hi[i] = max(hi[i], corner)
		}
	}
	for a := lo[0]; a <= hi[0]; a++ {
		for b := lo[1]; b <= hi[1]; b++ {
			for c := lo[2]; c <= hi[2]; c++ {
				p := [3]int{a, b, c}
				if g.inCell(inv.MulVec(geom.IntVec(p))) {
					g.add(p)
				}
			}
		}
	}

	want := int(math.Round(ratio))
	if len(g.points) != want {
		return nil, &GeometryError{Op: "NewPrimGrid", What: "grid size", Value: float64(len(g.points)), Tol: tol}
	}
	return g, nil
}

func (g *PrimGrid) inCell(f geom.Vec3) bool {
	for i := 0; i < 3; i++ {
		if f[i] < -gridTol || f[i] >= 1-gridTol {
			return false
		}
	}
	return true
}

func (g *PrimGrid) add(p [3]int) {
	if _, ok := g.index[p]; ok {
		return
	}
	g.index[p] = len(g.points)
	g.points = append(g.points, p)
}

// Size returns the number of grid points, |det T|.
func (g *PrimGrid) Size() int { return len(g.points) }

// Trans returns the integer matrix T with scel = prim·T.
func (g *PrimGrid) Trans() [3][3]int { return g.trans }

// Point returns grid point i in primitive fractional coordinates.
func (g *PrimGrid) Point(i int) [3]int { return g.points[i] }

// Coord returns grid point i as fractional coordinates of the lattice
// selected by mode.
func (g *PrimGrid) Coord(i int, mode GridMode) geom.Vec3 {
	p := geom.IntVec(g.points[i])
	if mode == GridScel {
		return g.transInv.MulVec(p)
	}
	return p
}

// Cart returns grid point i as a cartesian translation.
func (g *PrimGrid) Cart(i int) geom.Vec3 {
	return g.prim.ToCart(geom.IntVec(g.points[i]))
}

// Find returns the index of the grid point equivalent to p modulo the
// supercell lattice.
func (g *PrimGrid) Find(p [3]int) int {
	f := geom.WithinFrac(g.transInv.MulVec(geom.IntVec(p)), gridTol)
	T := geom.FromInts(g.trans)
	q := T.MulVec(f).Ints()
	if i, ok := g.index[q]; ok {
		return i
	}
	return -1
}

func maxFracPart(m geom.Mat3) float64 {
	worst := 0.0
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			worst = math.Max(worst, math.Abs(m[i][j]-math.Round(m[i][j])))
		}
	}
	return worst
}
