// SPDX-License-Identifier: MIT

package geom

import (
	"fmt"
	"math"
)

// Lattice is a periodic cell spanned by three basis vectors.
// The vectors are stored as the columns of mat; inv caches mat⁻¹.
// A Lattice is never mutated after construction.
type Lattice struct {
	mat Mat3
	inv Mat3
}

// NewLattice builds a lattice from its three basis vectors.
// Returns ErrSingular when the vectors are (nearly) coplanar.
func NewLattice(a, b, c Vec3) (*Lattice, error) {
	return LatticeFromMatrix(FromColumns(a, b, c))
}

// LatticeFromMatrix builds a lattice whose vectors are the columns of m.
func LatticeFromMatrix(m Mat3) (*Lattice, error) {
	inv, err := m.Inverse()
	if err != nil {
		return nil, fmt.Errorf("NewLattice: %w", err)
	}
	return &Lattice{mat: m, inv: inv}, nil
}

// MustLattice is NewLattice that panics on error. Intended for literals in
// tests and examples.
func MustLattice(a, b, c Vec3) *Lattice {
	l, err := NewLattice(a, b, c)
	if err != nil {
		panic(err)
	}
	return l
}

// Cubic returns a simple cubic lattice with edge a.
func Cubic(a float64) *Lattice {
	return MustLattice(Vec3{a, 0, 0}, Vec3{0, a, 0}, Vec3{0, 0, a})
}

// Vector returns lattice vector i (0, 1 or 2).
func (l *Lattice) Vector(i int) Vec3 {
	return l.mat.Col(i)
}

// Vectors returns the three lattice vectors.
func (l *Lattice) Vectors() [3]Vec3 {
	return [3]Vec3{l.mat.Col(0), l.mat.Col(1), l.mat.Col(2)}
}

// Matrix returns the column matrix of lattice vectors.
func (l *Lattice) Matrix() Mat3 {
	return l.mat
}

// InverseMatrix returns the inverse of the column matrix.
func (l *Lattice) InverseMatrix() Mat3 {
	return l.inv
}

// Vol returns the signed cell volume a·(b×c).
func (l *Lattice) Vol() float64 {
	return l.mat.Det()
}

// ToFrac converts a cartesian vector to fractional coordinates.
func (l *Lattice) ToFrac(cart Vec3) Vec3 {
	return l.inv.MulVec(cart)
}

// ToCart converts fractional coordinates to a cartesian vector.
func (l *Lattice) ToCart(frac Vec3) Vec3 {
	return l.mat.MulVec(frac)
}

// WithinFrac maps fractional coordinates into [0,1) per axis. Values within
// tol below an integer are mapped to that integer, so 0.9999999 becomes
// -0.0000001 rather than staying near 1.
func WithinFrac(f Vec3, tol float64) Vec3 {
	for i := 0; i < 3; i++ {
		f[i] -= math.Floor(f[i] + tol)
	}
	return f
}

// WithinCart maps a cartesian vector into the cell.
func (l *Lattice) WithinCart(cart Vec3, tol float64) Vec3 {
	return l.ToCart(WithinFrac(l.ToFrac(cart), tol))
}

// MinImage returns the shortest cartesian vector congruent to cart modulo
// lattice translations.
func (l *Lattice) MinImage(cart Vec3) Vec3 {
	f := l.ToFrac(cart)
	f = f.Sub(f.Round())
	best := l.ToCart(f)
	bestLen := best.Dot(best)
	var i, j, k float64
	for i = -1; i <= 1; i++ {
		for j = -1; j <= 1; j++ {
			for k = -1; k <= 1; k++ {
				c := l.ToCart(f.Add(Vec3{i, j, k}))
				if d := c.Dot(c); d < bestLen {
					best, bestLen = c, d
				}
			}
		}
	}
	return best
}

// IsLatticeVector reports whether cart is a lattice translation within
// distance tol.
func (l *Lattice) IsLatticeVector(cart Vec3, tol float64) bool {
	return l.MinImage(cart).Norm() < tol
}

// Lengths returns |a|, |b|, |c|.
func (l *Lattice) Lengths() Vec3 {
	return Vec3{l.Vector(0).Norm(), l.Vector(1).Norm(), l.Vector(2).Norm()}
}

// Angles returns α, β, γ in degrees.
func (l *Lattice) Angles() Vec3 {
	a, b, c := l.Vector(0), l.Vector(1), l.Vector(2)
	angle := func(u, v Vec3) float64 {
		return math.Acos(u.Dot(v)/(u.Norm()*v.Norm())) * 180 / math.Pi
	}
	return Vec3{angle(b, c), angle(a, c), angle(a, b)}
}

// Reduced returns an equivalent lattice whose vectors are as short as a
// greedy Minkowski-style search can make them.
//
// Implementation:
//   - Stage 1: repeatedly replace vᵢ by vᵢ ± vⱼ or vᵢ ± vⱼ ± vₖ while that
//     strictly shortens it.
//   - Stage 2: negate all vectors if the resulting cell is left-handed.
//
// The lattice (as a point set) is unchanged.
func (l *Lattice) Reduced() *Lattice {
	v := l.Vectors()
	const shrink = 1e-10
	changed := true
	for changed {
		changed = false
		for i := 0; i < 3; i++ {
			j, k := (i+1)%3, (i+2)%3
			cands := []Vec3{
				v[i].Add(v[j]), v[i].Sub(v[j]),
				v[i].Add(v[k]), v[i].Sub(v[k]),
				v[i].Add(v[j]).Add(v[k]), v[i].Add(v[j]).Sub(v[k]),
				v[i].Sub(v[j]).Add(v[k]), v[i].Sub(v[j]).Sub(v[k]),
			}
			for _, w := range cands {
				if w.Dot(w) < v[i].Dot(v[i])-shrink {
					v[i] = w
					changed = true
				}
			}
		}
	}
	if TripleProduct(v[0], v[1], v[2]) < 0 {
		v[0], v[1], v[2] = v[0].Neg(), v[1].Neg(), v[2].Neg()
	}
	// the reduced vectors span the same lattice, so the matrix stays invertible
	out, err := NewLattice(v[0], v[1], v[2])
	if err != nil {
		return l
	}
	return out
}

// PointGroupMatrices returns every orthogonal cartesian matrix R that maps
// the lattice onto itself within tol.
//
// Implementation:
//   - Stage 1: reduce the lattice so that images of its vectors are
//     integer combinations with coefficients in {-1,0,1}.
//   - Stage 2: enumerate integer matrices M with entries in {-1,0,1} and
//     |det M| = 1.
//   - Stage 3: accept R = L·M·L⁻¹ when RᵀR = I within tol.
//
// The identity is always first.
// Complexity: O(3⁹) candidate matrices.
func (l *Lattice) PointGroupMatrices(tol float64) []Mat3 {
	red := l.Reduced()
	L, Linv := red.mat, red.inv
	lengths := red.Lengths()
	out := []Mat3{Identity()}
	id := Identity()

	var digits [9]int
	for code := 0; code < 19683; code++ {
		c := code
		for d := 0; d < 9; d++ {
			digits[d] = c%3 - 1
			c /= 3
		}
		var M Mat3
		for d := 0; d < 9; d++ {
			M[d/3][d%3] = float64(digits[d])
		}
		det := M.Det()
		if det != 1 && det != -1 {
			continue
		}
		if M.AlmostEqual(id, 0.5) {
			continue
		}
		LM := L.Mul(M)
		lengthsOK := true
		for j := 0; j < 3 && lengthsOK; j++ {
			lengthsOK = AlmostEqual(LM.Col(j).Norm(), lengths[j], tol*(1+lengths[j]))
		}
		if !lengthsOK {
			continue
		}
		R := LM.Mul(Linv)
		if R.T().Mul(R).AlmostEqual(id, tol) {
			out = append(out, R)
		}
	}
	return out
}

// IsSupercellOf reports whether l is a supercell of tile, i.e. whether
// l = R·tile·T for some R in ops and integer T. The identity is tried when
// ops is empty. The returned T belongs to the first R that succeeds, or to
// the last one tried on failure.
func (l *Lattice) IsSupercellOf(tile *Lattice, ops []Mat3, tol float64) (bool, Mat3) {
	if len(ops) == 0 {
		ops = []Mat3{Identity()}
	}
	var T Mat3
	for _, R := range ops {
		inv, err := R.Mul(tile.mat).Inverse()
		if err != nil {
			continue
		}
		T = inv.Mul(l.mat)
		if T.IsInteger(tol) {
			return true, T
		}
	}
	return false, T
}

// String implements fmt.Stringer, one lattice vector per line.
func (l *Lattice) String() string {
	return l.mat.T().String()
}
