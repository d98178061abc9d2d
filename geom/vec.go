// SPDX-License-Identifier: MIT

package geom

import (
	"fmt"
	"math"
)

// Vec3 is a 3-vector.
type Vec3 [3]float64

// Add returns v+w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v[0] + w[0], v[1] + w[1], v[2] + w[2]}
}

// Sub returns v-w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{v[0] - w[0], v[1] - w[1], v[2] - w[2]}
}

// Scale returns s·v.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{s * v[0], s * v[1], s * v[2]}
}

// Neg returns -v.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v[0], -v[1], -v[2]}
}

// Dot returns the scalar product v·w.
func (v Vec3) Dot(w Vec3) float64 {
	return v[0]*w[0] + v[1]*w[1] + v[2]*w[2]
}

// Cross returns the vector product v×w.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		v[1]*w[2] - v[2]*w[1],
		v[2]*w[0] - v[0]*w[2],
		v[0]*w[1] - v[1]*w[0],
	}
}

// Norm returns the euclidean length of v.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns v/|v|. The zero vector is returned unchanged.
func (v Vec3) Normalize() Vec3 {
	n := v.Norm()
	if n == 0 {
		return v
	}
	return v.Scale(1 / n)
}

// Round returns v with every component rounded to the nearest integer.
func (v Vec3) Round() Vec3 {
	return Vec3{math.Round(v[0]), math.Round(v[1]), math.Round(v[2])}
}

// Ints returns the components of v rounded to the nearest integers.
func (v Vec3) Ints() [3]int {
	return [3]int{int(math.Round(v[0])), int(math.Round(v[1])), int(math.Round(v[2]))}
}

// IntVec converts an integer triple to a Vec3.
func IntVec(p [3]int) Vec3 {
	return Vec3{float64(p[0]), float64(p[1]), float64(p[2])}
}

// AlmostEqual reports whether every component of v-w is below tol.
func (v Vec3) AlmostEqual(w Vec3, tol float64) bool {
	return AlmostEqual(v[0], w[0], tol) && AlmostEqual(v[1], w[1], tol) && AlmostEqual(v[2], w[2], tol)
}

// IsZero reports whether every component of v is below tol.
func (v Vec3) IsZero(tol float64) bool {
	return AlmostZero(v[0], tol) && AlmostZero(v[1], tol) && AlmostZero(v[2], tol)
}

// TripleProduct returns a·(b×c).
func TripleProduct(a, b, c Vec3) float64 {
	return a.Dot(b.Cross(c))
}

// String implements fmt.Stringer.
func (v Vec3) String() string {
	return fmt.Sprintf("[%g, %g, %g]", v[0], v[1], v[2])
}
