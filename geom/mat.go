// SPDX-License-Identifier: MIT

package geom

import (
	"fmt"
	"math"
	"strings"
)

// Mat3 is a row-major 3×3 matrix: m[i][j] is row i, column j.
type Mat3 [3][3]float64

// Identity returns the 3×3 identity matrix.
func Identity() Mat3 {
	return Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// FromColumns builds a matrix whose columns are a, b and c.
func FromColumns(a, b, c Vec3) Mat3 {
	return Mat3{
		{a[0], b[0], c[0]},
		{a[1], b[1], c[1]},
		{a[2], b[2], c[2]},
	}
}

// FromInts converts an integer matrix to a Mat3.
func FromInts(n [3][3]int) Mat3 {
	var m Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[i][j] = float64(n[i][j])
		}
	}
	return m
}

// Col returns column j.
func (m Mat3) Col(j int) Vec3 {
	return Vec3{m[0][j], m[1][j], m[2][j]}
}

// Row returns row i.
func (m Mat3) Row(i int) Vec3 {
	return Vec3(m[i])
}

// Mul returns the matrix product m·n.
func (m Mat3) Mul(n Mat3) Mat3 {
	var out Mat3
	var i, j, k int
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			for k = 0; k < 3; k++ {
				out[i][j] += m[i][k] * n[k][j]
			}
		}
	}
	return out
}

// MulVec returns m·v.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

// Add returns m+n.
func (m Mat3) Add(n Mat3) Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[i][j] + n[i][j]
		}
	}
	return out
}

// Sub returns m-n.
func (m Mat3) Sub(n Mat3) Mat3 {
	return m.Add(n.Scale(-1))
}

// Scale returns s·m.
func (m Mat3) Scale(s float64) Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = s * m[i][j]
		}
	}
	return out
}

// T returns the transpose of m.
func (m Mat3) T() Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[j][i]
		}
	}
	return out
}

// Trace returns the sum of the diagonal.
func (m Mat3) Trace() float64 {
	return m[0][0] + m[1][1] + m[2][2]
}

// Det returns the determinant of m.
func (m Mat3) Det() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// singularEps is the absolute determinant below which Inverse refuses to
// divide.
const singularEps = 1e-12

// Inverse returns m⁻¹ computed from the adjugate.
// Returns ErrSingular when |det m| is below 1e-12.
// Complexity: O(1).
func (m Mat3) Inverse() (Mat3, error) {
	det := m.Det()
	if math.Abs(det) < singularEps {
		return Mat3{}, fmt.Errorf("Mat3.Inverse: det=%g: %w", det, ErrSingular)
	}
	inv := Mat3{
		{
			m[1][1]*m[2][2] - m[1][2]*m[2][1],
			m[0][2]*m[2][1] - m[0][1]*m[2][2],
			m[0][1]*m[1][2] - m[0][2]*m[1][1],
		},
		{
			m[1][2]*m[2][0] - m[1][0]*m[2][2],
			m[0][0]*m[2][2] - m[0][2]*m[2][0],
			m[0][2]*m[1][0] - m[0][0]*m[1][2],
		},
		{
			m[1][0]*m[2][1] - m[1][1]*m[2][0],
			m[0][1]*m[2][0] - m[0][0]*m[2][1],
			m[0][0]*m[1][1] - m[0][1]*m[1][0],
		},
	}
	return inv.Scale(1 / det), nil
}

// AlmostEqual reports whether every entry of m-n is below tol.
func (m Mat3) AlmostEqual(n Mat3, tol float64) bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if !AlmostEqual(m[i][j], n[i][j], tol) {
				return false
			}
		}
	}
	return true
}

// IsInteger reports whether every entry lies within tol of an integer.
func (m Mat3) IsInteger(tol float64) bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if !IsInteger(m[i][j], tol) {
				return false
			}
		}
	}
	return true
}

// Round returns m with every entry rounded to the nearest integer.
func (m Mat3) Round() Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = math.Round(m[i][j])
		}
	}
	return out
}

// Ints returns the entries of m rounded to integers.
func (m Mat3) Ints() [3][3]int {
	var out [3][3]int
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = int(math.Round(m[i][j]))
		}
	}
	return out
}

// String implements fmt.Stringer, one bracketed row per line.
func (m Mat3) String() string {
	var sb strings.Builder
	for i := 0; i < 3; i++ {
		fmt.Fprintf(&sb, "[%g, %g, %g]\n", m[i][0], m[i][1], m[i][2])
	}
	return sb.String()
}
