// SPDX-License-Identifier: MIT

package crystal

import (
	"fmt"
	"math"
)

// BasisKind selects the occupant basis functions built by
// Site.FillOccupantBasis.
type BasisKind byte

const (
	// Chebyshev builds functions orthonormal under a uniform occupant
	// distribution.
	Chebyshev BasisKind = 'c'
	// Occupation builds indicator functions of the non-reference occupants.
	Occupation BasisKind = 'o'
)

// OccupantBasis holds discrete site basis functions over an occupant
// domain of size n. Functions[k][s] is the value of function k+1 on
// occupant s; the constant function 0 is implicit.
//
// Contract: together with the constant, the Chebyshev functions are
// orthonormal under weights 1/n; the occupation functions are
// φₖ(s) = δ(s, k).
type OccupantBasis struct {
	Kind      BasisKind   `json:"kind"`
	BasisInd  int         `json:"basis_ind"`
	Functions [][]float64 `json:"functions"`
}

// NewOccupantBasis builds the n-1 non-constant functions of kind for a
// domain of size n.
func NewOccupantBasis(kind BasisKind, n, basisInd int) (*OccupantBasis, error) {
	if n < 1 {
		return nil, fmt.Errorf("NewOccupantBasis: empty domain: %w", ErrInvalidState)
	}
	b := &OccupantBasis{Kind: kind, BasisInd: basisInd}
	switch kind {
	case Chebyshev:
		b.Functions = chebyshevFunctions(n)
	case Occupation:
		for k := 1; k < n; k++ {
			f := make([]float64, n)
			f[k] = 1
			b.Functions = append(b.Functions, f)
		}
	default:
		return nil, fmt.Errorf("NewOccupantBasis: kind %q: %w", kind, ErrInvalidState)
	}
	return b, nil
}

// chebyshevFunctions orthonormalizes the monomials sᵏ (k = 1..n-1) against
// the constant under uniform weights with Gram-Schmidt.
func chebyshevFunctions(n int) [][]float64 {
	w := 1 / float64(n)
	inner := func(a, b []float64) float64 {
		sum := 0.0
		for s := range a {
			sum += w * a[s] * b[s]
		}
		return sum
	}
	ortho := [][]float64{make([]float64, n)}
	for s := 0; s < n; s++ {
		ortho[0][s] = 1
	}
	for k := 1; k < n; k++ {
		f := make([]float64, n)
		for s := 0; s < n; s++ {
			f[s] = math.Pow(float64(s), float64(k))
		}
		for _, g := range ortho {
			c := inner(f, g)
			for s := range f {
				f[s] -= c * g[s]
			}
		}
		norm := math.Sqrt(inner(f, f))
		for s := range f {
			f[s] /= norm
		}
		ortho = append(ortho, f)
	}
	return ortho[1:]
}

// Size returns the number of non-constant functions.
func (b *OccupantBasis) Size() int { return len(b.Functions) }
