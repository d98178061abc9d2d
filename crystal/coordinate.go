// SPDX-License-Identifier: MIT

package crystal

import (
	"fmt"

	"github.com/katalvlaran/crysym/geom"
	"github.com/katalvlaran/crysym/symmetry"
)

// CoordMode selects which representation of a position is authoritative.
type CoordMode int

const (
	// Frac is fractional coordinates of the home lattice.
	Frac CoordMode = iota
	// Cart is cartesian coordinates.
	Cart
)

// String implements fmt.Stringer.
func (m CoordMode) String() string {
	if m == Cart {
		return "Cartesian"
	}
	return "Direct"
}

// withinTol is the slack used when mapping positions into the cell.
const withinTol = geom.DefaultTol

// Coordinate is a position with consistent fractional and cartesian forms.
// Both forms are recomputed eagerly on every mutation.
type Coordinate struct {
	frac     geom.Vec3
	cart     geom.Vec3
	home     *geom.Lattice
	basisInd int
}

// NewCoordinate builds a coordinate from v interpreted in mode.
func NewCoordinate(v geom.Vec3, home *geom.Lattice, mode CoordMode) Coordinate {
	c := Coordinate{home: home, basisInd: -1}
	if mode == Cart {
		c.SetCart(v)
	} else {
		c.SetFrac(v)
	}
	return c
}

// Frac returns the fractional coordinates.
func (c *Coordinate) Frac() geom.Vec3 { return c.frac }

// Cart returns the cartesian coordinates.
func (c *Coordinate) Cart() geom.Vec3 { return c.cart }

// Get returns the coordinates in mode.
func (c *Coordinate) Get(mode CoordMode) geom.Vec3 {
	if mode == Cart {
		return c.cart
	}
	return c.frac
}

// Home returns the home lattice.
func (c *Coordinate) Home() *geom.Lattice { return c.home }

// BasisInd returns the position in the owning basis, -1 if detached.
func (c *Coordinate) BasisInd() int { return c.basisInd }

// SetBasisInd records the position in the owning basis.
func (c *Coordinate) SetBasisInd(i int) { c.basisInd = i }

// SetFrac assigns fractional coordinates.
func (c *Coordinate) SetFrac(f geom.Vec3) {
	c.frac = f
	c.cart = c.home.ToCart(f)
}

// SetCart assigns cartesian coordinates.
func (c *Coordinate) SetCart(v geom.Vec3) {
	c.cart = v
	c.frac = c.home.ToFrac(v)
}

// SetLattice rebinds the coordinate to lat. mode names the representation
// kept fixed; the other one is recomputed.
func (c *Coordinate) SetLattice(lat *geom.Lattice, mode CoordMode) {
	c.home = lat
	if mode == Cart {
		c.SetCart(c.cart)
	} else {
		c.SetFrac(c.frac)
	}
}

// Within maps the position into the home cell.
func (c *Coordinate) Within() {
	c.SetFrac(geom.WithinFrac(c.frac, withinTol))
}

// Translate shifts the position by the cartesian vector t.
func (c *Coordinate) Translate(t geom.Vec3) {
	c.SetCart(c.cart.Add(t))
}

// ApplySym maps the position through op.
func (c *Coordinate) ApplySym(op symmetry.SymOp) {
	c.SetCart(op.Apply(c.cart))
}

// MinDisplacement returns the shortest cartesian vector from c to a
// periodic image of other.
func (c *Coordinate) MinDisplacement(other *Coordinate) geom.Vec3 {
	return c.home.MinImage(other.cart.Sub(c.cart))
}

// MinDist returns the periodic distance between c and other.
func (c *Coordinate) MinDist(other *Coordinate) float64 {
	return c.MinDisplacement(other).Norm()
}

// MinDistShift returns the periodic distance between c and other shifted by
// the cartesian vector shift.
func (c *Coordinate) MinDistShift(other *Coordinate, shift geom.Vec3) float64 {
	return c.home.MinImage(other.cart.Add(shift).Sub(c.cart)).Norm()
}

// String renders fractional coordinates.
func (c *Coordinate) String() string {
	return fmt.Sprintf("%.9f %.9f %.9f", c.frac[0], c.frac[1], c.frac[2])
}
