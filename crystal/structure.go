// SPDX-License-Identifier: MIT

package crystal

import (
	"fmt"
	"math"

	"github.com/katalvlaran/crysym/geom"
	"github.com/katalvlaran/crysym/logging"
)

// DefaultPrimVolumeFactor scales the lower bound |V|/n on candidate
// primitive-cell volumes, rejecting near-degenerate triples.
const DefaultPrimVolumeFactor = 0.5

// Structure is a periodic crystal: a title, a lattice and an ordered basis
// of sites. Basis indices are kept equal to slice positions.
type Structure struct {
	Title string

	lat           *geom.Lattice
	basis         []*Site
	types         *TypeRegistry
	log           logging.Logger
	primVolFactor float64
}

// Option configures a Structure.
type Option func(*Structure)

// WithLogger sets the logger used by engine operations.
func WithLogger(l logging.Logger) Option {
	return func(s *Structure) {
		if l != nil {
			s.log = l
		}
	}
}

// WithTypeRegistry shares r for site type IDs.
func WithTypeRegistry(r *TypeRegistry) Option {
	return func(s *Structure) {
		if r != nil {
			s.types = r
		}
	}
}

// WithPrimVolumeFactor sets the primitive-cell volume bound factor.
// Panics unless 0 < f ≤ 1.
func WithPrimVolumeFactor(f float64) Option {
	if f <= 0 || f > 1 {
		panic(fmt.Sprintf("crystal: WithPrimVolumeFactor(%g): want 0 < f <= 1", f))
	}
	return func(s *Structure) { s.primVolFactor = f }
}

// NewStructure returns an empty structure over lat.
func NewStructure(lat *geom.Lattice, opts ...Option) *Structure {
	s := &Structure{
		lat:           lat,
		log:           logging.Default(),
		primVolFactor: DefaultPrimVolumeFactor,
	}
	for _, o := range opts {
		o(s)
	}
	if s.types == nil {
		s.types = NewTypeRegistry()
	}
	return s
}

// sibling returns an empty structure over lat sharing title, registry,
// logger and volume factor with s.
func (s *Structure) sibling(lat *geom.Lattice) *Structure {
	return &Structure{
		Title:         s.Title,
		lat:           lat,
		types:         s.types,
		log:           s.log,
		primVolFactor: s.primVolFactor,
	}
}

// Lattice returns the lattice.
func (s *Structure) Lattice() *geom.Lattice { return s.lat }

// TypeRegistry returns the registry used for site type IDs.
func (s *Structure) TypeRegistry() *TypeRegistry { return s.types }

// Len returns the number of basis sites.
func (s *Structure) Len() int { return len(s.basis) }

// Site returns basis site i, or ErrInvalidState when i is out of range.
func (s *Structure) Site(i int) (*Site, error) {
	if i < 0 || i >= len(s.basis) {
		return nil, fmt.Errorf("Structure.Site: index %d of %d: %w", i, len(s.basis), ErrInvalidState)
	}
	return s.basis[i], nil
}

// Basis returns the basis sites in order. The sites are shared, the slice
// is not.
func (s *Structure) Basis() []*Site {
	out := make([]*Site, len(s.basis))
	copy(out, s.basis)
	return out
}

// AddSite appends a copy of site, rebinding it to the structure lattice
// with its cartesian position fixed.
func (s *Structure) AddSite(site *Site) {
	c := site.Clone()
	c.SetLattice(s.lat, Cart)
	c.SetTypeRegistry(s.types)
	c.SetBasisInd(len(s.basis))
	s.basis = append(s.basis, c)
}

// SetBasis replaces the basis with copies of sites.
func (s *Structure) SetBasis(sites []*Site) {
	s.basis = s.basis[:0]
	for _, site := range sites {
		s.AddSite(site)
	}
	s.SetSiteInternals()
}

// SetSiteInternals makes every basis index equal its slice position and
// attaches the structure registry.
func (s *Structure) SetSiteInternals() {
	for i, site := range s.basis {
		site.SetBasisInd(i)
		site.SetTypeRegistry(s.types)
	}
}

// SetLattice rebinds every site to lat keeping mode fixed, then maps each
// site into the new cell.
func (s *Structure) SetLattice(lat *geom.Lattice, mode CoordMode) {
	s.lat = lat
	for _, site := range s.basis {
		site.SetLattice(lat, mode)
		site.Within()
	}
}

// Within maps every site into the cell.
func (s *Structure) Within() {
	for _, site := range s.basis {
		site.Within()
	}
}

// Clone returns a deep copy sharing the registry and logger.
func (s *Structure) Clone() *Structure {
	c := s.sibling(s.lat)
	c.basis = make([]*Site, len(s.basis))
	for i, site := range s.basis {
		c.basis[i] = site.Clone()
	}
	return c
}

// Find returns the index of the basis site that compares equal to site
// within tol, or -1.
func (s *Structure) Find(site *Site, tol float64) int {
	for i, b := range s.basis {
		if b.Compare(site, tol) {
			return i
		}
	}
	return -1
}

// FindShift is Find with site translated by the cartesian shift.
func (s *Structure) FindShift(site *Site, shift geom.Vec3, tol float64) int {
	for i, b := range s.basis {
		if b.CompareShift(site, shift, tol) {
			return i
		}
	}
	return -1
}

// UnitCellCoord returns the address of site as a periodic image of a basis
// site. Returns a MismatchError when no basis site matches.
func (s *Structure) UnitCellCoord(site *Site, tol float64) (UnitCellCoord, error) {
	t := site.Clone()
	t.SetLattice(s.lat, Cart)
	b := s.Find(t, tol)
	if b < 0 {
		return UnitCellCoord{}, &MismatchError{Op: "UnitCellCoord", Site: site.BasisInd(), SymOp: -1, Tol: tol, Dist: s.closest(t)}
	}
	d := t.Frac().Sub(s.basis[b].Frac())
	return UnitCellCoord{Sublat: b, Offset: d.Ints()}, nil
}

// SiteAt returns a copy of the basis site addressed by ucc, translated to
// its cell. Returns ErrInvalidState when the basis index is out of range.
func (s *Structure) SiteAt(ucc UnitCellCoord) (*Site, error) {
	b, err := s.Site(ucc.Sublat)
	if err != nil {
		return nil, fmt.Errorf("Structure.SiteAt: %v: %w", ucc, err)
	}
	return b.Shifted(s.lat.ToCart(geom.IntVec(ucc.Offset))), nil
}

// MaxPossibleVacancies counts the sites that allow a vacancy.
func (s *Structure) MaxPossibleVacancies() int {
	n := 0
	for _, site := range s.basis {
		occ := site.Occupant()
		for i := 0; i < occ.Size(); i++ {
			if occ.At(i).IsVacancy() {
				n++
				break
			}
		}
	}
	return n
}

// closest returns the smallest periodic distance from site to a basis site
// of the same type, NaN when none shares its type.
func (s *Structure) closest(site *Site) float64 {
	best := -1.0
	for _, b := range s.basis {
		if !b.CompareType(site) {
			continue
		}
		if d := b.MinDist(&site.Coordinate); best < 0 || d < best {
			best = d
		}
	}
	if best < 0 {
		return math.NaN()
	}
	return best
}
