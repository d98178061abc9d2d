// SPDX-License-Identifier: MIT

package crystal

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/crysym/dof"
	"github.com/katalvlaran/crysym/geom"
	"github.com/katalvlaran/crysym/symmetry"
)

// OccupationDoF is the type name of the site occupant DoF.
const OccupationDoF = "occupation"

// Site is a lattice position with an occupant DoF.
//
// The type ID is cached from the site's TypeRegistry and reset whenever the
// occupant domain or the registry changes. Sites without a registry fall
// back to comparing domains element by element.
type Site struct {
	Coordinate
	occ       *dof.Occupant[Molecule]
	sd        [3]bool
	nlistInd  int
	indToPrim int
	typeID    int
	types     *TypeRegistry
	occBasis  *OccupantBasis
}

// NewSite returns a site at coord whose allowed occupants are domain.
func NewSite(coord Coordinate, domain []Molecule) *Site {
	return &Site{
		Coordinate: coord,
		occ:        dof.NewOccupant(OccupationDoF, domain),
		nlistInd:   -1,
		indToPrim:  -1,
		typeID:     -1,
	}
}

// NewAtomicSite returns a site whose domain is one single-atom molecule per
// name. With a single name the occupant is fixed.
func NewAtomicSite(coord Coordinate, names ...string) *Site {
	domain := make([]Molecule, len(names))
	for i, n := range names {
		domain[i] = NewAtomicMolecule(n)
	}
	return NewSite(coord, domain)
}

// Clone returns a deep copy.
func (s *Site) Clone() *Site {
	c := *s
	c.occ = s.occ.Clone()
	if s.occBasis != nil {
		b := *s.occBasis
		c.occBasis = &b
	}
	return &c
}

// Occupant returns the occupant DoF.
func (s *Site) Occupant() *dof.Occupant[Molecule] { return s.occ }

// SetOccupantDomain replaces the allowed occupants.
func (s *Site) SetOccupantDomain(domain []Molecule) {
	s.occ.SetDomain(domain)
	s.typeID = -1
}

// SetOccValue selects occupant i (dof.Unspecified clears it).
func (s *Site) SetOccValue(i int) error {
	if err := s.occ.SetValue(i); err != nil {
		return fmt.Errorf("Site.SetOccValue: %w", err)
	}
	return nil
}

// SetTypeRegistry attaches the registry used for type IDs.
func (s *Site) SetTypeRegistry(r *TypeRegistry) {
	if s.types != r {
		s.types = r
		s.typeID = -1
	}
}

// TypeID returns the registry ID of the occupant domain, -1 without a
// registry.
func (s *Site) TypeID() int {
	if s.types == nil {
		return -1
	}
	if s.typeID < 0 {
		s.typeID = s.types.ID(s.occ)
	}
	return s.typeID
}

// CompareType reports whether both sites have the same occupant domain and
// the same current occupant.
func (s *Site) CompareType(other *Site) bool {
	if s.occ.Value() != other.occ.Value() {
		return false
	}
	if s.types != nil && s.types == other.types {
		return s.TypeID() == other.TypeID()
	}
	return s.occ.CompareDomain(other.occ)
}

// Compare reports whether other has the same type and lies within tol of s
// modulo the lattice.
func (s *Site) Compare(other *Site, tol float64) bool {
	return s.CompareType(other) && s.MinDist(&other.Coordinate) < tol
}

// CompareShift is Compare with other translated by the cartesian shift.
func (s *Site) CompareShift(other *Site, shift geom.Vec3, tol float64) bool {
	return s.CompareType(other) && s.MinDistShift(&other.Coordinate, shift) < tol
}

// ApplySym maps the site and every allowed molecule through op.
func (s *Site) ApplySym(op symmetry.SymOp) {
	s.Coordinate.ApplySym(op)
	s.occ.MapDomain(func(m Molecule) Molecule { return m.ApplySymNoTrans(op) })
}

// Transformed returns a copy of s mapped through op.
func (s *Site) Transformed(op symmetry.SymOp) *Site {
	c := s.Clone()
	c.ApplySym(op)
	return c
}

// Shifted returns a copy of s translated by the cartesian vector t.
func (s *Site) Shifted(t geom.Vec3) *Site {
	c := s.Clone()
	c.Translate(t)
	return c
}

// IsVacant reports whether the current occupant is a vacancy.
func (s *Site) IsVacant() bool {
	m, err := s.occ.Get()
	return err == nil && m.IsVacancy()
}

// Occ returns the current occupant.
func (s *Site) Occ() (Molecule, error) {
	m, err := s.occ.Get()
	if err != nil {
		return Molecule{}, fmt.Errorf("Site.Occ: %w", err)
	}
	return m, nil
}

// OccName returns the name of the current occupant, "?" when unspecified.
func (s *Site) OccName() string {
	m, err := s.occ.Get()
	if err != nil {
		return "?"
	}
	return m.Name
}

// Contains reports whether any allowed molecule contains name.
func (s *Site) Contains(name string) bool {
	return s.ContainsIndex(name) >= 0
}

// ContainsIndex returns the domain index of the first molecule containing
// name, or -1.
func (s *Site) ContainsIndex(name string) int {
	for i := 0; i < s.occ.Size(); i++ {
		if s.occ.At(i).Contains(name) {
			return i
		}
	}
	return -1
}

// AllowedOccupants returns the names of the allowed molecules.
func (s *Site) AllowedOccupants() []string {
	return s.occ.Labels()
}

// SDFlag returns the selective dynamics flags.
func (s *Site) SDFlag() [3]bool { return s.sd }

// SetSDFlag sets the selective dynamics flags on the site and on every atom
// of every allowed molecule.
func (s *Site) SetSDFlag(sd [3]bool) {
	s.sd = sd
	s.occ.MapDomain(func(m Molecule) Molecule { return m.withSDFlag(sd) })
}

// NlistInd returns the neighbor-list index.
func (s *Site) NlistInd() int { return s.nlistInd }

// SetNlistInd sets the neighbor-list index and retags the occupant DoF.
func (s *Site) SetNlistInd(i int) {
	if i == s.nlistInd {
		return
	}
	s.occ.SetID(i)
	s.nlistInd = i
}

// IndToPrim returns the primitive basis index this site was mapped to, -1
// if unmapped.
func (s *Site) IndToPrim() int { return s.indToPrim }

// SetBasisInd records the basis position and retags the occupant basis.
func (s *Site) SetBasisInd(i int) {
	s.Coordinate.SetBasisInd(i)
	if s.occBasis != nil && i >= 0 {
		s.occBasis.BasisInd = i
	}
}

// OccupantBasis returns the occupant basis functions, nil until filled.
func (s *Site) OccupantBasis() *OccupantBasis { return s.occBasis }

// FillOccupantBasis builds the occupant basis functions of kind.
func (s *Site) FillOccupantBasis(kind BasisKind) error {
	b, err := NewOccupantBasis(kind, s.occ.Size(), s.BasisInd())
	if err != nil {
		return fmt.Errorf("Site.FillOccupantBasis: %w", err)
	}
	s.occBasis = b
	return nil
}

// UpdateDataMembers copies the occupant DoF and basis functions from ref,
// keeping this site's position and neighbor-list index.
func (s *Site) UpdateDataMembers(ref *Site) {
	s.occ = ref.occ.Clone()
	s.occ.SetID(s.nlistInd)
	s.occBasis = nil
	if ref.occBasis != nil {
		b := *ref.occBasis
		s.occBasis = &b
	}
	s.typeID = -1
}

// String renders the fractional coordinates and the allowed occupants.
func (s *Site) String() string {
	return s.Coordinate.String() + " " + strings.Join(s.AllowedOccupants(), " ")
}
