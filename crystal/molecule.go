// SPDX-License-Identifier: MIT

package crystal

import (
	"github.com/katalvlaran/crysym/dof"
	"github.com/katalvlaran/crysym/geom"
	"github.com/katalvlaran/crysym/symmetry"
)

// AtomPosition is one atom of a Molecule, positioned relative to the
// molecule's site in cartesian coordinates.
type AtomPosition struct {
	Name   string
	Pos    geom.Vec3
	SDFlag [3]bool
}

// Molecule is a named group of atoms that can occupy a site.
// Equality and containment are by name.
type Molecule struct {
	Name  string
	Atoms []AtomPosition
}

var _ dof.Occupier[Molecule] = Molecule{}

// NewAtomicMolecule returns a molecule holding a single atom at the site.
func NewAtomicMolecule(name string) Molecule {
	return Molecule{Name: name, Atoms: []AtomPosition{{Name: name}}}
}

// Equal compares names.
func (m Molecule) Equal(other Molecule) bool { return m.Name == other.Name }

// Label returns the name.
func (m Molecule) Label() string { return m.Name }

// IsVacancy reports whether the name marks an empty site.
func (m Molecule) IsVacancy() bool {
	switch m.Name {
	case "Va", "VA", "va":
		return true
	}
	return false
}

// Contains reports whether the molecule is, or holds an atom, named name.
func (m Molecule) Contains(name string) bool {
	if m.Name == name {
		return true
	}
	for _, a := range m.Atoms {
		if a.Name == name {
			return true
		}
	}
	return false
}

// ApplySymNoTrans rotates the atom offsets by the linear part of op.
func (m Molecule) ApplySymNoTrans(op symmetry.SymOp) Molecule {
	atoms := make([]AtomPosition, len(m.Atoms))
	for i, a := range m.Atoms {
		a.Pos = op.ApplyNoTrans(a.Pos)
		atoms[i] = a
	}
	return Molecule{Name: m.Name, Atoms: atoms}
}

func (m Molecule) withSDFlag(sd [3]bool) Molecule {
	atoms := make([]AtomPosition, len(m.Atoms))
	for i, a := range m.Atoms {
		a.SDFlag = sd
		atoms[i] = a
	}
	return Molecule{Name: m.Name, Atoms: atoms}
}
