// SPDX-License-Identifier: MIT

package crystal

import "github.com/katalvlaran/crysym/dof"

// TypeRegistry assigns small integer IDs to distinct occupant domains so
// that sites can be type-compared without walking their domains. IDs are
// append-only and never invalidated. A registry is owned by whoever loads
// a family of structures (a primitive cell and its supercells) and shared
// between them.
type TypeRegistry struct {
	prototypes []*dof.Occupant[Molecule]
}

// NewTypeRegistry returns an empty registry.
func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{}
}

// ID returns the prototype index whose domain matches occ, registering a
// copy of occ as a new prototype when none does.
func (r *TypeRegistry) ID(occ *dof.Occupant[Molecule]) int {
	for i, p := range r.prototypes {
		if p.CompareDomain(occ) {
			return i
		}
	}
	r.prototypes = append(r.prototypes, occ.Clone())
	return len(r.prototypes) - 1
}

// Len returns the number of registered prototypes.
func (r *TypeRegistry) Len() int { return len(r.prototypes) }
