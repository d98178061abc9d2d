// SPDX-License-Identifier: MIT

package crystal

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/crysym/geom"
)

type structureJSON struct {
	Title   string       `json:"title"`
	Lattice [3]geom.Vec3 `json:"lattice"`
	Basis   []siteJSON   `json:"basis"`
}

type siteJSON struct {
	Coordinate    geom.Vec3      `json:"coordinate"`
	SiteOccupant  occupantJSON   `json:"site_occupant"`
	OccupantBasis *OccupantBasis `json:"occupant_basis,omitempty"`
	SDFlag        [3]bool        `json:"SD_flag"`
	NlistInd      int            `json:"nlist_ind"`
}

type occupantJSON struct {
	DoFType string         `json:"DoF_type"`
	ID      int            `json:"ID"`
	Value   int            `json:"value"`
	Domain  []moleculeJSON `json:"domain"`
}

type moleculeJSON struct {
	Name  string     `json:"name"`
	Atoms []atomJSON `json:"atoms"`
}

type atomJSON struct {
	Name       string    `json:"name"`
	Coordinate geom.Vec3 `json:"coordinate"`
	SDFlag     [3]bool   `json:"SD_flag"`
}

// MarshalJSON encodes {title, lattice, basis}. Site coordinates are
// fractional; molecule atom offsets are cartesian.
func (s *Structure) MarshalJSON() ([]byte, error) {
	rec := structureJSON{Title: s.Title, Lattice: s.lat.Vectors(), Basis: make([]siteJSON, len(s.basis))}
	for i, site := range s.basis {
		occ := site.Occupant()
		oj := occupantJSON{
			DoFType: occ.TypeName(),
			ID:      occ.ID(),
			Value:   occ.Value(),
			Domain:  make([]moleculeJSON, occ.Size()),
		}
		for k, m := range occ.Domain() {
			mj := moleculeJSON{Name: m.Name, Atoms: make([]atomJSON, len(m.Atoms))}
			for a, at := range m.Atoms {
				mj.Atoms[a] = atomJSON{Name: at.Name, Coordinate: at.Pos, SDFlag: at.SDFlag}
			}
			oj.Domain[k] = mj
		}
		sj := siteJSON{
			Coordinate:    site.Frac(),
			SiteOccupant:  oj,
			OccupantBasis: site.OccupantBasis(),
			SDFlag:        site.SDFlag(),
			NlistInd:      site.NlistInd(),
		}
		rec.Basis[i] = sj
	}
	return json.Marshal(rec)
}

// DecodeJSON builds a structure from the MarshalJSON form.
func DecodeJSON(data []byte, opts ...Option) (*Structure, error) {
	var rec structureJSON
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("DecodeJSON: %w", err)
	}
	lat, err := geom.NewLattice(rec.Lattice[0], rec.Lattice[1], rec.Lattice[2])
	if err != nil {
		return nil, fmt.Errorf("DecodeJSON: lattice: %w", err)
	}
	s := NewStructure(lat, opts...)
	s.Title = rec.Title
	for i, sj := range rec.Basis {
		domain := make([]Molecule, len(sj.SiteOccupant.Domain))
		for k, mj := range sj.SiteOccupant.Domain {
			m := Molecule{Name: mj.Name, Atoms: make([]AtomPosition, len(mj.Atoms))}
			for a, aj := range mj.Atoms {
				m.Atoms[a] = AtomPosition{Name: aj.Name, Pos: aj.Coordinate, SDFlag: aj.SDFlag}
			}
			domain[k] = m
		}
		site := NewSite(NewCoordinate(sj.Coordinate, lat, Frac), domain)
		if err := site.SetOccValue(sj.SiteOccupant.Value); err != nil {
			return nil, fmt.Errorf("DecodeJSON: basis[%d]: %w", i, err)
		}
		site.sd = sj.SDFlag
		site.nlistInd = sj.NlistInd
		site.occ.SetID(sj.SiteOccupant.ID)
		if sj.OccupantBasis != nil {
			b := *sj.OccupantBasis
			site.occBasis = &b
		}
		s.AddSite(site)
	}
	return s, nil
}
