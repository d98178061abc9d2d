// SPDX-License-Identifier: MIT

package poscar

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/crysym/crystal"
)

// WriteOptions controls the POSCAR layout produced by Write.
type WriteOptions struct {
	// Mode selects Direct or Cartesian site coordinates.
	Mode crystal.CoordMode
	// Version5 writes an element line and groups sites by current
	// occupant. Vacancies are omitted. Requires every occupant specified.
	Version5 bool
	// CurrentOccupant appends ":: name" to VASP4 site lines.
	CurrentOccupant bool
}

// group is a run of consecutive sites written under one species count.
type group struct {
	label string
	sites []*crystal.Site
}

// Write renders s as POSCAR text.
// Returns ErrUnprintable when an occupant that must be written is
// unspecified.
//
// Implementation:
//   - Stage 1: group consecutive sites, by allowed occupants (VASP4) or by
//     current occupant with vacancies dropped (VASP5).
//   - Stage 2: write header, counts, optional Selective dynamics, mode line.
//   - Stage 3: write one line per site of every group.
func Write(w io.Writer, s *crystal.Structure, opt WriteOptions) error {
	groups, err := groupSites(s, opt)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, s.Title)
	fmt.Fprintf(bw, "%.8f\n", 1.0)
	for _, v := range s.Lattice().Vectors() {
		fmt.Fprintf(bw, "  %14.8f %14.8f %14.8f\n", v[0], v[1], v[2])
	}
	if opt.Version5 {
		labels := make([]string, len(groups))
		for i, g := range groups {
			labels[i] = g.label
		}
		fmt.Fprintln(bw, strings.Join(labels, " "))
	}
	counts := make([]string, len(groups))
	selective := false
	for i, g := range groups {
		counts[i] = strconv.Itoa(len(g.sites))
		for _, site := range g.sites {
			selective = selective || site.SDFlag() != [3]bool{}
		}
	}
	fmt.Fprintln(bw, strings.Join(counts, " "))
	if selective {
		fmt.Fprintln(bw, "Selective dynamics")
	}
	fmt.Fprintln(bw, opt.Mode)

	for _, g := range groups {
		for _, site := range g.sites {
			writeSite(bw, site, opt, selective)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("poscar: %w", err)
	}
	return nil
}

func groupSites(s *crystal.Structure, opt WriteOptions) ([]group, error) {
	var groups []group
	for i, site := range s.Basis() {
		var label string
		if opt.Version5 || opt.CurrentOccupant {
			if !site.Occupant().IsSpecified() {
				return nil, fmt.Errorf("poscar: site %d occupant unspecified: %w", i, ErrUnprintable)
			}
		}
		if opt.Version5 {
			if site.IsVacant() {
				continue
			}
			label = site.OccName()
		} else {
			label = site.Occupant().String()
		}
		if n := len(groups); n > 0 && groups[n-1].label == label {
			groups[n-1].sites = append(groups[n-1].sites, site)
			continue
		}
		groups = append(groups, group{label: label, sites: []*crystal.Site{site}})
	}
	return groups, nil
}

func writeSite(w io.Writer, site *crystal.Site, opt WriteOptions, selective bool) {
	v := site.Get(opt.Mode)
	fmt.Fprintf(w, "  %14.9f %14.9f %14.9f", v[0], v[1], v[2])
	if selective {
		for _, f := range site.SDFlag() {
			if f {
				fmt.Fprint(w, " T")
			} else {
				fmt.Fprint(w, " F")
			}
		}
	}
	switch {
	case opt.Version5:
		fmt.Fprintf(w, " %s\n", site.OccName())
	case opt.CurrentOccupant:
		fmt.Fprintf(w, " %s %s %s\n", site.Occupant(), currentMarker, site.OccName())
	default:
		fmt.Fprintf(w, " %s\n", site.Occupant())
	}
}

// WriteXYZ renders s in XYZ format: atom count, title, then the current
// occupant and cartesian position of every non-vacant site.
func WriteXYZ(w io.Writer, s *crystal.Structure) error {
	var atoms []*crystal.Site
	for i, site := range s.Basis() {
		if !site.Occupant().IsSpecified() {
			return fmt.Errorf("poscar: site %d occupant unspecified: %w", i, ErrUnprintable)
		}
		if !site.IsVacant() {
			atoms = append(atoms, site)
		}
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, len(atoms))
	fmt.Fprintln(bw, s.Title)
	for _, site := range atoms {
		c := site.Cart()
		fmt.Fprintf(bw, "%-3s %12.7f %12.7f %12.7f\n", site.OccName(), c[0], c[1], c[2])
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("poscar: %w", err)
	}
	return nil
}
