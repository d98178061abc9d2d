// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/katalvlaran/crysym/crystal"
	"github.com/katalvlaran/crysym/poscar"
	"github.com/katalvlaran/crysym/symmetry"
)

// opReport describes one symmetry operation in fractional coordinates of
// the structure lattice.
type opReport struct {
	Index    int        `json:"index" yaml:"index"`
	Type     string     `json:"type" yaml:"type"`
	Label    string     `json:"label" yaml:"label"`
	Matrix   [3][3]int  `json:"matrix" yaml:"matrix,flow"`
	Tau      [3]float64 `json:"tau" yaml:"tau,flow"`
	MapError float64    `json:"map_error" yaml:"map_error"`
}

type groupReport struct {
	Title       string     `json:"title" yaml:"title"`
	Tolerance   float64    `json:"tolerance" yaml:"tolerance"`
	Size        int        `json:"size" yaml:"size"`
	Name        string     `json:"name" yaml:"name"`
	Schoenflies string     `json:"schoenflies" yaml:"schoenflies"`
	Ops         []opReport `json:"ops" yaml:"ops"`
}

func newGroupReport(title string, g *symmetry.Group) groupReport {
	r := groupReport{
		Title:       title,
		Tolerance:   g.Tol(),
		Size:        g.Len(),
		Name:        g.Name(),
		Schoenflies: g.Schoenflies(),
		Ops:         make([]opReport, g.Len()),
	}
	lat := g.Lattice()
	for i, op := range g.Ops() {
		r.Ops[i] = opReport{
			Index:    i,
			Type:     op.Type().String(),
			Label:    op.Label(),
			MapError: op.MapError(),
		}
		if lat != nil {
			r.Ops[i].Matrix = op.FracMatrix(lat).Ints()
			r.Ops[i].Tau = op.FracTau(lat)
		}
	}
	return r
}

func (r groupReport) Text(w io.Writer) error {
	fmt.Fprintf(w, "%s\n%d operations, %s (%s)\n", r.Title, r.Size, r.Name, r.Schoenflies)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, op := range r.Ops {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.6f %.6f %.6f\n", op.Index, op.Type, op.Label, op.Tau[0], op.Tau[1], op.Tau[2])
	}
	return tw.Flush()
}

type pointGroupReport struct {
	Lattice groupSummary         `json:"lattice" yaml:"lattice"`
	Crystal groupSummary         `json:"crystal" yaml:"crystal"`
	Classes []symmetry.ClassInfo `json:"classes" yaml:"classes"`
}

type groupSummary struct {
	Size        int    `json:"size" yaml:"size"`
	Name        string `json:"name" yaml:"name"`
	Schoenflies string `json:"schoenflies" yaml:"schoenflies"`
}

func summarize(g *symmetry.Group) groupSummary {
	return groupSummary{Size: g.Len(), Name: g.Name(), Schoenflies: g.Schoenflies()}
}

func (r pointGroupReport) Text(w io.Writer) error {
	fmt.Fprintf(w, "lattice point group: %d operations, %s (%s)\n", r.Lattice.Size, r.Lattice.Name, r.Lattice.Schoenflies)
	fmt.Fprintf(w, "crystal point group: %d operations, %s (%s)\n", r.Crystal.Size, r.Crystal.Name, r.Crystal.Schoenflies)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "class\tlabel\tsize\tchi")
	for i, c := range r.Classes {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%.3f\n", i, c.Label, c.Size, c.Character)
	}
	return tw.Flush()
}

// cellReport describes a derived cell together with its POSCAR rendering.
type cellReport struct {
	Title        string  `json:"title" yaml:"title"`
	Primitive    bool    `json:"is_primitive" yaml:"is_primitive"`
	Sites        int     `json:"sites" yaml:"sites"`
	Volume       float64 `json:"volume" yaml:"volume"`
	Multiplicity int     `json:"multiplicity" yaml:"multiplicity"`
	POSCAR       string  `json:"poscar" yaml:"poscar"`
}

func newCellReport(s *crystal.Structure, multiplicity int, primitive bool) (cellReport, error) {
	text, err := renderPOSCAR(s)
	if err != nil {
		return cellReport{}, err
	}
	vol := s.Lattice().Vol()
	if vol < 0 {
		vol = -vol
	}
	return cellReport{
		Title:        s.Title,
		Primitive:    primitive,
		Sites:        s.Len(),
		Volume:       vol,
		Multiplicity: multiplicity,
		POSCAR:       text,
	}, nil
}

func (r cellReport) Text(w io.Writer) error {
	_, err := io.WriteString(w, r.POSCAR)
	return err
}

// renderPOSCAR writes VASP5 when every occupant is known, VASP4 otherwise.
func renderPOSCAR(s *crystal.Structure) (string, error) {
	var buf bytes.Buffer
	err := poscar.Write(&buf, s, poscar.WriteOptions{Mode: crystal.Frac, Version5: true})
	if errors.Is(err, poscar.ErrUnprintable) {
		buf.Reset()
		err = poscar.Write(&buf, s, poscar.WriteOptions{Mode: crystal.Frac})
	}
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

type convergeReport struct {
	Title string                `json:"title" yaml:"title"`
	Rows  []crystal.ConvergeRow `json:"rows" yaml:"rows"`
}

func (r convergeReport) Text(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "tol\tops\tgroup\tclosed\tname")
	for _, row := range r.Rows {
		fmt.Fprintf(tw, "%.6g\t%d\t%t\t%d\t%s\n", row.Tol, row.NumOps, row.IsGroup, row.NumEnforced, row.Name)
	}
	return tw.Flush()
}

type permOp struct {
	Index       int                  `json:"index" yaml:"index"`
	Label       string               `json:"label" yaml:"label"`
	Permutation []int                `json:"permutation" yaml:"permutation,flow"`
	Images      crystal.BasisPermute `json:"images" yaml:"images"`
}

type permReport struct {
	Title string   `json:"title" yaml:"title"`
	Sites int      `json:"sites" yaml:"sites"`
	Ops   []permOp `json:"ops" yaml:"ops"`
}

func (r permReport) Text(w io.Writer) error {
	fmt.Fprintf(w, "%s\n%d sites, %d operations\n", r.Title, r.Sites, len(r.Ops))
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, op := range r.Ops {
		fmt.Fprintf(tw, "%d\t%s\t%v\t", op.Index, op.Label, op.Permutation)
		for k, u := range op.Images {
			if k > 0 {
				fmt.Fprint(tw, ", ")
			}
			fmt.Fprint(tw, u)
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}
