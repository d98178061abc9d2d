// SPDX-License-Identifier: MIT

package symmetry

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/katalvlaran/crysym/geom"
)

// MaxGroupSize caps EnforceGroup. Real factor groups of supercells stay
// far below it; hitting it means the tolerance admitted spurious ops.
const MaxGroupSize = 1 << 14

// Group is an ordered, duplicate-free sequence of symmetry operations.
//
// A Group with a lattice compares ops modulo lattice translations and keeps
// every translation reduced into the cell. A Group without one (a point
// group) compares ops exactly.
type Group struct {
	ops []SymOp
	lat *geom.Lattice
	tol float64
}

// NewGroup returns an empty group over lat (nil for a point group) with the
// comparison tolerance tol. A non-positive tol selects geom.DefaultTol.
func NewGroup(lat *geom.Lattice, tol float64) *Group {
	if tol <= 0 {
		tol = geom.DefaultTol
	}
	return &Group{lat: lat, tol: tol}
}

// Lattice returns the periodicity lattice, nil for point groups.
func (g *Group) Lattice() *geom.Lattice { return g.lat }

// Tol returns the comparison tolerance.
func (g *Group) Tol() float64 { return g.tol }

// Len returns the number of ops.
func (g *Group) Len() int { return len(g.ops) }

// At returns op i.
func (g *Group) At(i int) SymOp { return g.ops[i] }

// Ops returns a copy of the ops in order.
func (g *Group) Ops() []SymOp {
	out := make([]SymOp, len(g.ops))
	copy(out, g.ops)
	return out
}

// Clear removes every op.
func (g *Group) Clear() { g.ops = g.ops[:0] }

// Copy returns an independent copy.
func (g *Group) Copy() *Group {
	return &Group{ops: g.Ops(), lat: g.lat, tol: g.tol}
}

// ReplaceWith overwrites g with the contents of src.
func (g *Group) ReplaceWith(src *Group) {
	g.ops = src.Ops()
	g.lat = src.lat
	g.tol = src.tol
}

func (g *Group) normalize(op SymOp) SymOp {
	if g.lat == nil {
		return op
	}
	return op.WithTau(g.lat.WithinCart(op.tau, g.tol))
}

// Find returns the index of op, or -1.
func (g *Group) Find(op SymOp) int {
	for i := range g.ops {
		if g.ops[i].EqualPeriodic(op, g.lat, g.tol) {
			return i
		}
	}
	return -1
}

// Contains reports whether op is a member.
func (g *Group) Contains(op SymOp) bool { return g.Find(op) >= 0 }

// FindNoTrans returns the index of the first op whose linear part equals
// mat, or -1.
func (g *Group) FindNoTrans(mat geom.Mat3) int {
	for i := range g.ops {
		if g.ops[i].mat.AlmostEqual(mat, g.tol) {
			return i
		}
	}
	return -1
}

// Add appends op unless an equal op is already present. It reports
// whether op was appended.
func (g *Group) Add(op SymOp) bool {
	op = g.normalize(op)
	if g.Find(op) >= 0 {
		return false
	}
	g.ops = append(g.ops, op)
	return true
}

// EnforceGroup closes g under composition. The identity is inserted first
// when absent. On ErrGroupOverflow g is left unchanged.
//
// Implementation:
//   - Stage 1: ensure the identity is present.
//   - Stage 2: repeatedly append every product ops[i]·ops[j] not yet in the
//     set, until a full pass adds nothing.
//
// Complexity: O(n³) comparisons for a final order n.
func (g *Group) EnforceGroup() error {
	work := g.Copy()
	if work.Find(Identity(g.lat)) < 0 {
		work.ops = append([]SymOp{Identity(g.lat)}, work.ops...)
	}
	for added := true; added; {
		added = false
		for i := 0; i < len(work.ops); i++ {
			for j := 0; j < len(work.ops); j++ {
				if work.Add(work.ops[i].Mul(work.ops[j])) {
					added = true
					if len(work.ops) > MaxGroupSize {
						return fmt.Errorf("EnforceGroup: more than %d ops: %w", MaxGroupSize, ErrGroupOverflow)
					}
				}
			}
		}
	}
	g.ops = work.ops
	return nil
}

// IsGroup reports whether g contains the identity and is closed.
func (g *Group) IsGroup() bool {
	if len(g.ops) == 0 || g.Find(Identity(g.lat)) < 0 {
		return false
	}
	for i := range g.ops {
		for j := range g.ops {
			if g.Find(g.ops[i].Mul(g.ops[j])) < 0 {
				return false
			}
		}
	}
	return true
}

// MultiplicationTable returns t with ops[t[i][j]] = ops[i]·ops[j].
// Returns ErrNotGroup when some product is not a member.
func (g *Group) MultiplicationTable() ([][]int, error) {
	if len(g.ops) == 0 {
		return nil, fmt.Errorf("MultiplicationTable: %w", ErrEmptyGroup)
	}
	n := len(g.ops)
	t := make([][]int, n)
	for i := 0; i < n; i++ {
		t[i] = make([]int, n)
		for j := 0; j < n; j++ {
			k := g.Find(g.ops[i].Mul(g.ops[j]))
			if k < 0 {
				return nil, fmt.Errorf("MultiplicationTable: ops[%d]*ops[%d]: %w", i, j, ErrNotGroup)
			}
			t[i][j] = k
		}
	}
	return t, nil
}

// Inverses returns inv with ops[inv[i]] = ops[i]⁻¹.
func (g *Group) Inverses() ([]int, error) {
	inv := make([]int, len(g.ops))
	for i := range g.ops {
		k := g.Find(g.ops[i].Inverse())
		if k < 0 {
			return nil, fmt.Errorf("Inverses: op %d: %w", i, ErrNotGroup)
		}
		inv[i] = k
	}
	return inv, nil
}

// ConjugacyClasses partitions the indices of g into classes
// {h·x·h⁻¹ : h ∈ g}. The class holding the identity comes first; the rest
// follow in order of their smallest member.
func (g *Group) ConjugacyClasses() ([][]int, error) {
	table, err := g.MultiplicationTable()
	if err != nil {
		return nil, fmt.Errorf("ConjugacyClasses: %w", err)
	}
	inv, err := g.Inverses()
	if err != nil {
		return nil, fmt.Errorf("ConjugacyClasses: %w", err)
	}
	n := len(g.ops)
	classOf := make([]int, n)
	for i := range classOf {
		classOf[i] = -1
	}
	id := g.Find(Identity(g.lat))
	if id < 0 {
		return nil, fmt.Errorf("ConjugacyClasses: no identity: %w", ErrNotGroup)
	}
	order := append([]int{id}, seq(n)...)

	var classes [][]int
	for _, x := range order {
		if classOf[x] >= 0 {
			continue
		}
		c := len(classes)
		var members []int
		for h := 0; h < n; h++ {
			y := table[table[h][x]][inv[h]]
			if classOf[y] < 0 {
				classOf[y] = c
				members = append(members, y)
			}
		}
		sort.Ints(members)
		classes = append(classes, members)
	}
	return classes, nil
}

// SortByClass reorders g so that conjugacy classes are contiguous, in the
// order returned by ConjugacyClasses. It returns the applied permutation:
// new position k holds the op formerly at perm[k].
func (g *Group) SortByClass() ([]int, error) {
	classes, err := g.ConjugacyClasses()
	if err != nil {
		return nil, fmt.Errorf("SortByClass: %w", err)
	}
	perm := make([]int, 0, len(g.ops))
	for _, c := range classes {
		perm = append(perm, c...)
	}
	ops := make([]SymOp, len(perm))
	for k, old := range perm {
		ops[k] = g.ops[old]
	}
	g.ops = ops
	return perm, nil
}

// MaxError returns the largest mapping error over all ops.
func (g *Group) MaxError() float64 {
	m := 0.0
	for _, op := range g.ops {
		m = math.Max(m, op.mapErr)
	}
	return m
}

// PointGroup returns the distinct linear parts of g as a point group.
func (g *Group) PointGroup() *Group {
	pg := NewGroup(nil, g.tol)
	for _, op := range g.ops {
		if pg.FindNoTrans(op.mat) < 0 {
			pg.ops = append(pg.ops, NewSymOp(op.mat, geom.Vec3{}, op.home))
		}
	}
	return pg
}

// Matrices returns the linear parts of every op in order.
func (g *Group) Matrices() []geom.Mat3 {
	out := make([]geom.Mat3, len(g.ops))
	for i, op := range g.ops {
		out[i] = op.mat
	}
	return out
}

// ClassInfo summarizes one conjugacy class.
type ClassInfo struct {
	Label     string  `json:"label" yaml:"label"`          // point-group label of the members
	Size      int     `json:"size" yaml:"size"`            // number of members
	Members   []int   `json:"members" yaml:"members,flow"` // op indices
	Character float64 `json:"character" yaml:"character"`  // trace of the Cartesian representation
}

// CharacterTable returns per-class Cartesian characters and sizes.
func (g *Group) CharacterTable() ([]ClassInfo, error) {
	classes, err := g.ConjugacyClasses()
	if err != nil {
		return nil, fmt.Errorf("CharacterTable: %w", err)
	}
	out := make([]ClassInfo, len(classes))
	for i, c := range classes {
		op := g.ops[c[0]]
		out[i] = ClassInfo{Label: op.label, Size: len(c), Members: c, Character: op.mat.Trace()}
	}
	return out, nil
}

// String lists one op per line.
func (g *Group) String() string {
	var sb strings.Builder
	for i, op := range g.ops {
		fmt.Fprintf(&sb, "%3d %s\n", i, op)
	}
	return sb.String()
}

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
