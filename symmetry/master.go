// SPDX-License-Identifier: MIT

package symmetry

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/crysym/geom"
)

// ErrNotHomomorphism indicates a representation that does not respect the
// multiplication table.
var ErrNotHomomorphism = errors.New("symmetry: representation is not a homomorphism")

// MasterGroup is a Group that owns a registry of representations.
//
// Registry IDs are indices into an append-only list. Once a representation
// is registered, membership is frozen: Add becomes a no-op and
// EnforceGroup fails with ErrFrozen. SortByClass permutes every registered
// representation along with the ops.
type MasterGroup struct {
	Group
	reps []*Rep
}

// NewMasterGroup returns an empty master group over lat.
func NewMasterGroup(lat *geom.Lattice, tol float64) *MasterGroup {
	return &MasterGroup{Group: *NewGroup(lat, tol)}
}

// NewMasterGroupFrom copies the ops of g into a new master group.
func NewMasterGroupFrom(g *Group) *MasterGroup {
	return &MasterGroup{Group: *g.Copy()}
}

// Add appends op unless it is present or membership is frozen.
func (m *MasterGroup) Add(op SymOp) bool {
	if len(m.reps) > 0 {
		return false
	}
	return m.Group.Add(op)
}

// EnforceGroup closes the group; it fails with ErrFrozen once
// representations are registered.
func (m *MasterGroup) EnforceGroup() error {
	if len(m.reps) > 0 {
		return fmt.Errorf("EnforceGroup: %d representations: %w", len(m.reps), ErrFrozen)
	}
	return m.Group.EnforceGroup()
}

// Clear removes every op and releases every representation.
func (m *MasterGroup) Clear() {
	m.Group.Clear()
	m.releaseReps()
}

// ReplaceWith overwrites the ops with those of src and releases every
// representation.
func (m *MasterGroup) ReplaceWith(src *Group) {
	m.Group.ReplaceWith(src)
	m.releaseReps()
}

func (m *MasterGroup) releaseReps() {
	for _, r := range m.reps {
		r.owner = nil
	}
	m.reps = nil
}

// SortByClass reorders ops by conjugacy class and permutes every
// registered representation to match.
func (m *MasterGroup) SortByClass() ([]int, error) {
	perm, err := m.Group.SortByClass()
	if err != nil {
		return nil, err
	}
	for _, r := range m.reps {
		r.permute(perm)
	}
	return perm, nil
}

// AddRepresentation registers r and returns its ID.
// Returns ErrRepSize when r.Len() differs from the group order and
// ErrRepOwned when r belongs to another group.
func (m *MasterGroup) AddRepresentation(r *Rep) (int, error) {
	if r.Len() != m.Len() {
		return -1, fmt.Errorf("AddRepresentation: %d actions, %d ops: %w", r.Len(), m.Len(), ErrRepSize)
	}
	if r.owner != nil {
		return -1, fmt.Errorf("AddRepresentation: %w", ErrRepOwned)
	}
	r.owner = m
	m.reps = append(m.reps, r)
	return len(m.reps) - 1, nil
}

// Representation returns the representation registered under id.
func (m *MasterGroup) Representation(id int) (*Rep, error) {
	if id < 0 || id >= len(m.reps) {
		return nil, fmt.Errorf("Representation: id %d of %d: %w", id, len(m.reps), ErrUnknownRep)
	}
	return m.reps[id], nil
}

// NumRepresentations returns the number of registered representations.
func (m *MasterGroup) NumRepresentations() int { return len(m.reps) }

// AddCartesianRep registers the Cartesian matrix representation and
// returns its ID.
func (m *MasterGroup) AddCartesianRep() (int, error) {
	if m.Len() == 0 {
		return -1, fmt.Errorf("AddCartesianRep: %w", ErrEmptyGroup)
	}
	actions := make([]Action, m.Len())
	for i, op := range m.ops {
		actions[i] = MatrixAction{Mat: op.mat}
	}
	return m.AddRepresentation(NewRep(RepCartesian, actions))
}

// CheckRepresentation verifies that rep id respects the multiplication
// table: act(i)·act(j) = act(i·j) for every pair. Permuter and matrix
// payloads are supported.
func (m *MasterGroup) CheckRepresentation(id int) error {
	r, err := m.Representation(id)
	if err != nil {
		return fmt.Errorf("CheckRepresentation: %w", err)
	}
	table, err := m.MultiplicationTable()
	if err != nil {
		return fmt.Errorf("CheckRepresentation: %w", err)
	}
	n := m.Len()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			ok, err := composeMatches(r, i, j, table[i][j], m.tol)
			if err != nil {
				return fmt.Errorf("CheckRepresentation: %w", err)
			}
			if !ok {
				return fmt.Errorf("CheckRepresentation: rep %d ops %d*%d: %w", id, i, j, ErrNotHomomorphism)
			}
		}
	}
	return nil
}

func composeMatches(r *Rep, i, j, k int, tol float64) (bool, error) {
	switch a := r.At(i).(type) {
	case Permuter:
		b, err1 := r.Permutation(j)
		c, err2 := r.Permutation(k)
		if err := errors.Join(err1, err2); err != nil {
			return false, err
		}
		return a.Permutation().Mul(b).Equal(c), nil
	case MatrixAction:
		b, err1 := r.Matrix(j)
		c, err2 := r.Matrix(k)
		if err := errors.Join(err1, err2); err != nil {
			return false, err
		}
		return a.Mat.Mul(b).AlmostEqual(c, tol), nil
	default:
		return false, fmt.Errorf("%s: %w", r.Kind(), ErrRepKind)
	}
}
