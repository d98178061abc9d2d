// SPDX-License-Identifier: MIT

package symmetry

import (
	"fmt"

	"github.com/katalvlaran/crysym/geom"
)

// RepKind identifies the payload carried by a representation.
type RepKind int

const (
	// RepPermutation holds a Permutation per element.
	RepPermutation RepKind = iota
	// RepBasisPermutation holds per-site periodic images per element.
	RepBasisPermutation
	// RepCartesian holds a MatrixAction per element.
	RepCartesian
	// RepCustom is for payloads defined outside this package.
	RepCustom
)

// String implements fmt.Stringer.
func (k RepKind) String() string {
	switch k {
	case RepPermutation:
		return "permutation"
	case RepBasisPermutation:
		return "basis_permutation"
	case RepCartesian:
		return "cartesian"
	default:
		return "custom"
	}
}

// Action is the image of one group element in a representation.
type Action interface {
	Kind() RepKind
}

// Permuter is an Action that projects onto a site permutation.
type Permuter interface {
	Action
	Permutation() Permutation
}

// Permutation maps index i to p[i].
type Permutation []int

var _ Permuter = Permutation(nil)

// Kind returns RepPermutation.
func (p Permutation) Kind() RepKind { return RepPermutation }

// Permutation returns p.
func (p Permutation) Permutation() Permutation { return p }

// Mul returns p∘q: (p∘q)[i] = p[q[i]].
func (p Permutation) Mul(q Permutation) Permutation {
	out := make(Permutation, len(q))
	for i, j := range q {
		out[i] = p[j]
	}
	return out
}

// Inverse returns the inverse permutation.
func (p Permutation) Inverse() Permutation {
	out := make(Permutation, len(p))
	for i, j := range p {
		out[j] = i
	}
	return out
}

// IsValid reports whether p is a bijection on [0, len(p)).
func (p Permutation) IsValid() bool {
	seen := make([]bool, len(p))
	for _, j := range p {
		if j < 0 || j >= len(p) || seen[j] {
			return false
		}
		seen[j] = true
	}
	return true
}

// Equal reports element-wise equality.
func (p Permutation) Equal(q Permutation) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// MatrixAction is a 3×3 matrix image.
type MatrixAction struct {
	Mat geom.Mat3
}

var _ Action = MatrixAction{}

// Kind returns RepCartesian.
func (MatrixAction) Kind() RepKind { return RepCartesian }

// Rep is a parallel array of actions, one per group element.
type Rep struct {
	kind    RepKind
	actions []Action
	owner   *MasterGroup
}

// NewRep wraps actions as a representation of the given kind.
func NewRep(kind RepKind, actions []Action) *Rep {
	a := make([]Action, len(actions))
	copy(a, actions)
	return &Rep{kind: kind, actions: a}
}

// Kind returns the payload kind.
func (r *Rep) Kind() RepKind { return r.kind }

// Len returns the number of actions.
func (r *Rep) Len() int { return len(r.actions) }

// At returns the action of element i.
func (r *Rep) At(i int) Action { return r.actions[i] }

// Permutation returns the action of element i as a Permutation. Actions
// implementing Permuter are projected.
func (r *Rep) Permutation(i int) (Permutation, error) {
	p, ok := r.actions[i].(Permuter)
	if !ok {
		return nil, fmt.Errorf("Rep.Permutation: %s: %w", r.kind, ErrRepKind)
	}
	return p.Permutation(), nil
}

// Matrix returns the action of element i as a matrix.
func (r *Rep) Matrix(i int) (geom.Mat3, error) {
	m, ok := r.actions[i].(MatrixAction)
	if !ok {
		return geom.Mat3{}, fmt.Errorf("Rep.Matrix: %s: %w", r.kind, ErrRepKind)
	}
	return m.Mat, nil
}

func (r *Rep) permute(perm []int) {
	a := make([]Action, len(perm))
	for k, old := range perm {
		a[k] = r.actions[old]
	}
	r.actions = a
}
