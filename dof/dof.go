// SPDX-License-Identifier: MIT

package dof

// Kind enumerates the DoF variants.
type Kind int

const (
	// KindOccupant is a discrete occupant DoF.
	KindOccupant Kind = iota
	// KindContinuous is a bounded continuous DoF.
	KindContinuous
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindOccupant:
		return "OccupantDoF"
	case KindContinuous:
		return "ContinuousDoF"
	default:
		return "UnknownDoF"
	}
}

// Variable is implemented by every DoF variant. The set of variants is
// closed: only types in this package implement it.
type Variable interface {
	TypeName() string
	ID() int
	IsLocked() bool
	Kind() Kind
	sealed()
}

// UnsetID marks a DoF not yet tied to any neighbor-list position.
const UnsetID = -1

// DoF is the base shared by all variants.
type DoF struct {
	typeName string
	id       int
	locked   bool
}

// NewDoF returns a base with the given type name and ID.
func NewDoF(typeName string, id int) DoF {
	return DoF{typeName: typeName, id: id}
}

// TypeName returns the DoF type name (e.g. "occupation").
func (d *DoF) TypeName() string { return d.typeName }

// ID returns the DoF identifier.
func (d *DoF) ID() int { return d.id }

// SetID changes the identifier. It is a silent no-op while the ID is locked.
func (d *DoF) SetID(id int) {
	if d.locked {
		return
	}
	d.id = id
}

// IsLocked reports whether SetID is currently disabled.
func (d *DoF) IsLocked() bool { return d.locked }

// LockID disables SetID.
func (d *DoF) LockID() { d.locked = true }

// UnlockID re-enables SetID.
func (d *DoF) UnlockID() { d.locked = false }
