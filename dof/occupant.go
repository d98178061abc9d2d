// SPDX-License-Identifier: MIT

package dof

import (
	"fmt"
	"strings"
)

// Occupier is the element type of an Occupant domain.
type Occupier[T any] interface {
	Equal(other T) bool
	Label() string
}

// Unspecified is the current index of an Occupant with no selection.
const Unspecified = -1

// Occupant is a discrete DoF over an ordered domain of T.
//
// The current value is an index into the domain, or Unspecified. A remote
// binding, when set, reads an externally owned index; it is never written.
type Occupant[T Occupier[T]] struct {
	DoF
	domain   []T
	current  int
	remote   func() int
	symRepID int
}

var _ Variable = (*Occupant[stubOccupier])(nil)

// NewOccupant returns an occupant DoF over domain. The current value is 0
// when the domain has exactly one element, Unspecified otherwise.
func NewOccupant[T Occupier[T]](typeName string, domain []T) *Occupant[T] {
	o := &Occupant[T]{DoF: NewDoF(typeName, UnsetID), symRepID: -1}
	o.SetDomain(domain)
	return o
}

// Kind returns KindOccupant.
func (o *Occupant[T]) Kind() Kind { return KindOccupant }

func (o *Occupant[T]) sealed() {}

// Domain returns a copy of the allowed values.
func (o *Occupant[T]) Domain() []T {
	out := make([]T, len(o.domain))
	copy(out, o.domain)
	return out
}

// Size returns the number of allowed values.
func (o *Occupant[T]) Size() int { return len(o.domain) }

// At returns domain element i.
func (o *Occupant[T]) At(i int) T { return o.domain[i] }

// SetDomain replaces the domain and resets the current value.
func (o *Occupant[T]) SetDomain(domain []T) {
	o.domain = make([]T, len(domain))
	copy(o.domain, domain)
	if len(domain) == 1 {
		o.current = 0
	} else {
		o.current = Unspecified
	}
}

// MapDomain replaces every domain element d by f(d), keeping the current
// index.
func (o *Occupant[T]) MapDomain(f func(T) T) {
	for i := range o.domain {
		o.domain[i] = f(o.domain[i])
	}
}

// Value returns the current index (Unspecified when none is selected).
func (o *Occupant[T]) Value() int { return o.current }

// SetValue selects domain index i. Unspecified is accepted and clears the
// selection.
func (o *Occupant[T]) SetValue(i int) error {
	if i != Unspecified && (i < 0 || i >= len(o.domain)) {
		return fmt.Errorf("Occupant.SetValue: index %d, domain size %d: %w", i, len(o.domain), ErrOutOfDomain)
	}
	o.current = i
	return nil
}

// SetCurrent selects the domain element equal to v.
func (o *Occupant[T]) SetCurrent(v T) error {
	for i, d := range o.domain {
		if d.Equal(v) {
			o.current = i
			return nil
		}
	}
	return fmt.Errorf("Occupant.SetCurrent: %q: %w", v.Label(), ErrOutOfDomain)
}

// Invalidate clears the current selection.
func (o *Occupant[T]) Invalidate() { o.current = Unspecified }

// IsSpecified reports whether a current value is selected.
func (o *Occupant[T]) IsSpecified() bool { return o.current != Unspecified }

// Get returns the currently selected element.
func (o *Occupant[T]) Get() (T, error) {
	var zero T
	if o.current == Unspecified {
		return zero, fmt.Errorf("Occupant.Get: %w", ErrUnspecified)
	}
	return o.domain[o.current], nil
}

// Index returns the domain position of v, or -1.
func (o *Occupant[T]) Index(v T) int {
	for i, d := range o.domain {
		if d.Equal(v) {
			return i
		}
	}
	return -1
}

// Contains reports whether v belongs to the domain.
func (o *Occupant[T]) Contains(v T) bool { return o.Index(v) >= 0 }

// SymRepID returns the symmetry-representation identifier, -1 if unset.
func (o *Occupant[T]) SymRepID() int { return o.symRepID }

// SetSymRepID records the symmetry-representation identifier.
func (o *Occupant[T]) SetSymRepID(id int) { o.symRepID = id }

// RegisterRemote binds a read-only accessor onto an externally owned index.
func (o *Occupant[T]) RegisterRemote(get func() int) { o.remote = get }

// RemoteValue reads the remote index.
func (o *Occupant[T]) RemoteValue() (int, error) {
	if o.remote == nil {
		return Unspecified, fmt.Errorf("Occupant.RemoteValue: %w", ErrNoRemote)
	}
	return o.remote(), nil
}

// CompareDomain reports whether both domains hold equal elements in the
// same order.
func (o *Occupant[T]) CompareDomain(other *Occupant[T]) bool {
	if len(o.domain) != len(other.domain) {
		return false
	}
	for i := range o.domain {
		if !o.domain[i].Equal(other.domain[i]) {
			return false
		}
	}
	return true
}

// Equal reports whether both the current selection and the domain match.
func (o *Occupant[T]) Equal(other *Occupant[T]) bool {
	return o.current == other.current && o.CompareDomain(other)
}

// Clone returns a deep copy sharing the remote binding.
func (o *Occupant[T]) Clone() *Occupant[T] {
	c := *o
	c.domain = o.Domain()
	return &c
}

// Labels returns the labels of the domain elements in order.
func (o *Occupant[T]) Labels() []string {
	out := make([]string, len(o.domain))
	for i, d := range o.domain {
		out[i] = d.Label()
	}
	return out
}

// String renders the domain as space-separated labels.
func (o *Occupant[T]) String() string {
	return strings.Join(o.Labels(), " ")
}

// stubOccupier exists only for the compile-time interface assertion.
type stubOccupier struct{}

func (stubOccupier) Equal(stubOccupier) bool { return true }
func (stubOccupier) Label() string           { return "" }
