// SPDX-License-Identifier: MIT

package dof

import (
	"fmt"
	"math"
)

// Continuous is a real-valued DoF constrained to [Min, Max].
type Continuous struct {
	DoF
	min, max float64
	value    float64
	remote   func() float64
}

var _ Variable = (*Continuous)(nil)

// NewContinuous returns a continuous DoF with the given bounds and an unset
// (NaN) value.
func NewContinuous(typeName string, lo, hi float64) *Continuous {
	if lo > hi {
		lo, hi = hi, lo
	}
	return &Continuous{DoF: NewDoF(typeName, UnsetID), min: lo, max: hi, value: math.NaN()}
}

// Kind returns KindContinuous.
func (c *Continuous) Kind() Kind { return KindContinuous }

func (c *Continuous) sealed() {}

// Bounds returns min and max.
func (c *Continuous) Bounds() (float64, float64) { return c.min, c.max }

// Value returns the current value, NaN when unset.
func (c *Continuous) Value() float64 { return c.value }

// SetValue assigns v after checking the bounds.
func (c *Continuous) SetValue(v float64) error {
	if math.IsNaN(v) || v < c.min || v > c.max {
		return fmt.Errorf("Continuous.SetValue: %g not in [%g, %g]: %w", v, c.min, c.max, ErrOutOfDomain)
	}
	c.value = v
	return nil
}

// RegisterRemote binds a read-only accessor onto an externally owned value.
func (c *Continuous) RegisterRemote(get func() float64) { c.remote = get }

// RemoteValue reads the remote value.
func (c *Continuous) RemoteValue() (float64, error) {
	if c.remote == nil {
		return math.NaN(), fmt.Errorf("Continuous.RemoteValue: %w", ErrNoRemote)
	}
	return c.remote(), nil
}

// Equal compares bounds, type name and value (two unset values are equal).
func (c *Continuous) Equal(other *Continuous) bool {
	if c.typeName != other.typeName || c.min != other.min || c.max != other.max {
		return false
	}
	if math.IsNaN(c.value) || math.IsNaN(other.value) {
		return math.IsNaN(c.value) && math.IsNaN(other.value)
	}
	return c.value == other.value
}
