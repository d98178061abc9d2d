// SPDX-License-Identifier: MIT

package dof

import "errors"

var (
	// ErrOutOfDomain indicates an index outside the domain, an unknown
	// domain element, or a value outside continuous bounds.
	ErrOutOfDomain = errors.New("dof: value outside domain")

	// ErrUnspecified indicates that no current value is selected.
	ErrUnspecified = errors.New("dof: value unspecified")

	// ErrNoRemote indicates that no remote binding was registered.
	ErrNoRemote = errors.New("dof: no remote value registered")
)
