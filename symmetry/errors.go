// SPDX-License-Identifier: MIT

package symmetry

import "errors"

var (
	// ErrEmptyGroup indicates an operation on a group with no elements.
	ErrEmptyGroup = errors.New("symmetry: empty group")

	// ErrGroupOverflow indicates closure grew the group past MaxGroupSize.
	ErrGroupOverflow = errors.New("symmetry: group closure exceeds size limit")

	// ErrNotGroup indicates the set is not closed under composition.
	ErrNotGroup = errors.New("symmetry: set is not a group")

	// ErrRepSize indicates a representation whose length differs from the group order.
	ErrRepSize = errors.New("symmetry: representation size does not match group order")

	// ErrRepOwned indicates a representation already registered on another group.
	ErrRepOwned = errors.New("symmetry: representation owned by another group")

	// ErrUnknownRep indicates a registry ID that was never returned.
	ErrUnknownRep = errors.New("symmetry: unknown representation id")

	// ErrRepKind indicates an action kind that the requested check cannot handle.
	ErrRepKind = errors.New("symmetry: unsupported representation kind")

	// ErrFrozen indicates a membership change on a group with registered representations.
	ErrFrozen = errors.New("symmetry: group membership frozen by registered representations")
)
