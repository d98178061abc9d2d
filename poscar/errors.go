// SPDX-License-Identifier: MIT

package poscar

import (
	"errors"
	"fmt"
)

var (
	// ErrParse indicates malformed POSCAR input.
	ErrParse = errors.New("poscar: malformed input")

	// ErrUnprintable indicates a structure that cannot be written with the
	// requested options (unspecified occupants, VASP5 without occupants).
	ErrUnprintable = errors.New("poscar: structure cannot be written as requested")
)

// ParseError reports the input line at which parsing failed and, when the
// failure came from a lower layer, the underlying error.
type ParseError struct {
	Line int
	Msg  string
	Err  error
}

// Error implements error.
func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("poscar: line %d: %s: %v", e.Line, e.Msg, e.Err)
	}
	return fmt.Sprintf("poscar: line %d: %s", e.Line, e.Msg)
}

// Unwrap returns ErrParse and the underlying error, if any.
func (e *ParseError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrParse, e.Err}
	}
	return []error{ErrParse}
}
