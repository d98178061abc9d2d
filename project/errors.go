// SPDX-License-Identifier: MIT

package project

import "errors"

// ErrNoProject indicates that no ancestor directory contains ".casm".
var ErrNoProject = errors.New("project: no .casm directory found")
