// SPDX-License-Identifier: MIT

// Command crysym analyses the symmetry of periodic structures.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/crysym/internal/cli"
)

// Build-time variables injected via ldflags.
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	cli.Version, cli.GitCommit, cli.BuildDate = version, commit, buildDate
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
