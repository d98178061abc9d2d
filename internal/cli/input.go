// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/crysym/crystal"
	"github.com/katalvlaran/crysym/logging"
	"github.com/katalvlaran/crysym/poscar"
	"github.com/katalvlaran/crysym/project"
)

// structureArgs accepts an optional structure file.
var structureArgs = cobra.MaximumNArgs(1)

// loadStructure reads args[0], or the PRIM (then prim.json) of the project
// that contains the working directory.
func loadStructure(env *Env, args []string) (*crystal.Structure, error) {
	path := ""
	if len(args) == 1 {
		path = args[0]
	} else {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		dirs, err := project.Open(cwd)
		if err != nil {
			return nil, fmt.Errorf("no structure file given: %w", err)
		}
		path = dirs.PRIM()
		if _, err := os.Stat(path); err != nil {
			path = dirs.Prim()
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	opts := []crystal.Option{
		crystal.WithLogger(env.Logger),
		crystal.WithPrimVolumeFactor(env.Config.Primitive.VolumeFactor),
	}
	var s *crystal.Structure
	if strings.EqualFold(filepath.Ext(path), ".json") {
		s, err = crystal.DecodeJSON(data, opts...)
	} else {
		s, err = poscar.Read(bytes.NewReader(data), opts...)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	env.Logger.Debug("structure loaded", logging.String("path", path), logging.Int("sites", s.Len()))
	return s, nil
}
