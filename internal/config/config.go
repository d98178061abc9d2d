// SPDX-License-Identifier: MIT

// Package config loads the command-line tool settings: symmetry tolerance,
// primitive-cell search bound, tolerance sweep bounds and logging.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/crysym/logging"
)

// ErrInvalid indicates a configuration value outside its allowed range.
var ErrInvalid = errors.New("config: invalid value")

// Config is the root configuration.
type Config struct {
	Symmetry  SymmetryConfig  `mapstructure:"symmetry" yaml:"symmetry" json:"symmetry"`
	Primitive PrimitiveConfig `mapstructure:"primitive" yaml:"primitive" json:"primitive"`
	Converge  ConvergeConfig  `mapstructure:"converge" yaml:"converge" json:"converge"`
	Log       logging.Config  `mapstructure:"log" yaml:"log" json:"log"`
}

// SymmetryConfig holds the geometric matching tolerance.
type SymmetryConfig struct {
	Tolerance float64 `mapstructure:"tolerance" yaml:"tolerance" json:"tolerance"`
}

// PrimitiveConfig bounds the primitive-cell search.
type PrimitiveConfig struct {
	// VolumeFactor scales the smallest admissible cell volume, V/N·f.
	VolumeFactor float64 `mapstructure:"volume_factor" yaml:"volume_factor" json:"volume_factor"`
}

// ConvergeConfig is the tolerance sweep of the converge command.
type ConvergeConfig struct {
	Small float64 `mapstructure:"small" yaml:"small" json:"small"`
	Large float64 `mapstructure:"large" yaml:"large" json:"large"`
	Step  float64 `mapstructure:"step" yaml:"step" json:"step"`
}

// Validate checks every field and reports the first violation.
func (c *Config) Validate() error {
	switch {
	case c.Symmetry.Tolerance <= 0:
		return fmt.Errorf("symmetry.tolerance=%g must be positive: %w", c.Symmetry.Tolerance, ErrInvalid)
	case c.Primitive.VolumeFactor <= 0 || c.Primitive.VolumeFactor > 1:
		return fmt.Errorf("primitive.volume_factor=%g must be in (0,1]: %w", c.Primitive.VolumeFactor, ErrInvalid)
	case c.Converge.Small <= 0 || c.Converge.Small >= c.Converge.Large:
		return fmt.Errorf("converge.small=%g must be in (0, converge.large=%g): %w",
			c.Converge.Small, c.Converge.Large, ErrInvalid)
	case c.Converge.Step <= 0:
		return fmt.Errorf("converge.step=%g must be positive: %w", c.Converge.Step, ErrInvalid)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level=%q: %w", c.Log.Level, ErrInvalid)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log.format=%q: %w", c.Log.Format, ErrInvalid)
	}
	return nil
}
