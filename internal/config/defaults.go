// SPDX-License-Identifier: MIT

package config

import (
	"github.com/spf13/viper"

	"github.com/katalvlaran/crysym/crystal"
	"github.com/katalvlaran/crysym/geom"
	"github.com/katalvlaran/crysym/logging"
)

// Default values.
const (
	DefaultTolerance    = geom.DefaultTol
	DefaultVolumeFactor = crystal.DefaultPrimVolumeFactor
	DefaultConvergeLo   = 1e-5
	DefaultConvergeHi   = 1e-2
	DefaultConvergeStep = 1e-3
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "console"
)

// setDefaults registers every key with viper so that environment variables
// override it even without a config file.
func setDefaults(v *viper.Viper) {
	v.SetDefault("symmetry.tolerance", DefaultTolerance)
	v.SetDefault("primitive.volume_factor", DefaultVolumeFactor)
	v.SetDefault("converge.small", DefaultConvergeLo)
	v.SetDefault("converge.large", DefaultConvergeHi)
	v.SetDefault("converge.step", DefaultConvergeStep)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
	v.SetDefault("log.output_paths", []string{"stderr"})
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Symmetry:  SymmetryConfig{Tolerance: DefaultTolerance},
		Primitive: PrimitiveConfig{VolumeFactor: DefaultVolumeFactor},
		Converge:  ConvergeConfig{Small: DefaultConvergeLo, Large: DefaultConvergeHi, Step: DefaultConvergeStep},
		Log:       logging.Config{Level: DefaultLogLevel, Format: DefaultLogFormat, OutputPaths: []string{"stderr"}},
	}
}
