package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crysym/internal/config"
)

// TestLoad_Defaults loads without a file and gets the built-in values.
func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
	require.NoError(t, config.Default().Validate())
}

// TestLoad_FileAndEnv merges a YAML file with environment overrides.
func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crysym.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
symmetry:
  tolerance: 0.001
converge:
  small: 0.0001
  large: 0.05
log:
  format: json
`), 0o644))
	t.Setenv("CRYSYM_PRIMITIVE_VOLUME_FACTOR", "0.25")
	t.Setenv("CRYSYM_LOG_LEVEL", "debug")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 0.001, cfg.Symmetry.Tolerance)
	require.Equal(t, 0.25, cfg.Primitive.VolumeFactor)
	require.Equal(t, 0.0001, cfg.Converge.Small)
	require.Equal(t, 0.05, cfg.Converge.Large)
	require.Equal(t, config.DefaultConvergeStep, cfg.Converge.Step)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "json", cfg.Log.Format)
}

// TestLoad_Errors covers unreadable files and values that fail validation.
func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	t.Setenv("CRYSYM_SYMMETRY_TOLERANCE", "-1")
	_, err = config.Load("")
	require.True(t, errors.Is(err, config.ErrInvalid))
}

// TestConfig_Validate rejects each out-of-range field.
func TestConfig_Validate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"Tolerance", func(c *config.Config) { c.Symmetry.Tolerance = 0 }},
		{"VolumeFactorHigh", func(c *config.Config) { c.Primitive.VolumeFactor = 1.5 }},
		{"VolumeFactorZero", func(c *config.Config) { c.Primitive.VolumeFactor = 0 }},
		{"ConvergeOrder", func(c *config.Config) { c.Converge.Small = c.Converge.Large }},
		{"ConvergeStep", func(c *config.Config) { c.Converge.Step = 0 }},
		{"LogLevel", func(c *config.Config) { c.Log.Level = "loud" }},
		{"LogFormat", func(c *config.Config) { c.Log.Format = "xml" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(cfg)
			require.True(t, errors.Is(cfg.Validate(), config.ErrInvalid))
		})
	}
}
