// SPDX-License-Identifier: MIT

// Package cli implements the crysym command tree.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/crysym/internal/config"
	"github.com/katalvlaran/crysym/logging"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// ErrUsage indicates invalid command-line input.
var ErrUsage = errors.New("cli: invalid usage")

// RootOptions holds the global flags.
type RootOptions struct {
	ConfigPath string
	LogLevel   string
	Output     string
	Tol        float64
}

// Env carries the initialized dependencies through the command tree.
type Env struct {
	Config *config.Config
	Logger logging.Logger
	Output string
}

type envKey struct{}

// NewRootCommand builds the root command with every subcommand attached.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}
	cmd := &cobra.Command{
		Use:   "crysym",
		Short: "Crystal symmetry analysis",
		Long: "crysym computes factor groups, primitive cells, supercells and\n" +
			"permutation representations of periodic structures read from\n" +
			"POSCAR or JSON files, or from the PRIM of the enclosing .casm project.",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildDate),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return persistentPreRun(cmd, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.ConfigPath, "config", "c", "", "config file path (YAML)")
	pf.StringVar(&opts.LogLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	pf.StringVarP(&opts.Output, "output", "o", formatText, "output format (text, json, yaml)")
	pf.Float64Var(&opts.Tol, "tol", config.DefaultTolerance, "mapping tolerance")

	cmd.AddCommand(
		newFactorGroupCommand(),
		newPrimitiveCommand(),
		newSupercellCommand(),
		newConvergeCommand(),
		newPermutationCommand(),
		newPointGroupCommand(),
	)
	return cmd
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// persistentPreRun resolves configuration with priority flags > env > file >
// defaults, then installs the logger.
func persistentPreRun(cmd *cobra.Command, opts *RootOptions) error {
	switch opts.Output {
	case formatText, formatJSON, formatYAML:
	default:
		return fmt.Errorf("--output %q: %w", opts.Output, ErrUsage)
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("tol") {
		cfg.Symmetry.Tolerance = opts.Tol
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = opts.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("flags: %w", err)
	}

	logger, err := logging.NewLogger(cfg.Log)
	if err != nil {
		return err
	}
	logging.SetDefault(logger)

	env := &Env{Config: cfg, Logger: logger.Named("crysym"), Output: opts.Output}
	cmd.SetContext(context.WithValue(cmd.Context(), envKey{}, env))
	return nil
}

// envFrom extracts the Env installed by the root command.
func envFrom(cmd *cobra.Command) (*Env, error) {
	if ctx := cmd.Context(); ctx != nil {
		if env, ok := ctx.Value(envKey{}).(*Env); ok && env != nil {
			return env, nil
		}
	}
	return nil, fmt.Errorf("command %q run without root: %w", cmd.Name(), ErrUsage)
}
