// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/crysym/crystal"
	"github.com/katalvlaran/crysym/geom"
	"github.com/katalvlaran/crysym/logging"
	"github.com/katalvlaran/crysym/symmetry"
)

// factorGroup computes the factor group of s with the configured tolerance.
func factorGroup(env *Env, s *crystal.Structure, slow bool) (*symmetry.MasterGroup, error) {
	tol := env.Config.Symmetry.Tolerance
	fg := symmetry.NewMasterGroup(s.Lattice(), tol)
	var err error
	if slow {
		err = s.GenerateFactorGroupSlow(fg, tol)
	} else {
		err = s.GenerateFactorGroup(fg, tol)
	}
	if err != nil {
		return nil, err
	}
	env.Logger.Info("factor group",
		logging.Int("ops", fg.Len()),
		logging.String("name", fg.Name()),
		logging.Float64("max_error", fg.MaxError()))
	return fg, nil
}

func newFactorGroupCommand() *cobra.Command {
	var slow bool
	cmd := &cobra.Command{
		Use:   "fg [structure]",
		Short: "Print the factor group",
		Args:  structureArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := envFrom(cmd)
			if err != nil {
				return err
			}
			s, err := loadStructure(env, args)
			if err != nil {
				return err
			}
			fg, err := factorGroup(env, s, slow)
			if err != nil {
				return err
			}
			return printResult(cmd, env, newGroupReport(s.Title, &fg.Group))
		},
	}
	cmd.Flags().BoolVar(&slow, "slow", false, "search the full cell instead of expanding the primitive factor group")
	return cmd
}

func newPointGroupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pg [structure]",
		Short: "Print the lattice and crystal point groups",
		Args:  structureArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := envFrom(cmd)
			if err != nil {
				return err
			}
			s, err := loadStructure(env, args)
			if err != nil {
				return err
			}
			fg, err := factorGroup(env, s, false)
			if err != nil {
				return err
			}
			lpg := symmetry.LatticePointGroup(s.Lattice(), env.Config.Symmetry.Tolerance)
			cpg := fg.PointGroup()
			classes, err := cpg.CharacterTable()
			if err != nil {
				return err
			}
			return printResult(cmd, env, pointGroupReport{
				Lattice: summarize(lpg),
				Crystal: summarize(cpg),
				Classes: classes,
			})
		},
	}
}

func newPrimitiveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "prim [structure]",
		Short: "Find the primitive cell",
		Args:  structureArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := envFrom(cmd)
			if err != nil {
				return err
			}
			s, err := loadStructure(env, args)
			if err != nil {
				return err
			}
			prim, already, err := s.Primitive(env.Config.Symmetry.Tolerance)
			if err != nil {
				return err
			}
			report, err := newCellReport(prim, s.Len()/prim.Len(), already)
			if err != nil {
				return err
			}
			return printResult(cmd, env, report)
		},
	}
}

// transformMatrix parses a supercell matrix given as 9 row-major entries or
// 3 diagonal entries.
func transformMatrix(vals []int) (geom.Mat3, error) {
	var T [3][3]int
	switch len(vals) {
	case 3:
		for i := 0; i < 3; i++ {
			T[i][i] = vals[i]
		}
	case 9:
		for i := 0; i < 9; i++ {
			T[i/3][i%3] = vals[i]
		}
	default:
		return geom.Mat3{}, fmt.Errorf("--matrix needs 3 or 9 integers, got %d: %w", len(vals), ErrUsage)
	}
	m := geom.FromInts(T)
	if m.Det() == 0 {
		return geom.Mat3{}, fmt.Errorf("--matrix is singular: %w", ErrUsage)
	}
	return m, nil
}

func newSupercellCommand() *cobra.Command {
	var matrix []int
	cmd := &cobra.Command{
		Use:   "super [structure]",
		Short: "Build a supercell L·T and map it back onto the structure",
		Args:  structureArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := envFrom(cmd)
			if err != nil {
				return err
			}
			T, err := transformMatrix(matrix)
			if err != nil {
				return err
			}
			s, err := loadStructure(env, args)
			if err != nil {
				return err
			}
			tol := env.Config.Symmetry.Tolerance
			lat, err := geom.LatticeFromMatrix(s.Lattice().Matrix().Mul(T))
			if err != nil {
				return err
			}
			scel, err := s.CreateSuperstruc(lat, tol)
			if err != nil {
				return err
			}
			if err := scel.MapSuperstrucToPrim(s, nil, tol); err != nil {
				return err
			}
			report, err := newCellReport(scel, int(math.Round(math.Abs(T.Det()))), false)
			if err != nil {
				return err
			}
			return printResult(cmd, env, report)
		},
	}
	cmd.Flags().IntSliceVar(&matrix, "matrix", []int{1, 1, 1}, "supercell matrix T, 3 diagonal or 9 row-major integers")
	return cmd
}

func newConvergeCommand() *cobra.Command {
	var small, large, step float64
	cmd := &cobra.Command{
		Use:   "converge [structure]",
		Short: "Sweep the factor group over a tolerance range",
		Args:  structureArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := envFrom(cmd)
			if err != nil {
				return err
			}
			cc := env.Config.Converge
			flags := cmd.Flags()
			if flags.Changed("small") {
				cc.Small = small
			}
			if flags.Changed("large") {
				cc.Large = large
			}
			if flags.Changed("step") {
				cc.Step = step
			}
			s, err := loadStructure(env, args)
			if err != nil {
				return err
			}
			rows, err := s.FGConverge(cc.Small, cc.Large, cc.Step)
			if err != nil {
				return err
			}
			for _, row := range rows {
				env.Logger.Info("fg_converge",
					logging.Float64("tol", row.Tol),
					logging.Int("ops", row.NumOps),
					logging.Bool("is_group", row.IsGroup),
					logging.Int("closed", row.NumEnforced),
					logging.String("name", row.Name))
			}
			return printResult(cmd, env, convergeReport{Title: s.Title, Rows: rows})
		},
	}
	f := cmd.Flags()
	f.Float64Var(&small, "small", 0, "smallest tolerance (default from config)")
	f.Float64Var(&large, "large", 0, "upper tolerance bound, exclusive (default from config)")
	f.Float64Var(&step, "step", 0, "tolerance increment (default from config)")
	return cmd
}

func newPermutationCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "perm [structure]",
		Short: "Print the basis-site permutation of every factor group operation",
		Args:  structureArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := envFrom(cmd)
			if err != nil {
				return err
			}
			s, err := loadStructure(env, args)
			if err != nil {
				return err
			}
			fg, err := factorGroup(env, s, false)
			if err != nil {
				return err
			}
			tol := env.Config.Symmetry.Tolerance
			permID, err := s.GeneratePermutationRepresentation(fg, tol)
			if err != nil {
				return err
			}
			basisID, err := s.GenerateBasisPermutationRepresentation(fg, tol)
			if err != nil {
				return err
			}
			for _, id := range []int{permID, basisID} {
				if err := fg.CheckRepresentation(id); err != nil {
					return err
				}
			}
			perms, _ := fg.Representation(permID)
			images, _ := fg.Representation(basisID)

			report := permReport{Title: s.Title, Sites: s.Len(), Ops: make([]permOp, fg.Len())}
			for i := 0; i < fg.Len(); i++ {
				p, err := perms.Permutation(i)
				if err != nil {
					return err
				}
				bp, _ := images.At(i).(crystal.BasisPermute)
				report.Ops[i] = permOp{Index: i, Label: fg.At(i).Label(), Permutation: p, Images: bp}
			}
			return printResult(cmd, env, report)
		},
	}
}
