// SPDX-License-Identifier: MIT

// Package crysym is a crystal symmetry engine: factor groups, primitive
// cells, supercells and permutation representations of periodic structures
// whose sites carry occupational degrees of freedom.
//
// 🚀 What is inside?
//
//   - geom: 3-vectors, 3×3 matrices, lattices and their point groups
//   - dof: discrete occupant and continuous degrees of freedom
//   - symmetry: symmetry operations, closed groups, point-group names,
//     the MasterGroup representation registry
//   - crystal: sites, structures, PrimGrid and the engine operations
//   - poscar: POSCAR (VASP4/VASP5) and XYZ text formats
//   - project: .casm project layout
//   - logging: structured logging over zap
//
// Under the hood, the dependency order is:
//
//	geom → dof → symmetry → crystal → poscar, project → internal/cli
//
// Quick example, the factor group of fcc copper:
//
//	s, _ := poscar.Read(f)
//	fg := symmetry.NewMasterGroup(s.Lattice(), geom.DefaultTol)
//	_ = s.GenerateFactorGroup(fg, geom.DefaultTol)
//	fmt.Println(fg.Len(), fg.Name()) // 48 m-3m for the primitive cell
//
// The crysym command (cmd/crysym) exposes the same operations: fg, pg,
// prim, super, converge and perm.
//
//	go install github.com/katalvlaran/crysym/cmd/crysym@latest
package crysym
