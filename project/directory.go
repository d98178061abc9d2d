// SPDX-License-Identifier: MIT

package project

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/afero"
)

// Fixed directory names inside a project root.
const (
	CasmDirName     = ".casm"
	BsetDirName     = "basis_sets"
	CalcDirName     = "training_data"
	SettingsDirName = "settings"
	SymmetryDirName = "symmetry"
	ClexDirName     = "cluster_expansions"
)

// FindRoot walks from cwd towards the filesystem root and returns the first
// directory that contains a ".casm" directory.
func FindRoot(fs afero.Fs, cwd string) (string, error) {
	dir, err := filepath.Abs(cwd)
	if err != nil {
		return "", fmt.Errorf("FindRoot: %w", err)
	}
	for {
		ok, err := afero.DirExists(fs, filepath.Join(dir, CasmDirName))
		if err != nil {
			return "", fmt.Errorf("FindRoot: %w", err)
		}
		if ok {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("FindRoot: from %s: %w", cwd, ErrNoProject)
		}
		dir = parent
	}
}

// ECIKey names one fitted set of effective cluster interactions.
type ECIKey struct {
	Clex, Calctype, Ref, Bset, ECI string
}

// DirectoryStructure builds the paths of a project rooted at Root.
type DirectoryStructure struct {
	fs   afero.Fs
	root string
}

// Option configures a DirectoryStructure.
type Option func(*DirectoryStructure)

// WithFs sets the filesystem used by the All* listings (default: the OS).
func WithFs(fs afero.Fs) Option {
	return func(d *DirectoryStructure) {
		if fs != nil {
			d.fs = fs
		}
	}
}

// New returns the layout of the project at root, made absolute.
func New(root string, opts ...Option) (*DirectoryStructure, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("project.New: %w", err)
	}
	d := &DirectoryStructure{fs: afero.NewOsFs(), root: abs}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Open locates the project containing cwd and returns its layout.
func Open(cwd string, opts ...Option) (*DirectoryStructure, error) {
	d, err := New(cwd, opts...)
	if err != nil {
		return nil, err
	}
	root, err := FindRoot(d.fs, d.root)
	if err != nil {
		return nil, err
	}
	d.root = root
	return d, nil
}

func (d *DirectoryStructure) Root() string    { return d.root }
func (d *DirectoryStructure) Prim() string    { return filepath.Join(d.root, "prim.json") }
func (d *DirectoryStructure) PRIM() string    { return filepath.Join(d.root, "PRIM") }
func (d *DirectoryStructure) CasmDir() string { return filepath.Join(d.root, CasmDirName) }

func (d *DirectoryStructure) ProjectSettings() string {
	return filepath.Join(d.CasmDir(), "project_settings.json")
}

func (d *DirectoryStructure) ScelList() string   { return filepath.Join(d.CasmDir(), "scel_list.json") }
func (d *DirectoryStructure) ConfigList() string { return filepath.Join(d.CasmDir(), "config_list.json") }

// SymmetryDir holds the lattice point group, factor group and crystal point
// group files.
func (d *DirectoryStructure) SymmetryDir() string { return filepath.Join(d.root, SymmetryDirName) }

func (d *DirectoryStructure) LatticePointGroup() string {
	return filepath.Join(d.SymmetryDir(), "lattice_point_group.json")
}

func (d *DirectoryStructure) FactorGroup() string {
	return filepath.Join(d.SymmetryDir(), "factor_group.json")
}

func (d *DirectoryStructure) CrystalPointGroup() string {
	return filepath.Join(d.SymmetryDir(), "crystal_point_group.json")
}

// BsetDir is the directory of basis set bset.
func (d *DirectoryStructure) BsetDir(bset string) string {
	return filepath.Join(d.root, BsetDirName, tagged("bset", bset))
}

func (d *DirectoryStructure) Bspecs(bset string) string    { return filepath.Join(d.BsetDir(bset), "bspecs.json") }
func (d *DirectoryStructure) Clust(bset string) string     { return filepath.Join(d.BsetDir(bset), "clust.json") }
func (d *DirectoryStructure) PrimNlist(bset string) string { return filepath.Join(d.BsetDir(bset), "prim_nlist.json") }

// ClexulatorSrc is the generated source of the evaluator for bset.
func (d *DirectoryStructure) ClexulatorSrc(projectName, bset string) string {
	return filepath.Join(d.BsetDir(bset), projectName+"_Clexulator.cc")
}

func (d *DirectoryStructure) SupercellDir(scel string) string {
	return filepath.Join(d.root, CalcDirName, scel)
}

func (d *DirectoryStructure) ConfigurationDir(config string) string {
	return filepath.Join(d.root, CalcDirName, config)
}

func (d *DirectoryStructure) CalcSettingsDir(calctype string) string {
	return filepath.Join(d.root, CalcDirName, SettingsDirName, tagged("calctype", calctype))
}

func (d *DirectoryStructure) SupercellCalcSettingsDir(scel, calctype string) string {
	return filepath.Join(d.SupercellDir(scel), SettingsDirName, tagged("calctype", calctype))
}

func (d *DirectoryStructure) ConfigurationCalcSettingsDir(config, calctype string) string {
	return filepath.Join(d.ConfigurationDir(config), SettingsDirName, tagged("calctype", calctype))
}

// CalculatedProperties is the properties file of a finished calculation.
func (d *DirectoryStructure) CalculatedProperties(config, calctype string) string {
	return filepath.Join(d.ConfigurationDir(config), tagged("calctype", calctype), "properties.calc.json")
}

func (d *DirectoryStructure) RefDir(calctype, ref string) string {
	return filepath.Join(d.CalcSettingsDir(calctype), tagged("ref", ref))
}

func (d *DirectoryStructure) CompositionAxes(calctype, ref string) string {
	return filepath.Join(d.RefDir(calctype, ref), "composition_axes.json")
}

// RefState is reference state file index of (calctype, ref).
func (d *DirectoryStructure) RefState(calctype, ref string, index int) string {
	return filepath.Join(d.RefDir(calctype, ref), refStateName(index))
}

func (d *DirectoryStructure) ConfigurationRefState(config, calctype, ref string, index int) string {
	dir := filepath.Join(d.ConfigurationCalcSettingsDir(config, calctype), tagged("ref", ref))
	return filepath.Join(dir, refStateName(index))
}

func (d *DirectoryStructure) ClexDir(clex string) string {
	return filepath.Join(d.root, ClexDirName, tagged("clex", clex))
}

// ECIDir is the directory of one fitted ECI set.
func (d *DirectoryStructure) ECIDir(k ECIKey) string {
	return filepath.Join(d.ClexDir(k.Clex), tagged("calctype", k.Calctype), tagged("ref", k.Ref),
		tagged("bset", k.Bset), tagged("eci", k.ECI))
}

func (d *DirectoryStructure) ECIOut(k ECIKey) string { return filepath.Join(d.ECIDir(k), "eci.out") }

// AllBset lists the basis set names, sorted.
func (d *DirectoryStructure) AllBset() ([]string, error) {
	return d.settings("bset", filepath.Join(d.root, BsetDirName))
}

// AllCalctype lists the calculation type names, sorted.
func (d *DirectoryStructure) AllCalctype() ([]string, error) {
	return d.settings("calctype", filepath.Join(d.root, CalcDirName, SettingsDirName))
}

// AllRef lists the reference names of calctype, sorted.
func (d *DirectoryStructure) AllRef(calctype string) ([]string, error) {
	return d.settings("ref", d.CalcSettingsDir(calctype))
}

// AllClex lists the cluster expansion names, sorted.
func (d *DirectoryStructure) AllClex() ([]string, error) {
	return d.settings("clex", filepath.Join(d.root, ClexDirName))
}

// AllECI lists the ECI set names under k with k.ECI ignored, sorted.
func (d *DirectoryStructure) AllECI(k ECIKey) ([]string, error) {
	k.ECI = ""
	return d.settings("eci", filepath.Dir(d.ECIDir(k)))
}

// settings returns the suffixes of the "<kind>.<name>" subdirectories of
// dir. A missing dir yields an empty list.
func (d *DirectoryStructure) settings(kind, dir string) ([]string, error) {
	ok, err := afero.DirExists(d.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("project: %s: %w", dir, err)
	}
	if !ok {
		return nil, nil
	}
	entries, err := afero.ReadDir(d.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("project: %s: %w", dir, err)
	}
	prefix := kind + "."
	var out []string
	for _, e := range entries {
		if e.IsDir() && strings.HasPrefix(e.Name(), prefix) {
			out = append(out, strings.TrimPrefix(e.Name(), prefix))
		}
	}
	sort.Strings(out)
	return out, nil
}

func tagged(kind, name string) string { return kind + "." + name }

func refStateName(index int) string {
	return "properties.ref_state." + strconv.Itoa(index) + ".json"
}
