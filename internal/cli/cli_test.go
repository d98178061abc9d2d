package cli_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/crysym/internal/cli"
	"github.com/katalvlaran/crysym/internal/config"
	"github.com/katalvlaran/crysym/poscar"
	"github.com/katalvlaran/crysym/project"
)

const (
	simpleCubic = "cubic\n1.0\n1 0 0\n0 1 0\n0 0 1\nA\n1\nDirect\n0 0 0\n"
	cesiumCl    = "CsCl\n1.0\n1 0 0\n0 1 0\n0 0 1\nCs Cl\n1 1\nDirect\n0 0 0\n0.5 0.5 0.5\n"
	fccCu       = "FCC Cu\n4.0\n1 0 0\n0 1 0\n0 0 1\nCu\n4\nDirect\n0 0 0\n0 0.5 0.5\n0.5 0 0.5\n0.5 0.5 0\n"
)

type CLISuite struct {
	suite.Suite
	dir string
}

func (s *CLISuite) SetupTest() {
	s.dir = s.T().TempDir()
}

func (s *CLISuite) file(name, content string) string {
	path := filepath.Join(s.dir, name)
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o644))
	return path
}

// run executes the command tree and returns stdout.
func (s *CLISuite) run(args ...string) (string, error) {
	cmd := cli.NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append(args, "--log-level", "error"))
	err := cmd.Execute()
	return out.String(), err
}

func (s *CLISuite) runJSON(v any, args ...string) {
	out, err := s.run(append(args, "--output", "json")...)
	s.Require().NoError(err)
	s.Require().NoError(json.Unmarshal([]byte(out), v))
}

// TestFactorGroup reports the full cubic group of a one-site cube.
func (s *CLISuite) TestFactorGroup() {
	var report struct {
		Size int    `json:"size"`
		Name string `json:"name"`
		Ops  []struct {
			Label  string    `json:"label"`
			Matrix [3][3]int `json:"matrix"`
		} `json:"ops"`
	}
	s.runJSON(&report, "fg", s.file("POSCAR", simpleCubic))
	s.Require().Equal(48, report.Size)
	s.Require().Equal("m-3m", report.Name)
	s.Require().Len(report.Ops, 48)
	s.Require().Equal([3][3]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, report.Ops[0].Matrix)

	out, err := s.run("fg", s.file("POSCAR", simpleCubic), "--slow")
	s.Require().NoError(err)
	s.Require().True(strings.HasPrefix(out, "cubic\n48 operations, m-3m"))
}

// TestPointGroup renders both point groups as YAML.
func (s *CLISuite) TestPointGroup() {
	out, err := s.run("pg", s.file("POSCAR", cesiumCl), "--output", "yaml")
	s.Require().NoError(err)
	var report struct {
		Lattice struct {
			Size int `yaml:"size"`
		} `yaml:"lattice"`
		Crystal struct {
			Size int    `yaml:"size"`
			Name string `yaml:"name"`
		} `yaml:"crystal"`
		Classes []struct {
			Size int `yaml:"size"`
		} `yaml:"classes"`
	}
	s.Require().NoError(yaml.Unmarshal([]byte(out), &report))
	s.Require().Equal(48, report.Lattice.Size)
	s.Require().Equal(48, report.Crystal.Size)
	s.Require().Equal("m-3m", report.Crystal.Name)

	total := 0
	for _, c := range report.Classes {
		total += c.Size
	}
	s.Require().Equal(48, total)
}

// TestPrimitive reduces conventional FCC and prints a readable POSCAR.
func (s *CLISuite) TestPrimitive() {
	path := s.file("POSCAR", fccCu)
	var report struct {
		Primitive    bool    `json:"is_primitive"`
		Sites        int     `json:"sites"`
		Volume       float64 `json:"volume"`
		Multiplicity int     `json:"multiplicity"`
	}
	s.runJSON(&report, "prim", path)
	s.Require().False(report.Primitive)
	s.Require().Equal(1, report.Sites)
	s.Require().InDelta(16.0, report.Volume, 1e-6)
	s.Require().Equal(4, report.Multiplicity)

	out, err := s.run("prim", path)
	s.Require().NoError(err)
	prim, err := poscar.Read(strings.NewReader(out))
	s.Require().NoError(err)
	s.Require().Equal(1, prim.Len())
	s.Require().InDelta(16.0, math.Abs(prim.Lattice().Vol()), 1e-6)
}

// TestSupercell builds a doubled cube and maps it back.
func (s *CLISuite) TestSupercell() {
	var report struct {
		Sites        int     `json:"sites"`
		Volume       float64 `json:"volume"`
		Multiplicity int     `json:"multiplicity"`
	}
	s.runJSON(&report, "super", s.file("POSCAR", cesiumCl), "--matrix", "1,1,2")
	s.Require().Equal(4, report.Sites)
	s.Require().InDelta(2.0, report.Volume, 1e-9)
	s.Require().Equal(2, report.Multiplicity)

	_, err := s.run("super", s.file("POSCAR", cesiumCl), "--matrix", "1,2")
	s.Require().True(errors.Is(err, cli.ErrUsage))
	_, err = s.run("super", s.file("POSCAR", cesiumCl), "--matrix", "1,0,0")
	s.Require().True(errors.Is(err, cli.ErrUsage))
}

// TestConverge sweeps three tolerances.
func (s *CLISuite) TestConverge() {
	var report struct {
		Rows []struct {
			NumOps  int  `json:"num_ops"`
			IsGroup bool `json:"is_group"`
		} `json:"rows"`
	}
	s.runJSON(&report, "converge", s.file("POSCAR", simpleCubic),
		"--small", "0.001", "--large", "0.0035", "--step", "0.001")
	s.Require().Len(report.Rows, 3)
	for _, row := range report.Rows {
		s.Require().Equal(48, row.NumOps)
		s.Require().True(row.IsGroup)
	}
}

// TestPermutation checks that no operation swaps the two CsCl sublattices.
func (s *CLISuite) TestPermutation() {
	var report struct {
		Sites int `json:"sites"`
		Ops   []struct {
			Permutation []int `json:"permutation"`
			Images      []struct {
				Sublat int `json:"sublat"`
			} `json:"images"`
		} `json:"ops"`
	}
	s.runJSON(&report, "perm", s.file("POSCAR", cesiumCl))
	s.Require().Equal(2, report.Sites)
	s.Require().Len(report.Ops, 48)
	for _, op := range report.Ops {
		s.Require().Equal([]int{0, 1}, op.Permutation)
		s.Require().Len(op.Images, 2)
		s.Require().Equal(1, op.Images[1].Sublat)
	}
}

// TestProjectDiscovery reads the PRIM of the enclosing project.
func (s *CLISuite) TestProjectDiscovery() {
	s.Require().NoError(os.MkdirAll(filepath.Join(s.dir, ".casm"), 0o755))
	s.Require().NoError(os.MkdirAll(filepath.Join(s.dir, "symmetry"), 0o755))
	s.file("PRIM", cesiumCl)

	wd, err := os.Getwd()
	s.Require().NoError(err)
	s.Require().NoError(os.Chdir(filepath.Join(s.dir, "symmetry")))
	s.T().Cleanup(func() { _ = os.Chdir(wd) })

	var report struct {
		Title string `json:"title"`
		Size  int    `json:"size"`
	}
	s.runJSON(&report, "fg")
	s.Require().Equal("CsCl", report.Title)
	s.Require().Equal(48, report.Size)
}

// TestErrors covers flag validation and missing input.
func (s *CLISuite) TestErrors() {
	path := s.file("POSCAR", simpleCubic)

	_, err := s.run("fg", path, "--output", "xml")
	s.Require().True(errors.Is(err, cli.ErrUsage))

	_, err = s.run("fg", path, "--tol", "0")
	s.Require().True(errors.Is(err, config.ErrInvalid))

	_, err = s.run("fg", filepath.Join(s.dir, "missing"))
	s.Require().Error(err)

	_, err = s.run("fg", s.file("BAD", "title\n"))
	s.Require().True(errors.Is(err, poscar.ErrParse))

	cfg := s.file("crysym.yaml", "symmetry:\n  tolerance: -1\n")
	_, err = s.run("fg", path, "--config", cfg)
	s.Require().True(errors.Is(err, config.ErrInvalid))
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLISuite))
}

// TestNoProject fails when no structure is given outside any project.
func TestNoProject(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cmd := cli.NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"fg", "--log-level", "error"})
	err = cmd.Execute()
	require.True(t, errors.Is(err, project.ErrNoProject))
}
