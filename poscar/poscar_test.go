package poscar_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crysym/crystal"
	"github.com/katalvlaran/crysym/dof"
	"github.com/katalvlaran/crysym/geom"
	"github.com/katalvlaran/crysym/poscar"
	"github.com/katalvlaran/crysym/symmetry"
)

const tol = geom.DefaultTol

func read(t *testing.T, text string) *crystal.Structure {
	t.Helper()
	s, err := poscar.Read(strings.NewReader(text))
	require.NoError(t, err)
	return s
}

func site(t *testing.T, s *crystal.Structure, i int) *crystal.Site {
	t.Helper()
	out, err := s.Site(i)
	require.NoError(t, err)
	return out
}

// TestRead_VASP5 parses a primitive FCC cell with an element line and checks
// that the factor group is the full cubic point group.
func TestRead_VASP5(t *testing.T) {
	s := read(t, `Cu fcc
1.0
  0 2 2
  2 0 2
  2 2 0
Cu
1
Direct
0 0 0
`)
	require.Equal(t, "Cu fcc", s.Title)
	require.Equal(t, 1, s.Len())
	require.InDelta(t, 16.0, s.Lattice().Vol(), 1e-9)
	require.Equal(t, "Cu", site(t, s, 0).OccName())

	fg := symmetry.NewMasterGroup(s.Lattice(), tol)
	require.NoError(t, s.GenerateFactorGroup(fg, tol))
	require.Equal(t, 48, fg.Len())
}

// TestRead_NegativeScale treats a negative scale as the target cell volume.
func TestRead_NegativeScale(t *testing.T) {
	s := read(t, `cube
-64
1 0 0
0 1 0
0 0 1
A
1
Direct
0 0 0
`)
	require.InDelta(t, 64.0, s.Lattice().Vol(), 1e-9)
	require.InDelta(t, 4.0, s.Lattice().Lengths()[0], 1e-9)
}

// TestRead_VASP4Occupants parses allowed occupants, the current occupant,
// selective dynamics flags and scaled cartesian coordinates.
func TestRead_VASP4Occupants(t *testing.T) {
	s := read(t, `binary
2.0
1 0 0
0 1 0
0 0 1
1 1
Selective dynamics
Cartesian
0 0 0 T T F A B :: B
0.5 0.5 0.5 F F F A B
`)
	require.Equal(t, 2, s.Len())
	require.InDelta(t, 8.0, s.Lattice().Vol(), 1e-9)

	s0, s1 := site(t, s, 0), site(t, s, 1)
	require.Equal(t, []string{"A", "B"}, s0.AllowedOccupants())
	require.Equal(t, "B", s0.OccName())
	require.Equal(t, [3]bool{true, true, false}, s0.SDFlag())

	require.False(t, s1.Occupant().IsSpecified())
	require.True(t, s1.Frac().AlmostEqual(geom.Vec3{0.5, 0.5, 0.5}, 1e-12))
	require.True(t, s1.Cart().AlmostEqual(geom.Vec3{1, 1, 1}, 1e-12))
}

// TestRead_Errors checks that malformed input reports the failing line.
func TestRead_Errors(t *testing.T) {
	header := "t\n1\n1 0 0\n0 1 0\n0 0 1\n"
	cases := []struct {
		name string
		body string
		line int
	}{
		{"BadScale", "t\nx\n", 2},
		{"ShortVector", "t\n1\n1 0\n", 3},
		{"MissingMode", header + "1\nGarbage\n0 0 0 A\n", 7},
		{"ElementCountMismatch", header + "A B\n1\nDirect\n0 0 0\n", 7},
		{"TruncatedSites", header + "2\nDirect\n0 0 0 A\n", 9},
		{"BadFlag", header + "1\nSelective\nDirect\n0 0 0 T X F A\n", 9},
		{"NoOccupants", header + "1\nDirect\n0 0 0\n", 8},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := poscar.Read(strings.NewReader(tc.body))
			require.Error(t, err)
			require.True(t, errors.Is(err, poscar.ErrParse))
			var pe *poscar.ParseError
			require.True(t, errors.As(err, &pe))
			require.Equal(t, tc.line, pe.Line)
		})
	}

	_, err := poscar.Read(strings.NewReader(header + "1\nDirect\n0 0 0 A B :: C\n"))
	require.True(t, errors.Is(err, poscar.ErrParse))
	require.True(t, errors.Is(err, dof.ErrOutOfDomain))
}

// TestWrite_VASP4RoundTrip writes domains plus current occupants and reads
// them back unchanged.
func TestWrite_VASP4RoundTrip(t *testing.T) {
	in := read(t, `binary
2.0
1 0 0
0 1 0
0 0 1
2
Direct
0 0 0 A B :: B
0.5 0.5 0.5 A B :: A
`)
	var buf bytes.Buffer
	require.NoError(t, poscar.Write(&buf, in, poscar.WriteOptions{Mode: crystal.Cart, CurrentOccupant: true}))
	require.Contains(t, buf.String(), "Cartesian\n")
	require.NotContains(t, buf.String(), "Selective")

	out, err := poscar.Read(&buf)
	require.NoError(t, err)
	require.Equal(t, in.Title, out.Title)
	require.Equal(t, in.Len(), out.Len())
	for i := 0; i < in.Len(); i++ {
		a, b := site(t, in, i), site(t, out, i)
		require.True(t, a.Frac().AlmostEqual(b.Frac(), 1e-8))
		require.Equal(t, a.AllowedOccupants(), b.AllowedOccupants())
		require.Equal(t, a.OccName(), b.OccName())
	}
}

// TestWrite_VASP5 groups consecutive current occupants, drops vacancies and
// keeps selective dynamics flags.
func TestWrite_VASP5(t *testing.T) {
	s := read(t, `mixed
1.0
1 0 0
0 1 0
0 0 2
4
Selective dynamics
Direct
0 0 0 F F T A B :: A
0 0 0.25 F F F A
0 0 0.5 F F F Va
0.5 0.5 0.5 F F F B
`)
	var buf bytes.Buffer
	require.NoError(t, poscar.Write(&buf, s, poscar.WriteOptions{Version5: true}))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 12)
	require.Equal(t, "A B", lines[5])
	require.Equal(t, "2 1", lines[6])
	require.Equal(t, "Selective dynamics", lines[7])
	require.Equal(t, "Direct", lines[8])
	require.True(t, strings.HasSuffix(lines[9], " F F T A"))
	require.True(t, strings.HasSuffix(lines[11], " B"))

	back, err := poscar.Read(strings.NewReader(buf.String()))
	require.NoError(t, err)
	require.Equal(t, 3, back.Len())
	require.Equal(t, [3]bool{false, false, true}, site(t, back, 0).SDFlag())
}

// TestWrite_Unprintable rejects unspecified occupants where one must be named.
func TestWrite_Unprintable(t *testing.T) {
	s := read(t, "t\n1\n1 0 0\n0 1 0\n0 0 1\n1\nDirect\n0 0 0 A B\n")
	var buf bytes.Buffer
	require.NoError(t, poscar.Write(&buf, s, poscar.WriteOptions{}))
	require.Contains(t, buf.String(), " A B\n")

	for _, opt := range []poscar.WriteOptions{{Version5: true}, {CurrentOccupant: true}} {
		err := poscar.Write(&bytes.Buffer{}, s, opt)
		require.True(t, errors.Is(err, poscar.ErrUnprintable))
	}
	require.True(t, errors.Is(poscar.WriteXYZ(&bytes.Buffer{}, s), poscar.ErrUnprintable))
}

// TestWriteXYZ checks count, title and cartesian positions.
func TestWriteXYZ(t *testing.T) {
	s := read(t, "CsCl\n2\n1 0 0\n0 1 0\n0 0 1\nCs Cl Va\n1 1 1\nDirect\n0 0 0\n0.5 0.5 0.5\n0.25 0.25 0.25\n")
	var buf bytes.Buffer
	require.NoError(t, poscar.WriteXYZ(&buf, s))
	require.Equal(t, "2\nCsCl\n"+
		"Cs     0.0000000    0.0000000    0.0000000\n"+
		"Cl     1.0000000    1.0000000    1.0000000\n", buf.String())
}
