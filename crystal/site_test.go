package crystal_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crysym/crystal"
	"github.com/katalvlaran/crysym/dof"
	"github.com/katalvlaran/crysym/geom"
	"github.com/katalvlaran/crysym/symmetry"
)

// TestCoordinate_Conversions checks eager frac/cart consistency and Within.
func TestCoordinate_Conversions(t *testing.T) {
	lat := geom.Cubic(2)
	c := crystal.NewCoordinate(geom.Vec3{1.25, -0.25, 0.5}, lat, crystal.Frac)
	require.True(t, c.Cart().AlmostEqual(geom.Vec3{2.5, -0.5, 1}, 1e-12))
	require.Equal(t, -1, c.BasisInd())

	c.Within()
	require.True(t, c.Frac().AlmostEqual(geom.Vec3{0.25, 0.75, 0.5}, 1e-12))
	require.True(t, c.Get(crystal.Cart).AlmostEqual(geom.Vec3{0.5, 1.5, 1}, 1e-12))

	c.SetLattice(geom.Cubic(4), crystal.Frac)
	require.True(t, c.Cart().AlmostEqual(geom.Vec3{1, 3, 2}, 1e-12))
	c.SetLattice(lat, crystal.Cart)
	require.True(t, c.Frac().AlmostEqual(geom.Vec3{0.5, 1.5, 1}, 1e-12))
	require.Equal(t, "Direct", crystal.Frac.String())
}

// TestCoordinate_MinDist uses the periodic image across the cell edge.
func TestCoordinate_MinDist(t *testing.T) {
	lat := geom.Cubic(1)
	a := crystal.NewCoordinate(geom.Vec3{0.05, 0, 0}, lat, crystal.Frac)
	b := crystal.NewCoordinate(geom.Vec3{0.95, 0, 0}, lat, crystal.Frac)
	require.InDelta(t, 0.1, a.MinDist(&b), 1e-12)
	require.True(t, a.MinDisplacement(&b).AlmostEqual(geom.Vec3{-0.1, 0, 0}, 1e-12))
	require.InDelta(t, 0.0, a.MinDistShift(&b, geom.Vec3{0.1, 0, 0}), 1e-12)
}

// TestSite_CompareType covers registry and domain comparison paths.
func TestSite_CompareType(t *testing.T) {
	lat := geom.Cubic(1)
	origin := crystal.NewCoordinate(geom.Vec3{}, lat, crystal.Frac)
	a1 := crystal.NewAtomicSite(origin, "A")
	a2 := crystal.NewAtomicSite(origin, "A")
	b := crystal.NewAtomicSite(origin, "B")
	ab := crystal.NewAtomicSite(origin, "A", "B")

	require.True(t, a1.CompareType(a2))
	require.False(t, a1.CompareType(b))
	require.False(t, a1.CompareType(ab))

	r := crystal.NewTypeRegistry()
	for _, s := range []*crystal.Site{a1, a2, b, ab} {
		s.SetTypeRegistry(r)
	}
	require.Equal(t, 0, a1.TypeID())
	require.Equal(t, 1, b.TypeID())
	require.Equal(t, 0, a2.TypeID())
	require.Equal(t, 2, ab.TypeID())
	require.Equal(t, 3, r.Len())
	require.True(t, a1.CompareType(a2))
	require.False(t, a1.CompareType(b))

	// same domain, different current occupant
	ab2 := ab.Clone()
	require.NoError(t, ab2.SetOccValue(1))
	require.False(t, ab.CompareType(ab2))
	require.NoError(t, ab.SetOccValue(1))
	require.True(t, ab.CompareType(ab2))
	require.True(t, ab.Compare(ab2, tol))

	require.True(t, errors.Is(ab.SetOccValue(2), dof.ErrOutOfDomain))
}

// TestSite_Occupants checks the occupant queries.
func TestSite_Occupants(t *testing.T) {
	lat := geom.Cubic(1)
	s := crystal.NewAtomicSite(crystal.NewCoordinate(geom.Vec3{0.5, 0, 0}, lat, crystal.Frac), "Ni", "Va")
	require.Equal(t, []string{"Ni", "Va"}, s.AllowedOccupants())
	require.Equal(t, "?", s.OccName())
	require.False(t, s.IsVacant())
	_, err := s.Occ()
	require.True(t, errors.Is(err, dof.ErrUnspecified))

	require.NoError(t, s.SetOccValue(1))
	require.True(t, s.IsVacant())
	require.Equal(t, "Va", s.OccName())
	require.True(t, s.Contains("Ni"))
	require.Equal(t, 1, s.ContainsIndex("Va"))
	require.Equal(t, -1, s.ContainsIndex("Cu"))

	s.SetSDFlag([3]bool{true, false, true})
	require.Equal(t, [3]bool{true, false, true}, s.SDFlag())
	require.Equal(t, [3]bool{true, false, true}, s.Occupant().At(0).Atoms[0].SDFlag)
}

// TestSite_NlistInd propagates the index onto the occupant DoF ID.
func TestSite_NlistInd(t *testing.T) {
	s := crystal.NewAtomicSite(crystal.NewCoordinate(geom.Vec3{}, geom.Cubic(1), crystal.Frac), "A")
	s.SetNlistInd(5)
	require.Equal(t, 5, s.NlistInd())
	require.Equal(t, 5, s.Occupant().ID())

	s.Occupant().LockID()
	s.SetNlistInd(7)
	require.Equal(t, 7, s.NlistInd())
	require.Equal(t, 5, s.Occupant().ID())

	ref := crystal.NewAtomicSite(crystal.NewCoordinate(geom.Vec3{}, geom.Cubic(1), crystal.Frac), "B", "C")
	require.NoError(t, ref.FillOccupantBasis(crystal.Occupation))
	s.UpdateDataMembers(ref)
	require.Equal(t, []string{"B", "C"}, s.AllowedOccupants())
	require.Equal(t, 7, s.Occupant().ID())
	require.NotNil(t, s.OccupantBasis())
	require.Equal(t, 1, s.OccupantBasis().Size())
}

// TestSite_ApplySym maps positions and rotates molecule atoms.
func TestSite_ApplySym(t *testing.T) {
	lat := geom.Cubic(1)
	mol := crystal.Molecule{Name: "O2", Atoms: []crystal.AtomPosition{
		{Name: "O", Pos: geom.Vec3{0.6, 0, 0}},
		{Name: "O", Pos: geom.Vec3{-0.6, 0, 0}},
	}}
	s := crystal.NewSite(crystal.NewCoordinate(geom.Vec3{0.25, 0.1, 0}, lat, crystal.Frac), []crystal.Molecule{mol})
	c4z := geom.Mat3{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}}
	op := symmetry.NewSymOp(c4z, geom.Vec3{0, 0, 0.5}, lat)

	img := s.Transformed(op)
	require.True(t, img.Cart().AlmostEqual(geom.Vec3{-0.1, 0.25, 0.5}, 1e-12))
	require.True(t, img.Occupant().At(0).Atoms[0].Pos.AlmostEqual(geom.Vec3{0, 0.6, 0}, 1e-12))
	require.True(t, s.Occupant().At(0).Atoms[0].Pos.AlmostEqual(geom.Vec3{0.6, 0, 0}, 1e-12))

	sh := s.Shifted(geom.Vec3{1, 0, 0})
	require.True(t, sh.Compare(s, tol))
	require.InDelta(t, 1.0, sh.Cart()[0]-s.Cart()[0], 1e-12)
}

// TestOccupantBasis checks orthonormality and the indicator functions.
func TestOccupantBasis(t *testing.T) {
	for _, n := range []int{2, 3, 4} {
		b, err := crystal.NewOccupantBasis(crystal.Chebyshev, n, 0)
		require.NoError(t, err)
		require.Equal(t, n-1, b.Size())
		w := 1 / float64(n)
		for k, f := range b.Functions {
			mean := 0.0
			for _, v := range f {
				mean += w * v
			}
			require.InDelta(t, 0.0, mean, 1e-9)
			for l, g := range b.Functions {
				dot := 0.0
				for s := range f {
					dot += w * f[s] * g[s]
				}
				want := 0.0
				if k == l {
					want = 1
				}
				require.InDelta(t, want, dot, 1e-9)
			}
		}
	}

	occ, err := crystal.NewOccupantBasis(crystal.Occupation, 3, 2)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0, 1, 0}, {0, 0, 1}}, occ.Functions)
	require.Equal(t, 2, occ.BasisInd)

	_, err = crystal.NewOccupantBasis(crystal.Chebyshev, 0, 0)
	require.True(t, errors.Is(err, crystal.ErrInvalidState))
	_, err = crystal.NewOccupantBasis('x', 2, 0)
	require.True(t, errors.Is(err, crystal.ErrInvalidState))
}

// TestMolecule checks name equality and vacancy detection.
func TestMolecule(t *testing.T) {
	va := crystal.NewAtomicMolecule("Va")
	require.True(t, va.IsVacancy())
	require.False(t, crystal.NewAtomicMolecule("Fe").IsVacancy())
	m := crystal.Molecule{Name: "H2O", Atoms: []crystal.AtomPosition{{Name: "O"}, {Name: "H"}, {Name: "H"}}}
	require.True(t, m.Contains("H"))
	require.True(t, m.Contains("H2O"))
	require.False(t, m.Contains("C"))
	require.True(t, m.Equal(crystal.Molecule{Name: "H2O"}))
	require.Equal(t, "H2O", m.Label())
}
