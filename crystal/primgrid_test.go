package crystal_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crysym/crystal"
	"github.com/katalvlaran/crysym/geom"
)

// TestPrimGrid_Sizes counts cosets for several transformation matrices.
func TestPrimGrid_Sizes(t *testing.T) {
	prim := geom.Cubic(1)
	fcc := geom.MustLattice(geom.Vec3{0, 2, 2}, geom.Vec3{2, 0, 2}, geom.Vec3{2, 2, 0})
	cases := []struct {
		name       string
		prim, scel *geom.Lattice
		want       int
	}{
		{"Identity", prim, prim, 1},
		{"Double", prim, geom.MustLattice(geom.Vec3{1, 0, 0}, geom.Vec3{0, 1, 0}, geom.Vec3{0, 0, 2}), 2},
		{"Skew", prim, geom.MustLattice(geom.Vec3{1, 1, 0}, geom.Vec3{1, -1, 0}, geom.Vec3{0, 0, 1}), 2},
		{"Cube222", prim, geom.Cubic(2), 8},
		{"FCCInCubic", fcc, geom.Cubic(4), 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := crystal.NewPrimGrid(tc.prim, tc.scel, tol)
			require.NoError(t, err)
			require.Equal(t, tc.want, g.Size())
			require.Equal(t, [3]int{}, g.Point(0))
			seen := map[[3]int]bool{}
			for i := 0; i < g.Size(); i++ {
				require.False(t, seen[g.Point(i)])
				seen[g.Point(i)] = true
				require.Equal(t, i, g.Find(g.Point(i)))
				f := g.Coord(i, crystal.GridScel)
				for k := 0; k < 3; k++ {
					require.True(t, f[k] > -1e-9 && f[k] < 1-1e-9)
				}
			}
		})
	}
}

// TestPrimGrid_Find reduces points modulo the supercell.
func TestPrimGrid_Find(t *testing.T) {
	scel := geom.MustLattice(geom.Vec3{2, 0, 0}, geom.Vec3{0, 1, 0}, geom.Vec3{0, 0, 1})
	g, err := crystal.NewPrimGrid(geom.Cubic(1), scel, tol)
	require.NoError(t, err)
	require.Equal(t, [3]int{1, 0, 0}, g.Point(1))
	require.Equal(t, 1, g.Find([3]int{3, 0, 0}))
	require.Equal(t, 0, g.Find([3]int{-2, 5, 1}))
	require.Equal(t, [3][3]int{{2, 0, 0}, {0, 1, 0}, {0, 0, 1}}, g.Trans())
	require.True(t, g.Coord(1, crystal.GridScel).AlmostEqual(geom.Vec3{0.5, 0, 0}, 1e-12))
	require.True(t, g.Cart(1).AlmostEqual(geom.Vec3{1, 0, 0}, 1e-12))
}

// TestPrimGrid_NonInteger rejects incommensurate lattices.
func TestPrimGrid_NonInteger(t *testing.T) {
	odd := geom.MustLattice(geom.Vec3{1, 0, 0}, geom.Vec3{0, 1, 0}, geom.Vec3{0, 0, 1.5})
	_, err := crystal.NewPrimGrid(geom.Cubic(1), odd, tol)
	require.True(t, errors.Is(err, crystal.ErrGeometry))
	var ge *crystal.GeometryError
	require.True(t, errors.As(err, &ge))
	require.Equal(t, "volume ratio", ge.What)

	sheared := geom.MustLattice(geom.Vec3{1, 0, 0}, geom.Vec3{0.5, 1, 0}, geom.Vec3{0, 0, 1})
	_, err = crystal.NewPrimGrid(geom.Cubic(1), sheared, tol)
	require.True(t, errors.Is(err, crystal.ErrGeometry))
}
