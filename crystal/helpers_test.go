package crystal_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crysym/crystal"
	"github.com/katalvlaran/crysym/geom"
)

const tol = geom.DefaultTol

type placed struct {
	frac  geom.Vec3
	names []string
}

// build returns a structure over lat with one site per entry.
func build(t *testing.T, lat *geom.Lattice, sites []placed, opts ...crystal.Option) *crystal.Structure {
	t.Helper()
	s := crystal.NewStructure(lat, opts...)
	for _, p := range sites {
		s.AddSite(crystal.NewAtomicSite(crystal.NewCoordinate(p.frac, lat, crystal.Frac), p.names...))
	}
	require.Equal(t, len(sites), s.Len())
	return s
}

func simpleCubic(t *testing.T, opts ...crystal.Option) *crystal.Structure {
	return build(t, geom.Cubic(1), []placed{{geom.Vec3{}, []string{"A"}}}, opts...)
}

var fccFrac = []geom.Vec3{{0, 0, 0}, {0, 0.5, 0.5}, {0.5, 0, 0.5}, {0.5, 0.5, 0}}

func fccConventional(t *testing.T, opts ...crystal.Option) *crystal.Structure {
	sites := make([]placed, len(fccFrac))
	for i, f := range fccFrac {
		sites[i] = placed{f, []string{"Cu"}}
	}
	s := build(t, geom.Cubic(4), sites, opts...)
	s.Title = "FCC Cu"
	return s
}

func rocksalt(t *testing.T) *crystal.Structure {
	var sites []placed
	for _, f := range fccFrac {
		sites = append(sites, placed{f, []string{"Na"}})
		sites = append(sites, placed{geom.WithinFrac(f.Add(geom.Vec3{0.5, 0, 0}), tol), []string{"Cl"}})
	}
	return build(t, geom.Cubic(4), sites)
}

// cesiumChloride is a two-site primitive cubic structure.
func cesiumChloride(t *testing.T) *crystal.Structure {
	return build(t, geom.Cubic(1), []placed{
		{geom.Vec3{0, 0, 0}, []string{"A"}},
		{geom.Vec3{0.5, 0.5, 0.5}, []string{"B"}},
	})
}
