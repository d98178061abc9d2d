package crystal_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/crysym/crystal"
	"github.com/katalvlaran/crysym/geom"
	"github.com/katalvlaran/crysym/symmetry"
)

// ExampleStructure_GenerateFactorGroup reduces the conventional FCC cell to
// its primitive cell and expands the primitive factor group over the grid.
func ExampleStructure_GenerateFactorGroup() {
	lat := geom.Cubic(4)
	s := crystal.NewStructure(lat)
	for _, f := range []geom.Vec3{{0, 0, 0}, {0, 0.5, 0.5}, {0.5, 0, 0.5}, {0.5, 0.5, 0}} {
		s.AddSite(crystal.NewAtomicSite(crystal.NewCoordinate(f, lat, crystal.Frac), "Cu"))
	}

	prim, _, err := s.Primitive(geom.DefaultTol)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fg := symmetry.NewMasterGroup(lat, geom.DefaultTol)
	if err := s.GenerateFactorGroup(fg, geom.DefaultTol); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%d %.3f\n", prim.Len(), math.Abs(prim.Lattice().Vol()))
	fmt.Println(fg.Len(), fg.Name())
	// Output:
	// 1 16.000
	// 192 m-3m
}

// ExampleStructure_CreateSuperstruc doubles a cubic cell along c.
func ExampleStructure_CreateSuperstruc() {
	prim := crystal.NewStructure(geom.Cubic(1))
	prim.AddSite(crystal.NewAtomicSite(crystal.NewCoordinate(geom.Vec3{}, prim.Lattice(), crystal.Frac), "A"))

	lat := geom.MustLattice(geom.Vec3{1, 0, 0}, geom.Vec3{0, 1, 0}, geom.Vec3{0, 0, 2})
	sc, err := prim.CreateSuperstruc(lat, geom.DefaultTol)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, site := range sc.Basis() {
		fmt.Println(site)
	}
	// Output:
	// 0.000000000 0.000000000 0.000000000 A
	// 0.000000000 0.000000000 0.500000000 A
}
