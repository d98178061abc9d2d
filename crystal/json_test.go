package crystal_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crysym/crystal"
	"github.com/katalvlaran/crysym/dof"
	"github.com/katalvlaran/crysym/geom"
)

// TestJSON_RoundTrip encodes a structure and decodes it back.
func TestJSON_RoundTrip(t *testing.T) {
	s := build(t, geom.MustLattice(geom.Vec3{3, 0, 0}, geom.Vec3{0, 3, 0}, geom.Vec3{0, 0, 5}), []placed{
		{geom.Vec3{0, 0, 0}, []string{"Ni", "Al", "Va"}},
		{geom.Vec3{0.5, 0.5, 0.25}, []string{"O"}},
	})
	s.Title = "NiAl-O"
	a := s.Basis()[0]
	require.NoError(t, a.SetOccValue(1))
	a.SetSDFlag([3]bool{true, true, false})
	a.SetNlistInd(3)
	require.NoError(t, a.FillOccupantBasis(crystal.Chebyshev))

	data, err := json.Marshal(s)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Contains(t, raw, "title")
	require.Contains(t, raw, "lattice")
	require.Len(t, raw["basis"], 2)

	back, err := crystal.DecodeJSON(data)
	require.NoError(t, err)
	require.Equal(t, "NiAl-O", back.Title)
	require.True(t, back.Lattice().Matrix().AlmostEqual(s.Lattice().Matrix(), 1e-12))
	require.Equal(t, 2, back.Len())
	for i, site := range back.Basis() {
		orig := s.Basis()[i]
		require.True(t, site.Frac().AlmostEqual(orig.Frac(), 1e-12))
		require.Equal(t, orig.AllowedOccupants(), site.AllowedOccupants())
		require.Equal(t, orig.Occupant().Value(), site.Occupant().Value())
		require.Equal(t, orig.SDFlag(), site.SDFlag())
		require.Equal(t, orig.NlistInd(), site.NlistInd())
		require.Equal(t, i, site.BasisInd())
	}
	b := back.Basis()[0]
	require.Equal(t, "Al", b.OccName())
	require.Equal(t, 3, b.Occupant().ID())
	require.Equal(t, crystal.OccupationDoF, b.Occupant().TypeName())
	require.Equal(t, a.OccupantBasis().Functions, b.OccupantBasis().Functions)
	require.Nil(t, back.Basis()[1].OccupantBasis())
}

// TestJSON_Errors rejects singular lattices and out-of-domain values.
func TestJSON_Errors(t *testing.T) {
	_, err := crystal.DecodeJSON([]byte(`{"title":"x","lattice":[[1,0,0],[2,0,0],[0,0,1]],"basis":[]}`))
	require.True(t, errors.Is(err, geom.ErrSingular))

	bad := `{"title":"x","lattice":[[1,0,0],[0,1,0],[0,0,1]],"basis":[` +
		`{"coordinate":[0,0,0],"site_occupant":{"DoF_type":"occupation","ID":-1,"value":4,` +
		`"domain":[{"name":"A","atoms":[{"name":"A","coordinate":[0,0,0],"SD_flag":[false,false,false]}]}]},` +
		`"SD_flag":[false,false,false],"nlist_ind":-1}]}`
	_, err = crystal.DecodeJSON([]byte(bad))
	require.True(t, errors.Is(err, dof.ErrOutOfDomain))

	_, err = crystal.DecodeJSON([]byte(`{`))
	require.Error(t, err)
}
