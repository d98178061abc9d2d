package symmetry_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/crysym/geom"
	"github.com/katalvlaran/crysym/symmetry"
)

// MasterGroupSuite exercises the representation registry on 4mm.
type MasterGroupSuite struct {
	suite.Suite
	mg *symmetry.MasterGroup
}

func (s *MasterGroupSuite) SetupTest() {
	g := symmetry.NewGroup(nil, tol)
	g.Add(symmetry.NewSymOp(c4z, geom.Vec3{}, nil))
	g.Add(symmetry.NewSymOp(mirrorX, geom.Vec3{}, nil))
	require.NoError(s.T(), g.EnforceGroup())
	s.mg = symmetry.NewMasterGroupFrom(g)
}

// TestCartesianRep registers and checks the matrix representation.
func (s *MasterGroupSuite) TestCartesianRep() {
	id, err := s.mg.AddCartesianRep()
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0, id)
	require.NoError(s.T(), s.mg.CheckRepresentation(id))

	_, err = s.mg.Representation(1)
	require.True(s.T(), errors.Is(err, symmetry.ErrUnknownRep))
}

// TestSizeAndOwnership rejects mis-sized and shared representations.
func (s *MasterGroupSuite) TestSizeAndOwnership() {
	_, err := s.mg.AddRepresentation(symmetry.NewRep(symmetry.RepPermutation, nil))
	require.True(s.T(), errors.Is(err, symmetry.ErrRepSize))

	actions := make([]symmetry.Action, s.mg.Len())
	for i := range actions {
		actions[i] = symmetry.Permutation{0}
	}
	r := symmetry.NewRep(symmetry.RepPermutation, actions)
	id, err := s.mg.AddRepresentation(r)
	require.NoError(s.T(), err)
	require.NoError(s.T(), s.mg.CheckRepresentation(id))

	_, err = s.mg.AddRepresentation(r)
	require.True(s.T(), errors.Is(err, symmetry.ErrRepOwned))
	other := symmetry.NewMasterGroupFrom(&s.mg.Group)
	_, err = other.AddRepresentation(r)
	require.True(s.T(), errors.Is(err, symmetry.ErrRepOwned))
	require.Equal(s.T(), 1, s.mg.NumRepresentations())
}

// TestHomomorphismViolation flags a permutation rep that breaks the table.
func (s *MasterGroupSuite) TestHomomorphismViolation() {
	actions := make([]symmetry.Action, s.mg.Len())
	for i := range actions {
		actions[i] = symmetry.Permutation{1, 0}
	}
	id, err := s.mg.AddRepresentation(symmetry.NewRep(symmetry.RepPermutation, actions))
	require.NoError(s.T(), err)
	err = s.mg.CheckRepresentation(id)
	require.True(s.T(), errors.Is(err, symmetry.ErrNotHomomorphism))
}

// TestFrozenMembership keeps reps aligned with ops.
func (s *MasterGroupSuite) TestFrozenMembership() {
	id, err := s.mg.AddCartesianRep()
	require.NoError(s.T(), err)
	require.False(s.T(), s.mg.Add(symmetry.NewSymOp(geom.Identity().Scale(-1), geom.Vec3{}, nil)))
	require.True(s.T(), errors.Is(s.mg.EnforceGroup(), symmetry.ErrFrozen))

	_, err = s.mg.SortByClass()
	require.NoError(s.T(), err)
	rep, err := s.mg.Representation(id)
	require.NoError(s.T(), err)
	for i := 0; i < s.mg.Len(); i++ {
		m, err := rep.Matrix(i)
		require.NoError(s.T(), err)
		require.True(s.T(), m.AlmostEqual(s.mg.At(i).Matrix(), tol))
	}
	_, err = rep.Permutation(0)
	require.True(s.T(), errors.Is(err, symmetry.ErrRepKind))

	s.mg.Clear()
	require.Equal(s.T(), 0, s.mg.NumRepresentations())
	require.Equal(s.T(), 0, s.mg.Len())
}

func TestMasterGroupSuite(t *testing.T) {
	suite.Run(t, new(MasterGroupSuite))
}
