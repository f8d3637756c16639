package paving

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdjoinCellAcrossHeights(t *testing.T) {
	g := unitGrid(t, 1)
	s := NewSet(g)
	require.NoError(t, s.AdjoinCellFromWord(2, []bool{false, false}))
	assert.Equal(t, 2, s.Height())
	m, err := s.Measure()
	require.NoError(t, err)
	assert.Greater(t, m, 0.0)
}

func TestAdjoinSubsetUnion(t *testing.T) {
	g := unitGrid(t, 1)
	a := NewSet(g)
	require.NoError(t, a.AdjoinCellFromWord(0, []bool{false}))
	b := NewSet(g)
	require.NoError(t, b.AdjoinCellFromWord(0, []bool{true}))

	require.NoError(t, a.Adjoin(b.AsSubset()))
	m, err := a.Measure()
	require.NoError(t, err)
	assert.InDelta(t, 1.0, m, 1e-12)
}

func TestRestrictIntersection(t *testing.T) {
	g := unitGrid(t, 1)
	a := NewSetAtHeight(g, 1)
	require.NoError(t, a.root.AddEnabledAtPath(nil))
	b := NewSet(g)
	require.NoError(t, b.AdjoinCellFromWord(0, []bool{false}))

	require.NoError(t, a.Restrict(b.AsSubset()))
	m, err := a.Measure()
	require.NoError(t, err)
	assert.InDelta(t, 0.5, m, 1e-12)
}

func TestRemoveDifference(t *testing.T) {
	g := unitGrid(t, 1)
	a := NewSetAtHeight(g, 1)
	require.NoError(t, a.root.AddEnabledAtPath(nil))
	b := NewSet(g)
	require.NoError(t, b.AdjoinCellFromWord(0, []bool{false}))

	require.NoError(t, a.Remove(b.AsSubset()))
	m, err := a.Measure()
	require.NoError(t, err)
	assert.InDelta(t, 1.5, m, 1e-12)
}

func TestJoinIntersectionDifferenceSelfLaws(t *testing.T) {
	g := unitGrid(t, 1)
	a := NewSet(g)
	require.NoError(t, a.AdjoinCellFromWord(0, []bool{false}))

	join, err := Join(a, a)
	require.NoError(t, err)
	eq, err := join.Equal(a)
	require.NoError(t, err)
	assert.True(t, eq)

	inter, err := Intersection(a, a)
	require.NoError(t, err)
	eq, err = inter.Equal(a)
	require.NoError(t, err)
	assert.True(t, eq)

	diff, err := Difference(a, a)
	require.NoError(t, err)
	assert.Equal(t, 0, diff.Size())
}

func TestAdjoinRejectsGridMismatch(t *testing.T) {
	g1 := unitGrid(t, 1)
	g2 := unitGrid(t, 2)
	a := NewSet(g1)
	b := NewSet(g2)
	assert.ErrorIs(t, a.Adjoin(b.AsSubset()), ErrGridMismatch)
}
