package paving

import (
	"testing"

	"github.com/elidrake/gridpave/grid"
	"github.com/elidrake/gridpave/tribool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// halfChecker answers tribool.Definitely for boxes entirely on or past
// threshold on axis 0, tribool.Impossibly for boxes entirely before it,
// and tribool.Indeterminate when a box straddles the boundary.
type halfChecker struct {
	threshold float64
}

func (h halfChecker) Check(box grid.Box) tribool.Tribool {
	lo, up := box[0].Lower, box[0].Upper
	if up <= h.threshold {
		return tribool.Impossibly
	}
	if lo >= h.threshold {
		return tribool.Definitely
	}
	return tribool.Indeterminate
}

func fullSet(t *testing.T, g grid.Grid, height int) *GridTreeSet {
	s := NewSetAtHeight(g, height)
	require.NoError(t, s.root.AddEnabledAtPath(nil))
	return s
}

func TestOuterRestrictKeepsMatchAndIndeterminate(t *testing.T) {
	g := unitGrid(t, 1)
	s := fullSet(t, g, 0)
	require.NoError(t, s.OuterRestrict(halfChecker{threshold: 0.5}, WithDepth(0)))

	m, err := s.Measure()
	require.NoError(t, err)
	assert.InDelta(t, 1.0, m, 1e-12)
}

func TestInnerRestrictExcludesIndeterminate(t *testing.T) {
	g := unitGrid(t, 1)
	s := fullSet(t, g, 0)
	require.NoError(t, s.InnerRestrict(halfChecker{threshold: 0.5}, WithDepth(0)))

	m, err := s.Measure()
	require.NoError(t, err)
	assert.Equal(t, 0.0, m)
}

func TestInnerRestrictRefinesToMatchingHalf(t *testing.T) {
	g := unitGrid(t, 1)
	s := fullSet(t, g, 0)
	require.NoError(t, s.InnerRestrict(halfChecker{threshold: 0.5}, WithDepth(4)))

	m, err := s.Measure()
	require.NoError(t, err)
	assert.InDelta(t, 0.5, m, 1e-9)
}

func TestOuterRemoveDropsDefiniteMatch(t *testing.T) {
	g := unitGrid(t, 1)
	s := fullSet(t, g, 0)
	require.NoError(t, s.OuterRemove(halfChecker{threshold: 0.5}, WithDepth(4)))

	m, err := s.Measure()
	require.NoError(t, err)
	assert.InDelta(t, 0.5, m, 1e-9)
}

func TestInnerRemoveAlsoDropsIndeterminate(t *testing.T) {
	g := unitGrid(t, 1)
	s := fullSet(t, g, 0)
	require.NoError(t, s.InnerRemove(halfChecker{threshold: 0.5}, WithDepth(0)))

	m, err := s.Measure()
	require.NoError(t, err)
	assert.Equal(t, 0.0, m)
}

func TestRunPredicateWalkRejectsNegativeDepth(t *testing.T) {
	g := unitGrid(t, 1)
	s := fullSet(t, g, 0)
	assert.ErrorIs(t, s.OuterRestrict(halfChecker{threshold: 0.5}, WithDepth(-1)), ErrNegativeDepth)
}
