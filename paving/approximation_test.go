package paving

import (
	"testing"

	"github.com/elidrake/gridpave/grid"
	"github.com/elidrake/gridpave/tribool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// boxSet is a literal-box stand-in for the abstract sets spec.md leaves
// unimplemented (spec.md §1 Non-goals): every capability is answered
// directly from box containment/overlap against a fixed target box.
type boxSet struct {
	box grid.Box
}

func (b boxSet) BoundingBox() grid.Box { return b.box }

func (b boxSet) Disjoint(other grid.Box) tribool.Tribool {
	for i := range b.box {
		if b.box[i].Upper <= other[i].Lower || other[i].Upper <= b.box[i].Lower {
			return tribool.Definitely
		}
	}
	return tribool.Impossibly
}

func (b boxSet) Overlaps(other grid.Box) tribool.Tribool {
	return tribool.Not(b.Disjoint(other))
}

func (b boxSet) Covers(other grid.Box) tribool.Tribool {
	for i := range b.box {
		if other[i].Lower < b.box[i].Lower || other[i].Upper > b.box[i].Upper {
			return tribool.Impossibly
		}
	}
	return tribool.Definitely
}

// overtOnlySet implements only OvertSet (no Covers method, so the type
// assertion to tribool.OpenSet in AdjoinLowerApproximation fails),
// exercising the conservative maxDepth-only branch of lowerWalk
// (spec.md §9 Open Question (c)).
type overtOnlySet struct {
	box grid.Box
}

func (o overtOnlySet) BoundingBox() grid.Box { return o.box }

func (o overtOnlySet) Overlaps(other grid.Box) tribool.Tribool {
	return boxSet{box: o.box}.Overlaps(other)
}

func TestAdjoinOuterApproximationCoversTargetBox(t *testing.T) {
	g := unitGrid(t, 1)
	s := NewSet(g)
	target := boxSet{box: grid.Box{{Lower: 0.2, Upper: 0.3}}}
	require.NoError(t, s.AdjoinOuterApproximation(target, WithDepth(4)))

	covers, err := s.AsSubset().CoversBox(target.box)
	require.NoError(t, err)
	assert.Equal(t, tribool.Definitely, covers)
}

func TestAdjoinOuterApproximationRejectsNegativeDepth(t *testing.T) {
	g := unitGrid(t, 1)
	s := NewSet(g)
	target := boxSet{box: grid.Box{{Lower: 0.2, Upper: 0.3}}}
	assert.ErrorIs(t, s.AdjoinOuterApproximation(target, WithDepth(-1)), ErrNegativeDepth)
}

func TestAdjoinInnerApproximationStaysInsideTarget(t *testing.T) {
	g := unitGrid(t, 1)
	s := NewSet(g)
	target := boxSet{box: grid.Box{{Lower: 0.25, Upper: 0.75}}}
	require.NoError(t, s.AdjoinInnerApproximation(target, target.box, WithDepth(4)))

	inside, err := s.AsSubset().SubsetOfBox(target.box)
	require.NoError(t, err)
	assert.Equal(t, tribool.Definitely, inside)
	assert.Greater(t, s.Size(), 0)
}

func TestAdjoinLowerApproximationWithOpenSetEnablesOverlap(t *testing.T) {
	g := unitGrid(t, 1)
	s := NewSet(g)
	target := boxSet{box: grid.Box{{Lower: 0.4, Upper: 0.6}}}
	require.NoError(t, s.AdjoinLowerApproximation(target, target.box, WithDepth(4)))

	overlap, err := s.AsSubset().OverlapsBox(target.box)
	require.NoError(t, err)
	assert.Equal(t, tribool.Definitely, overlap)
}

func TestAdjoinLowerApproximationOvertOnlyCommitsAtMaxDepth(t *testing.T) {
	g := unitGrid(t, 1)
	s := NewSet(g)
	target := overtOnlySet{box: grid.Box{{Lower: 0.4, Upper: 0.6}}}
	require.NoError(t, s.AdjoinLowerApproximation(target, target.box, WithDepth(2)))

	overlap, err := s.AsSubset().OverlapsBox(target.box)
	require.NoError(t, err)
	assert.Equal(t, tribool.Definitely, overlap)
}

// bareSet answers no capability interface at all: no BoundingBox,
// Covers, Overlaps, or Disjoint methods.
type bareSet struct{}

func TestAdjoinApproximationPrefersOuterForCompactSet(t *testing.T) {
	g := unitGrid(t, 1)
	s := NewSet(g)
	target := boxSet{box: grid.Box{{Lower: 0.2, Upper: 0.3}}}
	require.NoError(t, s.AdjoinApproximation(target, target.box, WithDepth(4)))

	covers, err := s.AsSubset().CoversBox(target.box)
	require.NoError(t, err)
	assert.Equal(t, tribool.Definitely, covers)
}

func TestAdjoinApproximationFallsBackToLowerForOvertOnlySet(t *testing.T) {
	g := unitGrid(t, 1)
	s := NewSet(g)
	target := overtOnlySet{box: grid.Box{{Lower: 0.4, Upper: 0.6}}}
	require.NoError(t, s.AdjoinApproximation(target, target.box, WithDepth(2)))

	overlap, err := s.AsSubset().OverlapsBox(target.box)
	require.NoError(t, err)
	assert.Equal(t, tribool.Definitely, overlap)
}

func TestAdjoinApproximationRejectsSetWithNoCapability(t *testing.T) {
	g := unitGrid(t, 1)
	s := NewSet(g)
	assert.ErrorIs(t, s.AdjoinApproximation(bareSet{}, grid.Box{{Lower: 0, Upper: 1}}), ErrNoCapability)
}
