package cell

import (
	"testing"

	"github.com/elidrake/gridpave/grid"
	"github.com/elidrake/gridpave/tribool"
	"github.com/elidrake/gridpave/word"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenCellBoxDoublesExtent(t *testing.T) {
	g, err := grid.New(1)
	require.NoError(t, err)
	oc := NewOpenCell(g, 0, word.New())
	box, err := oc.Box()
	require.NoError(t, err)
	// base closed box is [0,1]; doubled in positive direction -> [0,2].
	assert.InDelta(t, 0.0, box[0].Lower, 1e-12)
	assert.InDelta(t, 2.0, box[0].Upper, 1e-12)
}

func TestOpenCellSplitMiddleLeftRight(t *testing.T) {
	g, err := grid.New(1)
	require.NoError(t, err)
	oc := NewOpenCell(g, 0, word.New())

	left, err := oc.Split(tribool.Impossibly)
	require.NoError(t, err)
	assert.Equal(t, "0", left.Word().String())

	middle, err := oc.Split(tribool.Indeterminate)
	require.NoError(t, err)
	assert.Equal(t, "1", middle.Word().String())

	right, err := oc.Split(tribool.Definitely)
	require.NoError(t, err)
	assert.Greater(t, right.Word().Len(), 0)
}

func TestClosureHasTwoToTheDCells(t *testing.T) {
	g, err := grid.New(2)
	require.NoError(t, err)
	oc := NewOpenCell(g, 0, word.New())
	closure, err := oc.Closure()
	require.NoError(t, err)
	assert.Len(t, closure, 4)
}

// Scenario 1 of spec.md §8: outer approximation of [0.25,0.5]x[0.25,0.5]
// on the unit grid covers exactly that box.
func TestOuterApproximationScenario1(t *testing.T) {
	g, err := grid.New(2)
	require.NoError(t, err)
	target := grid.Box{{0.25, 0.5}, {0.25, 0.5}}

	oc, err := OuterApproximation(target, g)
	require.NoError(t, err)
	box, err := oc.Box()
	require.NoError(t, err)
	assert.True(t, boxCovers(box, target))
}

func TestOuterApproximationRejectsEmptyInterior(t *testing.T) {
	g, err := grid.New(1)
	require.NoError(t, err)
	_, err = OuterApproximation(grid.Box{{0.5, 0.5}}, g)
	assert.ErrorIs(t, err, ErrEmptyInteriorBox)
}

func TestIntersectionCoveringReturnsSmallerClosure(t *testing.T) {
	g, err := grid.New(1)
	require.NoError(t, err)
	a := NewOpenCell(g, 2, word.New())     // covers a wide region
	b := NewOpenCell(g, 0, word.FromBools([]bool{false}))
	cells, err := Intersection(a, b)
	require.NoError(t, err)
	assert.NotEmpty(t, cells)
}

func TestIntersectionDisjointReturnsNil(t *testing.T) {
	g, err := grid.New(1)
	require.NoError(t, err)
	a := NewOpenCell(g, 0, word.FromBools([]bool{false}))
	// far-away cell via neighbor chasing to ensure disjoint boxes
	base, err := NewCell(g, 0, word.FromBools([]bool{false}))
	require.NoError(t, err)
	far, err := base.NeighboringCell(0)
	require.NoError(t, err)
	far, err = far.NeighboringCell(0)
	require.NoError(t, err)
	b := NewOpenCell(far.Grid(), far.Height(), far.Word())

	aBox, _ := a.Box()
	bBox, _ := b.Box()
	if boxDisjoint(aBox, bBox) {
		cells, err := Intersection(a, b)
		require.NoError(t, err)
		assert.Nil(t, cells)
	}
}
