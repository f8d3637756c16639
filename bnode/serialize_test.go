package bnode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreeToBinaryWordsRoundTrip(t *testing.T) {
	root := NewLeaf(false)
	root.Split()
	root.left.MakeLeaf(true)
	root.right.Split()
	root.right.left.MakeLeaf(false)
	root.right.right.MakeLeaf(true)

	treeBits, leafBits := root.TreeToBinaryWords()
	assert.Equal(t, []bool{true, false, true, false, false}, treeBits)
	assert.Equal(t, []bool{true, false, true}, leafBits)

	rebuilt, err := BuildFromBinaryWords(treeBits, leafBits)
	require.NoError(t, err)
	assert.True(t, root.Equal(rebuilt))
}

func TestBuildFromBinaryWordsRejectsTruncatedInput(t *testing.T) {
	_, err := BuildFromBinaryWords([]bool{true, false}, []bool{true})
	assert.ErrorIs(t, err, ErrStructuralViolation)
}

func TestBuildFromBinaryWordsRejectsTrailingBits(t *testing.T) {
	_, err := BuildFromBinaryWords([]bool{false, false}, []bool{true})
	assert.ErrorIs(t, err, ErrStructuralViolation)
}
