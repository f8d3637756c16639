package paving

import (
	"github.com/elidrake/gridpave/bnode"
	"github.com/elidrake/gridpave/cell"
	"github.com/elidrake/gridpave/grid"
	"github.com/elidrake/gridpave/internal/plog"
	"github.com/elidrake/gridpave/word"
)

// GridTreeSubset is a non-owning view over a subtree rooted at
// (height, rootWord) within some paving's tree (spec.md §3).
type GridTreeSubset struct {
	g        grid.Grid
	height   int
	rootWord word.BinaryWord
	root     *bnode.Node
}

// NewSubset constructs a view over root at (height, rootWord) on grid g.
func NewSubset(g grid.Grid, height int, rootWord word.BinaryWord, root *bnode.Node) GridTreeSubset {
	return GridTreeSubset{g: g, height: height, rootWord: rootWord, root: root}
}

// Grid returns the subset's grid.
func (s GridTreeSubset) Grid() grid.Grid { return s.g }

// Height returns the primary-cell height the subset's root word is
// relative to.
func (s GridTreeSubset) Height() int { return s.height }

// RootWord returns the path from the primary cell at Height() to the
// subset's root cell.
func (s GridTreeSubset) RootWord() word.BinaryWord { return s.rootWord }

// Node exposes the underlying tree node. Used by package-internal
// algorithms; external callers should prefer the query methods.
func (s GridTreeSubset) Node() *bnode.Node { return s.root }

// Cell returns the GridCell named by (grid, height, rootWord).
func (s GridTreeSubset) Cell() (cell.GridCell, error) {
	return cell.NewCell(s.g, s.height, s.rootWord)
}

// Depth returns the depth of the underlying subtree.
func (s GridTreeSubset) Depth() int { return s.root.Depth() }

// Size returns the number of enabled leaves in the subtree.
func (s GridTreeSubset) Size() int { return s.root.CountEnabledLeaves() }

// BoundingBox returns the subset's root cell's box — distinct from an
// abstract set's own BoundingBox() capability (SPEC_FULL.md §7).
func (s GridTreeSubset) BoundingBox() (grid.Box, error) {
	c, err := s.Cell()
	if err != nil {
		return nil, err
	}
	return c.Box()
}

// Measure returns the sum of enabled-leaf box measures (spec.md §8
// invariant (c)).
func (s GridTreeSubset) Measure() (float64, error) {
	total := 0.0
	it, err := s.Begin()
	if err != nil {
		return 0, err
	}
	for !it.Done() {
		c, err := it.Cell()
		if err != nil {
			return 0, err
		}
		box, err := c.Box()
		if err != nil {
			return 0, err
		}
		total += box.Measure()
		it.Next()
	}
	return total, nil
}

// Begin returns an iterator positioned at the first enabled leaf in
// depth-first left-before-right order (spec.md §4.7).
func (s GridTreeSubset) Begin() (*Iterator, error) {
	return newIterator(s.g, s.height, s.rootWord, s.root)
}

// Enumerate collects every enabled leaf's GridCell, in iteration order.
// Convenience built on Begin/Next for callers that don't need to stream.
func (s GridTreeSubset) Enumerate() ([]cell.GridCell, error) {
	it, err := s.Begin()
	if err != nil {
		return nil, err
	}
	var out []cell.GridCell
	for !it.Done() {
		c, err := it.Cell()
		if err != nil {
			return nil, err
		}
		out = append(out, c)
		it.Next()
	}
	return out, nil
}

// GridTreeSet is an owning dyadic paving: a (grid, root cell, tree)
// triple whose root word is always empty (spec.md §3).
type GridTreeSet struct {
	g      grid.Grid
	height int
	root   *bnode.Node
	log    *plog.Logger
}

// NewSet returns an empty (fully disabled) paving rooted at height 0.
func NewSet(g grid.Grid, opts ...ApproximationOption) *GridTreeSet {
	o := resolveOptions(opts...)
	return &GridTreeSet{g: g, height: 0, root: bnode.NewLeaf(false), log: o.Logger}
}

// NewSetAtHeight returns an empty paving rooted at the given height.
func NewSetAtHeight(g grid.Grid, height int, opts ...ApproximationOption) *GridTreeSet {
	s := NewSet(g, opts...)
	s.height = height
	return s
}

// NewSetFromRoot wraps an already-built tree as a paving, used by
// ImportFromFile to hand back a deserialized tree without re-deriving it
// through the mutators above.
func NewSetFromRoot(g grid.Grid, height int, root *bnode.Node) *GridTreeSet {
	return &GridTreeSet{g: g, height: height, root: root, log: plog.Nop()}
}

// Grid returns the paving's grid.
func (s *GridTreeSet) Grid() grid.Grid { return s.g }

// Height returns the paving's current root primary-cell height.
func (s *GridTreeSet) Height() int { return s.height }

// AsSubset returns a non-owning view over the whole paving, rootWord
// empty.
func (s *GridTreeSet) AsSubset() GridTreeSubset {
	return NewSubset(s.g, s.height, word.New(), s.root)
}

// Cell returns the paving's root cell.
func (s *GridTreeSet) Cell() (cell.GridCell, error) { return s.AsSubset().Cell() }

// Depth, Size, Measure, Begin, Enumerate, BoundingBox delegate to the
// whole-paving view.
func (s *GridTreeSet) Depth() int                         { return s.AsSubset().Depth() }
func (s *GridTreeSet) Size() int                          { return s.AsSubset().Size() }
func (s *GridTreeSet) Measure() (float64, error)          { return s.AsSubset().Measure() }
func (s *GridTreeSet) Begin() (*Iterator, error)          { return s.AsSubset().Begin() }
func (s *GridTreeSet) Enumerate() ([]cell.GridCell, error) { return s.AsSubset().Enumerate() }
func (s *GridTreeSet) BoundingBox() (grid.Box, error)     { return s.AsSubset().BoundingBox() }

// Clear empties the paving in place: the root becomes a single disabled
// leaf at the current height.
func (s *GridTreeSet) Clear() {
	s.root.MakeLeaf(false)
}

// Clone returns an independent deep copy of s.
func (s *GridTreeSet) Clone() *GridTreeSet {
	return &GridTreeSet{g: s.g, height: s.height, root: s.root.Clone(), log: s.log}
}

// Equal reports whether s and other represent the same set of enabled
// lattice boxes: both the grid and the recombined tree (after aligning
// to a common primary cell) must match.
func (s *GridTreeSet) Equal(other *GridTreeSet) (bool, error) {
	if !s.g.Equal(other.g) {
		return false, ErrGridMismatch
	}
	a := s.Clone()
	b := other.Clone()
	H := a.height
	if b.height > H {
		H = b.height
	}
	if err := a.UpToPrimaryCell(H); err != nil {
		return false, err
	}
	if err := b.UpToPrimaryCell(H); err != nil {
		return false, err
	}
	a.root.Recombine()
	b.root.Recombine()
	return a.root.Equal(b.root), nil
}
