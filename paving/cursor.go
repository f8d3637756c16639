package paving

import (
	"github.com/elidrake/gridpave/bnode"
	"github.com/elidrake/gridpave/cell"
	"github.com/elidrake/gridpave/grid"
	"github.com/elidrake/gridpave/word"
)

// Cursor is a mutable pointer into a tree, tracking an ancestor stack and
// the path taken from the tree's root so it can move back up without
// parent pointers on bnode.Node itself (spec.md §4.7).
type Cursor struct {
	ancestors []*bnode.Node
	path      []bool
	current   *bnode.Node
}

// NewCursor returns a cursor positioned at root.
func NewCursor(root *bnode.Node) *Cursor {
	return &Cursor{current: root}
}

// Node returns the node the cursor currently points at.
func (c *Cursor) Node() *bnode.Node { return c.current }

// Path returns a copy of the bit path from the cursor's starting root to
// its current position.
func (c *Cursor) Path() []bool {
	out := make([]bool, len(c.path))
	copy(out, c.path)
	return out
}

// IsRoot reports whether the cursor is at its starting position.
func (c *Cursor) IsRoot() bool { return len(c.ancestors) == 0 }

// IsLeftChild reports whether the last step taken was into a left child.
func (c *Cursor) IsLeftChild() bool {
	return len(c.path) > 0 && !c.path[len(c.path)-1]
}

// IsRightChild reports whether the last step taken was into a right
// child.
func (c *Cursor) IsRightChild() bool {
	return len(c.path) > 0 && c.path[len(c.path)-1]
}

// IsLeaf reports whether the current node is a leaf.
func (c *Cursor) IsLeaf() bool { return c.current.IsLeaf() }

// IsEnabled reports whether the current node is an enabled leaf.
func (c *Cursor) IsEnabled() bool { return c.current.IsEnabled() }

// MoveLeft descends into the current node's left child.
func (c *Cursor) MoveLeft() {
	c.ancestors = append(c.ancestors, c.current)
	c.path = append(c.path, false)
	c.current = c.current.Left()
}

// MoveRight descends into the current node's right child.
func (c *Cursor) MoveRight() {
	c.ancestors = append(c.ancestors, c.current)
	c.path = append(c.path, true)
	c.current = c.current.Right()
}

// MoveUp ascends to the current node's parent. It panics if called at
// the root, matching the contract that callers check IsRoot() first.
func (c *Cursor) MoveUp() {
	n := len(c.ancestors)
	c.current = c.ancestors[n-1]
	c.ancestors = c.ancestors[:n-1]
	c.path = c.path[:len(c.path)-1]
}

// Iterator walks the enabled leaves of a subtree in depth-first
// left-before-right order, yielding GridCell values computed on the fly
// from the accumulated path (spec.md §4.7).
type Iterator struct {
	g        grid.Grid
	height   int
	rootWord word.BinaryWord
	cursor   *Cursor
	done     bool
}

func newIterator(g grid.Grid, height int, rootWord word.BinaryWord, root *bnode.Node) (*Iterator, error) {
	it := &Iterator{g: g, height: height, rootWord: rootWord, cursor: NewCursor(root)}
	if !it.descendToEnabledLeaf() {
		it.done = true
	}
	return it, nil
}

// descendToEnabledLeaf descends from the cursor's current position,
// preferring left then falling back to right at each internal node,
// until an enabled leaf is reached. Returns false if none exists in the
// current subtree (the cursor is left at the point descent stalled).
func (it *Iterator) descendToEnabledLeaf() bool {
	for {
		n := it.cursor.Node()
		if n.IsLeaf() {
			return n.IsEnabled()
		}
		if n.Left().HasEnabled() {
			it.cursor.MoveLeft()
		} else if n.Right().HasEnabled() {
			it.cursor.MoveRight()
		} else {
			return false
		}
	}
}

// Done reports whether iteration has exhausted every enabled leaf.
func (it *Iterator) Done() bool { return it.done }

// Cell returns the GridCell the iterator currently points at. It is an
// error to call Cell after Done() returns true.
func (it *Iterator) Cell() (cell.GridCell, error) {
	full := it.rootWord.Concat(word.FromBools(it.cursor.Path()))
	return cell.NewCell(it.g, it.height, full)
}

// Next advances the iterator to the next enabled leaf in left-before-
// right pre-order, per the state machine in spec.md §4.7: a left child
// moves up then right and descends leftmost; a right child just moves
// up; the root marks end.
func (it *Iterator) Next() {
	if it.done {
		return
	}
	for {
		if it.cursor.IsRoot() {
			it.done = true
			return
		}
		if it.cursor.IsLeftChild() {
			it.cursor.MoveUp()
			it.cursor.MoveRight()
			if it.descendToEnabledLeaf() {
				return
			}
			continue
		}
		it.cursor.MoveUp()
	}
}
