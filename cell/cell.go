package cell

import (
	"fmt"

	"github.com/elidrake/gridpave/grid"
	"github.com/elidrake/gridpave/word"
)

// GridCell identifies a dyadic cell by (grid, height, word) and caches
// its lattice box, recomputed whenever the triple changes (spec.md §3).
type GridCell struct {
	g          grid.Grid
	height     int
	w          word.BinaryWord
	latticeBox grid.Box
}

// ComputeLatticeBox builds the height-h primary cell box for dimension d
// and then, for each bit of bits, halves axis (index mod d) on the lower
// (bit=false) or upper (bit=true) side (spec.md §4.2).
func ComputeLatticeBox(d, height int, bits []bool) (grid.Box, error) {
	box, err := grid.PrimaryCellAtHeight(d, height)
	if err != nil {
		return nil, err
	}
	for i, bit := range bits {
		axis := i % d
		mid := box[axis].Midpoint()
		if bit {
			box[axis] = grid.Interval{Lower: mid, Upper: box[axis].Upper}
		} else {
			box[axis] = grid.Interval{Lower: box[axis].Lower, Upper: mid}
		}
	}
	return box, nil
}

// NewCell constructs a GridCell, computing and caching its lattice box.
func NewCell(g grid.Grid, height int, w word.BinaryWord) (GridCell, error) {
	box, err := ComputeLatticeBox(g.Dimension(), height, w.Bits())
	if err != nil {
		return GridCell{}, err
	}
	return GridCell{g: g, height: height, w: w, latticeBox: box}, nil
}

// Grid returns the cell's grid.
func (c GridCell) Grid() grid.Grid { return c.g }

// Height returns the cell's primary-cell height.
func (c GridCell) Height() int { return c.height }

// Word returns the cell's path word.
func (c GridCell) Word() word.BinaryWord { return c.w }

// Dimension returns the cell's spatial dimension.
func (c GridCell) Dimension() int { return c.g.Dimension() }

// LatticeBox returns the cell's box in lattice coordinates.
func (c GridCell) LatticeBox() grid.Box { return c.latticeBox.Clone() }

// Box returns the cell's box mapped to Euclidean coordinates through the
// grid's affine map.
func (c GridCell) Box() (grid.Box, error) {
	return c.g.ToEuclidean(c.latticeBox)
}

// String renders the cell as "(height:word)", matching the debug
// rendering of the original Ariadne GridCell (SPEC_FULL.md §7).
func (c GridCell) String() string {
	return fmt.Sprintf("(%d:%s)", c.height, c.w)
}

// Split appends one bit to the cell's word and returns the resulting
// sub-cell at the same height.
func (c GridCell) Split(right bool) (GridCell, error) {
	return NewCell(c.g, c.height, c.w.Append(right))
}

// SmallestEnclosingPrimaryCellHeight returns the smallest primary-cell
// height whose lattice box contains euclideanBox under g's affine map.
func SmallestEnclosingPrimaryCellHeight(g grid.Grid, euclideanBox grid.Box) (int, error) {
	lattice, err := g.FromEuclidean(euclideanBox)
	if err != nil {
		return 0, err
	}
	return grid.SmallestEnclosingPrimaryCellHeight(lattice)
}

// RootAtHeight returns the empty-word cell naming the primary cell at
// height on grid g.
func RootAtHeight(g grid.Grid, height int) (GridCell, error) {
	return NewCell(g, height, word.New())
}

// NeighboringCell returns the cell adjacent to c in the positive
// direction of axis dim, at the same refinement level (spec.md §4.2).
// The result may live at a greater primary-cell height than c if c's
// neighbor does not fit inside c's current primary cell.
func (c GridCell) NeighboringCell(dim int) (GridCell, error) {
	d := c.Dimension()
	if dim < 0 || dim >= d {
		return GridCell{}, ErrInvalidAxis
	}

	height := c.height
	bits := c.w.Bits()

	// (1)/(2): grow the primary cell until the shifted box still fits.
	for {
		pc, err := grid.PrimaryCellAtHeight(d, height)
		if err != nil {
			return GridCell{}, err
		}
		box, err := ComputeLatticeBox(d, height, bits)
		if err != nil {
			return GridCell{}, err
		}
		width := box[dim].Width()
		if box[dim].Upper+width <= pc[dim].Upper {
			break
		}
		path, err := grid.PrimaryCellPath(d, height+1, height)
		if err != nil {
			return GridCell{}, err
		}
		bits = append(path, bits...)
		height++
		if height > 4096 {
			return GridCell{}, ErrNoNeighbor
		}
	}

	// (3): scan backward for the last position p with p mod d == dim and
	// a false bit there.
	p := -1
	for i := len(bits) - 1; i >= 0; i-- {
		if i%d == dim && !bits[i] {
			p = i
			break
		}
	}
	if p == -1 {
		return GridCell{}, ErrNoNeighbor
	}

	// (4): flip every bit at position >= p whose index mod d == dim.
	newBits := make([]bool, len(bits))
	copy(newBits, bits)
	for i := p; i < len(newBits); i++ {
		if i%d == dim {
			newBits[i] = !newBits[i]
		}
	}
	return NewCell(c.g, height, word.FromBools(newBits))
}

// Compare orders a and b: heights are first equalized by re-rooting the
// shallower word via grid.PrimaryCellPath, then the words are compared
// lexicographically. Returns -1, 0, or 1. a and b must share a grid.
func Compare(a, b GridCell) (int, error) {
	if !a.g.Equal(b.g) {
		return 0, fmt.Errorf("%w: %w", ErrInvalidComparator, ErrGridMismatch)
	}
	d := a.Dimension()
	ah, bh := a.height, b.height
	aBits, bBits := a.w.Bits(), b.w.Bits()

	if ah < bh {
		path, err := grid.PrimaryCellPath(d, bh, ah)
		if err != nil {
			return 0, err
		}
		aBits = append(path, aBits...)
	} else if bh < ah {
		path, err := grid.PrimaryCellPath(d, ah, bh)
		if err != nil {
			return 0, err
		}
		bBits = append(path, bBits...)
	}

	aw, bw := word.FromBools(aBits), word.FromBools(bBits)
	if aw.Equal(bw) {
		return 0, nil
	}
	if aw.Less(bw) {
		return -1, nil
	}
	return 1, nil
}
