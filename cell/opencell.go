package cell

import (
	"github.com/elidrake/gridpave/grid"
	"github.com/elidrake/gridpave/tribool"
	"github.com/elidrake/gridpave/word"
)

// GridOpenCell is a (grid, height, word) triple naming the open set
// obtained by doubling the base closed cell's extent in the positive
// direction of every axis (spec.md §4.3). Its closure is exactly the
// union of the 2^d neighboring closed cells at the same level.
type GridOpenCell struct {
	g      grid.Grid
	height int
	w      word.BinaryWord
}

// NewOpenCell constructs a GridOpenCell from its naming triple.
func NewOpenCell(g grid.Grid, height int, w word.BinaryWord) GridOpenCell {
	return GridOpenCell{g: g, height: height, w: w}
}

// Grid, Height, Word, Dimension mirror GridCell's accessors.
func (oc GridOpenCell) Grid() grid.Grid        { return oc.g }
func (oc GridOpenCell) Height() int            { return oc.height }
func (oc GridOpenCell) Word() word.BinaryWord  { return oc.w }
func (oc GridOpenCell) Dimension() int         { return oc.g.Dimension() }
func (oc GridOpenCell) baseCell() GridCell {
	c, _ := NewCell(oc.g, oc.height, oc.w)
	return c
}

// LatticeBox returns the open cell's represented lattice box: the base
// closed cell's box with every axis's extent doubled in the positive
// direction (spec.md §4.3).
func (oc GridOpenCell) LatticeBox() (grid.Box, error) {
	base, err := ComputeLatticeBox(oc.Dimension(), oc.height, oc.w.Bits())
	if err != nil {
		return nil, err
	}
	for i := range base {
		width := base[i].Width()
		base[i] = grid.Interval{Lower: base[i].Lower, Upper: base[i].Upper + width}
	}
	return base, nil
}

// Box returns the open cell's box mapped to Euclidean coordinates.
func (oc GridOpenCell) Box() (grid.Box, error) {
	lattice, err := oc.LatticeBox()
	if err != nil {
		return nil, err
	}
	return oc.g.ToEuclidean(lattice)
}

// Split subdivides oc into one of its three ternary sub-open-cells along
// the axis at position len(word) mod d, per spec.md §4.3:
// tribool.Indeterminate appends true (the middle sub-open-cell, same
// height); tribool.Impossibly appends false (the left sub-open-cell);
// tribool.Definitely moves to the axis neighbor and appends false (the
// right sub-open-cell), possibly re-rooting to a higher primary cell.
func (oc GridOpenCell) Split(direction tribool.Tribool) (GridOpenCell, error) {
	d := oc.Dimension()
	axis := oc.w.Len() % d
	switch direction {
	case tribool.Indeterminate:
		return NewOpenCell(oc.g, oc.height, oc.w.Append(true)), nil
	case tribool.Impossibly:
		return NewOpenCell(oc.g, oc.height, oc.w.Append(false)), nil
	default:
		nb, err := oc.baseCell().NeighboringCell(axis)
		if err != nil {
			return GridOpenCell{}, err
		}
		return NewOpenCell(nb.Grid(), nb.Height(), nb.Word().Append(false)), nil
	}
}

// boxCovers reports whether outer contains inner entirely.
func boxCovers(outer, inner grid.Box) bool {
	for i := range outer {
		if inner[i].Lower < outer[i].Lower || inner[i].Upper > outer[i].Upper {
			return false
		}
	}
	return true
}

func boxDisjoint(a, b grid.Box) bool {
	for i := range a {
		if a[i].Upper <= b[i].Lower || b[i].Upper <= a[i].Lower {
			return true
		}
	}
	return false
}

// SmallestOpenSubcell recursively ternary-searches open for the smallest
// sub-open-cell that still covers box: at each level it descends into the
// first of the sub-cells, in the order (left, middle, right), whose box
// still covers box, and returns open itself once none of its sub-cells
// covers box. It returns an error if open itself does not cover box
// (spec.md §4.3).
func SmallestOpenSubcell(open GridOpenCell, target grid.Box) (GridOpenCell, error) {
	openBox, err := open.Box()
	if err != nil {
		return GridOpenCell{}, err
	}
	if !boxCovers(openBox, target) {
		return GridOpenCell{}, ErrEmptyInteriorBox
	}
	for _, dir := range []tribool.Tribool{tribool.Impossibly, tribool.Indeterminate, tribool.Definitely} {
		sub, err := open.Split(dir)
		if err != nil {
			return GridOpenCell{}, err
		}
		subBox, err := sub.Box()
		if err != nil {
			return GridOpenCell{}, err
		}
		if boxCovers(subBox, target) {
			return SmallestOpenSubcell(sub, target)
		}
	}
	return open, nil
}

// OuterApproximation returns the smallest open sub-cell of the interior
// of the smallest enclosing primary cell of box that still covers box
// (spec.md §4.3).
func OuterApproximation(box grid.Box, g grid.Grid) (GridOpenCell, error) {
	for i := range box {
		if box[i].Width() <= 0 {
			return GridOpenCell{}, ErrEmptyInteriorBox
		}
	}
	h, err := SmallestEnclosingPrimaryCellHeight(g, box)
	if err != nil {
		return GridOpenCell{}, err
	}
	root := NewOpenCell(g, h, word.New())
	return SmallestOpenSubcell(root, box)
}

// Closure returns the 2^d closed neighboring cells whose union is the
// closure of oc: every bit vector of length d selects, per axis, either
// the base closed cell (bit false) or its positive neighbor in that axis
// (bit true) (spec.md §4.3).
func (oc GridOpenCell) Closure() ([]GridCell, error) {
	d := oc.Dimension()
	n := 1 << d
	out := make([]GridCell, 0, n)
	for mask := 0; mask < n; mask++ {
		c := oc.baseCell()
		for axis := 0; axis < d; axis++ {
			if mask&(1<<axis) != 0 {
				nb, err := c.NeighboringCell(axis)
				if err != nil {
					return nil, err
				}
				c = nb
			}
		}
		out = append(out, c)
	}
	return out, nil
}

// Intersection returns closed cells covering the overlap of two open
// cells' represented sets. When a covers b, it returns b's closure cells
// (and vice versa); when the two are disjoint, it returns nil. Otherwise
// it returns, without duplicates, each cell of either closure whose
// interior overlaps a cell of the other closure; a cell that only shares
// a face with the other closure is not included.
func Intersection(a, b GridOpenCell) ([]GridCell, error) {
	aBox, err := a.Box()
	if err != nil {
		return nil, err
	}
	bBox, err := b.Box()
	if err != nil {
		return nil, err
	}
	if boxCovers(aBox, bBox) {
		return b.Closure()
	}
	if boxCovers(bBox, aBox) {
		return a.Closure()
	}
	if boxDisjoint(aBox, bBox) {
		return nil, nil
	}

	aClosure, err := a.Closure()
	if err != nil {
		return nil, err
	}
	bClosure, err := b.Closure()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	var out []GridCell
	collect := func(closure, other []GridCell) {
		for _, c := range closure {
			cBox := c.LatticeBox()
			for _, o := range other {
				if !boxDisjoint(cBox, o.LatticeBox()) {
					if _, dup := seen[c.String()]; !dup {
						seen[c.String()] = struct{}{}
						out = append(out, c)
					}
					break
				}
			}
		}
	}
	collect(aClosure, bClosure)
	collect(bClosure, aClosure)
	return out, nil
}
