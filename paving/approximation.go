package paving

import (
	"github.com/elidrake/gridpave/bnode"
	"github.com/elidrake/gridpave/cell"
	"github.com/elidrake/gridpave/grid"
	"github.com/elidrake/gridpave/tribool"
)

// seedAtEnclosingCell re-roots s so its root cell is the smallest primary
// cell enclosing box, returning that cell's Euclidean box so a driver can
// start its recursive walk there (spec.md §4.5).
func (s *GridTreeSet) seedAtEnclosingCell(box grid.Box) (grid.Box, error) {
	h, err := cell.SmallestEnclosingPrimaryCellHeight(s.g, box)
	if err != nil {
		return nil, err
	}
	if h > s.height {
		if err := s.UpToPrimaryCell(h); err != nil {
			return nil, err
		}
	}
	root, err := cell.RootAtHeight(s.g, s.height)
	if err != nil {
		return nil, err
	}
	return root.Box()
}

// AdjoinOuterApproximation enables every cell, down to mince-depth
// n*d + height*d below the set's enclosing primary cell, that is not
// definitely disjoint from set — an over-approximation of set's closure
// (spec.md §4.5). If set also implements tribool.OpenSet, a cell that
// set definitely covers is enabled without descending further.
func (s *GridTreeSet) AdjoinOuterApproximation(set tribool.CompactSet, opts ...ApproximationOption) error {
	o := resolveOptions(opts...)
	if o.Depth < 0 {
		return ErrNegativeDepth
	}
	rootBox, err := s.seedAtEnclosingCell(set.BoundingBox())
	if err != nil {
		return err
	}
	d := s.g.Dimension()
	maxDepth := o.Depth*d + s.height*d
	s.log.Debug("adjoin_outer_approximation", zapHeightFields(s.height, s.height)...)
	open, _ := set.(tribool.OpenSet)
	outerWalk(s.root, rootBox, 0, maxDepth, d, set, open)
	s.root.Recombine()
	return nil
}

func outerWalk(n *bnode.Node, box grid.Box, depth, maxDepth, d int, set tribool.ClosedSet, open tribool.OpenSet) {
	if set.Disjoint(box) == tribool.Definitely {
		return
	}
	if open != nil && open.Covers(box) == tribool.Definitely {
		n.MakeLeaf(true)
		return
	}
	if depth >= maxDepth {
		n.MakeLeaf(true)
		return
	}
	if n.IsLeaf() {
		n.Split()
	}
	lBox, rBox := splitBox(box, depth%d)
	outerWalk(n.Left(), lBox, depth+1, maxDepth, d, set, open)
	outerWalk(n.Right(), rBox, depth+1, maxDepth, d, set, open)
}

// AdjoinInnerApproximation enables every cell, down to mince depth
// n*d + height*d below the primary cell enclosing box, that set
// definitely covers —
// an under-approximation of set's interior (spec.md §4.5).
func (s *GridTreeSet) AdjoinInnerApproximation(set tribool.OpenSet, box grid.Box, opts ...ApproximationOption) error {
	o := resolveOptions(opts...)
	if o.Depth < 0 {
		return ErrNegativeDepth
	}
	rootBox, err := s.seedAtEnclosingCell(box)
	if err != nil {
		return err
	}
	d := s.g.Dimension()
	maxDepth := o.Depth*d + s.height*d
	s.log.Debug("adjoin_inner_approximation", zapHeightFields(s.height, s.height)...)
	innerWalk(s.root, rootBox, 0, maxDepth, d, set)
	s.root.Recombine()
	return nil
}

// innerWalk only enables cells that set definitely covers; a cell that
// merely overlaps without being covered is excluded once maxDepth is
// reached rather than enabled (spec.md §4.5).
func innerWalk(n *bnode.Node, box grid.Box, depth, maxDepth, d int, set tribool.OpenSet) {
	if set.Overlaps(box) == tribool.Impossibly {
		return
	}
	if set.Covers(box) == tribool.Definitely {
		n.MakeLeaf(true)
		return
	}
	if depth >= maxDepth {
		return
	}
	if n.IsLeaf() {
		n.Split()
	}
	lBox, rBox := splitBox(box, depth%d)
	innerWalk(n.Left(), lBox, depth+1, maxDepth, d, set)
	innerWalk(n.Right(), rBox, depth+1, maxDepth, d, set)
}

// AdjoinLowerApproximation enables cells whose interior is definitely
// known to overlap set, down to mince depth n*d + height*d below the
// primary cell enclosing box. When set additionally implements tribool.OpenSet, a
// definite non-overlap prunes the search early; an OvertSet-only set
// forces the walk to maxDepth everywhere (spec.md §4.5, §9 Open
// Question (c)).
func (s *GridTreeSet) AdjoinLowerApproximation(set tribool.OvertSet, box grid.Box, opts ...ApproximationOption) error {
	o := resolveOptions(opts...)
	if o.Depth < 0 {
		return ErrNegativeDepth
	}
	rootBox, err := s.seedAtEnclosingCell(box)
	if err != nil {
		return err
	}
	d := s.g.Dimension()
	maxDepth := o.Depth*d + s.height*d
	s.log.Debug("adjoin_lower_approximation", zapHeightFields(s.height, s.height)...)
	open, _ := set.(tribool.OpenSet)
	lowerWalk(s.root, rootBox, 0, maxDepth, d, set, open)
	s.root.Recombine()
	return nil
}

// lowerWalk implements spec.md §4.5's two adjoin_lower_approximation
// variants: when set is OpenSet-capable, a covered cell is enabled
// outright (no further mincing needed, the whole cell is already known
// to overlap) and only an overlapping-but-uncovered cell at maxDepth is
// conservatively enabled; when set is only OvertSet-capable, the walk
// can't tell covered from merely-overlapping and so only commits at
// maxDepth, skipping a cell that is already an enabled leaf.
func lowerWalk(n *bnode.Node, box grid.Box, depth, maxDepth, d int, overt tribool.OvertSet, open tribool.OpenSet) {
	if open != nil {
		if open.Covers(box) == tribool.Definitely {
			n.MakeLeaf(true)
			return
		}
		if open.Overlaps(box) == tribool.Impossibly {
			return
		}
		if depth >= maxDepth {
			if open.Overlaps(box) == tribool.Definitely {
				n.MakeLeaf(true)
			}
			return
		}
	} else {
		if depth >= maxDepth {
			if overt.Overlaps(box) == tribool.Definitely && !n.HasEnabled() {
				n.MakeLeaf(true)
			}
			return
		}
	}
	if n.IsLeaf() {
		n.Split()
	}
	lBox, rBox := splitBox(box, depth%d)
	lowerWalk(n.Left(), lBox, depth+1, maxDepth, d, overt, open)
	lowerWalk(n.Right(), rBox, depth+1, maxDepth, d, overt, open)
}

// AdjoinApproximation dispatches set to whichever of
// AdjoinOuterApproximation, AdjoinInnerApproximation, or
// AdjoinLowerApproximation its strongest capability interface supports,
// in that preference order, for callers that only have an abstract set
// and do not know at compile time which capability it satisfies. box is
// used by the inner and lower drivers; outer approximation ignores it in
// favor of set.BoundingBox(). Returns ErrNoCapability if set implements
// none of tribool.CompactSet, tribool.OpenSet, or tribool.OvertSet.
func (s *GridTreeSet) AdjoinApproximation(set interface{}, box grid.Box, opts ...ApproximationOption) error {
	if compact, ok := set.(tribool.CompactSet); ok {
		return s.AdjoinOuterApproximation(compact, opts...)
	}
	if open, ok := set.(tribool.OpenSet); ok {
		return s.AdjoinInnerApproximation(open, box, opts...)
	}
	if overt, ok := set.(tribool.OvertSet); ok {
		return s.AdjoinLowerApproximation(overt, box, opts...)
	}
	return ErrNoCapability
}
