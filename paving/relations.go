package paving

import (
	"github.com/elidrake/gridpave/bnode"
	"github.com/elidrake/gridpave/grid"
	"github.com/elidrake/gridpave/tribool"
)

// liftToHeight builds a fresh tree, rooted at the primary cell of height
// H, in which s's own region sits at its proper place and everywhere
// else is a disabled leaf (spec.md §4.4: "defer to free functions that
// compute common primary cell"). It clones s's node first so the
// original tree is left untouched — bnode.PrependTree moves its oldRoot
// argument into the new tree.
func liftToHeight(s GridTreeSubset, h int) (*bnode.Node, error) {
	path, err := grid.PrimaryCellPath(s.g.Dimension(), h, s.height)
	if err != nil {
		return nil, err
	}
	full := append(path, s.rootWord.Bits()...)
	return bnode.PrependTree(full, s.root.Clone()), nil
}

func commonHeight(a, b GridTreeSubset) int {
	if a.height > b.height {
		return a.height
	}
	return b.height
}

// SubsetOf reports whether a's enabled region is entirely contained in
// b's.
func SubsetOf(a, b GridTreeSubset) (bool, error) {
	if !a.g.Equal(b.g) {
		return false, ErrGridMismatch
	}
	h := commonHeight(a, b)
	na, err := liftToHeight(a, h)
	if err != nil {
		return false, err
	}
	nb, err := liftToHeight(b, h)
	if err != nil {
		return false, err
	}
	return bnode.Subset(na, nb), nil
}

// SupersetOf reports whether a's enabled region entirely contains b's.
func SupersetOf(a, b GridTreeSubset) (bool, error) { return SubsetOf(b, a) }

// OverlapsWith reports whether a and b share any enabled region.
func OverlapsWith(a, b GridTreeSubset) (bool, error) {
	if !a.g.Equal(b.g) {
		return false, ErrGridMismatch
	}
	h := commonHeight(a, b)
	na, err := liftToHeight(a, h)
	if err != nil {
		return false, err
	}
	nb, err := liftToHeight(b, h)
	if err != nil {
		return false, err
	}
	return bnode.Overlap(na, nb), nil
}

// DisjointFrom reports whether a and b share no enabled region.
func DisjointFrom(a, b GridTreeSubset) (bool, error) {
	overlap, err := OverlapsWith(a, b)
	if err != nil {
		return false, err
	}
	return !overlap, nil
}

// Subset, Superset, Overlaps, Disjoint are GridTreeSubset-method
// conveniences over the free functions above.
func (s GridTreeSubset) Subset(other GridTreeSubset) (bool, error)   { return SubsetOf(s, other) }
func (s GridTreeSubset) Superset(other GridTreeSubset) (bool, error) { return SupersetOf(s, other) }
func (s GridTreeSubset) Overlaps(other GridTreeSubset) (bool, error) { return OverlapsWith(s, other) }
func (s GridTreeSubset) Disjoint(other GridTreeSubset) (bool, error) { return DisjointFrom(s, other) }

func splitBox(box grid.Box, axis int) (grid.Box, grid.Box) {
	left, right := box.Clone(), box.Clone()
	mid := box[axis].Midpoint()
	left[axis] = grid.Interval{Lower: box[axis].Lower, Upper: mid}
	right[axis] = grid.Interval{Lower: mid, Upper: box[axis].Upper}
	return left, right
}

func boxesDisjoint(a, b grid.Box) bool {
	for i := range a {
		if a[i].Upper <= b[i].Lower || b[i].Upper <= a[i].Lower {
			return true
		}
	}
	return false
}

func boxCoversOther(outer, inner grid.Box) bool {
	for i := range outer {
		if inner[i].Lower < outer[i].Lower || inner[i].Upper > outer[i].Upper {
			return false
		}
	}
	return true
}

// CoversBox reports, as a Tribool, whether target is entirely contained
// within s's enabled region (spec.md §4.4).
func (s GridTreeSubset) CoversBox(target grid.Box) (tribool.Tribool, error) {
	box, bitIndex, d, err := s.rootWalkContext()
	if err != nil {
		return tribool.Indeterminate, err
	}
	return coversBoxWalk(s.root, box, target, bitIndex, d), nil
}

// SubsetOfBox reports, as a Tribool, whether s's enabled region is
// entirely contained within target.
func (s GridTreeSubset) SubsetOfBox(target grid.Box) (tribool.Tribool, error) {
	box, bitIndex, d, err := s.rootWalkContext()
	if err != nil {
		return tribool.Indeterminate, err
	}
	return subsetBoxWalk(s.root, box, target, bitIndex, d), nil
}

// OverlapsBox reports, as a Tribool, whether s's enabled region shares
// any point with target.
func (s GridTreeSubset) OverlapsBox(target grid.Box) (tribool.Tribool, error) {
	box, bitIndex, d, err := s.rootWalkContext()
	if err != nil {
		return tribool.Indeterminate, err
	}
	return overlapsBoxWalk(s.root, box, target, bitIndex, d), nil
}

// DisjointFromBox reports, as a Tribool, whether s's enabled region
// shares no point with target.
func (s GridTreeSubset) DisjointFromBox(target grid.Box) (tribool.Tribool, error) {
	box, bitIndex, d, err := s.rootWalkContext()
	if err != nil {
		return tribool.Indeterminate, err
	}
	return disjointBoxWalk(s.root, box, target, bitIndex, d), nil
}

func (s GridTreeSubset) rootWalkContext() (grid.Box, int, int, error) {
	c, err := s.Cell()
	if err != nil {
		return nil, 0, 0, err
	}
	box, err := c.Box()
	if err != nil {
		return nil, 0, 0, err
	}
	return box, s.rootWord.Len(), s.g.Dimension(), nil
}

func coversBoxWalk(n *bnode.Node, box, target grid.Box, bitIndex, d int) tribool.Tribool {
	if boxesDisjoint(box, target) {
		return tribool.Definitely
	}
	if n.IsLeaf() {
		return tribool.FromBool(n.IsEnabled())
	}
	lBox, rBox := splitBox(box, bitIndex%d)
	return tribool.And(
		coversBoxWalk(n.Left(), lBox, target, bitIndex+1, d),
		coversBoxWalk(n.Right(), rBox, target, bitIndex+1, d),
	)
}

func subsetBoxWalk(n *bnode.Node, box, target grid.Box, bitIndex, d int) tribool.Tribool {
	if boxesDisjoint(box, target) {
		if n.HasEnabled() {
			return tribool.Impossibly
		}
		return tribool.Definitely
	}
	if boxCoversOther(target, box) {
		return tribool.Definitely
	}
	if n.IsLeaf() {
		return tribool.FromBool(!n.IsEnabled())
	}
	lBox, rBox := splitBox(box, bitIndex%d)
	return tribool.And(
		subsetBoxWalk(n.Left(), lBox, target, bitIndex+1, d),
		subsetBoxWalk(n.Right(), rBox, target, bitIndex+1, d),
	)
}

func overlapsBoxWalk(n *bnode.Node, box, target grid.Box, bitIndex, d int) tribool.Tribool {
	if boxesDisjoint(box, target) {
		return tribool.Impossibly
	}
	if n.IsLeaf() {
		return tribool.FromBool(n.IsEnabled())
	}
	lBox, rBox := splitBox(box, bitIndex%d)
	return tribool.Or(
		overlapsBoxWalk(n.Left(), lBox, target, bitIndex+1, d),
		overlapsBoxWalk(n.Right(), rBox, target, bitIndex+1, d),
	)
}

func disjointBoxWalk(n *bnode.Node, box, target grid.Box, bitIndex, d int) tribool.Tribool {
	if boxesDisjoint(box, target) {
		return tribool.Definitely
	}
	if n.IsLeaf() {
		return tribool.FromBool(!n.IsEnabled())
	}
	lBox, rBox := splitBox(box, bitIndex%d)
	return tribool.And(
		disjointBoxWalk(n.Left(), lBox, target, bitIndex+1, d),
		disjointBoxWalk(n.Right(), rBox, target, bitIndex+1, d),
	)
}
