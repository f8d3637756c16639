package paving

import (
	"fmt"

	"github.com/elidrake/gridpave/bnode"
	"github.com/elidrake/gridpave/grid"
)

// UpToPrimaryCell re-roots the paving so its root cell becomes the
// primary cell at height h (h must be >= the current height). The
// enabled region is unchanged — every newly created sibling branch along
// the prepended chain is a disabled leaf (spec.md §4.5).
func (s *GridTreeSet) UpToPrimaryCell(h int) error {
	if h < s.height {
		return fmt.Errorf("paving: cannot re-root down from height %d to %d", s.height, h)
	}
	if h == s.height {
		return nil
	}
	s.log.Debug("up_to_primary_cell", zapHeightFields(s.height, h)...)
	if s.root.IsDisabled() {
		// An empty paving stays a single disabled leaf; prepending would
		// leave sibling disabled leaves that are not recombined.
		s.height = h
		return nil
	}
	path, err := grid.PrimaryCellPath(s.g.Dimension(), h, s.height)
	if err != nil {
		return err
	}
	s.root = bnode.PrependTree(path, s.root)
	s.height = h
	return nil
}

// AlignWithCell descends (re-rooting first if necessary) to the subtree
// node whose cell is the primary cell at height hPrime within the
// paving's current tree. During descent, if stopOnEnabled and an enabled
// leaf is met, or stopOnDisabled and a disabled leaf is met, the descent
// stops early and the second return value is true. Otherwise descent
// splits leaves as needed and returns the reached node with false
// (spec.md §4.5).
func (s *GridTreeSet) AlignWithCell(hPrime int, stopOnEnabled, stopOnDisabled bool) (*bnode.Node, bool, error) {
	if hPrime > s.height {
		if err := s.UpToPrimaryCell(hPrime); err != nil {
			return nil, false, err
		}
	}
	path, err := grid.PrimaryCellPath(s.g.Dimension(), s.height, hPrime)
	if err != nil {
		return nil, false, err
	}
	cur := s.root
	for _, bit := range path {
		if cur.IsLeaf() {
			if stopOnEnabled && cur.IsEnabled() {
				return cur, true, nil
			}
			if stopOnDisabled && cur.IsDisabled() {
				return cur, true, nil
			}
			cur.Split()
		}
		if bit {
			cur = cur.Right()
		} else {
			cur = cur.Left()
		}
	}
	return cur, false, nil
}
