package paving

import (
	"github.com/elidrake/gridpave/bnode"
	"github.com/elidrake/gridpave/cell"
	"github.com/elidrake/gridpave/grid"
	"github.com/elidrake/gridpave/tribool"
)

// predicateWalk descends s's enabled leaves, refining indeterminate ones
// up to maxDepth, deciding at each resolved leaf whether to disable it
// (spec.md §4.5). matchMeansDisable selects restrict semantics (false:
// Impossibly disables) or remove semantics (true: Definitely disables).
// keepOnIndeterminate controls the conservative default once refinement
// is exhausted without resolving the predicate.
func predicateWalk(n *bnode.Node, box grid.Box, depth, maxDepth, d int, checker tribool.SetChecker, matchMeansDisable, keepOnIndeterminate bool) {
	if n.IsLeaf() {
		if n.IsDisabled() {
			return
		}
		switch checker.Check(box) {
		case tribool.Definitely:
			if matchMeansDisable {
				n.MakeLeaf(false)
			}
			return
		case tribool.Impossibly:
			if !matchMeansDisable {
				n.MakeLeaf(false)
			}
			return
		default:
			if depth >= maxDepth {
				if !keepOnIndeterminate {
					n.MakeLeaf(false)
				}
				return
			}
			n.Split()
		}
	}
	lBox, rBox := splitBox(box, depth%d)
	predicateWalk(n.Left(), lBox, depth+1, maxDepth, d, checker, matchMeansDisable, keepOnIndeterminate)
	predicateWalk(n.Right(), rBox, depth+1, maxDepth, d, checker, matchMeansDisable, keepOnIndeterminate)
}

func (s *GridTreeSet) runPredicateWalk(checker tribool.SetChecker, matchMeansDisable, keepOnIndeterminate bool, opts ...ApproximationOption) error {
	o := resolveOptions(opts...)
	if o.Depth < 0 {
		return ErrNegativeDepth
	}
	root, err := cell.RootAtHeight(s.g, s.height)
	if err != nil {
		return err
	}
	box, err := root.Box()
	if err != nil {
		return err
	}
	predicateWalk(s.root, box, 0, o.Depth, s.g.Dimension(), checker, matchMeansDisable, keepOnIndeterminate)
	s.root.Recombine()
	return nil
}

// OuterRestrict keeps every enabled cell not definitely excluded by
// checker, refining indeterminate cells down to tree depth n below the
// paving's root cell and
// defaulting to keep once unresolved — an over-approximation of the
// checker's positive region intersected with s (spec.md §4.5).
func (s *GridTreeSet) OuterRestrict(checker tribool.SetChecker, opts ...ApproximationOption) error {
	return s.runPredicateWalk(checker, false, true, opts...)
}

// InnerRestrict keeps only enabled cells definitely included by checker,
// defaulting to exclude once refinement is exhausted without resolving —
// an under-approximation of the checker's positive region intersected
// with s.
func (s *GridTreeSet) InnerRestrict(checker tribool.SetChecker, opts ...ApproximationOption) error {
	return s.runPredicateWalk(checker, false, false, opts...)
}

// OuterRemove disables every enabled cell definitely included by
// checker, defaulting to keep once refinement is exhausted without
// resolving — an over-approximation of s minus the checker's positive
// region.
func (s *GridTreeSet) OuterRemove(checker tribool.SetChecker, opts ...ApproximationOption) error {
	return s.runPredicateWalk(checker, true, true, opts...)
}

// InnerRemove disables every enabled cell not definitely excluded by
// checker, defaulting to remove once refinement is exhausted without
// resolving — an under-approximation of s minus the checker's positive
// region.
func (s *GridTreeSet) InnerRemove(checker tribool.SetChecker, opts ...ApproximationOption) error {
	return s.runPredicateWalk(checker, true, false, opts...)
}
