package paving

import (
	"github.com/elidrake/gridpave/bnode"
	"github.com/elidrake/gridpave/cell"
	"github.com/elidrake/gridpave/grid"
	"github.com/elidrake/gridpave/word"
)

// AdjoinCellFromWord is a convenience wrapper over AdjoinCell that builds
// the GridCell from a height and raw bit path first.
func (s *GridTreeSet) AdjoinCellFromWord(height int, bits []bool) error {
	c, err := cell.NewCell(s.g, height, word.FromBools(bits))
	if err != nil {
		return err
	}
	return s.AdjoinCell(c)
}

// RemoveCellFromWord is a convenience wrapper over RemoveCell that builds
// the GridCell from a height and raw bit path first.
func (s *GridTreeSet) RemoveCellFromWord(height int, bits []bool) error {
	c, err := cell.NewCell(s.g, height, word.FromBools(bits))
	if err != nil {
		return err
	}
	return s.RemoveCell(c)
}

// pathAtHeight returns the word naming c's cell relative to the paving's
// current root height, re-rooting the paving up first if c lives at a
// greater height.
func (s *GridTreeSet) pathAtHeight(c cell.GridCell) ([]bool, error) {
	if !s.g.Equal(c.Grid()) {
		return nil, ErrGridMismatch
	}
	if c.Height() > s.height {
		if err := s.UpToPrimaryCell(c.Height()); err != nil {
			return nil, err
		}
	}
	if c.Height() == s.height {
		return c.Word().Bits(), nil
	}
	path, err := grid.PrimaryCellPath(s.g.Dimension(), s.height, c.Height())
	if err != nil {
		return nil, err
	}
	return append(path, c.Word().Bits()...), nil
}

// AdjoinCell enables the single cell c, splitting and re-rooting as
// needed, and restores canonical form.
func (s *GridTreeSet) AdjoinCell(c cell.GridCell) error {
	path, err := s.pathAtHeight(c)
	if err != nil {
		return err
	}
	if err := s.root.AddEnabledAtPath(path); err != nil {
		return err
	}
	s.root.Recombine()
	return nil
}

// RemoveCell disables the single cell c.
func (s *GridTreeSet) RemoveCell(c cell.GridCell) error {
	path, err := s.pathAtHeight(c)
	if err != nil {
		return err
	}
	mask := bnode.NewLeaf(false)
	if err := mask.AddEnabledAtPath(path); err != nil {
		return err
	}
	s.root.Remove(mask)
	s.root.Recombine()
	return nil
}

// alignOperand re-roots s up to the common primary cell height shared
// with other (if needed) and returns other's tree lifted to that same
// height, ready for a pointwise bnode operation against s.root.
func (s *GridTreeSet) alignOperand(other GridTreeSubset) (*bnode.Node, error) {
	if !s.g.Equal(other.Grid()) {
		return nil, ErrGridMismatch
	}
	h := s.height
	if other.height > h {
		h = other.height
	}
	if err := s.UpToPrimaryCell(h); err != nil {
		return nil, err
	}
	return liftToHeight(other, h)
}

// Adjoin enables every cell enabled in other (spec.md §4.5).
func (s *GridTreeSet) Adjoin(other GridTreeSubset) error {
	otherNode, err := s.alignOperand(other)
	if err != nil {
		return err
	}
	s.root.AddEnabled(otherNode)
	s.root.Recombine()
	return nil
}

// Restrict keeps only the cells also enabled in other (set intersection
// in place).
func (s *GridTreeSet) Restrict(other GridTreeSubset) error {
	otherNode, err := s.alignOperand(other)
	if err != nil {
		return err
	}
	s.root.Restrict(otherNode)
	s.root.Recombine()
	return nil
}

// Remove disables every cell enabled in other (set difference in
// place).
func (s *GridTreeSet) Remove(other GridTreeSubset) error {
	otherNode, err := s.alignOperand(other)
	if err != nil {
		return err
	}
	s.root.Remove(otherNode)
	s.root.Recombine()
	return nil
}

// Join returns a new paving holding the union of a and b.
func Join(a, b *GridTreeSet) (*GridTreeSet, error) {
	result := a.Clone()
	if err := result.Adjoin(b.AsSubset()); err != nil {
		return nil, err
	}
	return result, nil
}

// Intersection returns a new paving holding the intersection of a and b.
func Intersection(a, b *GridTreeSet) (*GridTreeSet, error) {
	result := a.Clone()
	if err := result.Restrict(b.AsSubset()); err != nil {
		return nil, err
	}
	return result, nil
}

// Difference returns a new paving holding a minus b.
func Difference(a, b *GridTreeSet) (*GridTreeSet, error) {
	result := a.Clone()
	if err := result.Remove(b.AsSubset()); err != nil {
		return nil, err
	}
	return result, nil
}
