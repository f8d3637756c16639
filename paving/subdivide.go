package paving

import "github.com/elidrake/gridpave/cell"

// Subdivide mines s's subtree so every enabled leaf's box has width no
// greater than maxWidth on every axis, converting the worst-case axis's
// required subdivision count into a tree depth via
// cell.SubdivisionsToDepth before minceing (spec.md §4.4).
func (s GridTreeSubset) Subdivide(maxWidth float64) error {
	if maxWidth <= 0 {
		return ErrNonPositiveMaxWidth
	}
	c, err := s.Cell()
	if err != nil {
		return err
	}
	box, err := c.Box()
	if err != nil {
		return err
	}
	d := s.g.Dimension()
	// Scan axes in the order the tree splits them from s's root, so that
	// on a tie the axis split last wins and its m-th split is reached
	// only after every other axis has had m splits too.
	start := s.rootWord.Len() % d
	maxSubdivDim, m := 0, 0
	for j := 0; j < d; j++ {
		i := (start + j) % d
		width := box[i].Width()
		k := 0
		for width > maxWidth {
			width /= 2
			k++
		}
		if k >= m {
			m = k
			maxSubdivDim = i
		}
	}
	depth := cell.SubdivisionsToDepth(d, s.rootWord.Len(), maxSubdivDim, m)
	return s.root.Mince(depth)
}
