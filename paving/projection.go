package paving

import "github.com/elidrake/gridpave/grid"

// isSortedUnique reports whether indices is strictly increasing.
func isSortedUnique(indices []int) bool {
	for i := 1; i < len(indices); i++ {
		if indices[i] <= indices[i-1] {
			return false
		}
	}
	return true
}

// ProjectDownGrid returns the grid obtained by keeping only the named
// axes, in the order given. indices must be strictly increasing so the
// retained axes' cyclic order within a word is preserved unchanged
// (spec.md §4.6).
func ProjectDownGrid(g grid.Grid, indices []int) (grid.Grid, error) {
	if !isSortedUnique(indices) || len(indices) == 0 {
		return grid.Grid{}, ErrInvalidProjection
	}
	d := g.Dimension()
	origin, lengths := g.Origin(), g.Lengths()
	newOrigin := make([]float64, len(indices))
	newLengths := make([]float64, len(indices))
	for j, axis := range indices {
		if axis < 0 || axis >= d {
			return grid.Grid{}, ErrInvalidProjection
		}
		newOrigin[j] = origin[axis]
		newLengths[j] = lengths[axis]
	}
	return grid.NewFromArrays(newOrigin, newLengths)
}

// ProjectDown builds a new, lower-dimensional paving by dropping every
// axis not named in indices from each of s's enabled cells' words, then
// adjoining the result (spec.md §4.6). Because PrimaryCellAtHeight uses
// the same interval on every axis, the projected paving keeps s's
// height unchanged.
func ProjectDown(s GridTreeSubset, indices []int) (*GridTreeSet, error) {
	newGrid, err := ProjectDownGrid(s.g, indices)
	if err != nil {
		return nil, err
	}
	keep := make(map[int]bool, len(indices))
	for _, axis := range indices {
		keep[axis] = true
	}
	d := s.g.Dimension()
	result := NewSetAtHeight(newGrid, s.height)
	cells, err := s.Enumerate()
	if err != nil {
		return nil, err
	}
	for _, c := range cells {
		bits := c.Word().Bits()
		projected := make([]bool, 0, len(bits))
		for i, bit := range bits {
			if keep[i%d] {
				projected = append(projected, bit)
			}
		}
		if err := result.root.AddEnabledAtPath(projected); err != nil {
			return nil, err
		}
	}
	result.root.Recombine()
	return result, nil
}
