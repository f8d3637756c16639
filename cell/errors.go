package cell

import "errors"

// Sentinel errors returned by the cell package.
var (
	// ErrDimensionMismatch indicates a grid, box, or word disagreed on
	// dimension with another operand.
	ErrDimensionMismatch = errors.New("cell: dimension mismatch")

	// ErrGridMismatch indicates two cells being compared or combined live
	// on structurally different grids.
	ErrGridMismatch = errors.New("cell: grid mismatch")

	// ErrInvalidAxis indicates an axis index outside [0, dimension).
	ErrInvalidAxis = errors.New("cell: axis index out of range")

	// ErrInvalidComparator indicates Compare was asked to order two cells
	// that cannot be ordered at all; it wraps a more specific cause such
	// as ErrGridMismatch.
	ErrInvalidComparator = errors.New("cell: invalid comparator")

	// ErrEmptyInteriorBox indicates an over-approximation was requested
	// for a box with zero or negative width on some axis.
	ErrEmptyInteriorBox = errors.New("cell: box has empty interior")

	// ErrNoNeighbor indicates a neighboring cell could not be located
	// within a bounded number of re-rootings — a structural impossibility
	// for a well-formed word, surfaced rather than looped on forever.
	ErrNoNeighbor = errors.New("cell: no neighboring cell found")
)
