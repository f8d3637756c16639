package grid

import "errors"

// Sentinel errors returned by the grid package. Callers match them with
// errors.Is; context is added with fmt.Errorf("...: %w", err) at call
// sites that need it, never by constructing new sentinels ad hoc.
var (
	// ErrDimensionMismatch indicates two grids, or a grid and a box/word,
	// disagree on dimension.
	ErrDimensionMismatch = errors.New("grid: dimension mismatch")

	// ErrGridMismatch indicates an operation received two Grid values that
	// are not structurally equal where equality is required (e.g. two
	// operands of a paving set-algebra operation).
	ErrGridMismatch = errors.New("grid: grid mismatch")

	// ErrNonPositiveLength indicates a requested per-axis length was <= 0.
	ErrNonPositiveLength = errors.New("grid: length must be positive")

	// ErrInvalidDimension indicates a requested dimension was <= 0.
	ErrInvalidDimension = errors.New("grid: dimension must be positive")
)
