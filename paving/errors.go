package paving

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
)

// Sentinel errors returned by the paving package.
var (
	// ErrGridMismatch indicates two pavings being combined live on
	// different grids — a precondition violation signalled before any
	// mutation (spec.md §7).
	ErrGridMismatch = errors.New("paving: grid mismatch")

	// ErrDimensionMismatch indicates a set's dimension (via its
	// BoundingBox) does not match the paving's grid dimension.
	ErrDimensionMismatch = errors.New("paving: dimension mismatch")

	// ErrEmptyInteriorBox indicates an over-approximation was requested
	// for a set whose bounding box has zero or negative width on some
	// axis.
	ErrEmptyInteriorBox = errors.New("paving: bounding box has empty interior")

	// ErrNegativeDepth indicates a non-sensical negative approximation
	// depth or subdivision count was requested.
	ErrNegativeDepth = errors.New("paving: depth must be non-negative")

	// ErrNoCapability indicates an abstract set argument implements none
	// of the capability interfaces (tribool.CompactSet, tribool.OpenSet,
	// tribool.OvertSet) an approximation driver needs to make progress.
	ErrNoCapability = errors.New("paving: set exposes no usable capability interface")

	// ErrNonPositiveMaxWidth indicates Subdivide was asked to reach a
	// target cell width that is zero or negative.
	ErrNonPositiveMaxWidth = errors.New("paving: max width must be positive")

	// ErrInvalidProjection indicates a projection's axis indices were not
	// strictly increasing, contained a duplicate, or fell outside the
	// source grid's dimension.
	ErrInvalidProjection = errors.New("paving: projection indices must be strictly increasing and in range")
)

// withStack wraps err with a stack trace for I/O and structural-violation
// failures worth diagnosing after the fact (spec.md §7, SPEC_FULL.md §8).
func withStack(err error) error {
	return pkgerrors.WithStack(err)
}
