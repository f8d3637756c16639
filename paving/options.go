package paving

import "github.com/elidrake/gridpave/internal/plog"

// ApproximationOptions configures the approximation drivers
// (AdjoinOuterApproximation, AdjoinLowerApproximation,
// AdjoinInnerApproximation) and the logging used throughout GridTreeSet,
// following the teacher's functional-options / plain-struct convention
// (mirrored from lvlath's gridgraph.GridOptions).
type ApproximationOptions struct {
	// Depth is the extra refinement depth n added to the paving's root
	// height when computing the mince target (spec.md §4.5). The
	// predicate-driven restriction/removal drivers instead use n directly
	// as the tree depth below the paving's root cell.
	Depth int
	// Logger receives structured diagnostics at operation entry/exit.
	// Defaults to a no-op logger when unset.
	Logger *plog.Logger
}

// ApproximationOption mutates an ApproximationOptions.
type ApproximationOption func(*ApproximationOptions)

// DefaultApproximationOptions returns depth 0 with a no-op logger.
func DefaultApproximationOptions() ApproximationOptions {
	return ApproximationOptions{Depth: 0, Logger: plog.Nop()}
}

// WithDepth sets the refinement depth.
func WithDepth(n int) ApproximationOption {
	return func(o *ApproximationOptions) { o.Depth = n }
}

// WithLogger sets the logger used for operation diagnostics.
func WithLogger(l *plog.Logger) ApproximationOption {
	return func(o *ApproximationOptions) { o.Logger = l }
}

func resolveOptions(opts ...ApproximationOption) ApproximationOptions {
	o := DefaultApproximationOptions()
	for _, apply := range opts {
		apply(&o)
	}
	return o
}
