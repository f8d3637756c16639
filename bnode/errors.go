package bnode

import (
	stderrors "errors"

	"github.com/pkg/errors"
)

// sentinelErr is the plain, errors.Is-comparable core of a structural
// violation. errors.WithStack (github.com/pkg/errors) wraps it at the
// point of detection so that a "this should never happen" invariant
// break (spec.md §7) carries a stack trace for diagnosis, while
// errors.Is(err, ErrStructuralViolation) still matches after wrapping.
var sentinelErr = stderrors.New("bnode: structural violation")

// ErrStructuralViolation is returned when a tree walk encounters a
// missing child where a non-leaf node was expected to have two. It is
// fatal to the operation in progress: the API signals the error and
// leaves the paving in an unspecified state, per spec.md §7.
var ErrStructuralViolation = sentinelErr

func withStack(err error) error {
	return errors.WithStack(err)
}
