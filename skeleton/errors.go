package skeleton

import (
	"errors"
	"fmt"
)

// ErrCITestFailure wraps any error returned by the caller-supplied
// citest.Contract; the partial skeleton at that point is undefined and must
// be discarded.
var ErrCITestFailure = errors.New("skeleton: CI predicate failed")

func skeletonErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
