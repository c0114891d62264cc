// Package graphrepr: sentinel error set.
//
// Every exported operation that can fail returns one of these sentinels,
// optionally wrapped with call-site context via graphErrorf. Callers branch
// with errors.Is; never compare error strings.
package graphrepr

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize is returned when a Matrix is constructed with n < 0.
	ErrInvalidSize = errors.New("graphrepr: invalid vertex count")

	// ErrOutOfRange indicates a vertex index outside [0, n).
	ErrOutOfRange = errors.New("graphrepr: vertex index out of range")

	// ErrSameVertex indicates an operation received i == j where the two
	// endpoints are required to be distinct.
	ErrSameVertex = errors.New("graphrepr: endpoints must be distinct")

	// ErrNoSuchEdge is returned by mutators invoked on a cell pair that is
	// already fully absent (both cells zero) - a skeleton-phase write
	// finding an already-absent edge indicates caller or algorithm error.
	ErrNoSuchEdge = errors.New("graphrepr: edge does not exist")

	// ErrInvariantViolation marks a failed internal consistency check, e.g. an
	// orientation write that would create a bidirected edge or a cycle in the
	// directed subgraph. Treated as a bug, not a recoverable condition; always
	// carries diagnostic context via %w wrapping.
	ErrInvariantViolation = errors.New("graphrepr: invariant violation")
)

// graphErrorf wraps err with an operation tag, e.g. "Detach: <err>".
func graphErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
