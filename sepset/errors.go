package sepset

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize is returned when a Store is initialised with n < 0.
	ErrInvalidSize = errors.New("sepset: invalid vertex count")

	// ErrOutOfRange indicates a vertex index outside [0, n).
	ErrOutOfRange = errors.New("sepset: vertex index out of range")

	// ErrSameVertex indicates x == y where the pair is required distinct.
	ErrSameVertex = errors.New("sepset: endpoints must be distinct")

	// ErrMemberInPair indicates a recorded separator contained
	// one of the pair's own endpoints: separator tuples must be a strictly
	// ascending sequence of vertex indices excluding x and y.
	ErrMemberInPair = errors.New("sepset: separator contains a pair endpoint")
)

func sepsetErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
