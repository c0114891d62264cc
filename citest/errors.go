package citest

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates a vertex index outside the contract's variable set.
	ErrOutOfRange = errors.New("citest: vertex index out of range")

	// ErrSameVertex indicates x == y where the pair is required distinct.
	ErrSameVertex = errors.New("citest: endpoints must be distinct")

	// ErrOracleEntryMissing indicates the oracle CSV table has no row for the
	// requested (x, y, Z) query; the table is assumed exhaustive, so a miss is
	// a caller error (unknown vertex naming, mismatched variable count) rather
	// than "independence unknown".
	ErrOracleEntryMissing = errors.New("citest: oracle has no entry for query")

	// ErrOracleBadFormat indicates the oracle CSV's header or rows do not
	// match the expected column layout. NewGaussianContract also returns it
	// when the data columns differ in length.
	ErrOracleBadFormat = errors.New("citest: oracle CSV has invalid format")

	// ErrInsufficientObservations indicates GaussianContract was asked to test
	// a conditioning set too large for the number of rows available (the
	// correlation submatrix would be singular or the test statistic
	// undefined).
	ErrInsufficientObservations = errors.New("citest: too few observations for requested conditioning set")

	// ErrCITestFailure is a sentinel for a failed predicate call. No adapter in
	// this package returns it; the adjacency search wraps predicate errors
	// with skeleton.ErrCITestFailure instead.
	ErrCITestFailure = errors.New("citest: predicate failed")

	// ErrSingularCorrelation indicates the conditioning set produced a
	// singular correlation submatrix (e.g. perfectly collinear variables),
	// so partial correlation is undefined.
	ErrSingularCorrelation = errors.New("citest: correlation submatrix is singular")
)

func citestErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
