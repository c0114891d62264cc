package citest

// Contract is the uniform shape the adjacency search invokes (conditional)
// independence predicates through. x and y are vertex indices into the
// observed columns; Z is an ordered list of conditioning vertex indices
// (possibly empty); level is the significance threshold. The bool return
// means "independence holds".
//
// Implementations must be side-effect free from the caller's point of view;
// a predicate that panics or returns an error aborts the run unchanged - the
// caller does not retry or substitute a default.
type Contract interface {
	// Indep reports whether X_x ⟂ X_y at the given significance level.
	Indep(x, y int, level float64) (bool, error)

	// CondIndep reports whether X_x ⟂ X_y | X_Z at the given significance
	// level. Z may be empty, in which case implementations should behave
	// identically to Indep (AdjacencyEngine never calls CondIndep with an
	// empty Z itself - depth 0 always calls Indep - but adapters are expected
	// to keep the two consistent for direct callers and tests).
	CondIndep(x, y int, z []int, level float64) (bool, error)
}
