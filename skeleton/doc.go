// Package skeleton implements the level-by-level edge elimination phase that
// turns a complete undirected graph into the causal skeleton, recording
// every separating set it discovers along the way.
//
// Grounded on original_source/PyPCAlg/pc_algorithm.py's
// run_pc_adjacency_phase, adapted to operate on graphrepr.Matrix and
// sepset.Store instead of numpy arrays and a plain dict.
package skeleton
