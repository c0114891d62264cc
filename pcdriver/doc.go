// Package pcdriver sequences the adjacency search, collider orientation, and
// Meek closure into the full PC algorithm, packaging the result as a
// Result{CPDAG, SepSets}.
//
// Grounded on original_source/PyPCAlg/pc_algorithm.py's run_pc_algorithm,
// which performs the identical three-phase sequencing over the original
// numpy/dict representation.
package pcdriver
