// Package collider orients every unshielded triple a-b-c into the
// v-structure a->b<-c whenever b is absent from every recorded separating
// set of (a,c).
//
// Grounded on original_source/PyPCAlg/pc_algorithm.py's
// run_pc_orientation_phase collider step.
package collider
