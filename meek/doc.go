// Package meek implements Meek's orientation closure: iteratively applying
// orientation rules R1-R3 (R4 optional) to a PDAG until a full pass produces
// no change.
//
// Grounded on original_source/PyPCAlg/meeks_rules.py, which in turn follows
// Pearl's Causality (2009, 2nd ed.), p. 51.
package meek
