// Package sepset implements the separating-set store: the association from
// an unordered vertex pair to the set of conditioning sets that witnessed
// the pair's (conditional) independence during skeleton discovery.
//
// A Store is initialised with every unordered pair mapping to the empty set,
// written only by the skeleton-discovery phase, and read-only afterwards.
// Separators are stored as sorted vertex tuples, with the empty tuple
// denoting unconditional independence; insertion is idempotent set
// semantics, not append.
package sepset
