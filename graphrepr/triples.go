package graphrepr

// Triple is an unshielded triple (A, B, C): A-B and B-C are adjacent in the
// skeleton, A != C, and A, C are non-adjacent. Grounded on
// PyPCAlg/utilities/pc_algorithm.py's find_unshielded_triples.
type Triple struct {
	A, B, C int
}

// UnshieldedTriples enumerates every unshielded triple in the graph. Both
// (a,b,c) and (c,b,a) may appear for a given triple; downstream consumers
// must tolerate this (ColliderOrienter relies on it being safe - both
// orderings apply the same two writes).
//
// Complexity: O(n^3) worst case (n^2 non-adjacent pairs, each scanning O(n)
// common neighbours); acceptable at the scale this library targets.
func (m *Matrix) UnshieldedTriples() []Triple {
	nonAdjacent := m.UndirectedNonAdjacentPairs()

	var out []Triple
	for _, pair := range nonAdjacent {
		a, c := pair.I, pair.J
		adjA, _ := m.AdjacentTo(a)
		adjC, _ := m.AdjacentTo(c)
		adjCSet := make(map[int]struct{}, len(adjC))
		for _, u := range adjC {
			adjCSet[u] = struct{}{}
		}
		for _, b := range adjA {
			if b == c {
				continue
			}
			if _, ok := adjCSet[b]; ok {
				out = append(out, Triple{A: a, B: b, C: c})
			}
		}
	}

	return out
}
