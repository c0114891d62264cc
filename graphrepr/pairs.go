package graphrepr

// Pair is an ordered vertex pair (I, J) with I != J.
type Pair struct {
	I, J int
}

// UndirectedAdjacentPairs returns every ordered pair (i,j) with
// M[i][j]=M[j][i]=1, in the symmetric convention: both (i,j) and (j,i)
// appear. The symmetric convention simplifies rule iteration (each endpoint
// gets to play the "a" role once). Complexity: O(n^2).
func (m *Matrix) UndirectedAdjacentPairs() []Pair {
	var out []Pair
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			if i == j {
				continue
			}
			if m.data[i*m.n+j] == 1 && m.data[j*m.n+i] == 1 {
				out = append(out, Pair{I: i, J: j})
			}
		}
	}

	return out
}

// UndirectedAdjacentPairsCanonical returns the canonical view (i < j only)
// of UndirectedAdjacentPairs, for callers that must not double-visit an
// undirected edge (e.g. printing, or MeekClosure's equality check does not
// need this - it compares whole matrices - but external reporting does).
func (m *Matrix) UndirectedAdjacentPairsCanonical() []Pair {
	var out []Pair
	for i := 0; i < m.n; i++ {
		for j := i + 1; j < m.n; j++ {
			if m.data[i*m.n+j] == 1 && m.data[j*m.n+i] == 1 {
				out = append(out, Pair{I: i, J: j})
			}
		}
	}

	return out
}

// UndirectedNonAdjacentPairs returns every ordered pair (i,j), i != j, with
// M[i][j]=M[j][i]=0 - i.e. no edge in either direction - in the symmetric
// convention (both (i,j) and (j,i) appear). Used by Meek rule R1, which
// iterates non-adjacent pairs.
// Complexity: O(n^2).
func (m *Matrix) UndirectedNonAdjacentPairs() []Pair {
	var out []Pair
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			if i == j {
				continue
			}
			if m.data[i*m.n+j] == 0 && m.data[j*m.n+i] == 0 {
				out = append(out, Pair{I: i, J: j})
			}
		}
	}

	return out
}
