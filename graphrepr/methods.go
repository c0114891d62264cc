package graphrepr

// Children returns every vertex u with M[v][u]=1 and M[u][v]=0 (v -> u).
// Complexity: O(n).
func (m *Matrix) Children(v int) ([]int, error) {
	if v < 0 || v >= m.n {
		return nil, graphErrorf("Children", ErrOutOfRange)
	}

	var out []int
	for u := 0; u < m.n; u++ {
		if u == v {
			continue
		}
		if m.data[v*m.n+u] == 1 && m.data[u*m.n+v] == 0 {
			out = append(out, u)
		}
	}

	return out, nil
}

// Parents returns every vertex u with M[u][v]=1 and M[v][u]=0 (u -> v).
// Complexity: O(n).
func (m *Matrix) Parents(v int) ([]int, error) {
	if v < 0 || v >= m.n {
		return nil, graphErrorf("Parents", ErrOutOfRange)
	}

	var out []int
	for u := 0; u < m.n; u++ {
		if u == v {
			continue
		}
		if m.data[u*m.n+v] == 1 && m.data[v*m.n+u] == 0 {
			out = append(out, u)
		}
	}

	return out, nil
}

// UndirectedNeighbours returns every vertex u with M[v][u]=M[u][v]=1 (v - u).
// Complexity: O(n).
func (m *Matrix) UndirectedNeighbours(v int) ([]int, error) {
	if v < 0 || v >= m.n {
		return nil, graphErrorf("UndirectedNeighbours", ErrOutOfRange)
	}

	var out []int
	for u := 0; u < m.n; u++ {
		if u == v {
			continue
		}
		if m.data[v*m.n+u] == 1 && m.data[u*m.n+v] == 1 {
			out = append(out, u)
		}
	}

	return out, nil
}

// AdjacentTo returns every u != v with M[v][u]=1 or M[u][v]=1: the union of
// Children, Parents and UndirectedNeighbours. Complexity: O(n).
func (m *Matrix) AdjacentTo(v int) ([]int, error) {
	if v < 0 || v >= m.n {
		return nil, graphErrorf("AdjacentTo", ErrOutOfRange)
	}

	var out []int
	for u := 0; u < m.n; u++ {
		if u == v {
			continue
		}
		if m.data[v*m.n+u] == 1 || m.data[u*m.n+v] == 1 {
			out = append(out, u)
		}
	}

	return out, nil
}

// IsAdjacent reports whether i and j (i != j) carry any edge, directed or
// undirected, in either direction.
func (m *Matrix) IsAdjacent(i, j int) (bool, error) {
	off1, err := m.indexOf("IsAdjacent", i, j)
	if err != nil {
		return false, err
	}
	off2, err := m.indexOf("IsAdjacent", j, i)
	if err != nil {
		return false, err
	}

	return m.data[off1] == 1 || m.data[off2] == 1, nil
}
