package graphrepr

// RemoveEdgeOrientation sets M[src][dst]=0, "orienting away" a cell. If the
// mirror cell M[dst][src] is also 0, the edge disappears entirely. This is
// the single write every Meek rule and the collider orientation step perform:
// orientation strictly removes one of the two cells of an undirected edge.
//
// Returns ErrNoSuchEdge if the pair carries no edge at all (both cells
// already zero) before the write - a write finding an already-absent edge
// is an invariant violation, not a legitimate no-op.
func (m *Matrix) RemoveEdgeOrientation(src, dst int) error {
	if src == dst {
		return graphErrorf("RemoveEdgeOrientation", ErrSameVertex)
	}
	offSrcDst, err := m.indexOf("RemoveEdgeOrientation", src, dst)
	if err != nil {
		return err
	}
	offDstSrc, err := m.indexOf("RemoveEdgeOrientation", dst, src)
	if err != nil {
		return err
	}
	if m.data[offSrcDst] == 0 && m.data[offDstSrc] == 0 {
		return graphErrorf("RemoveEdgeOrientation", ErrNoSuchEdge)
	}
	m.data[offSrcDst] = 0

	return nil
}

// Detach removes any edge between u and v entirely, setting both cells to 0.
// Used by the adjacency search when a CI test witnesses independence.
func (m *Matrix) Detach(u, v int) error {
	if u == v {
		return graphErrorf("Detach", ErrSameVertex)
	}
	offUV, err := m.indexOf("Detach", u, v)
	if err != nil {
		return err
	}
	offVU, err := m.indexOf("Detach", v, u)
	if err != nil {
		return err
	}
	m.data[offUV] = 0
	m.data[offVU] = 0

	return nil
}

// OrientInto orients the undirected edge b-other into other -> b, i.e.
// removes M[b][other], leaving the arrowhead pointing into b. It is a thin,
// intention-revealing wrapper over RemoveEdgeOrientation(b, other) used by
// ColliderOrienter and the Meek rules, which all phrase their writes as
// "orient X into Y".
func (m *Matrix) OrientInto(b, other int) error {
	return m.RemoveEdgeOrientation(b, other)
}

// SetUndirectedEdge marks i-j as an undirected edge (both cells set to 1).
// Exposed for constructing graphs directly (tests, oracle/demo fixtures); the
// adjacency-search pipeline itself always starts from NewComplete and removes
// edges, never adds them - it never introduces an edge that did not already
// exist in the starting complete graph.
func (m *Matrix) SetUndirectedEdge(i, j int) error {
	if i == j {
		return graphErrorf("SetUndirectedEdge", ErrSameVertex)
	}
	offIJ, err := m.indexOf("SetUndirectedEdge", i, j)
	if err != nil {
		return err
	}
	offJI, err := m.indexOf("SetUndirectedEdge", j, i)
	if err != nil {
		return err
	}
	m.data[offIJ] = 1
	m.data[offJI] = 1

	return nil
}

// SetDirectedEdge marks i->j as a directed edge (M[i][j]=1, M[j][i]=0).
// See SetUndirectedEdge for the same fixture-construction caveat.
func (m *Matrix) SetDirectedEdge(i, j int) error {
	if i == j {
		return graphErrorf("SetDirectedEdge", ErrSameVertex)
	}
	offIJ, err := m.indexOf("SetDirectedEdge", i, j)
	if err != nil {
		return err
	}
	offJI, err := m.indexOf("SetDirectedEdge", j, i)
	if err != nil {
		return err
	}
	m.data[offIJ] = 1
	m.data[offJI] = 0

	return nil
}

// WouldCreateBidirected reports whether orienting src -> dst (i.e. clearing
// M[dst][src]) is unsafe because M[dst][src] is already the only surviving
// direction while M[src][dst] is zero - meaning the edge is already oriented
// dst -> src and writing src -> dst would produce a bidirected pair. Meek
// rules must check this before writing instead of silently producing an
// inconsistent graph.
func (m *Matrix) WouldCreateBidirected(src, dst int) (bool, error) {
	offSrcDst, err := m.indexOf("WouldCreateBidirected", src, dst)
	if err != nil {
		return false, err
	}
	offDstSrc, err := m.indexOf("WouldCreateBidirected", dst, src)
	if err != nil {
		return false, err
	}

	// Orienting src->dst means ensuring M[dst][src]=0; it is already the
	// case unless dst->src currently holds (M[dst][src]=1, M[src][dst]=0).
	return m.data[offSrcDst] == 0 && m.data[offDstSrc] == 1, nil
}
