package skeleton

import (
	"fmt"
	"sort"

	"github.com/causalkit/pcalg/citest"
	"github.com/causalkit/pcalg/graphrepr"
	"github.com/causalkit/pcalg/sepset"
)

// Run executes the adjacency search: starting from the complete undirected
// graph on n vertices, it eliminates edges level by level using test at
// increasing conditioning depths, producing the causal skeleton and a fully
// populated sepset.Store.
//
// A failure returned by test aborts the run immediately: the partial
// skeleton built so far is discarded and Run returns a nil *graphrepr.Matrix.
func Run(n int, test citest.Contract, level float64, opts ...Option) (*graphrepr.Matrix, *sepset.Store, error) {
	o := resolveOptions(opts...)

	m, err := graphrepr.NewComplete(n)
	if err != nil {
		return nil, nil, skeletonErrorf("Run", err)
	}
	sep, err := sepset.Init(n)
	if err != nil {
		return nil, nil, skeletonErrorf("Run", err)
	}

	for depth := 0; ; depth++ {
		if o.maxDepth > 0 && depth > o.maxDepth {
			break
		}

		snapshot := m.UndirectedAdjacentPairs()
		stop, err := depthWouldStop(m, snapshot, depth)
		if err != nil {
			return nil, nil, skeletonErrorf("Run", err)
		}
		o.logger.V(1).Info("entering depth", "depth", depth, "pairs", len(snapshot))

		removed := 0
		for _, pair := range snapshot {
			did, err := tryDetach(m, sep, test, level, pair.I, pair.J, depth)
			if err != nil {
				return nil, nil, skeletonErrorf("Run", err)
			}
			if did {
				removed++
				o.logger.V(1).Info("edge removed", "x", pair.I, "y", pair.J, "depth", depth)
			}
		}
		if o.onDepthDone != nil {
			o.onDepthDone(depth, removed)
		}

		if stop {
			break
		}
	}

	return m, sep, nil
}

// depthWouldStop reports whether the next depth would find nothing to do:
// true iff, for every ordered adjacent pair in the pre-removal snapshot,
// |adj(x) \ {y}| < depth.
func depthWouldStop(m *graphrepr.Matrix, snapshot []graphrepr.Pair, depth int) (bool, error) {
	for _, pair := range snapshot {
		adjX, err := m.AdjacentTo(pair.I)
		if err != nil {
			return false, err
		}
		if len(excluding(adjX, pair.J)) >= depth {
			return false, nil
		}
	}

	return true, nil
}

// tryDetach re-derives the live candidate conditioning set for (x,y) and, on
// the first separating set found, detaches the edge and records it. Returns
// whether the edge was removed.
func tryDetach(m *graphrepr.Matrix, sep *sepset.Store, test citest.Contract, level float64, x, y, depth int) (bool, error) {
	adjX, err := m.AdjacentTo(x)
	if err != nil {
		return false, err
	}
	candidates := excluding(adjX, y)
	if len(candidates) < depth {
		return false, nil
	}

	if depth == 0 {
		indep, err := test.Indep(x, y, level)
		if err != nil {
			return false, fmt.Errorf("tryDetach: %w: %w", ErrCITestFailure, err)
		}
		if !indep {
			return false, nil
		}
		if err := m.Detach(x, y); err != nil {
			return false, err
		}

		return true, sep.Record(x, y, nil)
	}

	sort.Ints(candidates)
	for _, z := range subsetsOfSize(candidates, depth) {
		indep, err := test.CondIndep(x, y, z, level)
		if err != nil {
			return false, fmt.Errorf("tryDetach: %w: %w", ErrCITestFailure, err)
		}
		if !indep {
			continue
		}
		if err := m.Detach(x, y); err != nil {
			return false, err
		}

		return true, sep.Record(x, y, z)
	}

	return false, nil
}

// excluding returns elems without value, preserving order.
func excluding(elems []int, value int) []int {
	out := make([]int, 0, len(elems))
	for _, e := range elems {
		if e != value {
			out = append(out, e)
		}
	}

	return out
}
