package graphrepr_test

import (
	"testing"

	"github.com/causalkit/pcalg/graphrepr"
	"github.com/stretchr/testify/require"
)

func TestUndirectedAdjacentPairsSymmetric(t *testing.T) {
	m, err := graphrepr.NewComplete(3)
	require.NoError(t, err)

	pairs := m.UndirectedAdjacentPairs()
	require.Len(t, pairs, 6, "3 vertices, all undirected: 3*2 ordered pairs")

	canon := m.UndirectedAdjacentPairsCanonical()
	require.Len(t, canon, 3)
}

func TestUndirectedNonAdjacentPairs(t *testing.T) {
	m, err := graphrepr.NewEmpty(3)
	require.NoError(t, err)

	pairs := m.UndirectedNonAdjacentPairs()
	require.Len(t, pairs, 6)
}

func TestNonAdjacentExcludesOrientedEdges(t *testing.T) {
	m := buildChainCollider(t)

	pairs := m.UndirectedNonAdjacentPairs()
	// 0 and 2 are the only non-adjacent pair in the v-structure.
	require.ElementsMatch(t, []graphrepr.Pair{{I: 0, J: 2}, {I: 2, J: 0}}, pairs)
}
