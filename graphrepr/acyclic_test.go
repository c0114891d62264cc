package graphrepr_test

import (
	"testing"

	"github.com/causalkit/pcalg/graphrepr"
	"github.com/stretchr/testify/require"
)

func TestIsAcyclicOnVStructure(t *testing.T) {
	m := buildChainCollider(t)
	require.True(t, m.IsAcyclic())
}

func TestIsAcyclicDetectsCycle(t *testing.T) {
	m, err := graphrepr.NewEmpty(3)
	require.NoError(t, err)
	require.NoError(t, m.SetDirectedEdge(0, 1))
	require.NoError(t, m.SetDirectedEdge(1, 2))
	require.NoError(t, m.SetDirectedEdge(2, 0))

	require.False(t, m.IsAcyclic())

	_, err = m.TopologicalOrder()
	require.ErrorIs(t, err, graphrepr.ErrInvariantViolation)
}

func TestTopologicalOrderRespectsEdges(t *testing.T) {
	m, err := graphrepr.NewEmpty(3)
	require.NoError(t, err)
	require.NoError(t, m.SetDirectedEdge(0, 1))
	require.NoError(t, m.SetDirectedEdge(1, 2))

	order, err := m.TopologicalOrder()
	require.NoError(t, err)

	pos := map[int]int{}
	for i, v := range order {
		pos[v] = i
	}
	require.Less(t, pos[0], pos[1])
	require.Less(t, pos[1], pos[2])
}
