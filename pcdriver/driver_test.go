package pcdriver_test

import (
	"strings"
	"testing"

	"github.com/causalkit/pcalg/citest"
	"github.com/causalkit/pcalg/pcdriver"
	"github.com/stretchr/testify/require"
)

var names3 = []string{"x0", "x1", "x2"}

const chainColliderOracleCSV = `X;Y;Conditioning Set;(Conditional) Independence Holds
x0;x1;[];False
x0;x2;[];True
x0;x2;[x1];False
x1;x2;[];False
x0;x1;[x2];False
x1;x2;[x0];False
`

const chainOracleCSV = `X;Y;Conditioning Set;(Conditional) Independence Holds
x0;x1;[];False
x0;x2;[];False
x1;x2;[];False
x0;x1;[x2];False
x0;x2;[x1];True
x1;x2;[x0];False
`

// TestRunChainColliderOrientsVStructure checks the CPDAG ends up with the
// v-structure 0->1<-2 oriented by the collider step.
func TestRunChainColliderOrientsVStructure(t *testing.T) {
	table, err := citest.ParseOracleCSV(strings.NewReader(chainColliderOracleCSV))
	require.NoError(t, err)
	contract := citest.NewOracleContract(table, names3)

	result, err := pcdriver.Run(3, contract, 0.05)
	require.NoError(t, err)

	require.Equal(t, [][]uint8{
		{0, 1, 0},
		{0, 0, 0},
		{0, 1, 0},
	}, result.CPDAG.Dense())
}

// TestRunChainLeavesEverythingUndirected checks that the chain X0->X1->X2 is
// Markov-equivalent to two other orderings, so the CPDAG keeps every edge
// undirected.
func TestRunChainLeavesEverythingUndirected(t *testing.T) {
	table, err := citest.ParseOracleCSV(strings.NewReader(chainOracleCSV))
	require.NoError(t, err)
	contract := citest.NewOracleContract(table, names3)

	result, err := pcdriver.Run(3, contract, 0.05)
	require.NoError(t, err)

	require.Equal(t, [][]uint8{
		{0, 1, 0},
		{1, 0, 1},
		{0, 1, 0},
	}, result.CPDAG.Dense())
}

// TestRunForkAndChainOrientsSharedCollider checks the Spirtes-Glymour-Scheines
// fig. 5.1 DAG (0->1, 1->2, 1->3, 2->4, 3->4): the shared child 4 becomes a
// v-structure while the fork at 1 stays undirected.
func TestRunForkAndChainOrientsSharedCollider(t *testing.T) {
	oracle := dagOracle{n: 5, parents: map[int][]int{
		1: {0},
		2: {1},
		3: {1},
		4: {2, 3},
	}}

	result, err := pcdriver.Run(5, oracle, 0.05)
	require.NoError(t, err)

	at := func(i, j int) uint8 {
		v, err := result.CPDAG.At(i, j)
		require.NoError(t, err)
		return v
	}

	// v-structure at 4: 2->4<-3.
	require.EqualValues(t, 1, at(2, 4))
	require.EqualValues(t, 0, at(4, 2))
	require.EqualValues(t, 1, at(3, 4))
	require.EqualValues(t, 0, at(4, 3))

	// 0-1, 1-2, 1-3 remain undirected.
	require.EqualValues(t, 1, at(0, 1))
	require.EqualValues(t, 1, at(1, 0))
	require.EqualValues(t, 1, at(1, 2))
	require.EqualValues(t, 1, at(2, 1))
	require.EqualValues(t, 1, at(1, 3))
	require.EqualValues(t, 1, at(3, 1))

	// 2 and 3 are not adjacent in the skeleton.
	require.EqualValues(t, 0, at(2, 3))
	require.EqualValues(t, 0, at(3, 2))
}

// TestRunTwoSharedCollidersProduceExactCPDAG checks the DAG 0->1, 1->2,
// 2->3, 4->2, 4->3, in which vertex 4 is a parent of both colliders 2 and 3:
// 1->2<-4 is the one v-structure (2->3<-4 is shielded by the edge 4->2), and
// 2->3, 4->3 follow by Meek closure. The CPDAG is checked cell-by-cell.
func TestRunTwoSharedCollidersProduceExactCPDAG(t *testing.T) {
	oracle := dagOracle{n: 5, parents: map[int][]int{
		1: {0},
		2: {1, 4},
		3: {2, 4},
	}}

	result, err := pcdriver.Run(5, oracle, 0.05)
	require.NoError(t, err)

	require.Equal(t, [][]uint8{
		{0, 1, 0, 0, 0},
		{1, 0, 1, 0, 0},
		{0, 0, 0, 1, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 1, 1, 0},
	}, result.CPDAG.Dense())
}

func TestRunPropagatesCITestFailure(t *testing.T) {
	_, err := pcdriver.Run(2, failingContract{}, 0.05)
	require.Error(t, err)
}

type failingContract struct{}

func (failingContract) Indep(x, y int, level float64) (bool, error) {
	return false, errBoom{}
}

func (failingContract) CondIndep(x, y int, z []int, level float64) (bool, error) {
	return false, errBoom{}
}

type errBoom struct{}

func (errBoom) Error() string { return "boom" }
