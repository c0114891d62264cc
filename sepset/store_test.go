package sepset_test

import (
	"sync"
	"testing"

	"github.com/causalkit/pcalg/sepset"
	"github.com/stretchr/testify/require"
)

func TestInitInvalidSize(t *testing.T) {
	_, err := sepset.Init(-1)
	require.ErrorIs(t, err, sepset.ErrInvalidSize)
}

func TestInitEveryPairEmpty(t *testing.T) {
	s, err := sepset.Init(3)
	require.NoError(t, err)

	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			if x == y {
				continue
			}
			has, err := s.HasAnySeparator(x, y)
			require.NoError(t, err)
			require.False(t, has)
		}
	}
}

func TestRecordMirrorsBothDirections(t *testing.T) {
	s, err := sepset.Init(4)
	require.NoError(t, err)

	require.NoError(t, s.Record(0, 2, []int{3, 1}))

	sepXY, err := s.Separators(0, 2)
	require.NoError(t, err)
	sepYX, err := s.Separators(2, 0)
	require.NoError(t, err)
	require.Equal(t, sepXY, sepYX)
	require.Equal(t, [][]int{{1, 3}}, sepXY, "z must be sorted on insertion")
}

func TestRecordEmptyTupleDenotesUnconditionalIndependence(t *testing.T) {
	s, err := sepset.Init(2)
	require.NoError(t, err)

	require.NoError(t, s.Record(0, 1, nil))

	seps, err := s.Separators(0, 1)
	require.NoError(t, err)
	require.Equal(t, [][]int{{}}, seps)
}

func TestRecordIsIdempotent(t *testing.T) {
	s, err := sepset.Init(3)
	require.NoError(t, err)

	require.NoError(t, s.Record(0, 1, []int{2}))
	require.NoError(t, s.Record(0, 1, []int{2}))

	seps, err := s.Separators(0, 1)
	require.NoError(t, err)
	require.Len(t, seps, 1)
}

func TestRecordRejectsMemberInPair(t *testing.T) {
	s, err := sepset.Init(3)
	require.NoError(t, err)

	err = s.Record(0, 1, []int{0})
	require.ErrorIs(t, err, sepset.ErrMemberInPair)
}

func TestRecordRejectsSameVertex(t *testing.T) {
	s, err := sepset.Init(2)
	require.NoError(t, err)

	err = s.Record(0, 0, nil)
	require.ErrorIs(t, err, sepset.ErrSameVertex)
}

func TestContainsVertex(t *testing.T) {
	s, err := sepset.Init(4)
	require.NoError(t, err)
	require.NoError(t, s.Record(0, 3, []int{1, 2}))

	ok, err := s.ContainsVertex(0, 3, 1)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = s.ContainsVertex(0, 3, 2)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = s.ContainsVertex(0, 3, 1)
	require.NoError(t, err)
	require.True(t, ok)
}

// TestConcurrentReadsAfterConstruction verifies that, once fully populated,
// a Store is safe for concurrent readers, by hammering an already-built
// Store from many goroutines.
func TestConcurrentReadsAfterConstruction(t *testing.T) {
	s, err := sepset.Init(5)
	require.NoError(t, err)
	require.NoError(t, s.Record(0, 4, []int{1, 2}))
	require.NoError(t, s.Record(1, 3, nil))

	const readers = 64
	var wg sync.WaitGroup
	wg.Add(readers)
	for i := 0; i < readers; i++ {
		go func() {
			defer wg.Done()
			_, err := s.Separators(0, 4)
			require.NoError(t, err)
			_, err = s.ContainsVertex(0, 4, 2)
			require.NoError(t, err)
		}()
	}
	wg.Wait()
}
