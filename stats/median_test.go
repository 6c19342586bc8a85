package stats

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gasparian/vector-math-go/vector"
)

func sortedMedian(values []float64, absolute bool) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	if absolute {
		for i := range sorted {
			sorted[i] = math.Abs(sorted[i])
		}
	}
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

func TestMedianMatchesSorted(t *testing.T) {
	t.Parallel()
	rnd := rand.New(rand.NewSource(17))
	for size := 1; size <= 200; size++ {
		values := make([]float64, size)
		for i := range values {
			values[i] = rnd.Float64()*2.0 - 1.0
		}
		v := vector.NewDense(values)
		require.InDelta(t, sortedMedian(values, false), Median(v, false), 1e-12, "size %d raw", size)
		require.InDelta(t, sortedMedian(values, true), Median(v, true), 1e-12, "size %d absolute", size)
	}
}

func TestMedianDuplicates(t *testing.T) {
	t.Parallel()
	v := vector.NewDense([]float64{2.0, 2.0, 2.0, 2.0})
	require.Equal(t, 2.0, Median(v, false))
}

func TestMedianSparseExplicitOnly(t *testing.T) {
	t.Parallel()
	// implicit zeros are not part of the stream
	s := newSparse([]float64{5.0, 7.0, 9.0}, 10)
	require.Equal(t, 7.0, Median(s, false))
}

func TestMedianEmpty(t *testing.T) {
	t.Parallel()
	require.True(t, math.IsNaN(Median(vector.NewDense(nil), false)))
}
