package annbench

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gasparian/vector-math-go/lsh"
	"github.com/gasparian/vector-math-go/vector"
)

const (
	testDims     = 16
	testW        = 4
	testPairs    = 30
	testDraws    = 300
	testResample = 2
)

func TestCollisionRateMonotonic(t *testing.T) {
	t.Parallel()
	rnd := rand.New(rand.NewSource(2021))
	family, err := lsh.NewRandomSimHashFamily(rnd, testDims, testW)
	require.NoError(t, err)

	closePairs := make([][2]vector.Vector, testPairs)
	distantPairs := make([][2]vector.Vector, testPairs)
	for i := 0; i < testPairs; i++ {
		closePairs[i] = SimilarPair(rnd, testDims, testResample)
		distantPairs[i] = RandomPair(rnd, testDims)
	}

	closeRate := CollisionRate(family, closePairs, testDraws, rnd)
	distantRate := CollisionRate(family, distantPairs, testDraws, rnd)

	require.Greater(t, closeRate, 0.0)
	require.LessOrEqual(t, closeRate, 1.0)
	// pairs with a higher similarity coefficient must collide more often
	require.Greater(t, closeRate, distantRate+0.1)
	// and sit closer in l2, so the distances order the opposite way
	require.Less(t, MeanPairL2(closePairs), MeanPairL2(distantPairs))
}

func TestMeanPairL2(t *testing.T) {
	t.Parallel()
	pairs := [][2]vector.Vector{
		{vector.NewDense([]float64{0.0, 0.0}), vector.NewDense([]float64{-4.0, 3.0})},
		{vector.NewDense([]float64{1.0, 1.0}), vector.NewDense([]float64{1.0, 1.0})},
	}
	require.InDelta(t, 2.5, MeanPairL2(pairs), 1e-12)
	require.Equal(t, 0.0, MeanPairL2(nil))
}

func TestCollisionRateDegenerate(t *testing.T) {
	t.Parallel()
	rnd := rand.New(rand.NewSource(1))
	family, err := lsh.NewRandomSimHashFamily(rnd, testDims, testW)
	require.NoError(t, err)
	require.Equal(t, 0.0, CollisionRate(family, nil, testDraws, rnd))
	require.Equal(t, 0.0, CollisionRate(family, [][2]vector.Vector{RandomPair(rnd, testDims)}, 0, rnd))
}

func TestPairCoefficients(t *testing.T) {
	t.Parallel()
	rnd := rand.New(rand.NewSource(7))
	family, err := lsh.NewRandomSimHashFamily(rnd, testDims, testW)
	require.NoError(t, err)

	similar := SimilarPair(rnd, testDims, testResample)
	coef, err := family.GetCoefficient(similar[0], similar[1])
	require.NoError(t, err)
	require.GreaterOrEqual(t, coef, float64(testDims-testResample)/float64(testDims))

	distant := RandomPair(rnd, testDims)
	coef, err = family.GetCoefficient(distant[0], distant[1])
	require.NoError(t, err)
	require.Less(t, coef, 0.2)
}

func TestNewVectorReport(t *testing.T) {
	t.Parallel()
	report := NewVectorReport(vector.NewDense([]float64{1.0, 2.0, 3.0, 4.0, 5.0}))
	require.Equal(t, 5, report.Known)
	require.Equal(t, 0, report.Unknown)
	require.InDelta(t, 15.0, report.Sum, 1e-12)
	require.InDelta(t, 3.0, report.Mean, 1e-12)
	require.InDelta(t, 2.0, report.Variance, 1e-9)
	require.Equal(t, 1.0, report.Min)
	require.Equal(t, 5.0, report.Max)
	require.Equal(t, 3.0, report.Median)
	require.InDelta(t, math.Sqrt(55.0), report.L2Norm, 1e-12)
	require.InDelta(t, 0.0, report.Skewness, 1e-12)
	require.InDelta(t, -0.875, report.Kurtosis, 1e-12)
}

func TestNewDatasetStats(t *testing.T) {
	t.Parallel()
	ds := NewDatasetStats([][]float64{{3.0, 4.0}, {0.0, 0.0}})
	require.Equal(t, 2, ds.Vectors)
	require.InDelta(t, 2.5, ds.MeanL2Norm, 1e-12)
	require.InDelta(t, 1.75, ds.MeanOfMeans, 1e-12)

	require.Equal(t, DatasetStats{}, NewDatasetStats(nil))
}
