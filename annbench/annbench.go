package annbench

import (
	"math/rand"

	"github.com/gasparian/vector-math-go/correlation"
	"github.com/gasparian/vector-math-go/lsh"
	"github.com/gasparian/vector-math-go/stats"
	"github.com/gasparian/vector-math-go/vector"
)

// Report holds descriptive statistics of a single feature vector
type Report struct {
	Known    int     `json:"known"`
	Unknown  int     `json:"unknown"`
	Sum      float64 `json:"sum"`
	Mean     float64 `json:"mean"`
	Variance float64 `json:"variance"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Median   float64 `json:"median"`
	L2Norm   float64 `json:"l2Norm"`
	Skewness float64 `json:"skewness"`
	Kurtosis float64 `json:"kurtosis"`
}

// NewVectorReport runs the whole aggregator over one vector
func NewVectorReport(vec vector.Vector) Report {
	sum := stats.Sum(vec, false)
	mean, sumSqDev := stats.Variance(vec)
	minimum, maximum := stats.Boundary(vec, false)
	return Report{
		Known:    vec.KnownSize(),
		Unknown:  vec.UnknownSize(),
		Sum:      sum,
		Mean:     mean,
		Variance: sumSqDev / float64(vec.KnownSize()),
		Min:      minimum,
		Max:      maximum,
		Median:   stats.Median(vec, false),
		L2Norm:   stats.Norm(vec, 2, true),
		Skewness: stats.Skewness(vec, sum),
		Kurtosis: stats.Kurtosis(vec, sum),
	}
}

// DatasetStats holds aggregate statistics of a whole dataset
type DatasetStats struct {
	Vectors     int     `json:"vectors"`
	MeanL2Norm  float64 `json:"meanL2Norm"`
	MeanOfMeans float64 `json:"meanOfMeans"`
}

// NewDatasetStats averages per-vector statistics over the dataset
func NewDatasetStats(vecs [][]float64) DatasetStats {
	ds := DatasetStats{Vectors: len(vecs)}
	if len(vecs) == 0 {
		return ds
	}
	for _, values := range vecs {
		vec := vector.NewDense(values)
		ds.MeanL2Norm += stats.Norm(vec, 2, true)
		mean, _ := stats.Variance(vec)
		ds.MeanOfMeans += mean
	}
	ds.MeanL2Norm /= float64(len(vecs))
	ds.MeanOfMeans /= float64(len(vecs))
	return ds
}

// RunReport is what the collisions harness persists per run
type RunReport struct {
	Dims          int     `json:"dims"`
	W             int     `json:"w"`
	Draws         int     `json:"draws"`
	CloseRate     float64 `json:"closeRate"`
	DistantRate   float64 `json:"distantRate"`
	CloseMeanL2   float64 `json:"closeMeanL2"`
	DistantMeanL2 float64 `json:"distantMeanL2"`
	MeanL2Norm    float64 `json:"meanL2Norm"`
	MeanOfMeans   float64 `json:"meanOfMeans"`
}

// CollisionRate estimates the probability that a function drawn from the
// family assigns the same code to both vectors of a pair, averaged over
// the given pairs and over fresh draws
func CollisionRate(family lsh.HashFamily, pairs [][2]vector.Vector, draws int, rnd *rand.Rand) float64 {
	if len(pairs) == 0 || draws <= 0 {
		return 0
	}
	collisions := 0
	for d := 0; d < draws; d++ {
		fn := family.GetHashFunction(rnd)
		for _, pair := range pairs {
			if fn.GetHash(pair[0]) == fn.GetHash(pair[1]) {
				collisions++
			}
		}
	}
	return float64(collisions) / float64(draws*len(pairs))
}

func denseValues(vec vector.Vector) []float64 {
	values := make([]float64, vec.Dims())
	vec.ForEachEntry(func(index int, value float64) {
		values[index] = value
	})
	return values
}

// MeanPairL2 returns the average l2 distance over the given pairs,
// the exact counterpart of the collision rates
func MeanPairL2(pairs [][2]vector.Vector) float64 {
	if len(pairs) == 0 {
		return 0
	}
	var total float64
	for _, pair := range pairs {
		total += correlation.L2(denseValues(pair[0]), denseValues(pair[1]))
	}
	return total / float64(len(pairs))
}

// RandomVector returns a dense vector with coordinates uniform in [0, 1)
func RandomVector(rnd *rand.Rand, dims int) *vector.Dense {
	values := make([]float64, dims)
	for i := range values {
		values[i] = rnd.Float64()
	}
	return vector.NewDense(values)
}

// SimilarPair copies a random base vector and resamples the given number
// of coordinates, so the Hamming coefficient of the pair stays close to
// (dims - resample) / dims
func SimilarPair(rnd *rand.Rand, dims, resample int) [2]vector.Vector {
	left := RandomVector(rnd, dims)
	values := make([]float64, dims)
	copy(values, left.Values())
	right := vector.NewDense(values)
	for i := 0; i < resample; i++ {
		right.SetValue(rnd.Intn(dims), rnd.Float64())
	}
	return [2]vector.Vector{left, right}
}

// RandomPair returns two independent vectors, the Hamming coefficient of
// such a pair is close to 0
func RandomPair(rnd *rand.Rand, dims int) [2]vector.Vector {
	return [2]vector.Vector{
		RandomVector(rnd, dims),
		RandomVector(rnd, dims),
	}
}
