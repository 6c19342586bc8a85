package correlation

import (
	"errors"

	"github.com/gasparian/vector-math-go/vector"
	"gonum.org/v1/gonum/blas/blas64"
)

// DimensionsErr returned when two vectors of different dimensionality
// are compared
var DimensionsErr = errors.New("vectors must be of the same dimensionality")

// HammingCoefficient returns the share of coordinates on which the two
// vectors hold exactly equal values, in [0, 1]. Implicit zeros count as
// regular zero coordinates.
func HammingCoefficient(left, right vector.Vector) (float64, error) {
	dims := left.Dims()
	if dims != right.Dims() {
		return 0, DimensionsErr
	}
	if dims == 0 {
		return 0, nil
	}
	matches := 0
	for i := 0; i < dims; i++ {
		if left.GetValue(i) == right.GetValue(i) {
			matches++
		}
	}
	return float64(matches) / float64(dims), nil
}

// L2 calculates l2-distance between two vectors
func L2(a, b []float64) float64 {
	res := make([]float64, len(b))
	copy(res, b)
	resBlas := vector.NewBlas(res)
	blas64.Axpy(-1.0, vector.NewBlas(a), resBlas)
	return blas64.Nrm2(resBlas)
}

// CosineDist calculates cosine distance btw the two given vectors
// (1 - cosine similarity, so equal directions give 0.0)
func CosineDist(a, b []float64) float64 {
	aBlas := vector.NewBlas(a)
	bBlas := vector.NewBlas(b)
	cosine := blas64.Dot(aBlas, bBlas) / (blas64.Nrm2(aBlas) * blas64.Nrm2(bBlas))
	return 1.0 - cosine
}

// Dot calculates the inner product of an arbitrary vector with a dense
// projection, walking only the explicit entries of the left vector
func Dot(left vector.Vector, right vector.Vector) float64 {
	var dot float64
	left.ForEachEntry(func(index int, value float64) {
		dot += value * right.GetValue(index)
	})
	return dot
}
