package vector

import (
	"math"

	"gonum.org/v1/gonum/blas/blas64"
)

const tol = 1e-6

// ConvertTo64 __
func ConvertTo64(ar []float32) []float64 {
	newar := make([]float64, len(ar))
	var v float32
	var i int
	for i, v = range ar {
		newar[i] = float64(v)
	}
	return newar
}

// ConvertToInt __
func ConvertToInt(ar []int32) []int {
	newar := make([]int, len(ar))
	var v int32
	var i int
	for i, v = range ar {
		newar[i] = int(v)
	}
	return newar
}

// NewBlas creates new blas vector
func NewBlas(data []float64) blas64.Vector {
	if data == nil {
		data = make([]float64, 0)
	}
	return blas64.Vector{
		N:    len(data),
		Inc:  1,
		Data: data,
	}
}

// IsZeroVector returns true if the sum of vector's elements close to 0.0
func IsZeroVector(v []float64) bool {
	var sum float64 = 0.0
	for _, val := range v {
		sum += math.Abs(val)
	}
	return sum <= tol
}

// IsZeroVectorBlas returns true if the abs sum of vector's elements close to 0.0
func IsZeroVectorBlas(v blas64.Vector) bool {
	return math.Abs(blas64.Asum(v)) <= tol
}
