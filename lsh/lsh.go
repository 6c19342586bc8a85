package lsh

import (
	"errors"
	"math"
	"math/rand"

	"github.com/gasparian/vector-math-go/correlation"
	"github.com/gasparian/vector-math-go/vector"
)

var (
	dimensionsNumberErr  = errors.New("dimensions number must be a positive integer")
	quantizationWidthErr = errors.New("quantization width must be a positive integer")
)

// HashFunction maps a vector to a compact integer code. It is a pure
// function of the vector, modulo its fixed internal random state.
type HashFunction interface {
	GetHash(vec vector.Vector) int
}

// HashFamily produces independent hash functions sharing the family's
// randomness, plus a similarity coefficient: the probability of two
// vectors getting the same code from a drawn function grows with their
// coefficient.
type HashFamily interface {
	GetHashFunction(rnd *rand.Rand) HashFunction
	GetCoefficient(left, right vector.Vector) (float64, error)
}

// SimHashFamily holds one shared random projection vector; every hash
// function drawn from the family references the same projection and only
// adds its own random offset. The projection must not be mutated after
// the family is constructed.
type SimHashFamily struct {
	projection vector.Vector
	w          int
}

// NewSimHashFamily wraps a pre-built projection vector, shared by
// reference, not copied
func NewSimHashFamily(projection vector.Vector, w int) (*SimHashFamily, error) {
	if projection == nil || projection.Dims() <= 0 {
		return nil, dimensionsNumberErr
	}
	if w <= 0 {
		return nil, quantizationWidthErr
	}
	return &SimHashFamily{
		projection: projection,
		w:          w,
	}, nil
}

// NewRandomSimHashFamily generates a projection of the given
// dimensionality with every entry drawn uniformly from integers [1, w]
func NewRandomSimHashFamily(rnd *rand.Rand, dims, w int) (*SimHashFamily, error) {
	if dims <= 0 {
		return nil, dimensionsNumberErr
	}
	if w <= 0 {
		return nil, quantizationWidthErr
	}
	projection := vector.NewDense(make([]float64, dims))
	for dim := 0; dim < dims; dim++ {
		projection.SetValue(dim, float64(rnd.Intn(w)+1))
	}
	return &SimHashFamily{
		projection: projection,
		w:          w,
	}, nil
}

// Projection exposes the family's shared projection vector, read-only
func (f *SimHashFamily) Projection() vector.Vector {
	return f.projection
}

// GetHashFunction draws a new hash function from the family: the shared
// projection plus a fresh uniform offset in [0, w)
func (f *SimHashFamily) GetHashFunction(rnd *rand.Rand) HashFunction {
	return &simHashFunction{
		projection: f.projection,
		w:          float64(f.w),
		offset:     rnd.Float64() * float64(f.w),
	}
}

// GetCoefficient delegates to the Hamming coefficient over the raw vectors
func (f *SimHashFamily) GetCoefficient(left, right vector.Vector) (float64, error) {
	return correlation.HammingCoefficient(left, right)
}

// simHashFunction quantizes the projection of a vector onto the family's
// random direction: floor((v * projection + offset) / w)
type simHashFunction struct {
	projection vector.Vector
	w          float64
	offset     float64
}

func (h *simHashFunction) GetHash(vec vector.Vector) int {
	dot := correlation.Dot(vec, h.projection)
	return int(math.Floor((dot + h.offset) / h.w))
}
