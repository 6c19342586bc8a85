package lsh

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gasparian/vector-math-go/vector"
)

func TestNewRandomSimHashFamilyDeterministic(t *testing.T) {
	t.Parallel()
	first, err := NewRandomSimHashFamily(rand.New(rand.NewSource(42)), 8, 4)
	require.NoError(t, err)
	second, err := NewRandomSimHashFamily(rand.New(rand.NewSource(42)), 8, 4)
	require.NoError(t, err)

	require.Equal(t, 8, first.Projection().Dims())
	for i := 0; i < 8; i++ {
		value := first.Projection().GetValue(i)
		require.Equal(t, value, second.Projection().GetValue(i))
		require.GreaterOrEqual(t, value, 1.0)
		require.LessOrEqual(t, value, 4.0)
		require.Equal(t, value, float64(int(value)), "projection entries must be integers")
	}
}

func TestNewSimHashFamilySharesProjection(t *testing.T) {
	t.Parallel()
	projection := vector.NewDense([]float64{1.0, 2.0, 3.0})
	family, err := NewSimHashFamily(projection, 4)
	require.NoError(t, err)
	// the projection is shared by reference, not copied
	projection.SetValue(0, 9.0)
	require.Equal(t, 9.0, family.Projection().GetValue(0))
}

func TestFamilyValidation(t *testing.T) {
	t.Parallel()
	rnd := rand.New(rand.NewSource(1))
	_, err := NewRandomSimHashFamily(rnd, 0, 4)
	require.Equal(t, dimensionsNumberErr, err)
	_, err = NewRandomSimHashFamily(rnd, -1, 4)
	require.Equal(t, dimensionsNumberErr, err)
	_, err = NewRandomSimHashFamily(rnd, 8, 0)
	require.Equal(t, quantizationWidthErr, err)
	_, err = NewSimHashFamily(nil, 4)
	require.Equal(t, dimensionsNumberErr, err)
	_, err = NewSimHashFamily(vector.NewDense([]float64{1.0}), -2)
	require.Equal(t, quantizationWidthErr, err)
}

func TestGetHashDeterministic(t *testing.T) {
	t.Parallel()
	family, err := NewRandomSimHashFamily(rand.New(rand.NewSource(7)), 8, 4)
	require.NoError(t, err)
	fn := family.GetHashFunction(rand.New(rand.NewSource(11)))
	vec := vector.NewDense([]float64{0.1, 0.5, 0.9, 0.2, 0.4, 0.6, 0.8, 0.3})
	require.Equal(t, fn.GetHash(vec), fn.GetHash(vec))

	// the same draw seed reproduces the same function
	fnAgain := family.GetHashFunction(rand.New(rand.NewSource(11)))
	require.Equal(t, fn.GetHash(vec), fnAgain.GetHash(vec))
}

func TestDrawsAreIndependent(t *testing.T) {
	t.Parallel()
	projection := vector.NewDense([]float64{1.0, 1.0, 1.0})
	family, err := NewSimHashFamily(projection, 4)
	require.NoError(t, err)

	// dot is fixed at 1.5, so the code flips depending on the offset:
	// a run of draws must produce more than one distinct code
	vec := vector.NewDense([]float64{0.5, 0.5, 0.5})
	rnd := rand.New(rand.NewSource(3))
	codes := make(map[int]bool)
	for i := 0; i < 50; i++ {
		codes[family.GetHashFunction(rnd).GetHash(vec)] = true
	}
	require.Greater(t, len(codes), 1)
}

func TestHashSparseMatchesDense(t *testing.T) {
	t.Parallel()
	family, err := NewRandomSimHashFamily(rand.New(rand.NewSource(5)), 6, 4)
	require.NoError(t, err)
	fn := family.GetHashFunction(rand.New(rand.NewSource(6)))

	dense := vector.NewDense([]float64{0.0, 2.0, 0.0, 0.0, -1.0, 0.0})
	sparse := vector.NewSparse(6)
	sparse.SetValue(1, 2.0)
	sparse.SetValue(4, -1.0)
	require.Equal(t, fn.GetHash(dense), fn.GetHash(sparse))
}

func TestGetCoefficient(t *testing.T) {
	t.Parallel()
	family, err := NewRandomSimHashFamily(rand.New(rand.NewSource(9)), 4, 4)
	require.NoError(t, err)

	left := vector.NewDense([]float64{1.0, 2.0, 3.0, 4.0})
	right := vector.NewDense([]float64{1.0, 2.0, 3.0, 0.0})
	coef, err := family.GetCoefficient(left, right)
	require.NoError(t, err)
	require.InDelta(t, 0.75, coef, 1e-12)

	_, err = family.GetCoefficient(left, vector.NewDense([]float64{1.0}))
	require.Error(t, err)
}
