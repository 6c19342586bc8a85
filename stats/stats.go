package stats

import (
	"math"
)

// Sequence is a single-use stream over the explicit values of a possibly
// sparse vector. KnownSize counts the explicitly stored entries reachable
// via ForEachValue, UnknownSize counts the coordinates which are exact
// zeros and never materialized. Every statistic re-traverses the source,
// so the sequence must be re-playable between calls.
type Sequence interface {
	KnownSize() int
	UnknownSize() int
	ForEachValue(fn func(value float64))
}

// Sum accumulates the explicit values, or their absolute values.
// Implicit zeros contribute nothing, so no correction is needed here.
func Sum(seq Sequence, absolute bool) float64 {
	var sum float64
	if absolute {
		seq.ForEachValue(func(value float64) {
			sum += math.Abs(value)
		})
		return sum
	}
	seq.ForEachValue(func(value float64) {
		sum += value
	})
	return sum
}

// Boundary returns the min and max of the explicit values.
// NOTE: implicit zeros are not considered, so for an all-negative explicit
// vector with a non-zero UnknownSize the returned max is still negative
// even though the true max of the full vector is 0. Empty input returns
// (+Inf, -Inf).
func Boundary(seq Sequence, absolute bool) (float64, float64) {
	minimum := math.Inf(1)
	maximum := math.Inf(-1)
	seq.ForEachValue(func(value float64) {
		if absolute {
			value = math.Abs(value)
		}
		if value < minimum {
			minimum = value
		}
		if value > maximum {
			maximum = value
		}
	})
	return minimum, maximum
}

// Count builds a value->occurrences histogram over the explicit values.
// Keys are compared with float equality; implicit zeros are not counted.
func Count(seq Sequence, absolute bool) map[float64]int {
	counts := make(map[float64]int)
	seq.ForEachValue(func(value float64) {
		if absolute {
			value = math.Abs(value)
		}
		counts[value]++
	})
	return counts
}

// Variance runs Welford's online update over the explicit values and
// returns the running mean together with the raw sum of squared
// deviations. Divide the second value by KnownSize to get the variance, or
// take the square root of that for the standard deviation. Implicit zeros
// are ignored here, unlike in Skewness and Kurtosis. Empty input returns
// (NaN, NaN).
func Variance(seq Sequence) (float64, float64) {
	mean := math.NaN()
	sumSqDev := math.NaN()
	size := 0
	seq.ForEachValue(func(value float64) {
		if size == 0 {
			mean = value
			sumSqDev = 0
			size = 1
			return
		}
		size++
		delta := value - mean
		mean += delta / float64(size)
		sumSqDev += delta * (value - mean)
	})
	return mean, sumSqDev
}

// VarianceAroundMean accumulates the squared deviations of the explicit
// values from an externally supplied mean, typically the sparse-corrected
// one (sum / (KnownSize + UnknownSize)).
func VarianceAroundMean(seq Sequence, mean float64) float64 {
	var variance float64
	seq.ForEachValue(func(value float64) {
		value -= mean
		variance += value * value
	})
	return variance
}

// Skewness computes the bias-corrected skewness of the full vector given
// its sum. The contribution of the UnknownSize implicit zeros is folded in
// analytically, both into the third moment and into the variance.
func Skewness(seq Sequence, sum float64) float64 {
	known := seq.KnownSize()
	unknown := seq.UnknownSize()
	length := known + unknown
	mean := sum / float64(length)

	var skewness float64
	seq.ForEachValue(func(value float64) {
		skewness += math.Pow(value-mean, 3)
	})
	skewness += math.Pow(-mean, 3) * float64(unknown)
	variance := (VarianceAroundMean(seq, mean) + mean*mean*float64(unknown)) / float64(length)
	skewness = skewness / (math.Pow(math.Sqrt(variance), 3) * float64(length-1))
	if length >= 3 {
		// bias-corrected formula
		return math.Sqrt(float64(length)*float64(length-1)) / float64(length-2) * skewness
	}
	return skewness
}

// Kurtosis computes the excess kurtosis of the full vector given its sum,
// with the same analytic correction for implicit zeros as Skewness.
func Kurtosis(seq Sequence, sum float64) float64 {
	known := seq.KnownSize()
	unknown := seq.UnknownSize()
	length := known + unknown
	mean := sum / float64(length)

	var kurtosis float64
	seq.ForEachValue(func(value float64) {
		kurtosis += math.Pow(value-mean, 4)
	})
	kurtosis += math.Pow(-mean, 4) * float64(unknown)
	variance := (VarianceAroundMean(seq, mean) + mean*mean*float64(unknown)) / float64(length)
	kurtosis = kurtosis/(math.Pow(variance, 2)*float64(length-1)) - 3
	return kurtosis
}

// Norm returns the p-norm of the explicit values. Power 0 returns the
// explicit-entry count (not the dimensionality). Powers 1 and 2 return the
// Manhattan sum and the Euclidean length regardless of the root flag. For
// any other power the accumulated power-sum is raised to 1/power only when
// root is set; even integer powers skip the absolute value since the terms
// are already non-negative.
func Norm(seq Sequence, power float64, root bool) float64 {
	if power == 0 {
		return float64(seq.KnownSize())
	}
	var norm float64
	if power == 1 {
		seq.ForEachValue(func(value float64) {
			norm += math.Abs(value)
		})
		return norm
	}
	if power == 2 {
		seq.ForEachValue(func(value float64) {
			norm += value * value
		})
		return math.Sqrt(norm)
	}
	if power == math.Trunc(power) && math.Mod(power, 2) == 0 {
		seq.ForEachValue(func(value float64) {
			norm += math.Pow(value, power)
		})
	} else {
		seq.ForEachValue(func(value float64) {
			norm += math.Pow(math.Abs(value), power)
		})
	}
	if root {
		return math.Pow(norm, 1/power)
	}
	return norm
}
