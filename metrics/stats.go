package metrics

import (
	"math"
	"sort"
)

func nan() float64 { return math.NaN() }

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return nan()
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func median(xs []float64) float64 {
	n := len(xs)
	if n == 0 {
		return nan()
	}
	sorted := make([]float64, n)
	copy(sorted, xs)
	sort.Float64s(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// sampleStdDev returns the sample (N-1) standard deviation, or 0 if fewer
// than two values.
func sampleStdDev(xs []float64) float64 {
	n := len(xs)
	if n < 2 {
		return 0
	}
	m := mean(xs)
	var ss float64
	for _, x := range xs {
		d := x - m
		ss += d * d
	}
	return math.Sqrt(ss / float64(n-1))
}

// coefficientOfVariation returns sampleStdDev/mean, or 0 if fewer than two
// values or the mean is 0.
func coefficientOfVariation(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	m := mean(xs)
	if m == 0 {
		return 0
	}
	return sampleStdDev(xs) / m
}

// convergenceScore inverts a normalized mean absolute difference into a
// [0, 1] score: identical sequences score 1, divergence drives the score
// toward 0. NaN when there are no differences or the normalizer is not
// positive.
func convergenceScore(diffs []float64, norm float64) float64 {
	if len(diffs) == 0 || norm <= 0 {
		return nan()
	}
	return clip01(1 - mean(diffs)/norm)
}

// predictabilityScore measures how consistent consecutive values are:
// 1 - mean(|v_i - v_{i-1}|)/mean(v), clipped to [0, 1]. NaN with fewer than
// two values.
func predictabilityScore(values []float64) float64 {
	if len(values) < 2 {
		return nan()
	}
	diffs := make([]float64, 0, len(values)-1)
	for i := 1; i < len(values); i++ {
		diffs = append(diffs, math.Abs(values[i]-values[i-1]))
	}
	return convergenceScore(diffs, mean(values))
}

func clip01(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x > 1:
		return 1
	default:
		return x
	}
}
