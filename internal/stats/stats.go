// Package stats provides the numeric summary helpers shared by the
// aggregation pipeline: means, extents, and Pearson correlation.
package stats

import "math"

// Mean returns the arithmetic mean of values, or NaN for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// MinMax returns the minimum and maximum of values. For an empty slice both
// results are NaN.
func MinMax(values []float64) (float64, float64) {
	if len(values) == 0 {
		return math.NaN(), math.NaN()
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// Pearson computes the Pearson correlation coefficient of two series using
// population variance and covariance (divide by n, not n-1). It returns NaN
// when the series lengths differ, when fewer than two points are given, or
// when either series has zero variance.
func Pearson(xs, ys []float64) float64 {
	n := len(xs)
	if n != len(ys) || n < 2 {
		return math.NaN()
	}

	meanX := Mean(xs)
	meanY := Mean(ys)

	var cov, varX, varY float64
	for i := 0; i < n; i++ {
		dx := xs[i] - meanX
		dy := ys[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	cov /= float64(n)
	varX /= float64(n)
	varY /= float64(n)

	stdX := math.Sqrt(varX)
	stdY := math.Sqrt(varY)
	if stdX == 0 || stdY == 0 {
		return math.NaN()
	}

	r := cov / (stdX * stdY)
	// Floating point can nudge the ratio just past the mathematical bound.
	if r > 1 {
		r = 1
	}
	if r < -1 {
		r = -1
	}
	return r
}
