package strided

import "math"

// Variance returns the variance of the n-element view x[offset + i*stride]
// with divisor n - correction (correction 0 gives the population variance,
// 1 the common sample variance; arbitrary values are accepted).
//
// Degenerate inputs yield NaN: n <= 0, or n - correction <= 0. A zero stride
// aliases a single buffer slot, so the view has zero variance by
// construction. A single-element view likewise returns 0. Any NaN among the
// selected elements propagates to the result.
//
// The caller guarantees that the view stays within the bounds of x.
func Variance(n int, correction float64, x []float32, stride, offset int) float32 {
	if n <= 0 {
		return float32(math.NaN())
	}

	div := float64(n) - correction
	if div <= 0 {
		return float32(math.NaN())
	}

	if n == 1 || stride == 0 {
		return 0
	}

	return float32(sumSquaredDeviations(n, x, stride, offset) / div)
}

// sumSquaredDeviations accumulates the sum of squared deviations from the
// mean over the view using Welford's one-pass update in float64. The update
// keeps intermediate terms bounded, and for an all-equal view every delta is
// exactly zero, so the result is exact. Requires n >= 2 and stride != 0.
func sumSquaredDeviations(n int, x []float32, stride, offset int) float64 {
	mean := float64(x[offset])

	var m2 float64

	ix := offset
	for i := 1; i < n; i++ {
		ix += stride
		v := float64(x[ix])
		delta := v - mean
		mean += delta / float64(i+1)
		m2 += delta * (v - mean)
	}

	// Rounding in the update can leave a tiny negative residue when the
	// true value is zero or near zero.
	if m2 < 0 {
		m2 = 0
	}

	return m2
}
