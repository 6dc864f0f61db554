package strided

import "math"

// Stdev returns the standard deviation of the n-element view
// x[offset + i*stride] with divisor n - correction.
//
// The contract matches [Variance]: NaN for n <= 0 or n - correction <= 0,
// exactly 0 for a single-element or zero-stride view, NaN propagation from
// the data, and exactly 0 for an all-equal view. The square root is taken in
// float64 before rounding to float32.
func Stdev(n int, correction float64, x []float32, stride, offset int) float32 {
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

	return float32(math.Sqrt(sumSquaredDeviations(n, x, stride, offset) / div))
}
